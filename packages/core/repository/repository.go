package repository

import (
	"errors"
	"fmt"

	"prode-api/packages/core/services"

	"gorm.io/gorm"
)

// storeError maps gorm errors onto the service sentinels.
func storeError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, services.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", op, services.ErrStoreUnavailable, err)
}
