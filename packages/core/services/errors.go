package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflicting write")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrSubmissionClosed = errors.New("submission window closed")
	ErrResultAlreadySet = errors.New("match result already recorded")
)

var (
	ErrMatchInProgress = fmt.Errorf("match in progress: %w", ErrSubmissionClosed)
	ErrMatchFinished   = fmt.Errorf("match finished: %w", ErrSubmissionClosed)
)
