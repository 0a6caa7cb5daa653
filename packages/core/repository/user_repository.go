package repository

import (
	"context"

	authModels "prode-api/packages/auth/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindDisplayNames resolves the leaderboard names of the given users.
func (r *UserRepository) FindDisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var users []authModels.User
	if err := r.db.WithContext(ctx).Select("id", "username", "first_name", "last_name").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, storeError("find display names", err)
	}

	for i := range users {
		names[users[i].ID] = users[i].DisplayName()
	}
	return names, nil
}
