package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prode-api/packages/core/models"
	"prode-api/packages/core/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PredictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) FindPredictionsByUser(ctx context.Context, userID uuid.UUID) ([]models.Prediction, error) {
	predictions := make([]models.Prediction, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&predictions).Error; err != nil {
		return nil, storeError("find user predictions", err)
	}
	return predictions, nil
}

func (r *PredictionRepository) FindAllPredictions(ctx context.Context) ([]models.Prediction, error) {
	predictions := make([]models.Prediction, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&predictions).Error; err != nil {
		return nil, storeError("find all predictions", err)
	}
	return predictions, nil
}

func (r *PredictionRepository) FindPrediction(ctx context.Context, userID uuid.UUID, matchID uint) (*models.Prediction, error) {
	var prediction models.Prediction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND match_id = ?", userID, matchID).
		First(&prediction).Error
	if err != nil {
		return nil, storeError("find prediction", err)
	}
	return &prediction, nil
}

// UpsertPrediction creates or overwrites the prediction of a user for a match
// in one statement. An existing row keeps its id and created_at.
func (r *PredictionRepository) UpsertPrediction(ctx context.Context, userID uuid.UUID, matchID uint, home, away int) (*models.Prediction, error) {
	now := time.Now()
	prediction := models.Prediction{
		UserID:             userID,
		MatchID:            matchID,
		PredictedHomeScore: home,
		PredictedAwayScore: away,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "match_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"predicted_home_score", "predicted_away_score", "updated_at"}),
	}).Create(&prediction).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = r.updateExisting(ctx, userID, matchID, home, away, now)
	}
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			return nil, err
		}
		return nil, storeError("upsert prediction", err)
	}

	return r.FindPrediction(ctx, userID, matchID)
}

// updateExisting is the fallback when the driver still reports a unique
// violation for a concurrent insert.
func (r *PredictionRepository) updateExisting(ctx context.Context, userID uuid.UUID, matchID uint, home, away int, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Prediction{}).
			Where("user_id = ? AND match_id = ?", userID, matchID).
			Updates(map[string]interface{}{
				"predicted_home_score": home,
				"predicted_away_score": away,
				"updated_at":           now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("prediction of user %s for match %d: %w", userID, matchID, services.ErrConflict)
		}
		return nil
	})
}
