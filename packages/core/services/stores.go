package services

import (
	"context"
	"time"

	"prode-api/packages/core/models"

	"github.com/google/uuid"
)

// MatchFilter narrows the fixture list. Nil fields are ignored.
type MatchFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Stage    *string
}

type MatchStore interface {
	FindMatches(ctx context.Context, filter MatchFilter) ([]models.Match, error)
	FindAllMatches(ctx context.Context) ([]models.Match, error)
	FindMatchByID(ctx context.Context, id uint) (*models.Match, error)
	CreateMatch(ctx context.Context, match *models.Match) error
	SetResult(ctx context.Context, id uint, home, away int) (*models.Match, error)
	FindOverdueResults(ctx context.Context, before time.Time) ([]models.Match, error)
}

type PredictionStore interface {
	FindPredictionsByUser(ctx context.Context, userID uuid.UUID) ([]models.Prediction, error)
	FindAllPredictions(ctx context.Context) ([]models.Prediction, error)
	FindPrediction(ctx context.Context, userID uuid.UUID, matchID uint) (*models.Prediction, error)
	UpsertPrediction(ctx context.Context, userID uuid.UUID, matchID uint, home, away int) (*models.Prediction, error)
}

type ProfileStore interface {
	FindDisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
