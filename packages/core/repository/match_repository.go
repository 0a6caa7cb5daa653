package repository

import (
	"context"
	"time"

	"prode-api/packages/core/models"
	"prode-api/packages/core/services"

	"gorm.io/gorm"
)

type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// FindMatches lists matches by kick-off time. DateTo is exclusive.
func (r *MatchRepository) FindMatches(ctx context.Context, filter services.MatchFilter) ([]models.Match, error) {
	query := r.db.WithContext(ctx).Model(&models.Match{})

	if filter.DateFrom != nil {
		query = query.Where("match_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("match_date < ?", *filter.DateTo)
	}
	if filter.Stage != nil {
		query = query.Where("stage = ?", *filter.Stage)
	}

	matches := make([]models.Match, 0)
	if err := query.Order("match_date ASC").Order("id ASC").Find(&matches).Error; err != nil {
		return nil, storeError("find matches", err)
	}
	return matches, nil
}

func (r *MatchRepository) FindAllMatches(ctx context.Context) ([]models.Match, error) {
	matches := make([]models.Match, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&matches).Error; err != nil {
		return nil, storeError("find all matches", err)
	}
	return matches, nil
}

func (r *MatchRepository) FindMatchByID(ctx context.Context, id uint) (*models.Match, error) {
	var match models.Match
	if err := r.db.WithContext(ctx).First(&match, id).Error; err != nil {
		return nil, storeError("find match", err)
	}
	return &match, nil
}

func (r *MatchRepository) CreateMatch(ctx context.Context, match *models.Match) error {
	if err := r.db.WithContext(ctx).Create(match).Error; err != nil {
		return storeError("create match", err)
	}
	return nil
}

// SetResult records the final score. It only writes a match that has no score
// yet, so a result is set exactly once.
func (r *MatchRepository) SetResult(ctx context.Context, id uint, home, away int) (*models.Match, error) {
	result := r.db.WithContext(ctx).Model(&models.Match{}).
		Where("id = ? AND home_score IS NULL AND away_score IS NULL", id).
		Updates(map[string]interface{}{
			"home_score": home,
			"away_score": away,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, storeError("set result", result.Error)
	}

	match, err := r.FindMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		return nil, services.ErrResultAlreadySet
	}
	return match, nil
}

// FindOverdueResults lists matches that kicked off before the given instant and
// still have no final score.
func (r *MatchRepository) FindOverdueResults(ctx context.Context, before time.Time) ([]models.Match, error) {
	matches := make([]models.Match, 0)
	err := r.db.WithContext(ctx).
		Where("match_date < ? AND (home_score IS NULL OR away_score IS NULL)", before).
		Order("match_date ASC").
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, storeError("find overdue results", err)
	}
	return matches, nil
}
