package services

import (
	"context"
	"log"

	"prode-api/packages/core/models"
	"prode-api/packages/core/utils"

	"github.com/google/uuid"
)

type RankingService struct {
	predictions PredictionStore
	matches     MatchStore
	profiles    ProfileStore
}

func NewRankingService(predictions PredictionStore, matches MatchStore, profiles ProfileStore) *RankingService {
	return &RankingService{
		predictions: predictions,
		matches:     matches,
		profiles:    profiles,
	}
}

// GetRanking computes the leaderboard from the current predictions and results.
// currentUser, when not nil, flags the caller's own entry.
func (s *RankingService) GetRanking(ctx context.Context, currentUser uuid.UUID) ([]models.RankingEntry, error) {
	predictions, err := s.predictions.FindAllPredictions(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.matches.FindAllMatches(ctx)
	if err != nil {
		return nil, err
	}

	for i := range matches {
		if matches[i].IsPartiallyScored() {
			log.Printf("Warning: match %d has a partial score, treating it as pending", matches[i].ID)
		}
	}

	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]bool)
	for _, p := range predictions {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			ids = append(ids, p.UserID)
		}
	}

	// Names are optional on the leaderboard.
	names, err := s.profiles.FindDisplayNames(ctx, ids)
	if err != nil {
		log.Printf("Warning: failed to load display names for the ranking: %v", err)
		names = map[uuid.UUID]string{}
	}

	ranking := utils.ComputeRanking(predictions, matches, names)
	if currentUser != uuid.Nil {
		for i := range ranking {
			ranking[i].IsCurrentUser = ranking[i].UserID == currentUser
		}
	}
	return ranking, nil
}
