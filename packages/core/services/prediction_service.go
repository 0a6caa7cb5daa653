package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"prode-api/packages/core/models"
	"prode-api/packages/core/utils"

	"github.com/google/uuid"
)

type PredictionService struct {
	predictions PredictionStore
	matches     MatchStore
	window      time.Duration
	enforce     bool
	now         func() time.Time
}

func NewPredictionService(predictions PredictionStore, matches MatchStore, window time.Duration, enforceWindow bool) *PredictionService {
	if window <= 0 {
		window = utils.DefaultInProgressWindow
	}
	return &PredictionService{
		predictions: predictions,
		matches:     matches,
		window:      window,
		enforce:     enforceWindow,
		now:         time.Now,
	}
}

// Submit stores the prediction of a user for a match, overwriting a previous
// one. Predictions are only accepted while the match is upcoming.
func (s *PredictionService) Submit(ctx context.Context, userID uuid.UUID, matchID uint, home, away models.Score) (*models.Prediction, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user: %w", ErrInvalidInput)
	}
	if matchID == 0 {
		return nil, fmt.Errorf("missing match: %w", ErrInvalidInput)
	}
	if !home.Set || !away.Set {
		return nil, fmt.Errorf("both scores are required: %w", ErrInvalidInput)
	}
	if home.Value < 0 || away.Value < 0 {
		return nil, fmt.Errorf("scores must be non-negative: %w", ErrInvalidInput)
	}

	match, err := s.matches.FindMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if s.enforce {
		switch utils.MatchStatus(s.now(), match.MatchDate, s.window) {
		case models.MatchStatusInProgress:
			return nil, ErrMatchInProgress
		case models.MatchStatusFinished:
			return nil, ErrMatchFinished
		}
	}

	prediction, err := s.predictions.UpsertPrediction(ctx, userID, matchID, home.Value, away.Value)
	if err != nil {
		return nil, err
	}

	log.Printf("Prediction saved: user %s match %d (%d-%d)", userID, matchID, home.Value, away.Value)
	return prediction, nil
}

func (s *PredictionService) Get(ctx context.Context, userID uuid.UUID, matchID uint) (*models.Prediction, error) {
	return s.predictions.FindPrediction(ctx, userID, matchID)
}

// GetUserSummary joins every match with the user's prediction for it and
// totals the points earned so far.
func (s *PredictionService) GetUserSummary(ctx context.Context, userID uuid.UUID) (*models.UserSummary, error) {
	matches, err := s.matches.FindMatches(ctx, MatchFilter{})
	if err != nil {
		return nil, err
	}
	predictions, err := s.predictions.FindPredictionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byMatch := make(map[uint]models.Prediction, len(predictions))
	for _, p := range predictions {
		byMatch[p.MatchID] = p
	}

	now := s.now()
	summary := &models.UserSummary{
		Matches:          make([]models.PredictionResult, 0, len(matches)),
		TotalPredictions: len(predictions),
	}

	for _, match := range matches {
		if match.IsPartiallyScored() {
			log.Printf("Warning: match %d has a partial score, treating it as pending", match.ID)
		}

		line := models.PredictionResult{Match: utils.NewMatchView(match, now, s.window)}
		if p, ok := byMatch[match.ID]; ok {
			p := p
			points, outcome := utils.Evaluate(p.PredictedHomeScore, p.PredictedAwayScore, match.HomeScore, match.AwayScore)
			line.Prediction = &p
			line.Points = points
			line.ResultType = string(outcome)

			summary.TotalPoints += points
			switch outcome {
			case utils.OutcomeExact:
				summary.ExactPredictions++
			case utils.OutcomeWinner:
				summary.WinnerPredictions++
			}
		}
		summary.Matches = append(summary.Matches, line)
	}

	return summary, nil
}

