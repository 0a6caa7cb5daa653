package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"prode-api/packages/core/models"
	"prode-api/packages/core/utils"
)

type MatchService struct {
	matches MatchStore
	window  time.Duration
	now     func() time.Time
}

func NewMatchService(matches MatchStore, window time.Duration) *MatchService {
	if window <= 0 {
		window = utils.DefaultInProgressWindow
	}
	return &MatchService{
		matches: matches,
		window:  window,
		now:     time.Now,
	}
}

// ListMatches returns the fixture ordered by kick-off time.
func (s *MatchService) ListMatches(ctx context.Context, filter MatchFilter) ([]models.MatchView, error) {
	matches, err := s.matches.FindMatches(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.views(matches), nil
}

// ListUpcoming returns the matches that have not finished yet, including the
// ones being played right now.
func (s *MatchService) ListUpcoming(ctx context.Context) ([]models.MatchView, error) {
	from := s.now().Add(-s.window)
	return s.ListMatches(ctx, MatchFilter{DateFrom: &from})
}

func (s *MatchService) GetMatch(ctx context.Context, id uint) (*models.MatchView, error) {
	match, err := s.matches.FindMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := utils.NewMatchView(*match, s.now(), s.window)
	return &view, nil
}

func (s *MatchService) CreateMatch(ctx context.Context, req models.CreateMatchRequest) (*models.MatchView, error) {
	home := strings.TrimSpace(req.HomeTeam)
	away := strings.TrimSpace(req.AwayTeam)
	if home == "" || away == "" {
		return nil, fmt.Errorf("team names are required: %w", ErrInvalidInput)
	}
	if strings.EqualFold(home, away) {
		return nil, fmt.Errorf("a team cannot play itself: %w", ErrInvalidInput)
	}

	match := models.Match{
		HomeTeam:  home,
		AwayTeam:  away,
		MatchDate: req.MatchDate.UTC(),
		Stage:     strings.TrimSpace(req.Stage),
	}
	if err := s.matches.CreateMatch(ctx, &match); err != nil {
		return nil, err
	}

	view := utils.NewMatchView(match, s.now(), s.window)
	return &view, nil
}

// SetResult records the final score of a match that has already kicked off.
func (s *MatchService) SetResult(ctx context.Context, id uint, home, away int) (*models.MatchView, error) {
	if home < 0 || away < 0 {
		return nil, fmt.Errorf("scores must be non-negative: %w", ErrInvalidInput)
	}

	match, err := s.matches.FindMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.now().Before(match.MatchDate) {
		return nil, fmt.Errorf("match %d has not started: %w", id, ErrInvalidInput)
	}
	if match.HomeScore != nil || match.AwayScore != nil {
		return nil, ErrResultAlreadySet
	}

	updated, err := s.matches.SetResult(ctx, id, home, away)
	if err != nil {
		return nil, err
	}

	view := utils.NewMatchView(*updated, s.now(), s.window)
	return &view, nil
}

func (s *MatchService) views(matches []models.Match) []models.MatchView {
	now := s.now()
	views := make([]models.MatchView, 0, len(matches))
	for _, match := range matches {
		views = append(views, utils.NewMatchView(match, now, s.window))
	}
	return views
}
