package services

import (
	"context"
	"log"
	"time"

	"prode-api/packages/core/models"
	"prode-api/packages/core/utils"
)

// ResultsWatchService finds matches that should be over but have no result yet.
type ResultsWatchService struct {
	matches MatchStore
	window  time.Duration
	now     func() time.Time
}

func NewResultsWatchService(matches MatchStore, window time.Duration) *ResultsWatchService {
	if window <= 0 {
		window = utils.DefaultInProgressWindow
	}
	return &ResultsWatchService{
		matches: matches,
		window:  window,
		now:     time.Now,
	}
}

func (s *ResultsWatchService) FindOverdueResults(ctx context.Context) ([]models.Match, error) {
	return s.matches.FindOverdueResults(ctx, s.now().Add(-s.window))
}

// ReportOverdueResults logs every finished match still waiting for its score
// and returns how many there are.
func (s *ResultsWatchService) ReportOverdueResults(ctx context.Context) (int, error) {
	overdue, err := s.FindOverdueResults(ctx)
	if err != nil {
		return 0, err
	}
	for _, match := range overdue {
		log.Printf("Match %d (%s vs %s, %s) finished without a result", match.ID, match.HomeTeam, match.AwayTeam, match.MatchDate.Format(time.RFC3339))
	}
	return len(overdue), nil
}
