package cron

import (
	"context"
	"testing"
	"time"

	"prode-api/packages/core/models"
	"prode-api/packages/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCleaner struct {
	calls int
}

func (c *countingCleaner) CleanExpiredTokens(ctx context.Context) (int64, error) {
	c.calls++
	return 3, nil
}

type overdueStore struct {
	services.MatchStore
	calls int
}

func (s *overdueStore) FindOverdueResults(ctx context.Context, before time.Time) ([]models.Match, error) {
	s.calls++
	return []models.Match{{ID: 1, HomeTeam: "Inter", AwayTeam: "Monterrey", MatchDate: before.Add(-time.Hour)}}, nil
}

func TestRunNowExecutesEveryJob(t *testing.T) {
	cleaner := &countingCleaner{}
	store := &overdueStore{}
	scheduler := NewScheduler(cleaner, services.NewResultsWatchService(store, 2*time.Hour))

	scheduler.RunNow()

	assert.Equal(t, 1, cleaner.calls)
	assert.Equal(t, 1, store.calls)
}

func TestStartAndStop(t *testing.T) {
	scheduler := NewScheduler(nil, services.NewResultsWatchService(&overdueStore{}, 2*time.Hour))

	require.NoError(t, scheduler.Start())
	assert.Len(t, scheduler.cron.Entries(), 2)
	scheduler.Stop()
}
