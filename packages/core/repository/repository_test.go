package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	authModels "prode-api/packages/auth/models"
	"prode-api/packages/core/models"
	"prode-api/packages/core/services"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&authModels.User{}, &models.Match{}, &models.Prediction{}))
	return db
}

func createMatch(t *testing.T, repo *MatchRepository, home, away string, date time.Time) *models.Match {
	t.Helper()
	match := &models.Match{HomeTeam: home, AwayTeam: away, MatchDate: date, Stage: "Group A"}
	require.NoError(t, repo.CreateMatch(context.Background(), match))
	return match
}

func TestUpsertPredictionIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	matches := NewMatchRepository(db)
	predictions := NewPredictionRepository(db)

	var match *models.Match
	for i := 0; i < 5; i++ {
		match = createMatch(t, matches, fmt.Sprintf("Home %d", i), fmt.Sprintf("Away %d", i), time.Now().Add(24*time.Hour))
	}
	require.Equal(t, uint(5), match.ID)

	user := uuid.New()
	first, err := predictions.UpsertPrediction(ctx, user, 5, 2, 1)
	require.NoError(t, err)
	second, err := predictions.UpsertPrediction(ctx, user, 5, 2, 1)
	require.NoError(t, err)

	all, err := predictions.FindAllPredictions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 2, all[0].PredictedHomeScore)
	assert.Equal(t, 1, all[0].PredictedAwayScore)
	assert.Equal(t, first.ID, second.ID)
}

func TestUpsertPredictionOverwritesAndKeepsIdentity(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	matches := NewMatchRepository(db)
	predictions := NewPredictionRepository(db)

	match := createMatch(t, matches, "Palmeiras", "Porto", time.Now().Add(24*time.Hour))
	user := uuid.New()

	original, err := predictions.UpsertPrediction(ctx, user, match.ID, 1, 1)
	require.NoError(t, err)

	updated, err := predictions.UpsertPrediction(ctx, user, match.ID, 0, 3)
	require.NoError(t, err)

	assert.Equal(t, original.ID, updated.ID)
	assert.True(t, original.CreatedAt.Equal(updated.CreatedAt))
	assert.Equal(t, 0, updated.PredictedHomeScore)
	assert.Equal(t, 3, updated.PredictedAwayScore)

	other, err := predictions.UpsertPrediction(ctx, uuid.New(), match.ID, 2, 2)
	require.NoError(t, err)
	assert.NotEqual(t, original.ID, other.ID)
}

func TestConcurrentSubmissionsLeaveOneRow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	matches := NewMatchRepository(db)
	predictions := NewPredictionRepository(db)

	match := createMatch(t, matches, "Chelsea", "Flamengo", time.Now().Add(24*time.Hour))
	user := uuid.New()

	submitted := [][2]int{{1, 0}, {2, 2}, {0, 3}, {4, 1}, {1, 1}, {3, 2}, {0, 0}, {5, 4}}
	var wg sync.WaitGroup
	errs := make(chan error, len(submitted))
	for _, pair := range submitted {
		wg.Add(1)
		go func(home, away int) {
			defer wg.Done()
			if _, err := predictions.UpsertPrediction(ctx, user, match.ID, home, away); err != nil {
				errs <- err
			}
		}(pair[0], pair[1])
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	all, err := predictions.FindAllPredictions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Contains(t, submitted, [2]int{all[0].PredictedHomeScore, all[0].PredictedAwayScore})
}

func TestUpdateExistingOverwritesRow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	matches := NewMatchRepository(db)
	predictions := NewPredictionRepository(db)
	match := createMatch(t, matches, "River", "Boca", time.Now().Add(24*time.Hour))

	user := uuid.New()
	original, err := predictions.UpsertPrediction(ctx, user, match.ID, 1, 1)
	require.NoError(t, err)

	later := time.Now().Add(time.Minute)
	require.NoError(t, predictions.updateExisting(ctx, user, match.ID, 3, 0, later))

	stored, err := predictions.FindPrediction(ctx, user, match.ID)
	require.NoError(t, err)
	assert.Equal(t, original.ID, stored.ID)
	assert.Equal(t, 3, stored.PredictedHomeScore)
	assert.Equal(t, 0, stored.PredictedAwayScore)
	assert.WithinDuration(t, later, stored.UpdatedAt, time.Second)
}

func TestUpdateExistingWithoutRowIsConflict(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	matches := NewMatchRepository(db)
	predictions := NewPredictionRepository(db)
	match := createMatch(t, matches, "River", "Boca", time.Now().Add(24*time.Hour))

	err := predictions.updateExisting(ctx, uuid.New(), match.ID, 2, 1, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.NotErrorIs(t, err, services.ErrStoreUnavailable)

	var count int64
	require.NoError(t, db.Model(&models.Prediction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFindPredictionNotFound(t *testing.T) {
	db := setupTestDB(t)
	predictions := NewPredictionRepository(db)

	_, err := predictions.FindPrediction(context.Background(), uuid.New(), 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFindPredictionsAreOrderedByID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	matches := NewMatchRepository(db)
	predictions := NewPredictionRepository(db)

	m1 := createMatch(t, matches, "A", "B", time.Now().Add(time.Hour))
	m2 := createMatch(t, matches, "C", "D", time.Now().Add(2*time.Hour))
	ana, bruno := uuid.New(), uuid.New()

	_, err := predictions.UpsertPrediction(ctx, ana, m2.ID, 1, 0)
	require.NoError(t, err)
	_, err = predictions.UpsertPrediction(ctx, bruno, m1.ID, 0, 0)
	require.NoError(t, err)
	_, err = predictions.UpsertPrediction(ctx, ana, m1.ID, 2, 2)
	require.NoError(t, err)

	all, err := predictions.FindAllPredictions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].ID < all[1].ID && all[1].ID < all[2].ID)

	mine, err := predictions.FindPredictionsByUser(ctx, ana)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, m2.ID, mine[0].MatchID)
	assert.Equal(t, m1.ID, mine[1].MatchID)
}

func TestFindMatchesFiltersAndOrders(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	matches := NewMatchRepository(db)

	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	late := createMatch(t, matches, "Late", "Game", day.Add(22*time.Hour))
	early := createMatch(t, matches, "Early", "Game", day.Add(13*time.Hour))
	nextDay := &models.Match{HomeTeam: "Next", AwayTeam: "Day", MatchDate: day.Add(40 * time.Hour), Stage: "Group B"}
	require.NoError(t, matches.CreateMatch(ctx, nextDay))

	all, err := matches.FindMatches(ctx, services.MatchFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{early.ID, late.ID, nextDay.ID}, []uint{all[0].ID, all[1].ID, all[2].ID})

	to := day.Add(24 * time.Hour)
	sameDay, err := matches.FindMatches(ctx, services.MatchFilter{DateFrom: &day, DateTo: &to})
	require.NoError(t, err)
	assert.Len(t, sameDay, 2)

	stage := "Group B"
	groupB, err := matches.FindMatches(ctx, services.MatchFilter{Stage: &stage})
	require.NoError(t, err)
	require.Len(t, groupB, 1)
	assert.Equal(t, nextDay.ID, groupB[0].ID)
}

func TestFindMatchByIDNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewMatchRepository(db).FindMatchByID(context.Background(), 42)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSetResultOnlyOnce(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	matches := NewMatchRepository(db)

	match := createMatch(t, matches, "Real Madrid", "Al Hilal", time.Now().Add(-3*time.Hour))

	updated, err := matches.SetResult(ctx, match.ID, 1, 1)
	require.NoError(t, err)
	require.True(t, updated.HasResult())
	assert.Equal(t, 1, *updated.HomeScore)
	assert.Equal(t, 1, *updated.AwayScore)

	_, err = matches.SetResult(ctx, match.ID, 2, 0)
	assert.ErrorIs(t, err, services.ErrResultAlreadySet)

	stored, err := matches.FindMatchByID(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, *stored.HomeScore)

	_, err = matches.SetResult(ctx, 999, 1, 0)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFindOverdueResults(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	matches := NewMatchRepository(db)

	now := time.Now()
	overdue := createMatch(t, matches, "Overdue", "Match", now.Add(-5*time.Hour))
	scored := createMatch(t, matches, "Scored", "Match", now.Add(-6*time.Hour))
	createMatch(t, matches, "Live", "Match", now.Add(-time.Hour))
	createMatch(t, matches, "Future", "Match", now.Add(time.Hour))

	_, err := matches.SetResult(ctx, scored.ID, 2, 0)
	require.NoError(t, err)

	result, err := matches.FindOverdueResults(ctx, now.Add(-2*time.Hour))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, overdue.ID, result[0].ID)
}

func TestFindDisplayNames(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	named := authModels.User{Email: "ana@example.com", Username: "ana", FirstName: "Ana", LastName: "Pérez", Password: "x"}
	unnamed := authModels.User{Email: "bruno@example.com", Username: "bruno", Password: "x"}
	require.NoError(t, db.Create(&named).Error)
	require.NoError(t, db.Create(&unnamed).Error)

	names, err := NewUserRepository(db).FindDisplayNames(ctx, []uuid.UUID{named.ID, unnamed.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, names, 2)
	assert.Equal(t, "Ana Pérez", names[named.ID])
	assert.Equal(t, "bruno", names[unnamed.ID])

	empty, err := NewUserRepository(db).FindDisplayNames(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
