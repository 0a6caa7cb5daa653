package utils

import (
	"testing"

	"prode-api/packages/core/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finishedMatch(id uint, home, away int) models.Match {
	return models.Match{ID: id, HomeTeam: "Home", AwayTeam: "Away", HomeScore: intPtr(home), AwayScore: intPtr(away)}
}

func prediction(id uint, user uuid.UUID, matchID uint, home, away int) models.Prediction {
	return models.Prediction{ID: id, UserID: user, MatchID: matchID, PredictedHomeScore: home, PredictedAwayScore: away}
}

func TestComputeRankingAggregatesAndSorts(t *testing.T) {
	ana, bruno, carla := uuid.New(), uuid.New(), uuid.New()
	matches := []models.Match{
		finishedMatch(1, 2, 1),
		finishedMatch(2, 0, 0),
		{ID: 3, HomeTeam: "Home", AwayTeam: "Away"},
	}
	predictions := []models.Prediction{
		prediction(1, ana, 1, 1, 0),   // winner
		prediction(2, bruno, 1, 2, 1), // exact
		prediction(3, carla, 1, 0, 2), // wrong
		prediction(4, ana, 2, 0, 0),   // exact
		prediction(5, bruno, 2, 1, 0), // wrong
		prediction(6, carla, 3, 1, 1), // pending
	}
	names := map[uuid.UUID]string{ana: "Ana Pérez", bruno: "Bruno Díaz", carla: "carla"}

	ranking := ComputeRanking(predictions, matches, names)
	require.Len(t, ranking, 3)

	assert.Equal(t, ana, ranking[0].UserID)
	assert.Equal(t, "Ana Pérez", ranking[0].DisplayName)
	assert.Equal(t, 4, ranking[0].Points)
	assert.Equal(t, 1, ranking[0].ExactPredictions)
	assert.Equal(t, 1, ranking[0].WinnerPredictions)
	assert.Equal(t, 2, ranking[0].TotalPredictions)
	assert.Equal(t, 1, ranking[0].Position)

	assert.Equal(t, bruno, ranking[1].UserID)
	assert.Equal(t, 3, ranking[1].Points)
	assert.Equal(t, 2, ranking[1].Position)

	assert.Equal(t, carla, ranking[2].UserID)
	assert.Equal(t, 0, ranking[2].Points)
	assert.Equal(t, 2, ranking[2].TotalPredictions)
	assert.Equal(t, 3, ranking[2].Position)
}

func TestComputeRankingTieBreakByExactCount(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	matches := []models.Match{
		finishedMatch(1, 1, 0),
		finishedMatch(2, 2, 2),
		finishedMatch(3, 0, 3),
		finishedMatch(4, 1, 1),
	}
	predictions := []models.Prediction{
		// a: three winners = 3 points
		prediction(1, a, 1, 2, 0),
		prediction(2, a, 2, 1, 1),
		prediction(3, a, 3, 0, 1),
		// b: one exact = 3 points
		prediction(4, b, 4, 1, 1),
	}

	ranking := ComputeRanking(predictions, matches, nil)
	require.Len(t, ranking, 2)
	assert.Equal(t, 3, ranking[0].Points)
	assert.Equal(t, 3, ranking[1].Points)
	assert.Equal(t, b, ranking[0].UserID)
	assert.Equal(t, a, ranking[1].UserID)
}

func TestComputeRankingKeepsFirstAppearanceOrderOnFullTie(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	matches := []models.Match{finishedMatch(1, 1, 0)}
	predictions := []models.Prediction{
		prediction(1, c, 1, 0, 1),
		prediction(2, a, 1, 0, 2),
		prediction(3, b, 1, 0, 3),
	}

	ranking := ComputeRanking(predictions, matches, nil)
	require.Len(t, ranking, 3)
	assert.Equal(t, []uuid.UUID{c, a, b}, []uuid.UUID{ranking[0].UserID, ranking[1].UserID, ranking[2].UserID})
	assert.Equal(t, []int{1, 2, 3}, []int{ranking[0].Position, ranking[1].Position, ranking[2].Position})
}

func TestComputeRankingMissingMatchCountsOnlyInTotal(t *testing.T) {
	user := uuid.New()
	matches := []models.Match{finishedMatch(1, 2, 0)}
	predictions := []models.Prediction{
		prediction(1, user, 1, 2, 0),
		prediction(2, user, 99, 1, 0),
	}

	ranking := ComputeRanking(predictions, matches, nil)
	require.Len(t, ranking, 1)
	assert.Equal(t, 3, ranking[0].Points)
	assert.Equal(t, 1, ranking[0].ExactPredictions)
	assert.Equal(t, 2, ranking[0].TotalPredictions)
}

func TestComputeRankingIsDeterministicAndDoesNotMutateInputs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	matches := []models.Match{finishedMatch(2, 0, 1), finishedMatch(1, 3, 3)}
	predictions := []models.Prediction{
		prediction(1, a, 1, 3, 3),
		prediction(2, b, 2, 0, 1),
		prediction(3, b, 1, 0, 0),
	}
	matchesBefore := append([]models.Match(nil), matches...)
	predictionsBefore := append([]models.Prediction(nil), predictions...)

	first := ComputeRanking(predictions, matches, nil)
	second := ComputeRanking(predictions, matches, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, matchesBefore, matches)
	assert.Equal(t, predictionsBefore, predictions)
}

func TestComputeRankingEmpty(t *testing.T) {
	ranking := ComputeRanking(nil, nil, nil)
	assert.NotNil(t, ranking)
	assert.Empty(t, ranking)
}
