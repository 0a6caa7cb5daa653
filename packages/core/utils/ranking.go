package utils

import (
	"sort"

	"prode-api/packages/core/models"

	"github.com/google/uuid"
)

// ComputeRanking builds the leaderboard from every prediction and every match.
//
// Users appear in the order of their first prediction, then a stable sort by
// points, exact and winner counts (all descending) assigns positions 1..N.
// Predictions whose match is unknown earn nothing but still count in the total.
// names maps user ids to display names; a missing entry leaves the name empty.
func ComputeRanking(predictions []models.Prediction, matches []models.Match, names map[uuid.UUID]string) []models.RankingEntry {
	matchByID := make(map[uint]*models.Match, len(matches))
	for i := range matches {
		matchByID[matches[i].ID] = &matches[i]
	}

	entries := make([]models.RankingEntry, 0)
	index := make(map[uuid.UUID]int)

	for _, p := range predictions {
		i, ok := index[p.UserID]
		if !ok {
			i = len(entries)
			index[p.UserID] = i
			entries = append(entries, models.RankingEntry{
				UserID:      p.UserID,
				DisplayName: names[p.UserID],
			})
		}

		entry := &entries[i]
		entry.TotalPredictions++

		match, found := matchByID[p.MatchID]
		if !found {
			continue
		}

		points, outcome := Evaluate(p.PredictedHomeScore, p.PredictedAwayScore, match.HomeScore, match.AwayScore)
		entry.Points += points
		switch outcome {
		case OutcomeExact:
			entry.ExactPredictions++
		case OutcomeWinner:
			entry.WinnerPredictions++
		}
	}

	sort.SliceStable(entries, func(a, b int) bool {
		x, y := entries[a], entries[b]
		if x.Points != y.Points {
			return x.Points > y.Points
		}
		if x.ExactPredictions != y.ExactPredictions {
			return x.ExactPredictions > y.ExactPredictions
		}
		return x.WinnerPredictions > y.WinnerPredictions
	})

	for i := range entries {
		entries[i].Position = i + 1
	}

	return entries
}
