package utils

import (
	"time"

	"prode-api/packages/core/models"
)

// DefaultInProgressWindow is how long after kick-off a match is considered live.
const DefaultInProgressWindow = 2 * time.Hour

// MatchStatus derives the submission status of a match at instant now.
func MatchStatus(now, matchDate time.Time, window time.Duration) string {
	if now.Before(matchDate) {
		return models.MatchStatusUpcoming
	}
	if !now.After(matchDate.Add(window)) {
		return models.MatchStatusInProgress
	}
	return models.MatchStatusFinished
}

// NewMatchView decorates a match with its status at instant now.
func NewMatchView(match models.Match, now time.Time, window time.Duration) models.MatchView {
	status := MatchStatus(now, match.MatchDate, window)
	return models.MatchView{
		Match:      match,
		Status:     status,
		CanPredict: status == models.MatchStatusUpcoming,
	}
}
