package models

import (
	"time"
)

// Match statuses derived from the kick-off time and the in-progress window.
const (
	MatchStatusUpcoming   = "upcoming"
	MatchStatusInProgress = "in_progress"
	MatchStatusFinished   = "finished"
)

type Match struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	HomeTeam  string    `gorm:"size:100;not null" json:"home_team"`
	AwayTeam  string    `gorm:"size:100;not null" json:"away_team"`
	MatchDate time.Time `gorm:"not null;index" json:"match_date"`
	Stage     string    `gorm:"size:50;index" json:"stage"`
	HomeScore *int      `json:"home_score"`
	AwayScore *int      `json:"away_score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Match) TableName() string {
	return "matches"
}

// HasResult reports whether both final scores are recorded. A row with a single
// score is treated as pending.
func (m *Match) HasResult() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// IsPartiallyScored flags rows that break the both-or-neither score invariant.
func (m *Match) IsPartiallyScored() bool {
	return (m.HomeScore == nil) != (m.AwayScore == nil)
}

// MatchView is a match as served by the API, with its submission status.
type MatchView struct {
	Match
	Status     string `json:"status"`
	CanPredict bool   `json:"can_predict"`
}

type CreateMatchRequest struct {
	HomeTeam  string    `json:"home_team" binding:"required,max=100"`
	AwayTeam  string    `json:"away_team" binding:"required,max=100"`
	MatchDate time.Time `json:"match_date" binding:"required"`
	Stage     string    `json:"stage" binding:"omitempty,max=50"`
}

type SetResultRequest struct {
	HomeScore *int `json:"home_score" binding:"required,gte=0"`
	AwayScore *int `json:"away_score" binding:"required,gte=0"`
}
