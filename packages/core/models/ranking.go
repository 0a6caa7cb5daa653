package models

import "github.com/google/uuid"

type RankingEntry struct {
	UserID            uuid.UUID `json:"user_id"`
	DisplayName       string    `json:"display_name"`
	Points            int       `json:"points"`
	ExactPredictions  int       `json:"exact_predictions"`
	WinnerPredictions int       `json:"winner_predictions"`
	TotalPredictions  int       `json:"total_predictions"`
	Position          int       `json:"position"`
	IsCurrentUser     bool      `json:"is_current_user"`
}
