package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Prediction struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_predictions_user_match" json:"user_id"`
	MatchID            uint      `gorm:"not null;uniqueIndex:idx_predictions_user_match;index" json:"match_id"`
	PredictedHomeScore int       `gorm:"not null" json:"predicted_home_score"`
	PredictedAwayScore int       `gorm:"not null" json:"predicted_away_score"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Match *Match `gorm:"foreignKey:MatchID;references:ID;constraint:OnDelete:CASCADE" json:"match,omitempty"`
}

func (Prediction) TableName() string {
	return "predictions"
}

// Score is a goal count sent by clients either as a JSON number or as a
// numeric string ("2").
type Score struct {
	Value int
	Set   bool
}

func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = Score{}
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*s = Score{}
			return nil
		}
	} else {
		raw = string(data)
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("score %q is not an integer", raw)
	}
	*s = Score{Value: v, Set: true}
	return nil
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(s.Value)), nil
}

type SubmitPredictionRequest struct {
	MatchID            uint  `json:"match_id" binding:"required"`
	PredictedHomeScore Score `json:"predicted_home_score" swaggertype:"integer"`
	PredictedAwayScore Score `json:"predicted_away_score" swaggertype:"integer"`
}

// PredictionLookup wraps a single prediction read. Data is nil when the user
// has not predicted the match.
type PredictionLookup struct {
	Data *Prediction `json:"data"`
}

// PredictionResult is one line of a participant's own prode: a match, the
// prediction for it if any, and what it earned.
type PredictionResult struct {
	Match      MatchView   `json:"match"`
	Prediction *Prediction `json:"prediction"`
	Points     int         `json:"points"`
	ResultType string      `json:"result_type"`
}

type UserSummary struct {
	Matches           []PredictionResult `json:"matches"`
	TotalPoints       int                `json:"total_points"`
	ExactPredictions  int                `json:"exact_predictions"`
	WinnerPredictions int                `json:"winner_predictions"`
	TotalPredictions  int                `json:"total_predictions"`
}
