package models

import (
	"time"

	"github.com/google/uuid"
)

// PredictionHistory represents one saved prediction owned by a user.
// UserID is assigned by the service at creation time and never changes.
type PredictionHistory struct {
	ID               int64     `json:"prediction_id" db:"prediction_id"`
	UserID           uuid.UUID `json:"user_id" db:"user_id"`
	PredictedNumbers string    `json:"predicted_numbers" db:"predicted_numbers"` // e.g. "1,5,12,23,34,45"
	Method           string    `json:"method" db:"method"`
	Confidence       *float64  `json:"confidence,omitempty" db:"confidence"`
	MatchedNumbers   *int      `json:"matched_numbers,omitempty" db:"matched_numbers"`
	TargetRound      *int      `json:"target_round,omitempty" db:"target_round"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
