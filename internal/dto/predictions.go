package dto

// SavePredictionRequest represents the request payload for saving a prediction.
// Any owner field present in the raw JSON is ignored; ownership comes from the
// resolved caller, never from the client.
type SavePredictionRequest struct {
	PredictedNumbers string   `json:"predicted_numbers" validate:"required,max=50"`
	Method           string   `json:"method" validate:"required,max=20"`
	Confidence       *float64 `json:"confidence,omitempty"`
	MatchedNumbers   *int     `json:"matched_numbers,omitempty"`
	TargetRound      *int     `json:"target_round,omitempty"`
}

// PredictionResponse represents one prediction in API responses
type PredictionResponse struct {
	ID               int64    `json:"prediction_id"`
	PredictedNumbers string   `json:"predicted_numbers"`
	Method           string   `json:"method"`
	Confidence       *float64 `json:"confidence,omitempty"`
	MatchedNumbers   *int     `json:"matched_numbers,omitempty"`
	TargetRound      *int     `json:"target_round,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

// PredictionCountResponse represents the owned-record total
type PredictionCountResponse struct {
	Count int64 `json:"count"`
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
