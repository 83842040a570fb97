package utils

import (
	"encoding/json"
	"net/http"
	"time"

	"LOTTO_USER-SERVICE/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a flat error response with a plain message
func WriteErrorResponse(w http.ResponseWriter, status int, errTitle, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errTitle, Message: message})
}

// DecodeJSONRequest decodes the request body into dst, answering 400 itself on
// malformed input. Callers just return when an error comes back.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}

// FormatTimestamp formats a timestamp for API responses
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
