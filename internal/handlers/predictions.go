package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"LOTTO_USER-SERVICE/internal/apperrors"
	"LOTTO_USER-SERVICE/internal/config"
	"LOTTO_USER-SERVICE/internal/dto"
	"LOTTO_USER-SERVICE/internal/middleware"
	"LOTTO_USER-SERVICE/internal/models"
	"LOTTO_USER-SERVICE/internal/utils"
)

// HistoryService is the slice of PredictionService the handler needs
type HistoryService interface {
	Save(ctx context.Context, callerUsername string, p *models.PredictionHistory) (*models.PredictionHistory, error)
	List(ctx context.Context, callerUsername string, limit int) ([]models.PredictionHistory, error)
	Count(ctx context.Context, callerUsername string) (int64, error)
	Delete(ctx context.Context, callerUsername string, predictionID int64) error
}

// PredictionsHandler manages prediction-history endpoints
type PredictionsHandler struct {
	history HistoryService
	config  *config.Config
}

// NewPredictionsHandler creates a new PredictionsHandler
func NewPredictionsHandler(history HistoryService, cfg *config.Config) *PredictionsHandler {
	return &PredictionsHandler{history: history, config: cfg}
}

// Predictions dispatches by HTTP method and path for /predictions
func (h *PredictionsHandler) Predictions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.SavePrediction(w, r)
	case http.MethodGet:
		if r.URL.Path == "/predictions/count" {
			h.CountPredictions(w, r)
			return
		}
		h.ListPredictions(w, r)
	case http.MethodDelete:
		h.DeletePrediction(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// SavePrediction handles POST /predictions
// @Summary Save a prediction
// @Description Store a prediction for the calling user; ownership is taken from the caller, not the payload
// @Tags predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SavePredictionRequest true "Prediction payload"
// @Success 200 {object} dto.PredictionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /predictions [post]
func (h *PredictionsHandler) SavePrediction(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.ResolveCaller(r, h.config)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", apperrors.ErrUnauthenticated.Error())
		return
	}

	var req dto.SavePredictionRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	req.PredictedNumbers = strings.TrimSpace(req.PredictedNumbers)
	req.Method = strings.TrimSpace(req.Method)
	if req.PredictedNumbers == "" || req.Method == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "predicted_numbers and method are required")
		return
	}
	if len(req.PredictedNumbers) > 50 || len(req.Method) > 20 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "predicted_numbers or method too long")
		return
	}

	prediction := &models.PredictionHistory{
		PredictedNumbers: req.PredictedNumbers,
		Method:           req.Method,
		Confidence:       req.Confidence,
		MatchedNumbers:   req.MatchedNumbers,
		TargetRound:      req.TargetRound,
	}

	saved, err := h.history.Save(r.Context(), caller, prediction)
	if err != nil {
		writeHistoryError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, toPredictionResponse(saved))
}

// ListPredictions handles GET /predictions
// @Summary List predictions
// @Description A positive limit returns the 10 most recent records, zero or negative up to 50
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Param limit query int false "listing mode selector" default(10)
// @Success 200 {array} dto.PredictionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /predictions [get]
func (h *PredictionsHandler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.ResolveCaller(r, h.config)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", apperrors.ErrUnauthenticated.Error())
		return
	}

	limit := 10
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "limit must be an integer")
			return
		}
		limit = n
	}

	predictions, err := h.history.List(r.Context(), caller, limit)
	if err != nil {
		writeHistoryError(w, err)
		return
	}

	items := make([]dto.PredictionResponse, 0, len(predictions))
	for i := range predictions {
		items = append(items, toPredictionResponse(&predictions[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, items)
}

// CountPredictions handles GET /predictions/count
// @Summary Count predictions
// @Description Total records owned by the caller, not bounded by the listing caps
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PredictionCountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /predictions/count [get]
func (h *PredictionsHandler) CountPredictions(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.ResolveCaller(r, h.config)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", apperrors.ErrUnauthenticated.Error())
		return
	}

	count, err := h.history.Count(r.Context(), caller)
	if err != nil {
		writeHistoryError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.PredictionCountResponse{Count: count})
}

// DeletePrediction handles DELETE /predictions/{id}
// @Summary Delete a prediction
// @Description Permanently removes a record the caller owns
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Prediction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /predictions/{id} [delete]
func (h *PredictionsHandler) DeletePrediction(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.ResolveCaller(r, h.config)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", apperrors.ErrUnauthenticated.Error())
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/predictions/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid prediction id", "id must be an integer")
		return
	}

	if err := h.history.Delete(r.Context(), caller, id); err != nil {
		writeHistoryError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Prediction deleted"})
}

func toPredictionResponse(p *models.PredictionHistory) dto.PredictionResponse {
	return dto.PredictionResponse{
		ID:               p.ID,
		PredictedNumbers: p.PredictedNumbers,
		Method:           p.Method,
		Confidence:       p.Confidence,
		MatchedNumbers:   p.MatchedNumbers,
		TargetRound:      p.TargetRound,
		CreatedAt:        utils.FormatTimestamp(p.CreatedAt),
	}
}

// writeHistoryError keeps the flat 400-with-message wire contract for domain
// failures; store failures surface as 500 instead of being dressed up as
// not-found.
func writeHistoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrPredictionNotFound),
		errors.Is(err, apperrors.ErrNotOwner):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad request", err.Error())
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", apperrors.ErrInternal.Error())
	}
}
