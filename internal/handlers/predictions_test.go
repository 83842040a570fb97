package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LOTTO_USER-SERVICE/internal/apperrors"
	"LOTTO_USER-SERVICE/internal/config"
	"LOTTO_USER-SERVICE/internal/dto"
	"LOTTO_USER-SERVICE/internal/middleware"
	"LOTTO_USER-SERVICE/internal/models"
)

type fakeHistoryService struct {
	savedCaller string
	savedInput  *models.PredictionHistory
	saveErr     error

	listCaller string
	listLimit  int
	listOut    []models.PredictionHistory
	listErr    error

	countOut int64
	countErr error

	deletedCaller string
	deletedID     int64
	deleteErr     error
}

func (f *fakeHistoryService) Save(ctx context.Context, caller string, p *models.PredictionHistory) (*models.PredictionHistory, error) {
	f.savedCaller = caller
	f.savedInput = p
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	saved := *p
	saved.ID = 7
	saved.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &saved, nil
}

func (f *fakeHistoryService) List(ctx context.Context, caller string, limit int) ([]models.PredictionHistory, error) {
	f.listCaller = caller
	f.listLimit = limit
	return f.listOut, f.listErr
}

func (f *fakeHistoryService) Count(ctx context.Context, caller string) (int64, error) {
	return f.countOut, f.countErr
}

func (f *fakeHistoryService) Delete(ctx context.Context, caller string, id int64) error {
	f.deletedCaller = caller
	f.deletedID = id
	return f.deleteErr
}

func predictionsTestConfig() *config.Config {
	return &config.Config{
		JWT:   config.JWTConfig{Secret: "unit-test-secret", AccessTokenTTL: time.Hour},
		Guest: config.GuestConfig{Enabled: false, Username: "guest"},
	}
}

func TestSavePrediction_OwnerFieldInPayloadIgnored(t *testing.T) {
	svc := &fakeHistoryService{}
	h := NewPredictionsHandler(svc, predictionsTestConfig())

	// user_id in the body is not part of the request DTO and never reaches
	// the service; ownership comes from the resolved caller only
	body := `{"predicted_numbers":"1,5,12,23,34,45","method":"random","user_id":"f2c1a7e8-0000-0000-0000-000000000000"}`
	r := httptest.NewRequest(http.MethodPost, "/predictions", strings.NewReader(body))
	r.Header.Set(middleware.UsernameHeader, "alice")
	w := httptest.NewRecorder()
	h.Predictions(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", svc.savedCaller)
	require.NotNil(t, svc.savedInput)
	assert.Equal(t, uuid.Nil, svc.savedInput.UserID)
}

func TestSavePrediction_NoIdentity(t *testing.T) {
	h := NewPredictionsHandler(&fakeHistoryService{}, predictionsTestConfig())

	r := httptest.NewRequest(http.MethodPost, "/predictions", strings.NewReader(`{"predicted_numbers":"1,2,3,4,5,6","method":"ml"}`))
	w := httptest.NewRecorder()
	h.Predictions(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestSavePrediction_UnknownUser(t *testing.T) {
	h := NewPredictionsHandler(&fakeHistoryService{saveErr: apperrors.ErrUserNotFound}, predictionsTestConfig())

	r := httptest.NewRequest(http.MethodPost, "/predictions", strings.NewReader(`{"predicted_numbers":"1,2,3,4,5,6","method":"ml"}`))
	r.Header.Set(middleware.UsernameHeader, "ghost")
	w := httptest.NewRecorder()
	h.Predictions(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestSavePrediction_Validation(t *testing.T) {
	h := NewPredictionsHandler(&fakeHistoryService{}, predictionsTestConfig())

	r := httptest.NewRequest(http.MethodPost, "/predictions", strings.NewReader(`{"method":"ml"}`))
	r.Header.Set(middleware.UsernameHeader, "alice")
	w := httptest.NewRecorder()
	h.Predictions(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPredictions_PassesLimitThrough(t *testing.T) {
	svc := &fakeHistoryService{listOut: []models.PredictionHistory{}}
	h := NewPredictionsHandler(svc, predictionsTestConfig())

	r := httptest.NewRequest(http.MethodGet, "/predictions?limit=5", nil)
	r.Header.Set(middleware.UsernameHeader, "alice")
	w := httptest.NewRecorder()
	h.Predictions(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", svc.listCaller)
	assert.Equal(t, 5, svc.listLimit)
}

func TestListPredictions_DefaultLimitIsTen(t *testing.T) {
	svc := &fakeHistoryService{}
	h := NewPredictionsHandler(svc, predictionsTestConfig())

	r := httptest.NewRequest(http.MethodGet, "/predictions", nil)
	r.Header.Set(middleware.UsernameHeader, "alice")
	w := httptest.NewRecorder()
	h.Predictions(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, svc.listLimit)
}

func TestListPredictions_BadLimit(t *testing.T) {
	h := NewPredictionsHandler(&fakeHistoryService{}, predictionsTestConfig())

	r := httptest.NewRequest(http.MethodGet, "/predictions?limit=abc", nil)
	r.Header.Set(middleware.UsernameHeader, "alice")
	w := httptest.NewRecorder()
	h.Predictions(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCountPredictions(t *testing.T) {
	h := NewPredictionsHandler(&fakeHistoryService{countOut: 42}, predictionsTestConfig())

	r := httptest.NewRequest(http.MethodGet, "/predictions/count", nil)
	r.Header.Set(middleware.UsernameHeader, "alice")
	w := httptest.NewRecorder()
	h.Predictions(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.PredictionCountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Count)
}

func TestDeletePrediction_Success(t *testing.T) {
	svc := &fakeHistoryService{}
	h := NewPredictionsHandler(svc, predictionsTestConfig())

	r := httptest.NewRequest(http.MethodDelete, "/predictions/7", nil)
	r.Header.Set(middleware.UsernameHeader, "alice")
	w := httptest.NewRecorder()
	h.Predictions(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), svc.deletedID)
	assert.Equal(t, "alice", svc.deletedCaller)
	assert.Contains(t, w.Body.String(), "Prediction deleted")
}

func TestDeletePrediction_NonOwner(t *testing.T) {
	h := NewPredictionsHandler(&fakeHistoryService{deleteErr: apperrors.ErrNotOwner}, predictionsTestConfig())

	r := httptest.NewRequest(http.MethodDelete, "/predictions/7", nil)
	r.Header.Set(middleware.UsernameHeader, "bob")
	w := httptest.NewRecorder()
	h.Predictions(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestDeletePrediction_BadID(t *testing.T) {
	h := NewPredictionsHandler(&fakeHistoryService{}, predictionsTestConfig())

	r := httptest.NewRequest(http.MethodDelete, "/predictions/abc", nil)
	r.Header.Set(middleware.UsernameHeader, "alice")
	w := httptest.NewRecorder()
	h.Predictions(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
