package services

import (
	"context"

	"LOTTO_USER-SERVICE/internal/apperrors"
	"LOTTO_USER-SERVICE/internal/models"
	"LOTTO_USER-SERVICE/internal/repositories"
)

// Caps for the two listing modes. A positive limit selects the compact
// recent view, anything else the bulk first page. Existing clients depend on
// both values staying exactly as they are.
const (
	recentListCap = 10
	pagedListCap  = 50
)

// PredictionService guards access to prediction history. Every operation
// resolves the caller to a stored user first; delete additionally requires the
// caller to own the record.
type PredictionService struct {
	users       repositories.UserRepository
	predictions repositories.PredictionRepository
}

// NewPredictionService creates a new PredictionService
func NewPredictionService(users repositories.UserRepository, predictions repositories.PredictionRepository) *PredictionService {
	return &PredictionService{users: users, predictions: predictions}
}

// Save persists a prediction on behalf of the caller. The record's owner is
// always the resolved caller, regardless of what the payload carried.
func (s *PredictionService) Save(ctx context.Context, callerUsername string, p *models.PredictionHistory) (*models.PredictionHistory, error) {
	user, err := s.users.FindByUsername(ctx, callerUsername)
	if err != nil {
		return nil, err
	}

	p.UserID = user.ID
	if err := s.predictions.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns the caller's predictions, newest first. A positive limit means
// the 10 most recent regardless of the requested value; zero or negative
// switches to the bulk view of up to 50.
func (s *PredictionService) List(ctx context.Context, callerUsername string, limit int) ([]models.PredictionHistory, error) {
	user, err := s.users.FindByUsername(ctx, callerUsername)
	if err != nil {
		return nil, err
	}

	n := pagedListCap
	if limit > 0 {
		n = recentListCap
	}
	return s.predictions.FindRecentByUser(ctx, user.ID, n)
}

// Count returns the total number of records the caller owns, unaffected by
// the listing caps.
func (s *PredictionService) Count(ctx context.Context, callerUsername string) (int64, error) {
	user, err := s.users.FindByUsername(ctx, callerUsername)
	if err != nil {
		return 0, err
	}
	return s.predictions.CountByUser(ctx, user.ID)
}

// Delete permanently removes a record the caller owns. Ownership is a plain
// equality check between the resolved caller and the stored owner.
func (s *PredictionService) Delete(ctx context.Context, callerUsername string, predictionID int64) error {
	user, err := s.users.FindByUsername(ctx, callerUsername)
	if err != nil {
		return err
	}

	prediction, err := s.predictions.FindByID(ctx, predictionID)
	if err != nil {
		return err
	}

	if prediction.UserID != user.ID {
		return apperrors.ErrNotOwner
	}

	return s.predictions.Delete(ctx, predictionID)
}
