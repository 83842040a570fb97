package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"LOTTO_USER-SERVICE/internal/apperrors"
	"LOTTO_USER-SERVICE/internal/models"
)

// PredictionRepository is the store contract for prediction history
type PredictionRepository interface {
	Create(ctx context.Context, p *models.PredictionHistory) error
	FindByID(ctx context.Context, id int64) (*models.PredictionHistory, error)
	FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.PredictionHistory, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// PostgresPredictionRepository implements PredictionRepository on a pgx pool
type PostgresPredictionRepository struct {
	db *pgxpool.Pool
}

// NewPostgresPredictionRepository creates a new PostgresPredictionRepository
func NewPostgresPredictionRepository(db *pgxpool.Pool) *PostgresPredictionRepository {
	return &PostgresPredictionRepository{db: db}
}

// Create inserts the record; id and created_at are assigned by the database
// and written back into p.
func (r *PostgresPredictionRepository) Create(ctx context.Context, p *models.PredictionHistory) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO prediction_history (user_id, predicted_numbers, method, confidence, matched_numbers, target_round)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING prediction_id, created_at`,
		p.UserID, p.PredictedNumbers, p.Method, p.Confidence, p.MatchedNumbers, p.TargetRound,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PostgresPredictionRepository) FindByID(ctx context.Context, id int64) (*models.PredictionHistory, error) {
	p := &models.PredictionHistory{}
	err := r.db.QueryRow(ctx,
		`SELECT prediction_id, user_id, predicted_numbers, method, confidence, matched_numbers, target_round, created_at
		   FROM prediction_history WHERE prediction_id = $1`, id).Scan(
		&p.ID, &p.UserID, &p.PredictedNumbers, &p.Method, &p.Confidence, &p.MatchedNumbers, &p.TargetRound, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPredictionNotFound
		}
		return nil, err
	}
	return p, nil
}

// FindRecentByUser returns up to limit records, newest first. Ties on
// created_at fall back to descending id so the order stays deterministic.
func (r *PostgresPredictionRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.PredictionHistory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT prediction_id, user_id, predicted_numbers, method, confidence, matched_numbers, target_round, created_at
		   FROM prediction_history
		  WHERE user_id = $1
		  ORDER BY created_at DESC, prediction_id DESC
		  LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.PredictionHistory, 0, limit)
	for rows.Next() {
		var p models.PredictionHistory
		if err := rows.Scan(&p.ID, &p.UserID, &p.PredictedNumbers, &p.Method, &p.Confidence,
			&p.MatchedNumbers, &p.TargetRound, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *PostgresPredictionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM prediction_history WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *PostgresPredictionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM prediction_history WHERE prediction_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPredictionNotFound
	}
	return nil
}
