package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"LOTTO_USER-SERVICE/internal/apperrors"
	"LOTTO_USER-SERVICE/internal/models"
)

// --- in-memory fakes shared by the service tests ---

type fakeUserRepo struct {
	users map[string]*models.User // keyed by username
	err   error                   // forced store failure
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[user.Username]; ok {
		return apperrors.ErrUsernameExists
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailExists
		}
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) EnsureExists(ctx context.Context, user *models.User) error {
	if _, ok := f.users[user.Username]; !ok {
		f.users[user.Username] = user
	}
	return nil
}

func (f *fakeUserRepo) add(username, email string) *models.User {
	u := &models.User{ID: uuid.New(), Username: username, Email: email, CreatedAt: time.Now()}
	f.users[username] = u
	return u
}

type fakePredictionRepo struct {
	records map[int64]*models.PredictionHistory
	nextID  int64
}

func newFakePredictionRepo() *fakePredictionRepo {
	return &fakePredictionRepo{records: map[int64]*models.PredictionHistory{}, nextID: 1}
}

func (f *fakePredictionRepo) Create(ctx context.Context, p *models.PredictionHistory) error {
	stored := *p
	stored.ID = f.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	f.nextID++
	f.records[stored.ID] = &stored
	*p = stored
	return nil
}

func (f *fakePredictionRepo) FindByID(ctx context.Context, id int64) (*models.PredictionHistory, error) {
	p, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrPredictionNotFound
	}
	return p, nil
}

func (f *fakePredictionRepo) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.PredictionHistory, error) {
	owned := []models.PredictionHistory{}
	for _, p := range f.records {
		if p.UserID == userID {
			owned = append(owned, *p)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.After(owned[j].CreatedAt)
		}
		return owned[i].ID > owned[j].ID
	})
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

func (f *fakePredictionRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range f.records {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakePredictionRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return apperrors.ErrPredictionNotFound
	}
	delete(f.records, id)
	return nil
}
