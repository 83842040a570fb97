// Package services holds the business logic between the HTTP handlers and the
// repositories: credential registration and verification, token issuance, and
// the ownership checks on prediction history.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"LOTTO_USER-SERVICE/internal/apperrors"
	"LOTTO_USER-SERVICE/internal/config"
	"LOTTO_USER-SERVICE/internal/middleware"
	"LOTTO_USER-SERVICE/internal/models"
	"LOTTO_USER-SERVICE/internal/repositories"
)

// AuthResult is what both Register and Login hand back to the transport layer
type AuthResult struct {
	Token    string
	Username string
	Email    string
}

// AuthService registers users and verifies login credentials
type AuthService struct {
	users repositories.UserRepository
	jwt   *config.JWTConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserRepository, jwt *config.JWTConfig) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Register creates a user with a unique username and email. The existence
// checks are a fast path; the unique indexes catch concurrent duplicates and
// the repository reports them as the same conflict errors.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, apperrors.ErrInternal
	}
	if taken {
		return nil, apperrors.ErrUsernameExists
	}

	taken, err = s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInternal
	}
	if taken {
		return nil, apperrors.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.ErrInternal
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, s.jwt)
	if err != nil {
		return nil, apperrors.ErrInternal
	}

	return &AuthResult{Token: token, Username: user.Username, Email: user.Email}, nil
}

// Login verifies the credentials and issues a token. An unknown username and a
// wrong password yield the identical error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, s.jwt)
	if err != nil {
		return nil, apperrors.ErrInternal
	}

	return &AuthResult{Token: token, Username: user.Username, Email: user.Email}, nil
}
