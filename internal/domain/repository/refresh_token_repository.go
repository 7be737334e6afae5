package repository

import (
	"context"
	"errors"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when no refresh token matches.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for refresh-token session persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a session by the SHA-256 hash of the raw token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByTokenHash removes a session, ending it.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByUser removes all sessions for a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
