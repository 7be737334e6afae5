package repository

import (
	"context"
	"errors"

	"dealspot/internal/domain/entity"
)

// ErrAuthNotFound is returned when no credential record matches.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
// Every principal kind stores its credentials here with the same hashing discipline.
type AuthRepository interface {
	// FindAuthentication retrieves a credential record by provider and provider-side user id.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential record.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
