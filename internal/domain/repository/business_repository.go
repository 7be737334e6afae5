package repository

import (
	"context"
	"errors"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the operations for business persistence.
type BusinessRepository interface {
	// Create persists a new business.
	Create(ctx context.Context, business *entity.Business) error

	// FindByID retrieves a business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByCity retrieves businesses in a city with pagination.
	FindByCity(ctx context.Context, city string, limit, offset int) ([]*entity.Business, error)

	// AddReviewScore folds a new review score into the business's running-average
	// rating and increments the review count, atomically at the row level.
	AddReviewScore(ctx context.Context, id uuid.UUID, score int) error
}
