package repository

import (
	"context"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByBusiness retrieves reviews for a business, newest first, with pagination.
	FindByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Review, error)
}
