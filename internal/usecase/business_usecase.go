package usecase

import (
	"context"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to review a business.
type CreateReviewInput struct {
	BusinessID uuid.UUID
	UserID     uuid.UUID
	Score      int // 1..5
	Comment    string
}

// BusinessUsecase defines the interface for business profiles and reviews.
type BusinessUsecase interface {
	// GetBusiness retrieves a business by ID.
	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// ListBusinessesByCity retrieves businesses in a city, best-rated first.
	ListBusinessesByCity(ctx context.Context, city string, limit, offset int) ([]*entity.Business, error)

	// CreateReview records a review and folds its score into the business's
	// running-average rating within the same transaction.
	CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error)

	// GetBusinessReviews retrieves reviews for a business, newest first.
	GetBusinessReviews(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Review, error)
}
