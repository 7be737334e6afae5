package usecase

import (
	"context"
	"time"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// BrowseDealsInput narrows the public deal listing.
type BrowseDealsInput struct {
	CategorySlug string
	City         string
	FeaturedOnly bool
	Limit        int
	Offset       int
}

// CreateDealInput defines the data required to create a deal directly
// (admin path; the moderated path goes through submissions).
type CreateDealInput struct {
	BusinessID      uuid.UUID
	CategoryID      uuid.UUID
	Title           string
	Description     string
	OriginalPrice   int64
	DiscountedPrice int64
	AvailableCount  int
	IsFeatured      bool
	ExpiresAt       time.Time
}

// DealWithBusiness pairs a deal with its business for detail views.
type DealWithBusiness struct {
	Deal     *entity.Deal
	Business *entity.Business
}

// DealUsecase defines the interface for deal browsing and administration.
type DealUsecase interface {
	// BrowseDeals retrieves active, unexpired deals matching the filter.
	BrowseDeals(ctx context.Context, input BrowseDealsInput) ([]*entity.Deal, error)

	// GetDeal retrieves one deal together with its business context.
	GetDeal(ctx context.Context, id uuid.UUID) (*DealWithBusiness, error)

	// CreateDeal creates a deal directly, bypassing moderation.
	CreateDeal(ctx context.Context, input CreateDealInput) (*entity.Deal, error)

	// DeactivateDeal clears the deal's active flag; deals are never deleted.
	DeactivateDeal(ctx context.Context, id uuid.UUID) error

	// ListCategories retrieves all deal categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
