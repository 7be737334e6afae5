package repository

import (
	"context"
	"errors"
	"time"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for deal persistence.
var (
	// ErrDealNotFound is returned when a deal is not found.
	ErrDealNotFound = errors.New("deal not found")
	// ErrDealUnavailable is returned when a conditional stock take matches no row,
	// meaning the deal is inactive, expired, or sold out.
	ErrDealUnavailable = errors.New("deal unavailable")
)

// DealFilter narrows active-deal listings.
type DealFilter struct {
	CategorySlug string // Restrict to one category when non-empty.
	City         string // Restrict to businesses in one city when non-empty.
	FeaturedOnly bool   // Restrict to featured deals.
	Limit        int
	Offset       int
}

// DealRepository defines the operations for deal persistence.
type DealRepository interface {
	// Create persists a new deal.
	Create(ctx context.Context, deal *entity.Deal) error

	// FindByID retrieves a deal by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// FindActive retrieves active, unexpired deals matching the filter.
	FindActive(ctx context.Context, filter DealFilter) ([]*entity.Deal, error)

	// TakeAvailable decrements the deal's available count by one, conditioned on
	// the deal being active, unexpired at now, and having stock left. Returns
	// ErrDealUnavailable when the condition matches no row.
	TakeAvailable(ctx context.Context, id uuid.UUID, now time.Time) error

	// Deactivate clears the deal's active flag. Deals are never hard-deleted.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// ListCategories retrieves all deal categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
