package impl

import (
	"context"

	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dealService struct {
	dealRepo     repository.DealRepository
	businessRepo repository.BusinessRepository
}

// DealServiceParams holds dependencies for DealService, injected by Fx.
type DealServiceParams struct {
	fx.In

	DealRepo     repository.DealRepository
	BusinessRepo repository.BusinessRepository
}

// NewDealService creates a new deal service instance
func NewDealService(params DealServiceParams) usecase.DealUsecase {
	return &dealService{
		dealRepo:     params.DealRepo,
		businessRepo: params.BusinessRepo,
	}
}

// BrowseDeals retrieves active, unexpired deals matching the filter.
func (s *dealService) BrowseDeals(ctx context.Context, input usecase.BrowseDealsInput) ([]*entity.Deal, error) {
	deals, err := s.dealRepo.FindActive(ctx, repository.DealFilter{
		CategorySlug: input.CategorySlug,
		City:         input.City,
		FeaturedOnly: input.FeaturedOnly,
		Limit:        input.Limit,
		Offset:       input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse deals")
	}

	return deals, nil
}

// GetDeal retrieves one deal together with its business context.
func (s *dealService) GetDeal(ctx context.Context, id uuid.UUID) (*usecase.DealWithBusiness, error) {
	deal, err := s.dealRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal")
	}

	business, err := s.businessRepo.FindByID(ctx, deal.BusinessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal business")
	}

	return &usecase.DealWithBusiness{Deal: deal, Business: business}, nil
}

// CreateDeal creates a deal directly, bypassing moderation.
func (s *dealService) CreateDeal(ctx context.Context, input usecase.CreateDealInput) (*entity.Deal, error) {
	if input.DiscountedPrice <= 0 || input.DiscountedPrice >= input.OriginalPrice {
		return nil, domainerrors.ErrValidationFailed.WithDetails("discounted price must be positive and below the original price")
	}

	deal := &entity.Deal{
		BusinessID:      input.BusinessID,
		CategoryID:      input.CategoryID,
		Title:           input.Title,
		Description:     input.Description,
		OriginalPrice:   input.OriginalPrice,
		DiscountedPrice: input.DiscountedPrice,
		DiscountPercent: discountPercent(input.OriginalPrice, input.DiscountedPrice),
		IsActive:        true,
		IsFeatured:      input.IsFeatured,
		AvailableCount:  input.AvailableCount,
		ExpiresAt:       input.ExpiresAt,
	}

	if err := s.dealRepo.Create(ctx, deal); err != nil {
		return nil, err
	}

	return deal, nil
}

// discountPercent derives the advertised percentage from the two prices.
func discountPercent(original, discounted int64) int {
	if original <= 0 {
		return 0
	}

	return int((original - discounted) * 100 / original)
}

// DeactivateDeal clears the deal's active flag; deals are never deleted.
func (s *dealService) DeactivateDeal(ctx context.Context, id uuid.UUID) error {
	if err := s.dealRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return domainerrors.ErrDealNotFound
		}

		return errors.Wrap(err, "failed to deactivate deal")
	}

	return nil
}

// ListCategories retrieves all deal categories.
func (s *dealService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.dealRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
