package impl

import (
	"context"
	"testing"
	"time"

	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	mockRepo "dealspot/internal/mocks/repository"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDealServiceForTest(t *testing.T) (usecase.DealUsecase, *mockRepo.MockDealRepository, *mockRepo.MockBusinessRepository) {
	t.Helper()

	dealRepo := mockRepo.NewMockDealRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)

	service := NewDealService(DealServiceParams{
		DealRepo:     dealRepo,
		BusinessRepo: businessRepo,
	})

	return service, dealRepo, businessRepo
}

func TestDealService_BrowseDeals(t *testing.T) {
	service, dealRepo, _ := newDealServiceForTest(t)

	ctx := context.Background()
	deals := []*entity.Deal{
		{ID: uuid.New(), Title: "Half-price pasta night"},
		{ID: uuid.New(), Title: "Espresso flight"},
	}

	dealRepo.EXPECT().
		FindActive(ctx, repository.DealFilter{
			CategorySlug: "food",
			City:         "Portland",
			FeaturedOnly: true,
			Limit:        20,
			Offset:       0,
		}).
		Return(deals, nil)

	found, err := service.BrowseDeals(ctx, usecase.BrowseDealsInput{
		CategorySlug: "food",
		City:         "Portland",
		FeaturedOnly: true,
		Limit:        20,
		Offset:       0,
	})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestDealService_GetDeal(t *testing.T) {
	service, dealRepo, businessRepo := newDealServiceForTest(t)

	ctx := context.Background()
	businessID := uuid.New()
	deal := &entity.Deal{ID: uuid.New(), BusinessID: businessID, Title: "Espresso flight"}
	business := &entity.Business{ID: businessID, Name: "Nonna's Kitchen"}

	dealRepo.EXPECT().FindByID(ctx, deal.ID).Return(deal, nil)
	businessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil)

	found, err := service.GetDeal(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, deal, found.Deal)
	assert.Equal(t, business, found.Business)
}

func TestDealService_GetDeal_NotFound(t *testing.T) {
	service, dealRepo, _ := newDealServiceForTest(t)

	ctx := context.Background()
	dealID := uuid.New()

	dealRepo.EXPECT().FindByID(ctx, dealID).Return(nil, repository.ErrDealNotFound)

	found, err := service.GetDeal(ctx, dealID)
	require.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrDealNotFound))
}

func TestDealService_CreateDeal(t *testing.T) {
	service, dealRepo, _ := newDealServiceForTest(t)

	ctx := context.Background()
	input := usecase.CreateDealInput{
		BusinessID:      uuid.New(),
		CategoryID:      uuid.New(),
		Title:           "Half-price pasta night",
		Description:     "Every Tuesday after 6pm.",
		OriginalPrice:   2000,
		DiscountedPrice: 500,
		IsFeatured:      true,
		AvailableCount:  50,
		ExpiresAt:       time.Now().Add(30 * 24 * time.Hour),
	}

	dealRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Deal")).
		Return(nil)

	deal, err := service.CreateDeal(ctx, input)
	require.NoError(t, err)
	assert.True(t, deal.IsActive)
	assert.True(t, deal.IsFeatured)
	assert.Equal(t, 75, deal.DiscountPercent)
}

func TestDealService_CreateDeal_RejectsBadPricing(t *testing.T) {
	service, _, _ := newDealServiceForTest(t)

	ctx := context.Background()

	deal, err := service.CreateDeal(ctx, usecase.CreateDealInput{
		OriginalPrice:   1000,
		DiscountedPrice: 1200,
	})
	require.Error(t, err)
	assert.Nil(t, deal)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDealService_DeactivateDeal(t *testing.T) {
	service, dealRepo, _ := newDealServiceForTest(t)

	ctx := context.Background()
	dealID := uuid.New()

	dealRepo.EXPECT().Deactivate(ctx, dealID).Return(nil)

	require.NoError(t, service.DeactivateDeal(ctx, dealID))
}

func TestDealService_DeactivateDeal_NotFound(t *testing.T) {
	service, dealRepo, _ := newDealServiceForTest(t)

	ctx := context.Background()
	dealID := uuid.New()

	dealRepo.EXPECT().Deactivate(ctx, dealID).Return(repository.ErrDealNotFound)

	err := service.DeactivateDeal(ctx, dealID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDealNotFound))
}

func TestDealService_ListCategories(t *testing.T) {
	service, dealRepo, _ := newDealServiceForTest(t)

	ctx := context.Background()
	categories := []*entity.Category{
		{ID: uuid.New(), Name: "Food & Drink", Slug: "food"},
		{ID: uuid.New(), Name: "Wellness", Slug: "wellness"},
	}

	dealRepo.EXPECT().ListCategories(ctx).Return(categories, nil)

	found, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 50, discountPercent(2000, 1000))
	assert.Equal(t, 75, discountPercent(2000, 500))
	assert.Equal(t, 0, discountPercent(0, 500))
}
