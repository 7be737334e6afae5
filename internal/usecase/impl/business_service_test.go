package impl

import (
	"context"
	"testing"

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

func newBusinessServiceForTest(t *testing.T) (usecase.BusinessUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockBusinessRepository, *mockRepo.MockReviewRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	service := NewBusinessService(BusinessServiceParams{
		TxManager:    txManager,
		BusinessRepo: businessRepo,
		ReviewRepo:   reviewRepo,
	})

	return service, txManager, businessRepo, reviewRepo
}

func TestBusinessService_GetBusiness(t *testing.T) {
	service, _, businessRepo, _ := newBusinessServiceForTest(t)

	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), Name: "Nonna's Kitchen", City: "Portland"}

	businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	found, err := service.GetBusiness(ctx, business.ID)
	require.NoError(t, err)
	assert.Equal(t, business, found)
}

func TestBusinessService_GetBusiness_NotFound(t *testing.T) {
	service, _, businessRepo, _ := newBusinessServiceForTest(t)

	ctx := context.Background()
	businessID := uuid.New()

	businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)

	found, err := service.GetBusiness(ctx, businessID)
	require.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_ListBusinessesByCity(t *testing.T) {
	service, _, businessRepo, _ := newBusinessServiceForTest(t)

	ctx := context.Background()
	businesses := []*entity.Business{
		{ID: uuid.New(), Name: "Nonna's Kitchen", Rating: 4.8},
		{ID: uuid.New(), Name: "Harbour Cafe", Rating: 4.2},
	}

	businessRepo.EXPECT().
		FindByCity(ctx, "Portland", 20, 0).
		Return(businesses, nil)

	found, err := service.ListBusinessesByCity(ctx, "Portland", 20, 0)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestBusinessService_CreateReview(t *testing.T) {
	service, txManager, _, _ := newBusinessServiceForTest(t)

	ctx := context.Background()
	input := usecase.CreateReviewInput{
		BusinessID: uuid.New(),
		UserID:     uuid.New(),
		Score:      4,
		Comment:    "Great value, would come back.",
	}

	txReviewRepo := mockRepo.NewMockReviewRepository(t)
	txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReviewRepo().Return(txReviewRepo)
	factory.EXPECT().BusinessRepo().Return(txBusinessRepo)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txReviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	// The aggregate rating update rides the same transaction as the insert.
	txBusinessRepo.EXPECT().
		AddReviewScore(ctx, input.BusinessID, 4).
		Return(nil)

	review, err := service.CreateReview(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.BusinessID, review.BusinessID)
	assert.Equal(t, input.UserID, review.UserID)
	assert.Equal(t, 4, review.Score)
}

func TestBusinessService_CreateReview_ScoreOutOfRange(t *testing.T) {
	service, _, _, _ := newBusinessServiceForTest(t)

	ctx := context.Background()

	for _, score := range []int{0, 6, -1} {
		review, err := service.CreateReview(ctx, usecase.CreateReviewInput{
			BusinessID: uuid.New(),
			UserID:     uuid.New(),
			Score:      score,
		})
		require.Error(t, err)
		assert.Nil(t, review)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}
}

func TestBusinessService_CreateReview_BusinessMissing(t *testing.T) {
	service, txManager, _, _ := newBusinessServiceForTest(t)

	ctx := context.Background()
	input := usecase.CreateReviewInput{
		BusinessID: uuid.New(),
		UserID:     uuid.New(),
		Score:      5,
	}

	txReviewRepo := mockRepo.NewMockReviewRepository(t)
	txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReviewRepo().Return(txReviewRepo)
	factory.EXPECT().BusinessRepo().Return(txBusinessRepo)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txReviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	txBusinessRepo.EXPECT().
		AddReviewScore(ctx, input.BusinessID, 5).
		Return(repository.ErrBusinessNotFound)

	review, err := service.CreateReview(ctx, input)
	require.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_GetBusinessReviews(t *testing.T) {
	service, _, _, reviewRepo := newBusinessServiceForTest(t)

	ctx := context.Background()
	businessID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), BusinessID: businessID, Score: 5},
		{ID: uuid.New(), BusinessID: businessID, Score: 3},
	}

	reviewRepo.EXPECT().
		FindByBusiness(ctx, businessID, 20, 0).
		Return(reviews, nil)

	found, err := service.GetBusinessReviews(ctx, businessID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}
