package impl

import (
	"context"
	"testing"
	"time"

	"dealspot/config"
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

func newSubmissionServiceForTest(t *testing.T, cfg *config.Config) (usecase.SubmissionUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockSubmissionRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	submissionRepo := mockRepo.NewMockSubmissionRepository(t)

	service := NewSubmissionService(SubmissionServiceParams{
		TxManager:      txManager,
		SubmissionRepo: submissionRepo,
		Config:         cfg,
	})

	return service, txManager, submissionRepo
}

func validSubmitDealInput() usecase.SubmitDealInput {
	return usecase.SubmitDealInput{
		BusinessID:      uuid.New(),
		SubmittedBy:     uuid.New(),
		CategoryID:      uuid.New(),
		Title:           "Half-price pasta night",
		Description:     "Every Tuesday after 6pm.",
		OriginalPrice:   2000,
		DiscountedPrice: 1000,
		AvailableCount:  50,
		ExpiresAt:       time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestSubmissionService_SubmitDeal(t *testing.T) {
	service, txManager, _ := newSubmissionServiceForTest(t, nil)

	ctx := context.Background()
	input := validSubmitDealInput()

	txSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SubmissionRepo().Return(txSubmissionRepo)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txSubmissionRepo.EXPECT().
		CountForBusinessSince(ctx, input.BusinessID, mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, _ uuid.UUID, since time.Time) {
			// The quota window starts at the first instant of the current month.
			assert.Equal(t, 1, since.Day())
			assert.Equal(t, 0, since.Hour())
		}).
		Return(3, nil)

	txSubmissionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.DealSubmission")).
		Return(nil)

	submission, err := service.SubmitDeal(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusPending, submission.Status)
	assert.Equal(t, input.BusinessID, submission.BusinessID)
	assert.Equal(t, input.Title, submission.Title)
}

func TestSubmissionService_SubmitDeal_QuotaExceeded(t *testing.T) {
	cfg := &config.Config{Submission: &config.SubmissionConfig{MonthlyQuota: 5}}
	service, txManager, _ := newSubmissionServiceForTest(t, cfg)

	ctx := context.Background()
	input := validSubmitDealInput()

	txSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SubmissionRepo().Return(txSubmissionRepo)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txSubmissionRepo.EXPECT().
		CountForBusinessSince(ctx, input.BusinessID, mock.AnythingOfType("time.Time")).
		Return(5, nil)

	submission, err := service.SubmitDeal(ctx, input)
	require.Error(t, err)
	assert.Nil(t, submission)
	assert.True(t, errors.Is(err, domainerrors.ErrSubmissionQuotaExceeded))
}

func TestSubmissionService_SubmitDeal_RejectsBadPricing(t *testing.T) {
	service, _, _ := newSubmissionServiceForTest(t, nil)

	ctx := context.Background()

	input := validSubmitDealInput()
	input.DiscountedPrice = input.OriginalPrice

	submission, err := service.SubmitDeal(ctx, input)
	require.Error(t, err)
	assert.Nil(t, submission)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSubmissionService_SubmitDeal_RejectsPastExpiry(t *testing.T) {
	service, _, _ := newSubmissionServiceForTest(t, nil)

	ctx := context.Background()

	input := validSubmitDealInput()
	input.ExpiresAt = time.Now().Add(-time.Hour)

	submission, err := service.SubmitDeal(ctx, input)
	require.Error(t, err)
	assert.Nil(t, submission)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSubmissionService_DecideSubmission_Approve(t *testing.T) {
	service, txManager, _ := newSubmissionServiceForTest(t, nil)

	ctx := context.Background()
	submissionID := uuid.New()
	adminID := uuid.New()
	businessID := uuid.New()
	categoryID := uuid.New()
	expiresAt := time.Now().Add(14 * 24 * time.Hour)

	pending := &entity.DealSubmission{
		ID:              submissionID,
		BusinessID:      businessID,
		CategoryID:      categoryID,
		Title:           "Half-price pasta night",
		OriginalPrice:   2000,
		DiscountedPrice: 1000,
		AvailableCount:  50,
		ExpiresAt:       expiresAt,
		Status:          entity.SubmissionStatusPending,
	}

	txSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	txDealRepo := mockRepo.NewMockDealRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SubmissionRepo().Return(txSubmissionRepo)
	factory.EXPECT().DealRepo().Return(txDealRepo)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txSubmissionRepo.EXPECT().
		FindByID(ctx, submissionID).
		Return(pending, nil)

	dealID := uuid.New()
	txDealRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Deal")).
		RunAndReturn(func(_ context.Context, deal *entity.Deal) error {
			assert.Equal(t, businessID, deal.BusinessID)
			assert.Equal(t, categoryID, deal.CategoryID)
			assert.Equal(t, int64(1000), deal.DiscountedPrice)
			assert.Equal(t, 50, deal.DiscountPercent)
			assert.True(t, deal.IsActive)
			assert.True(t, deal.IsFeatured)
			deal.ID = dealID

			return nil
		})

	txSubmissionRepo.EXPECT().
		UpdateDecision(ctx, mock.AnythingOfType("*entity.DealSubmission")).
		Return(nil)

	decided, err := service.DecideSubmission(ctx, usecase.DecideSubmissionInput{
		SubmissionID: submissionID,
		AdminID:      adminID,
		Approve:      true,
		IsFeatured:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusApproved, decided.Status)
	require.NotNil(t, decided.DealID)
	assert.Equal(t, dealID, *decided.DealID)
	require.NotNil(t, decided.ReviewedBy)
	assert.Equal(t, adminID, *decided.ReviewedBy)
	assert.NotNil(t, decided.ReviewedAt)
}

func TestSubmissionService_DecideSubmission_Reject(t *testing.T) {
	service, txManager, _ := newSubmissionServiceForTest(t, nil)

	ctx := context.Background()
	submissionID := uuid.New()
	adminID := uuid.New()

	pending := &entity.DealSubmission{
		ID:     submissionID,
		Status: entity.SubmissionStatusPending,
	}

	txSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SubmissionRepo().Return(txSubmissionRepo)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txSubmissionRepo.EXPECT().
		FindByID(ctx, submissionID).
		Return(pending, nil)

	txSubmissionRepo.EXPECT().
		UpdateDecision(ctx, mock.AnythingOfType("*entity.DealSubmission")).
		Return(nil)

	decided, err := service.DecideSubmission(ctx, usecase.DecideSubmissionInput{
		SubmissionID: submissionID,
		AdminID:      adminID,
		Approve:      false,
		RejectReason: "duplicate of an existing deal",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusRejected, decided.Status)
	assert.Equal(t, "duplicate of an existing deal", decided.RejectReason)
	assert.Nil(t, decided.DealID)
}

func TestSubmissionService_DecideSubmission_RejectWithoutReason(t *testing.T) {
	service, _, _ := newSubmissionServiceForTest(t, nil)

	ctx := context.Background()

	decided, err := service.DecideSubmission(ctx, usecase.DecideSubmissionInput{
		SubmissionID: uuid.New(),
		AdminID:      uuid.New(),
		Approve:      false,
	})
	require.Error(t, err)
	assert.Nil(t, decided)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSubmissionService_DecideSubmission_AlreadyDecided(t *testing.T) {
	service, txManager, _ := newSubmissionServiceForTest(t, nil)

	ctx := context.Background()
	submissionID := uuid.New()

	decidedAlready := &entity.DealSubmission{
		ID:     submissionID,
		Status: entity.SubmissionStatusApproved,
	}

	txSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SubmissionRepo().Return(txSubmissionRepo)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txSubmissionRepo.EXPECT().
		FindByID(ctx, submissionID).
		Return(decidedAlready, nil)

	decided, err := service.DecideSubmission(ctx, usecase.DecideSubmissionInput{
		SubmissionID: submissionID,
		AdminID:      uuid.New(),
		Approve:      true,
	})
	require.Error(t, err)
	assert.Nil(t, decided)
	assert.True(t, errors.Is(err, domainerrors.ErrSubmissionAlreadyDecided))
}

func TestSubmissionService_DecideSubmission_NotFound(t *testing.T) {
	service, txManager, _ := newSubmissionServiceForTest(t, nil)

	ctx := context.Background()
	submissionID := uuid.New()

	txSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SubmissionRepo().Return(txSubmissionRepo)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txSubmissionRepo.EXPECT().
		FindByID(ctx, submissionID).
		Return(nil, repository.ErrSubmissionNotFound)

	decided, err := service.DecideSubmission(ctx, usecase.DecideSubmissionInput{
		SubmissionID: submissionID,
		AdminID:      uuid.New(),
		Approve:      true,
	})
	require.Error(t, err)
	assert.Nil(t, decided)
	assert.True(t, errors.Is(err, domainerrors.ErrSubmissionNotFound))
}

func TestSubmissionService_GetPendingSubmissions(t *testing.T) {
	service, _, submissionRepo := newSubmissionServiceForTest(t, nil)

	ctx := context.Background()
	pending := []*entity.DealSubmission{
		{ID: uuid.New(), Status: entity.SubmissionStatusPending},
		{ID: uuid.New(), Status: entity.SubmissionStatusPending},
	}

	submissionRepo.EXPECT().
		FindPending(ctx, 20, 0).
		Return(pending, nil)

	found, err := service.GetPendingSubmissions(ctx, 20, 0)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestSubmissionService_GetBusinessSubmissions(t *testing.T) {
	service, _, submissionRepo := newSubmissionServiceForTest(t, nil)

	ctx := context.Background()
	businessID := uuid.New()

	submissionRepo.EXPECT().
		FindByBusiness(ctx, businessID).
		Return([]*entity.DealSubmission{{ID: uuid.New(), BusinessID: businessID}}, nil)

	found, err := service.GetBusinessSubmissions(ctx, businessID)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
