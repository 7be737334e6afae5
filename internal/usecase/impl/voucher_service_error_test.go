package impl

import (
	"context"
	"testing"
	"time"

	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	mockRepo "dealspot/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVoucherService_PurchaseDeal_DealNotFound(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	dealID := uuid.New()

	txDealRepo := mockRepo.NewMockDealRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DealRepo().Return(txDealRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txDealRepo.EXPECT().
		FindByID(ctx, dealID).
		Return(nil, repository.ErrDealNotFound)

	voucher, err := service.PurchaseDeal(ctx, userID, dealID, nil)
	require.Error(t, err)
	assert.Nil(t, voucher)
	assert.True(t, errors.Is(err, domainerrors.ErrDealNotFound))
}

func TestVoucherService_PurchaseDeal_RejectsPastExpiry(t *testing.T) {
	service, _ := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	pastExpiry := time.Now().Add(-time.Hour)

	// Rejected before the transaction starts, so no repository is touched.
	voucher, err := service.PurchaseDeal(ctx, uuid.New(), uuid.New(), &pastExpiry)
	require.Error(t, err)
	assert.Nil(t, voucher)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestVoucherService_PurchaseDeal_SoldOut(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	dealID := uuid.New()

	deal := &entity.Deal{ID: dealID, Title: "Ramen night", DiscountedPrice: 1500}

	txDealRepo := mockRepo.NewMockDealRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DealRepo().Return(txDealRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txDealRepo.EXPECT().FindByID(ctx, dealID).Return(deal, nil)

	// The conditional decrement found no available stock.
	txDealRepo.EXPECT().
		TakeAvailable(ctx, dealID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrDealUnavailable)

	voucher, err := service.PurchaseDeal(ctx, userID, dealID, nil)
	require.Error(t, err)
	assert.Nil(t, voucher)
	assert.True(t, errors.Is(err, domainerrors.ErrDealNotAvailable))
}

func TestVoucherService_PurchaseDeal_ChargeFailureAbortsTransaction(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	dealID := uuid.New()

	deal := &entity.Deal{ID: dealID, Title: "Wine tasting", DiscountedPrice: 5000}

	txDealRepo := mockRepo.NewMockDealRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DealRepo().Return(txDealRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txDealRepo.EXPECT().FindByID(ctx, dealID).Return(deal, nil)
	txDealRepo.EXPECT().TakeAvailable(ctx, dealID, mock.AnythingOfType("time.Time")).Return(nil)

	chargeErr := errors.New("card declined")
	mocks.paymentGateway.EXPECT().
		Charge(ctx, userID, deal.DiscountedPrice, "deal purchase: "+deal.Title).
		Return("", chargeErr)

	// No voucher Create and no notification Create: the transaction callback
	// returns before either, so the stock decrement rolls back with it.
	voucher, err := service.PurchaseDeal(ctx, userID, dealID, nil)
	require.Error(t, err)
	assert.Nil(t, voucher)
	assert.True(t, errors.Is(err, chargeErr))
}

func TestVoucherService_Redeem_NotFoundLeavesNothingToMutate(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, "DS-1700000000000-ZZZZZZ").
		Return(nil, repository.ErrVoucherNotFound)

	// MarkUsed, notification, and payout mocks carry no expectations; the
	// cleanup assertion fails this test if any of them is touched.
	redeemed, err := service.Redeem(ctx, "DS-1700000000000-ZZZZZZ", uuid.New())
	require.Error(t, err)
	assert.Nil(t, redeemed)
	assert.True(t, errors.Is(err, domainerrors.ErrVoucherNotFound))
}

func TestVoucherService_RedeemByID_NotFound(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	voucherID := uuid.New()

	mocks.voucherRepo.EXPECT().
		FindByID(ctx, voucherID).
		Return(nil, repository.ErrVoucherNotFound)

	redeemed, err := service.RedeemByID(ctx, voucherID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, redeemed)
	assert.True(t, errors.Is(err, domainerrors.ErrVoucherNotFound))
}

func TestVoucherService_GenerateVoucherQR_NotFound(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()

	mocks.voucherRepo.EXPECT().
		FindByCode(ctx, "DS-1700000000000-AB12CD").
		Return(nil, repository.ErrVoucherNotFound)

	png, err := service.GenerateVoucherQR(ctx, uuid.New(), "DS-1700000000000-AB12CD")
	require.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrVoucherNotFound))
}
