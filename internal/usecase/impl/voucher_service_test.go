package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"dealspot/config"
	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	mockRepo "dealspot/internal/mocks/repository"
	mockSvc "dealspot/internal/mocks/service"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type voucherServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	voucherRepo    *mockRepo.MockVoucherRepository
	paymentRepo    *mockRepo.MockPaymentRepository
	notifyRepo     *mockRepo.MockNotificationRepository
	paymentGateway *mockSvc.MockPaymentGateway
	qrcodeService  *mockSvc.MockQRCodeService
}

func newVoucherServiceForTest(t *testing.T, cfg *config.Config) (usecase.VoucherUsecase, *voucherServiceMocks) {
	t.Helper()

	mocks := &voucherServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		voucherRepo:    mockRepo.NewMockVoucherRepository(t),
		paymentRepo:    mockRepo.NewMockPaymentRepository(t),
		notifyRepo:     mockRepo.NewMockNotificationRepository(t),
		paymentGateway: mockSvc.NewMockPaymentGateway(t),
		qrcodeService:  mockSvc.NewMockQRCodeService(t),
	}

	service := NewVoucherService(VoucherServiceParams{
		TxManager:      mocks.txManager,
		VoucherRepo:    mocks.voucherRepo,
		PaymentRepo:    mocks.paymentRepo,
		NotifyRepo:     mocks.notifyRepo,
		PaymentGateway: mocks.paymentGateway,
		QRCodeService:  mocks.qrcodeService,
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, mocks
}

func activeVoucherDetails(businessID uuid.UUID) *entity.VoucherDetails {
	now := time.Now()

	return &entity.VoucherDetails{
		Voucher: entity.Voucher{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			DealID:    uuid.New(),
			Code:      entity.NewVoucherCode(now),
			Status:    entity.VoucherStatusActive,
			IssuedAt:  now.Add(-24 * time.Hour),
			ExpiresAt: now.Add(29 * 24 * time.Hour),
		},
		DealTitle:       "Two-for-one lunch set",
		OriginalPrice:   24000,
		DiscountedPrice: 12000,
		BusinessID:      businessID,
		BusinessName:    "Nonna's Kitchen",
		BusinessAddress: "12 Harbour St",
		BuyerEmail:      "buyer@example.com",
	}
}

func TestVoucherService_Verify_Valid(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	businessID := uuid.New()
	details := activeVoucherDetails(businessID)

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, details.Voucher.Code).
		Return(details, nil)

	result, err := service.Verify(ctx, details.Voucher.Code)
	require.NoError(t, err)
	assert.Equal(t, usecase.VerificationValid, result.Status)
	assert.Equal(t, details, result.Details)
}

func TestVoucherService_Verify_ExpiredOverridesStoredStatus(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	details := activeVoucherDetails(uuid.New())
	// Stored status is still "active"; only the clock has moved past expiry.
	details.Voucher.ExpiresAt = time.Now().Add(-time.Hour)

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, details.Voucher.Code).
		Return(details, nil)

	result, err := service.Verify(ctx, details.Voucher.Code)
	require.NoError(t, err)
	assert.Equal(t, usecase.VerificationExpired, result.Status)
}

func TestVoucherService_Verify_Used(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	details := activeVoucherDetails(uuid.New())
	usedAt := time.Now().Add(-time.Hour)
	details.Voucher.Status = entity.VoucherStatusUsed
	details.Voucher.UsedAt = &usedAt

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, details.Voucher.Code).
		Return(details, nil)

	result, err := service.Verify(ctx, details.Voucher.Code)
	require.NoError(t, err)
	assert.Equal(t, usecase.VerificationUsed, result.Status)
}

func TestVoucherService_Verify_NotFound(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, "DS-1700000000000-AB12CD").
		Return(nil, repository.ErrVoucherNotFound)

	result, err := service.Verify(ctx, "DS-1700000000000-AB12CD")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrVoucherNotFound))
}

func TestVoucherService_Redeem_Success(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	businessID := uuid.New()
	details := activeVoucherDetails(businessID)

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, details.Voucher.Code).
		Return(details, nil)

	mocks.voucherRepo.EXPECT().
		MarkUsed(ctx, details.Voucher.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	mocks.notifyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			assert.Equal(t, details.Voucher.UserID, notification.UserID)
			assert.Equal(t, entity.NotificationTypeVoucherRedeemed, notification.Type)
			// The buyer should see which deal was redeemed, not just the code.
			assert.Contains(t, notification.Message, details.DealTitle)
			assert.Contains(t, notification.Message, details.BusinessName)
		}).
		Return(nil)

	mocks.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BusinessPayment")).
		Run(func(_ context.Context, payment *entity.BusinessPayment) {
			assert.Equal(t, businessID, payment.BusinessID)
			assert.Equal(t, details.Voucher.ID, payment.VoucherID)
			assert.Equal(t, details.DiscountedPrice, payment.Amount)
			assert.Equal(t, entity.PaymentStatusPending, payment.Status)
		}).
		Return(nil)

	mocks.paymentGateway.EXPECT().
		Transfer(ctx, businessID, details.DiscountedPrice, mock.AnythingOfType("string")).
		Return("transfer-ref-1", nil)

	mocks.paymentRepo.EXPECT().
		UpdateStatus(ctx, mock.AnythingOfType("uuid.UUID"), entity.PaymentStatusCompleted, "transfer-ref-1").
		Return(nil)

	redeemed, err := service.Redeem(ctx, details.Voucher.Code, businessID)
	require.NoError(t, err)
	assert.Equal(t, entity.VoucherStatusUsed, redeemed.Voucher.Status)
	require.NotNil(t, redeemed.Voucher.UsedAt)
	assert.WithinDuration(t, time.Now(), *redeemed.Voucher.UsedAt, 5*time.Second)
}

func TestVoucherService_Redeem_WrongBusiness(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	owningBusinessID := uuid.New()
	details := activeVoucherDetails(owningBusinessID)

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, details.Voucher.Code).
		Return(details, nil)

	redeemed, err := service.Redeem(ctx, details.Voucher.Code, uuid.New())
	require.Error(t, err)
	assert.Nil(t, redeemed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VOUCHER_WRONG_BUSINESS", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), owningBusinessID.String())
	assert.Contains(t, appErr.Details(), details.BusinessName)
}

func TestVoucherService_Redeem_Expired(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	businessID := uuid.New()
	details := activeVoucherDetails(businessID)
	details.Voucher.ExpiresAt = time.Now().Add(-time.Minute)

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, details.Voucher.Code).
		Return(details, nil)

	redeemed, err := service.Redeem(ctx, details.Voucher.Code, businessID)
	require.Error(t, err)
	assert.Nil(t, redeemed)
	assert.True(t, errors.Is(err, domainerrors.ErrVoucherExpired))
}

func TestVoucherService_Redeem_AlreadyUsed(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	businessID := uuid.New()
	details := activeVoucherDetails(businessID)
	usedAt := time.Now().Add(-time.Hour)
	details.Voucher.Status = entity.VoucherStatusUsed
	details.Voucher.UsedAt = &usedAt

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, details.Voucher.Code).
		Return(details, nil)

	redeemed, err := service.Redeem(ctx, details.Voucher.Code, businessID)
	require.Error(t, err)
	assert.Nil(t, redeemed)
	assert.True(t, errors.Is(err, domainerrors.ErrVoucherAlreadyUsed))
}

func TestVoucherService_Redeem_LostRace(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	businessID := uuid.New()
	details := activeVoucherDetails(businessID)

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, details.Voucher.Code).
		Return(details, nil)

	// Another redemption committed between the read and the conditional update.
	mocks.voucherRepo.EXPECT().
		MarkUsed(ctx, details.Voucher.ID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrVoucherNotActive)

	redeemed, err := service.Redeem(ctx, details.Voucher.Code, businessID)
	require.Error(t, err)
	assert.Nil(t, redeemed)
	assert.True(t, errors.Is(err, domainerrors.ErrVoucherAlreadyUsed))
}

func TestVoucherService_Redeem_SideEffectFailuresDoNotUndoRedemption(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	businessID := uuid.New()
	details := activeVoucherDetails(businessID)

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, details.Voucher.Code).
		Return(details, nil)

	mocks.voucherRepo.EXPECT().
		MarkUsed(ctx, details.Voucher.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	mocks.notifyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("notification store down"))

	// A replayed payout insert hits the per-voucher unique index; the transfer
	// must not run a second time.
	mocks.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BusinessPayment")).
		Return(repository.ErrPaymentExists)

	redeemed, err := service.Redeem(ctx, details.Voucher.Code, businessID)
	require.NoError(t, err)
	assert.Equal(t, entity.VoucherStatusUsed, redeemed.Voucher.Status)
}

func TestVoucherService_Redeem_TransferFailureMarksPayoutFailed(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	businessID := uuid.New()
	details := activeVoucherDetails(businessID)

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, details.Voucher.Code).
		Return(details, nil)

	mocks.voucherRepo.EXPECT().
		MarkUsed(ctx, details.Voucher.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	mocks.notifyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	mocks.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BusinessPayment")).
		Return(nil)

	mocks.paymentGateway.EXPECT().
		Transfer(ctx, businessID, details.DiscountedPrice, mock.AnythingOfType("string")).
		Return("", errors.New("gateway unavailable"))

	mocks.paymentRepo.EXPECT().
		UpdateStatus(ctx, mock.AnythingOfType("uuid.UUID"), entity.PaymentStatusFailed, "").
		Return(nil)

	redeemed, err := service.Redeem(ctx, details.Voucher.Code, businessID)
	require.NoError(t, err)
	assert.Equal(t, entity.VoucherStatusUsed, redeemed.Voucher.Status)
}

func TestVoucherService_RedeemByID(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	businessID := uuid.New()
	details := activeVoucherDetails(businessID)

	mocks.voucherRepo.EXPECT().
		FindByID(ctx, details.Voucher.ID).
		Return(&details.Voucher, nil)

	mocks.voucherRepo.EXPECT().
		FindDetailsByCode(ctx, details.Voucher.Code).
		Return(details, nil)

	mocks.voucherRepo.EXPECT().
		MarkUsed(ctx, details.Voucher.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	mocks.notifyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	mocks.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BusinessPayment")).
		Return(nil)

	mocks.paymentGateway.EXPECT().
		Transfer(ctx, businessID, details.DiscountedPrice, mock.AnythingOfType("string")).
		Return("transfer-ref-2", nil)

	mocks.paymentRepo.EXPECT().
		UpdateStatus(ctx, mock.AnythingOfType("uuid.UUID"), entity.PaymentStatusCompleted, "transfer-ref-2").
		Return(nil)

	redeemed, err := service.RedeemByID(ctx, details.Voucher.ID, businessID)
	require.NoError(t, err)
	assert.Equal(t, entity.VoucherStatusUsed, redeemed.Voucher.Status)
}

func TestVoucherService_PurchaseDeal(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	dealID := uuid.New()

	deal := &entity.Deal{
		ID:              dealID,
		Title:           "Two-for-one lunch set",
		OriginalPrice:   24000,
		DiscountedPrice: 12000,
	}

	txDealRepo := mockRepo.NewMockDealRepository(t)
	txVoucherRepo := mockRepo.NewMockVoucherRepository(t)
	txNotifyRepo := mockRepo.NewMockNotificationRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DealRepo().Return(txDealRepo)
	factory.EXPECT().VoucherRepo().Return(txVoucherRepo)
	factory.EXPECT().NotificationRepo().Return(txNotifyRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txDealRepo.EXPECT().
		FindByID(ctx, dealID).
		Return(deal, nil)

	txDealRepo.EXPECT().
		TakeAvailable(ctx, dealID, mock.AnythingOfType("time.Time")).
		Return(nil)

	mocks.paymentGateway.EXPECT().
		Charge(ctx, userID, deal.DiscountedPrice, "deal purchase: "+deal.Title).
		Return("charge-ref-1", nil)

	txVoucherRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Voucher")).
		Return(nil)

	txNotifyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			assert.Equal(t, userID, notification.UserID)
			assert.Equal(t, entity.NotificationTypeVoucherIssued, notification.Type)
		}).
		Return(nil)

	voucher, err := service.PurchaseDeal(ctx, userID, dealID, nil)
	require.NoError(t, err)
	require.NotNil(t, voucher)
	assert.Equal(t, userID, voucher.UserID)
	assert.Equal(t, dealID, voucher.DealID)
	assert.Equal(t, entity.VoucherStatusActive, voucher.Status)
	assert.True(t, strings.HasPrefix(voucher.Code, entity.VoucherCodePrefix))
	// Default validity applies when no voucher config is set.
	assert.WithinDuration(t, voucher.IssuedAt.AddDate(0, 0, 30), voucher.ExpiresAt, time.Second)
}

func TestVoucherService_PurchaseDeal_ConfiguredValidity(t *testing.T) {
	cfg := &config.Config{Voucher: &config.VoucherConfig{ValidityDays: 7}}
	service, mocks := newVoucherServiceForTest(t, cfg)

	ctx := context.Background()
	userID := uuid.New()
	dealID := uuid.New()

	deal := &entity.Deal{ID: dealID, Title: "Espresso flight", DiscountedPrice: 900}

	txDealRepo := mockRepo.NewMockDealRepository(t)
	txVoucherRepo := mockRepo.NewMockVoucherRepository(t)
	txNotifyRepo := mockRepo.NewMockNotificationRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DealRepo().Return(txDealRepo)
	factory.EXPECT().VoucherRepo().Return(txVoucherRepo)
	factory.EXPECT().NotificationRepo().Return(txNotifyRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txDealRepo.EXPECT().FindByID(ctx, dealID).Return(deal, nil)
	txDealRepo.EXPECT().TakeAvailable(ctx, dealID, mock.AnythingOfType("time.Time")).Return(nil)
	mocks.paymentGateway.EXPECT().
		Charge(ctx, userID, deal.DiscountedPrice, "deal purchase: "+deal.Title).
		Return("charge-ref-2", nil)
	txVoucherRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Voucher")).Return(nil)
	txNotifyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)

	voucher, err := service.PurchaseDeal(ctx, userID, dealID, nil)
	require.NoError(t, err)
	assert.WithinDuration(t, voucher.IssuedAt.AddDate(0, 0, 7), voucher.ExpiresAt, time.Second)
}

func TestVoucherService_PurchaseDeal_ExplicitExpiry(t *testing.T) {
	cfg := &config.Config{Voucher: &config.VoucherConfig{ValidityDays: 7}}
	service, mocks := newVoucherServiceForTest(t, cfg)

	ctx := context.Background()
	userID := uuid.New()
	dealID := uuid.New()
	expiresAt := time.Now().AddDate(0, 0, 90).Truncate(time.Second)

	deal := &entity.Deal{ID: dealID, Title: "Weekend brunch", DiscountedPrice: 1800}

	txDealRepo := mockRepo.NewMockDealRepository(t)
	txVoucherRepo := mockRepo.NewMockVoucherRepository(t)
	txNotifyRepo := mockRepo.NewMockNotificationRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DealRepo().Return(txDealRepo)
	factory.EXPECT().VoucherRepo().Return(txVoucherRepo)
	factory.EXPECT().NotificationRepo().Return(txNotifyRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txDealRepo.EXPECT().FindByID(ctx, dealID).Return(deal, nil)
	txDealRepo.EXPECT().TakeAvailable(ctx, dealID, mock.AnythingOfType("time.Time")).Return(nil)
	mocks.paymentGateway.EXPECT().
		Charge(ctx, userID, deal.DiscountedPrice, "deal purchase: "+deal.Title).
		Return("charge-ref-4", nil)
	txVoucherRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Voucher")).Return(nil)
	txNotifyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)

	voucher, err := service.PurchaseDeal(ctx, userID, dealID, &expiresAt)
	require.NoError(t, err)
	// The explicit expiry wins over the configured validity window.
	assert.True(t, voucher.ExpiresAt.Equal(expiresAt))
}

func TestVoucherService_PurchaseDeal_RetriesCodeCollision(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	dealID := uuid.New()

	deal := &entity.Deal{ID: dealID, Title: "Sushi platter", DiscountedPrice: 3500}

	txDealRepo := mockRepo.NewMockDealRepository(t)
	txVoucherRepo := mockRepo.NewMockVoucherRepository(t)
	txNotifyRepo := mockRepo.NewMockNotificationRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DealRepo().Return(txDealRepo)
	factory.EXPECT().VoucherRepo().Return(txVoucherRepo)
	factory.EXPECT().NotificationRepo().Return(txNotifyRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txDealRepo.EXPECT().FindByID(ctx, dealID).Return(deal, nil)
	txDealRepo.EXPECT().TakeAvailable(ctx, dealID, mock.AnythingOfType("time.Time")).Return(nil)
	mocks.paymentGateway.EXPECT().
		Charge(ctx, userID, deal.DiscountedPrice, "deal purchase: "+deal.Title).
		Return("charge-ref-3", nil)

	txVoucherRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Voucher")).
		Return(repository.ErrVoucherCodeConflict).
		Once()
	txVoucherRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Voucher")).
		Return(nil).
		Once()

	txNotifyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)

	voucher, err := service.PurchaseDeal(ctx, userID, dealID, nil)
	require.NoError(t, err)
	assert.NotNil(t, voucher)
}

func TestVoucherService_GetUserVouchers(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	vouchers := []*entity.Voucher{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	mocks.voucherRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(vouchers, nil)

	found, err := service.GetUserVouchers(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestVoucherService_GenerateVoucherQR(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	voucher := &entity.Voucher{
		ID:     uuid.New(),
		UserID: userID,
		Code:   entity.NewVoucherCode(time.Now()),
	}

	mocks.voucherRepo.EXPECT().
		FindByCode(ctx, voucher.Code).
		Return(voucher, nil)

	mocks.qrcodeService.EXPECT().
		GenerateVoucherQR(voucher.Code).
		Return([]byte("png-bytes"), nil)

	png, err := service.GenerateVoucherQR(ctx, userID, voucher.Code)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestVoucherService_GenerateVoucherQR_NotOwner(t *testing.T) {
	service, mocks := newVoucherServiceForTest(t, nil)

	ctx := context.Background()
	voucher := &entity.Voucher{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Code:   entity.NewVoucherCode(time.Now()),
	}

	mocks.voucherRepo.EXPECT().
		FindByCode(ctx, voucher.Code).
		Return(voucher, nil)

	png, err := service.GenerateVoucherQR(ctx, uuid.New(), voucher.Code)
	require.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
