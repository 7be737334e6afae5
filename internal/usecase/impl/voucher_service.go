// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dealspot/config"
	deliverycontext "dealspot/internal/delivery/context"
	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	"dealspot/internal/domain/service"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultVoucherValidityDays = 30

	// A code collision is probabilistically negligible but the unique index
	// makes it loud; one regeneration absorbs it.
	voucherCodeRetries = 3
)

type voucherService struct {
	txManager      repository.TransactionManager
	voucherRepo    repository.VoucherRepository
	paymentRepo    repository.PaymentRepository
	notifyRepo     repository.NotificationRepository
	paymentGateway service.PaymentGateway
	qrcodeService  service.QRCodeService
	config         *config.Config
	logger         *slog.Logger
}

// VoucherServiceParams holds dependencies for VoucherService, injected by Fx.
type VoucherServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	VoucherRepo    repository.VoucherRepository
	PaymentRepo    repository.PaymentRepository
	NotifyRepo     repository.NotificationRepository
	PaymentGateway service.PaymentGateway
	QRCodeService  service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewVoucherService creates a new voucher service instance
func NewVoucherService(params VoucherServiceParams) usecase.VoucherUsecase {
	return &voucherService{
		txManager:      params.TxManager,
		voucherRepo:    params.VoucherRepo,
		paymentRepo:    params.PaymentRepo,
		notifyRepo:     params.NotifyRepo,
		paymentGateway: params.PaymentGateway,
		qrcodeService:  params.QRCodeService,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *voucherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *voucherService) validityDays() int {
	if s.config != nil && s.config.Voucher != nil && s.config.Voucher.ValidityDays > 0 {
		return s.config.Voucher.ValidityDays
	}

	return defaultVoucherValidityDays
}

// PurchaseDeal buys one unit of a deal for a user. Stock take, charge, voucher
// insert, and the buyer notification happen in one transaction: a failed
// charge rolls the stock decrement back. A non-nil expiresAt overrides the
// configured validity window.
func (s *voucherService) PurchaseDeal(ctx context.Context, userID, dealID uuid.UUID, expiresAt *time.Time) (*entity.Voucher, error) {
	if expiresAt != nil && expiresAt.Before(time.Now()) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("voucher expiry must be in the future")
	}

	var voucher *entity.Voucher

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.DealRepo()

		deal, err := dealRepo.FindByID(ctx, dealID)
		if err != nil {
			if errors.Is(err, repository.ErrDealNotFound) {
				return domainerrors.ErrDealNotFound
			}

			return errors.Wrap(err, "failed to find deal")
		}

		now := time.Now()
		if err := dealRepo.TakeAvailable(ctx, dealID, now); err != nil {
			if errors.Is(err, repository.ErrDealUnavailable) {
				return domainerrors.ErrDealNotAvailable
			}

			return errors.Wrap(err, "failed to take deal stock")
		}

		if _, err := s.paymentGateway.Charge(ctx, userID, deal.DiscountedPrice, "deal purchase: "+deal.Title); err != nil {
			return errors.Wrap(err, "failed to charge purchase")
		}

		voucher, err = s.issueVoucher(ctx, repoFactory.VoucherRepo(), userID, dealID, now, expiresAt)
		if err != nil {
			return err
		}

		notification := &entity.Notification{
			UserID:  userID,
			Title:   "Voucher issued",
			Message: fmt.Sprintf("Your voucher %s for %q is ready.", voucher.Code, deal.Title),
			Type:    entity.NotificationTypeVoucherIssued,
		}
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create purchase notification")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return voucher, nil
}

// issueVoucher creates the voucher row, regenerating the code on the rare
// unique-index collision. A nil explicitExpiry falls back to the configured
// validity window counted from issuance.
func (s *voucherService) issueVoucher(ctx context.Context, voucherRepo repository.VoucherRepository, userID, dealID uuid.UUID, now time.Time, explicitExpiry *time.Time) (*entity.Voucher, error) {
	expiresAt := now.AddDate(0, 0, s.validityDays())
	if explicitExpiry != nil {
		expiresAt = *explicitExpiry
	}

	for attempt := 0; attempt < voucherCodeRetries; attempt++ {
		voucher := &entity.Voucher{
			UserID:    userID,
			DealID:    dealID,
			Code:      entity.NewVoucherCode(now),
			Status:    entity.VoucherStatusActive,
			IssuedAt:  now,
			ExpiresAt: expiresAt,
		}

		err := voucherRepo.Create(ctx, voucher)
		if err == nil {
			return voucher, nil
		}
		if !errors.Is(err, repository.ErrVoucherCodeConflict) {
			return nil, errors.Wrap(err, "failed to create voucher")
		}
	}

	return nil, errors.New("exhausted voucher code generation attempts")
}

// Verify performs the read-only pre-redemption check. Classification order:
// not found, expired by time (regardless of stored status), already used,
// stored-inactive, valid.
func (s *voucherService) Verify(ctx context.Context, code string) (*usecase.VerificationResult, error) {
	details, err := s.voucherRepo.FindDetailsByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return nil, domainerrors.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher details")
	}

	return &usecase.VerificationResult{
		Status:  classifyVoucher(&details.Voucher, time.Now()),
		Details: details,
	}, nil
}

func classifyVoucher(voucher *entity.Voucher, now time.Time) usecase.VerificationStatus {
	switch {
	case voucher.IsExpired(now):
		return usecase.VerificationExpired
	case voucher.Status == entity.VoucherStatusUsed:
		return usecase.VerificationUsed
	case voucher.Status != entity.VoucherStatusActive:
		return usecase.VerificationInactive
	default:
		return usecase.VerificationValid
	}
}

// Redeem consumes a voucher at the given business. The active->used transition
// is a single conditional UPDATE, so of N concurrent attempts exactly one
// succeeds. Side effects run after the transition and never undo it.
func (s *voucherService) Redeem(ctx context.Context, code string, businessID uuid.UUID) (*entity.VoucherDetails, error) {
	details, err := s.voucherRepo.FindDetailsByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return nil, domainerrors.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher details")
	}

	// Ownership first: a voucher presented at the wrong counter should say
	// where it belongs before any state questions.
	if details.BusinessID != businessID {
		return nil, domainerrors.ErrVoucherWrongBusiness.WithDetails(
			fmt.Sprintf("voucher belongs to business %s (%s)", details.BusinessID, details.BusinessName))
	}

	now := time.Now()
	if details.Voucher.IsExpired(now) {
		return nil, domainerrors.ErrVoucherExpired
	}
	if details.Voucher.Status == entity.VoucherStatusUsed {
		return nil, domainerrors.ErrVoucherAlreadyUsed
	}
	if details.Voucher.Status != entity.VoucherStatusActive {
		return nil, domainerrors.ErrVoucherNotActive
	}

	if err := s.voucherRepo.MarkUsed(ctx, details.Voucher.ID, now); err != nil {
		if errors.Is(err, repository.ErrVoucherNotActive) {
			// Lost the race: someone else redeemed between read and write.
			return nil, domainerrors.ErrVoucherAlreadyUsed
		}

		return nil, errors.Wrap(err, "failed to mark voucher used")
	}

	details.Voucher.Status = entity.VoucherStatusUsed
	details.Voucher.UsedAt = &now

	// The redemption is committed. Everything below is best-effort: failures
	// are logged for reconciliation, never surfaced to the operator.
	s.notifyRedemption(ctx, details)
	s.recordPayout(ctx, details)

	return details, nil
}

// RedeemByID is the voucher-id entry point to the same redemption path.
func (s *voucherService) RedeemByID(ctx context.Context, voucherID, businessID uuid.UUID) (*entity.VoucherDetails, error) {
	voucher, err := s.voucherRepo.FindByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return nil, domainerrors.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher")
	}

	return s.Redeem(ctx, voucher.Code, businessID)
}

// notifyRedemption writes the buyer's redemption notification.
func (s *voucherService) notifyRedemption(ctx context.Context, details *entity.VoucherDetails) {
	notification := &entity.Notification{
		UserID:  details.Voucher.UserID,
		Title:   "Voucher redeemed",
		Message: fmt.Sprintf("Your voucher %s for %q was redeemed at %s.",
			details.Voucher.Code, details.DealTitle, details.BusinessName),
		Type:    entity.NotificationTypeVoucherRedeemed,
	}
	if err := s.notifyRepo.Create(ctx, notification); err != nil {
		s.log(ctx).ErrorContext(ctx, "Failed to create redemption notification",
			slog.String("voucherID", details.Voucher.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// recordPayout records the payout owed to the business for the redeemed
// voucher and runs the (mocked) transfer. The unique index on voucher_id means
// a duplicate side-effect replay cannot produce a second payout.
func (s *voucherService) recordPayout(ctx context.Context, details *entity.VoucherDetails) {
	payment := &entity.BusinessPayment{
		BusinessID:  details.BusinessID,
		VoucherID:   details.Voucher.ID,
		Amount:      details.DiscountedPrice,
		Description: fmt.Sprintf("payout for voucher %s (%s)", details.Voucher.Code, details.DealTitle),
		Status:      entity.PaymentStatusPending,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrPaymentExists) {
			s.log(ctx).WarnContext(ctx, "Payout already recorded for voucher",
				slog.String("voucherID", details.Voucher.ID.String()),
			)

			return
		}
		s.log(ctx).ErrorContext(ctx, "Failed to record payout",
			slog.String("voucherID", details.Voucher.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	transferRef, err := s.paymentGateway.Transfer(ctx, details.BusinessID, payment.Amount, payment.Description)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "Payout transfer failed",
			slog.String("paymentID", payment.ID.String()),
			slog.String("error", err.Error()),
		)
		if updateErr := s.paymentRepo.UpdateStatus(ctx, payment.ID, entity.PaymentStatusFailed, ""); updateErr != nil {
			s.log(ctx).ErrorContext(ctx, "Failed to mark payout failed",
				slog.String("paymentID", payment.ID.String()),
				slog.String("error", updateErr.Error()),
			)
		}

		return
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, entity.PaymentStatusCompleted, transferRef); err != nil {
		s.log(ctx).ErrorContext(ctx, "Failed to mark payout completed",
			slog.String("paymentID", payment.ID.String()),
			slog.String("transferRef", transferRef),
			slog.String("error", err.Error()),
		)
	}
}

// GetUserVouchers retrieves all vouchers owned by a user, newest first.
func (s *voucherService) GetUserVouchers(ctx context.Context, userID uuid.UUID) ([]*entity.Voucher, error) {
	vouchers, err := s.voucherRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vouchers by user")
	}

	return vouchers, nil
}

// GenerateVoucherQR renders one of the user's voucher codes as a PNG QR image.
func (s *voucherService) GenerateVoucherQR(ctx context.Context, userID uuid.UUID, code string) ([]byte, error) {
	voucher, err := s.voucherRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return nil, domainerrors.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher by code")
	}

	if voucher.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	png, err := s.qrcodeService.GenerateVoucherQR(voucher.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate voucher QR")
	}

	return png, nil
}
