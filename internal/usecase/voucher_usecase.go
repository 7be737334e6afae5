package usecase

import (
	"context"
	"time"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// VerificationStatus classifies a voucher during operator verification.
type VerificationStatus string

const (
	// VerificationValid means the voucher can be redeemed right now.
	VerificationValid VerificationStatus = "valid"
	// VerificationExpired means the voucher is past its expiry, regardless of
	// the stored status.
	VerificationExpired VerificationStatus = "expired"
	// VerificationUsed means the voucher has already been redeemed.
	VerificationUsed VerificationStatus = "used"
	// VerificationInactive means the stored status is neither active nor used.
	VerificationInactive VerificationStatus = "inactive"
)

// VerificationResult is the read-only outcome of a verification check,
// carrying joined context so the operator can confirm the voucher matches the
// customer and offer in front of them.
type VerificationResult struct {
	Status  VerificationStatus
	Details *entity.VoucherDetails
}

// VoucherUsecase defines the interface for the voucher lifecycle:
// purchase-and-issue, operator verification, and redemption.
type VoucherUsecase interface {
	// PurchaseDeal buys one unit of a deal for a user: stock is taken with a
	// conditional decrement, the (mocked) charge is made, and a voucher is
	// issued, all within one transaction. A non-nil expiresAt overrides the
	// configured validity window for the issued voucher.
	PurchaseDeal(ctx context.Context, userID, dealID uuid.UUID, expiresAt *time.Time) (*entity.Voucher, error)

	// Verify performs the read-only pre-redemption check on a voucher code.
	Verify(ctx context.Context, code string) (*VerificationResult, error)

	// Redeem consumes a voucher at the given business. Exactly one of any
	// number of concurrent attempts succeeds; buyer notification and the
	// business payout are recorded best-effort after the transition commits.
	Redeem(ctx context.Context, code string, businessID uuid.UUID) (*entity.VoucherDetails, error)

	// RedeemByID is the voucher-id entry point to the same redemption path.
	RedeemByID(ctx context.Context, voucherID, businessID uuid.UUID) (*entity.VoucherDetails, error)

	// GetUserVouchers retrieves all vouchers owned by a user, newest first.
	GetUserVouchers(ctx context.Context, userID uuid.UUID) ([]*entity.Voucher, error)

	// GenerateVoucherQR renders one of the user's voucher codes as a PNG QR
	// image. Ownership is enforced so users cannot mint QR images for codes
	// they don't hold.
	GenerateVoucherQR(ctx context.Context, userID uuid.UUID, code string) ([]byte, error)
}
