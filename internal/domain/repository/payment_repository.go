package repository

import (
	"context"
	"errors"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentExists is returned when a payment already exists for the voucher.
	ErrPaymentExists = errors.New("payment already exists for this voucher")
)

// PaymentRepository defines the operations for the business payout ledger.
type PaymentRepository interface {
	// Create persists a new payout ledger entry. The vouchers ledger carries a
	// unique index on voucher_id; a second insert for the same voucher returns
	// ErrPaymentExists.
	Create(ctx context.Context, payment *entity.BusinessPayment) error

	// UpdateStatus moves a ledger entry to a new status, recording the external
	// transfer reference when one exists.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, transferRef string) error

	// FindByVoucher retrieves the ledger entry for a voucher.
	FindByVoucher(ctx context.Context, voucherID uuid.UUID) (*entity.BusinessPayment, error)

	// FindByBusiness retrieves ledger entries for a business, newest first.
	FindByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.BusinessPayment, error)
}
