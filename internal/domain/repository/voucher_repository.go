package repository

import (
	"context"
	"errors"
	"time"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for voucher persistence.
var (
	// ErrVoucherNotFound is returned when a voucher is not found.
	ErrVoucherNotFound = errors.New("voucher not found")
	// ErrVoucherNotActive is returned when the conditional used-transition
	// matched no row because the stored status was no longer "active".
	ErrVoucherNotActive = errors.New("voucher not active")
	// ErrVoucherCodeConflict is returned when the generated code collides with
	// an existing one.
	ErrVoucherCodeConflict = errors.New("voucher code already exists")
)

// VoucherRepository defines the operations for voucher persistence.
type VoucherRepository interface {
	// Create persists a new voucher.
	Create(ctx context.Context, voucher *entity.Voucher) error

	// FindByID retrieves a voucher by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error)

	// FindByCode retrieves a voucher by exact code match.
	FindByCode(ctx context.Context, code string) (*entity.Voucher, error)

	// FindDetailsByCode retrieves a voucher by code joined with its deal,
	// business, and buyer context for operator verification.
	FindDetailsByCode(ctx context.Context, code string) (*entity.VoucherDetails, error)

	// FindByUser retrieves all vouchers owned by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Voucher, error)

	// MarkUsed flips status to "used" and stamps used_at, conditioned on the
	// stored status still being "active" at write time. When the condition
	// matches no row it returns ErrVoucherNotActive so that at most one of N
	// concurrent redemption attempts can succeed.
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error
}
