package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the state of a payout ledger entry.
type PaymentStatus string

const (
	// PaymentStatusPending means the payout has been recorded but not transferred.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusCompleted means the (simulated) funds transfer succeeded.
	PaymentStatusCompleted PaymentStatus = "completed"
	// PaymentStatusFailed means the transfer failed and awaits reconciliation.
	PaymentStatusFailed PaymentStatus = "failed"
)

// BusinessPayment is a ledger entry recording the payout owed to a business
// for one redeemed voucher. At most one payment exists per voucher.
type BusinessPayment struct {
	ID          uuid.UUID     `json:"id"`           // The Global Unique Identifier (GUID) for the payment.
	BusinessID  uuid.UUID     `json:"business_id"`  // The business receiving the payout.
	VoucherID   uuid.UUID     `json:"voucher_id"`   // The redeemed voucher this payout settles.
	Amount      int64         `json:"amount"`       // Payout amount in cents (the deal's discounted price).
	Description string        `json:"description"`  // Human-readable description of the payout.
	Status      PaymentStatus `json:"status"`       // Current ledger state.
	TransferRef string        `json:"transfer_ref"` // External transfer reference from the (mocked) gateway.
	CreatedAt   time.Time     `json:"created_at"`   // Timestamp of when this record was created.
	UpdatedAt   time.Time     `json:"updated_at"`   // Timestamp of the last modification.
}
