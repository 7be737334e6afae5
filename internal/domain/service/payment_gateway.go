package service

import (
	"context"

	"github.com/google/uuid"
)

// PaymentGateway defines the interface for the external funds-transfer
// provider. Charges settle customer purchases; transfers pay out businesses
// for redeemed vouchers. The production deployment mocks both.
type PaymentGateway interface {
	// Charge debits a customer for a purchase and returns a charge reference.
	Charge(ctx context.Context, userID uuid.UUID, amount int64, description string) (chargeRef string, err error)

	// Transfer sends a payout to a business and returns a transfer reference.
	Transfer(ctx context.Context, businessID uuid.UUID, amount int64, description string) (transferRef string, err error)
}
