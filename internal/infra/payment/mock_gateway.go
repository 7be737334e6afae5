// Package payment provides the funds-transfer gateway implementation.
// The current deployment simulates transfers; the interface boundary keeps a
// real provider swappable.
package payment

import (
	"context"
	"log/slog"

	"dealspot/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// mockGateway simulates an external payment provider. Every charge and
// transfer succeeds and is assigned a provider-style reference so downstream
// ledger rows look the same as they would with a real integration.
type mockGateway struct {
	logger *slog.Logger
}

// NewMockGateway is the constructor for mockGateway.
func NewMockGateway(logger *slog.Logger) service.PaymentGateway {
	return &mockGateway{logger: logger}
}

// Charge simulates debiting a customer.
func (g *mockGateway) Charge(ctx context.Context, userID uuid.UUID, amount int64, description string) (string, error) {
	if amount <= 0 {
		return "", errors.Errorf("invalid charge amount: %d", amount)
	}

	ref := "ch_" + uuid.NewString()
	g.logger.InfoContext(ctx, "Simulated charge",
		slog.String("userID", userID.String()),
		slog.Int64("amount", amount),
		slog.String("chargeRef", ref),
		slog.String("description", description),
	)

	return ref, nil
}

// Transfer simulates paying out a business.
func (g *mockGateway) Transfer(ctx context.Context, businessID uuid.UUID, amount int64, description string) (string, error) {
	if amount <= 0 {
		return "", errors.Errorf("invalid transfer amount: %d", amount)
	}

	ref := "tr_" + uuid.NewString()
	g.logger.InfoContext(ctx, "Simulated transfer",
		slog.String("businessID", businessID.String()),
		slog.Int64("amount", amount),
		slog.String("transferRef", ref),
		slog.String("description", description),
	)

	return ref, nil
}
