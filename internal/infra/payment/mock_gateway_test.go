package payment

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway() *mockGateway {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &mockGateway{logger: logger}
}

func TestMockGateway_Transfer(t *testing.T) {
	gw := newTestGateway()

	ref, err := gw.Transfer(context.Background(), uuid.New(), 1500, "voucher payout")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "tr_"))
}

func TestMockGateway_Charge(t *testing.T) {
	gw := newTestGateway()

	ref, err := gw.Charge(context.Background(), uuid.New(), 2500, "deal purchase")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "ch_"))
}

func TestMockGateway_RejectsNonPositiveAmounts(t *testing.T) {
	gw := newTestGateway()

	_, err := gw.Transfer(context.Background(), uuid.New(), 0, "zero payout")
	assert.Error(t, err)

	_, err = gw.Charge(context.Background(), uuid.New(), -100, "negative charge")
	assert.Error(t, err)
}
