package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "dealspot/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDContext(t *testing.T, requestID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRequestIDMiddleware_PropagatesClientID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newRequestIDContext(t, "client-supplied-id")

	var ctxRequestID string
	var ctxLogger *slog.Logger
	err := m.Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		ctxRequestID = deliverycontext.GetRequestIDFromContext(ctx)
		ctxLogger = deliverycontext.GetLoggerOrDefault(ctx, nil)

		return nil
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "client-supplied-id", deliverycontext.GetRequestID(c))
	assert.Equal(t, "client-supplied-id", ctxRequestID)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.NotNil(t, ctxLogger)
}

func TestRequestIDMiddleware_MintsIDWhenAbsent(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newRequestIDContext(t, "")

	err := m.Process(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)

	requestID := deliverycontext.GetRequestID(c)
	_, parseErr := uuid.Parse(requestID)
	require.NoError(t, parseErr)
	assert.Equal(t, requestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}
