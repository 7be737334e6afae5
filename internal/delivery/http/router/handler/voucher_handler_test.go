package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dealspot/internal/delivery/http/binder"
	"dealspot/internal/delivery/http/validator"
	"dealspot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type voucherUsecaseStub struct {
	usecase.VoucherUsecase

	verifyCalled bool
	verifiedCode string
}

func (s *voucherUsecaseStub) Verify(_ context.Context, code string) (*usecase.VerificationResult, error) {
	s.verifyCalled = true
	s.verifiedCode = code

	return &usecase.VerificationResult{Status: usecase.VerificationValid}, nil
}

func newVerifyContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Binder = binder.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/business/vouchers/verify", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestVoucherHandler_Verify(t *testing.T) {
	stub := &voucherUsecaseStub{}
	h := NewVoucherHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newVerifyContext(t, `{"code":"DS-1700000000000-AB12CD"}`)

	require.NoError(t, h.Verify(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stub.verifyCalled)
	assert.Equal(t, "DS-1700000000000-AB12CD", stub.verifiedCode)
}

func TestVoucherHandler_Verify_RejectsUnknownFields(t *testing.T) {
	stub := &voucherUsecaseStub{}
	h := NewVoucherHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newVerifyContext(t, `{"code":"DS-1700000000000-AB12CD","bogus_field":"x"}`)

	require.NoError(t, h.Verify(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// The undeclared field must stop the request before any domain logic.
	assert.False(t, stub.verifyCalled)
}

func TestVoucherHandler_Verify_RejectsMissingCode(t *testing.T) {
	stub := &voucherUsecaseStub{}
	h := NewVoucherHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newVerifyContext(t, `{}`)

	err := h.Verify(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.False(t, stub.verifyCalled)
}
