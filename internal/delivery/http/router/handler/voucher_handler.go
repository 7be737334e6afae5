package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dealspot/internal/delivery/http/middleware"
	"dealspot/internal/delivery/http/response"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VoucherHandler holds dependencies for voucher lifecycle handlers.
type VoucherHandler struct {
	uc     usecase.VoucherUsecase
	logger *slog.Logger
}

// NewVoucherHandler is the constructor for VoucherHandler, injected by Fx.
func NewVoucherHandler(uc usecase.VoucherUsecase, logger *slog.Logger) *VoucherHandler {
	return &VoucherHandler{
		uc:     uc,
		logger: logger,
	}
}

type purchaseDealRequest struct {
	DealID    string `json:"deal_id" validate:"required,uuid"`
	ExpiresAt string `json:"expires_at" validate:"omitempty"` // RFC 3339, overrides the configured validity window
}

type voucherCodeRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

// PurchaseDeal handles buying one unit of a deal and issuing a voucher.
func (h *VoucherHandler) PurchaseDeal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req purchaseDealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dealID, err := uuid.Parse(req.DealID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid deal ID")
	}

	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid expiry time")
		}
		expiresAt = &parsed
	}

	voucher, err := h.uc.PurchaseDeal(c.Request().Context(), userID, dealID, expiresAt)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, voucher, "Voucher issued successfully")
}

// GetUserVouchers handles listing the authenticated user's vouchers.
func (h *VoucherHandler) GetUserVouchers(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	vouchers, err := h.uc.GetUserVouchers(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vouchers, "Vouchers retrieved successfully")
}

// GetVoucherQR renders one of the user's voucher codes as a PNG QR image.
func (h *VoucherHandler) GetVoucherQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	code := c.Param("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Voucher code is required")
	}

	png, err := h.uc.GenerateVoucherQR(c.Request().Context(), userID, code)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Verify handles the operator's read-only pre-redemption check.
func (h *VoucherHandler) Verify(c echo.Context) error {
	var req voucherCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.Verify(c.Request().Context(), req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Voucher verified")
}

// Redeem handles voucher redemption by code at the operator's business.
func (h *VoucherHandler) Redeem(c echo.Context) error {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Token is not bound to a business")
	}

	var req voucherCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	details, err := h.uc.Redeem(c.Request().Context(), req.Code, businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Voucher redeemed successfully")
}

// RedeemByID handles voucher redemption addressed by voucher ID. It folds into
// the same redemption path as Redeem.
func (h *VoucherHandler) RedeemByID(c echo.Context) error {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Token is not bound to a business")
	}

	voucherID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid voucher ID")
	}

	details, err := h.uc.RedeemByID(c.Request().Context(), voucherID, businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Voucher redeemed successfully")
}
