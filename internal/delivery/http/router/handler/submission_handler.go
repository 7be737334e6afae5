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

// SubmissionHandler holds dependencies for the moderated deal pipeline.
type SubmissionHandler struct {
	uc     usecase.SubmissionUsecase
	logger *slog.Logger
}

// NewSubmissionHandler is the constructor for SubmissionHandler, injected by Fx.
func NewSubmissionHandler(uc usecase.SubmissionUsecase, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitDealRequest struct {
	CategoryID      string `json:"category_id" validate:"required,uuid"`
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description" validate:"omitempty,max=2000"`
	OriginalPrice   int64  `json:"original_price" validate:"required,gt=0"`
	DiscountedPrice int64  `json:"discounted_price" validate:"required,gt=0"`
	AvailableCount  int    `json:"available_count" validate:"required,gt=0"`
	ExpiresAt       string `json:"expires_at" validate:"required"` // RFC 3339
}

type decideSubmissionRequest struct {
	Approve      bool   `json:"approve"`
	RejectReason string `json:"reject_reason" validate:"omitempty,max=2000"`
	IsFeatured   bool   `json:"is_featured"`
}

// SubmitDeal handles a business proposing a deal for admin review.
func (h *SubmissionHandler) SubmitDeal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Token is not bound to a business")
	}

	var req submitDealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
	}
	expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "expires_at must be RFC 3339")
	}

	submission, err := h.uc.SubmitDeal(c.Request().Context(), usecase.SubmitDealInput{
		BusinessID:      businessID,
		SubmittedBy:     userID,
		CategoryID:      categoryID,
		Title:           req.Title,
		Description:     req.Description,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		AvailableCount:  req.AvailableCount,
		ExpiresAt:       expiresAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, submission, "Submission queued for review")
}

// GetBusinessSubmissions handles listing the acting business's submissions.
func (h *SubmissionHandler) GetBusinessSubmissions(c echo.Context) error {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Token is not bound to a business")
	}

	submissions, err := h.uc.GetBusinessSubmissions(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submissions, "Submissions retrieved successfully")
}

// GetPendingSubmissions handles the admin review queue, oldest first.
func (h *SubmissionHandler) GetPendingSubmissions(c echo.Context) error {
	submissions, err := h.uc.GetPendingSubmissions(c.Request().Context(),
		parsePageSize(c.QueryParam("limit")), parseOffset(c.QueryParam("offset")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submissions, "Pending submissions retrieved successfully")
}

// DecideSubmission handles an admin approving or rejecting a submission.
func (h *SubmissionHandler) DecideSubmission(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid submission ID")
	}

	var req decideSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !req.Approve && req.RejectReason == "" {
		return response.BadRequest(c, "INVALID_INPUT", "reject_reason is required when rejecting")
	}

	submission, err := h.uc.DecideSubmission(c.Request().Context(), usecase.DecideSubmissionInput{
		SubmissionID: submissionID,
		AdminID:      adminID,
		Approve:      req.Approve,
		RejectReason: req.RejectReason,
		IsFeatured:   req.IsFeatured,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submission, "Submission decided successfully")
}
