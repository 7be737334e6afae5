package handler

import (
	"log/slog"
	"net/http"

	"dealspot/internal/delivery/http/middleware"
	"dealspot/internal/delivery/http/response"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for business profile and review handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

type createReviewRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

// GetBusiness handles the business detail request.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	business, err := h.uc.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business retrieved successfully")
}

// ListBusinesses handles the city-scoped business listing, best-rated first.
func (h *BusinessHandler) ListBusinesses(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return response.BadRequest(c, "INVALID_INPUT", "city query parameter is required")
	}

	businesses, err := h.uc.ListBusinessesByCity(c.Request().Context(), city,
		parsePageSize(c.QueryParam("limit")), parseOffset(c.QueryParam("offset")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "Businesses retrieved successfully")
}

// CreateReview handles recording a review for a business.
func (h *BusinessHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		BusinessID: businessID,
		UserID:     userID,
		Score:      req.Score,
		Comment:    req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// GetBusinessReviews handles listing a business's reviews, newest first.
func (h *BusinessHandler) GetBusinessReviews(c echo.Context) error {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	reviews, err := h.uc.GetBusinessReviews(c.Request().Context(), businessID,
		parsePageSize(c.QueryParam("limit")), parseOffset(c.QueryParam("offset")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}
