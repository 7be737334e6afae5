package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dealspot/internal/delivery/http/response"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// DealHandler holds dependencies for deal browsing and administration.
type DealHandler struct {
	uc     usecase.DealUsecase
	logger *slog.Logger
}

// NewDealHandler is the constructor for DealHandler, injected by Fx.
func NewDealHandler(uc usecase.DealUsecase, logger *slog.Logger) *DealHandler {
	return &DealHandler{
		uc:     uc,
		logger: logger,
	}
}

type createDealRequest struct {
	BusinessID      string `json:"business_id" validate:"required,uuid"`
	CategoryID      string `json:"category_id" validate:"required,uuid"`
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description" validate:"omitempty,max=2000"`
	OriginalPrice   int64  `json:"original_price" validate:"required,gt=0"`
	DiscountedPrice int64  `json:"discounted_price" validate:"required,gt=0"`
	AvailableCount  int    `json:"available_count" validate:"required,gt=0"`
	IsFeatured      bool   `json:"is_featured"`
	ExpiresAt       string `json:"expires_at" validate:"required"` // RFC 3339
}

// BrowseDeals handles the public deal listing with optional filters.
func (h *DealHandler) BrowseDeals(c echo.Context) error {
	input := usecase.BrowseDealsInput{
		CategorySlug: c.QueryParam("category"),
		City:         c.QueryParam("city"),
		FeaturedOnly: c.QueryParam("featured") == "true",
		Limit:        parsePageSize(c.QueryParam("limit")),
		Offset:       parseOffset(c.QueryParam("offset")),
	}

	deals, err := h.uc.BrowseDeals(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deals, "Deals retrieved successfully")
}

// GetDeal handles the deal detail request.
func (h *DealHandler) GetDeal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid deal ID")
	}

	deal, err := h.uc.GetDeal(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "Deal retrieved successfully")
}

// ListCategories handles the category listing request.
func (h *DealHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// CreateDeal handles the admin direct deal creation request.
func (h *DealHandler) CreateDeal(c echo.Context) error {
	var req createDealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
	}
	expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "expires_at must be RFC 3339")
	}

	deal, err := h.uc.CreateDeal(c.Request().Context(), usecase.CreateDealInput{
		BusinessID:      businessID,
		CategoryID:      categoryID,
		Title:           req.Title,
		Description:     req.Description,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		AvailableCount:  req.AvailableCount,
		IsFeatured:      req.IsFeatured,
		ExpiresAt:       expiresAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, deal, "Deal created successfully")
}

// DeactivateDeal handles the admin deal deactivation request.
func (h *DealHandler) DeactivateDeal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid deal ID")
	}

	if err := h.uc.DeactivateDeal(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Deal deactivated successfully")
}

func parsePageSize(raw string) int {
	size, err := strconv.Atoi(raw)
	if err != nil || size <= 0 {
		return defaultPageSize
	}
	if size > maxPageSize {
		return maxPageSize
	}

	return size
}

func parseOffset(raw string) int {
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}

	return offset
}
