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

// ReservationHandler holds dependencies for table reservation handlers.
type ReservationHandler struct {
	uc     usecase.ReservationUsecase
	logger *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		uc:     uc,
		logger: logger,
	}
}

type createReservationRequest struct {
	BusinessID  string `json:"business_id" validate:"required,uuid"`
	PartySize   int    `json:"party_size" validate:"required,min=1,max=50"`
	ReservedFor string `json:"reserved_for" validate:"required"` // RFC 3339
	Note        string `json:"note" validate:"omitempty,max=500"`
}

// CreateReservation handles booking a table at a business.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}
	reservedFor, err := time.Parse(time.RFC3339, req.ReservedFor)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "reserved_for must be RFC 3339")
	}

	reservation, err := h.uc.CreateReservation(c.Request().Context(), usecase.CreateReservationInput{
		UserID:      userID,
		BusinessID:  businessID,
		PartySize:   req.PartySize,
		ReservedFor: reservedFor,
		Note:        req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reservation, "Reservation created successfully")
}

// CancelReservation handles the booking user cancelling their reservation.
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation ID")
	}

	if err := h.uc.CancelReservation(c.Request().Context(), userID, reservationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": reservationID.String()}, "Reservation cancelled successfully")
}

// GetUserReservations handles listing the user's reservations.
func (h *ReservationHandler) GetUserReservations(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reservations, err := h.uc.GetUserReservations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservations, "Reservations retrieved successfully")
}
