package usecase

import (
	"context"
	"time"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReservationInput defines the data required to book a table.
type CreateReservationInput struct {
	UserID      uuid.UUID
	BusinessID  uuid.UUID
	PartySize   int
	ReservedFor time.Time
	Note        string
}

// ReservationUsecase defines the interface for table reservations.
type ReservationUsecase interface {
	// CreateReservation books a table and writes a confirmation notification.
	CreateReservation(ctx context.Context, input CreateReservationInput) (*entity.Reservation, error)

	// CancelReservation sets the reservation to cancelled. Only the booking
	// user may cancel; the row is kept.
	CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) error

	// GetUserReservations retrieves a user's reservations, newest booking first.
	GetUserReservations(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error)
}
