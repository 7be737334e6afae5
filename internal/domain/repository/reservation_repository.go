package repository

import (
	"context"
	"errors"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReservationNotFound is returned when a reservation is not found.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepository defines the operations for table reservation persistence.
type ReservationRepository interface {
	// Create persists a new reservation.
	Create(ctx context.Context, reservation *entity.Reservation) error

	// FindByID retrieves a reservation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)

	// FindByUser retrieves a user's reservations, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error)

	// UpdateStatus moves a reservation to a new status. Rows are never deleted.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error
}
