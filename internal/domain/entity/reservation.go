package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the state of a table reservation.
type ReservationStatus string

const (
	// ReservationStatusConfirmed means the reservation is booked.
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	// ReservationStatusCancelled means the user cancelled; the row is kept.
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation is a table booking at a business.
type Reservation struct {
	ID          uuid.UUID         `json:"id"`           // The Global Unique Identifier (GUID) for the reservation.
	UserID      uuid.UUID         `json:"user_id"`      // The booking user.
	BusinessID  uuid.UUID         `json:"business_id"`  // The business being booked.
	PartySize   int               `json:"party_size"`   // Number of guests.
	ReservedFor time.Time         `json:"reserved_for"` // The booked date and time.
	Note        string            `json:"note"`         // Optional free-form note from the user.
	Status      ReservationStatus `json:"status"`       // Current reservation state.
	CreatedAt   time.Time         `json:"created_at"`   // Timestamp of when this record was created.
	UpdatedAt   time.Time         `json:"updated_at"`   // Timestamp of the last modification.
}
