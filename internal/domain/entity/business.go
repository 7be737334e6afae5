package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a deal provider and payout recipient.
// Its aggregate rating is maintained as a running average, recomputed on every new review.
type Business struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the business.
	Name        string    `json:"name"`         // The business's display name.
	Description string    `json:"description"`  // A short description of the business.
	Address     string    `json:"address"`      // The street address of the business.
	City        string    `json:"city"`         // The city the business operates in.
	Latitude    float64   `json:"latitude"`     // The geographic latitude of the business location.
	Longitude   float64   `json:"longitude"`    // The geographic longitude of the business location.
	Phone       string    `json:"phone"`        // Contact phone number.
	Email       string    `json:"email"`        // Contact email address.
	Rating      float64   `json:"rating"`       // Aggregate review rating, a running average over all reviews.
	ReviewCount int       `json:"review_count"` // Number of reviews contributing to the aggregate rating.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this record was created.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}
