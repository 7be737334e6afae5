package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer's rating of a business. Each new review folds its
// score into the business's running-average rating in the same transaction.
type Review struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the review.
	BusinessID uuid.UUID `json:"business_id"` // The reviewed business.
	UserID     uuid.UUID `json:"user_id"`     // The reviewing user.
	Score      int       `json:"score"`       // Rating from 1 to 5.
	Comment    string    `json:"comment"`     // Optional review text.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this record was created.
}
