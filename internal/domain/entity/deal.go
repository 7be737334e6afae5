package entity

import (
	"time"

	"github.com/google/uuid"
)

// Deal is a business's discount offer. Deals are deactivated via IsActive or
// expiry, never hard-deleted.
type Deal struct {
	ID              uuid.UUID `json:"id"`               // The Global Unique Identifier (GUID) for the deal.
	BusinessID      uuid.UUID `json:"business_id"`      // The business offering this deal.
	CategoryID      uuid.UUID `json:"category_id"`      // The category this deal belongs to.
	Title           string    `json:"title"`            // Short deal title shown in listings.
	Description     string    `json:"description"`      // Full deal description.
	OriginalPrice   int64     `json:"original_price"`   // Original price in cents.
	DiscountedPrice int64     `json:"discounted_price"` // Discounted price in cents; this is the payout amount per redeemed voucher.
	DiscountPercent int       `json:"discount_percent"` // Discount percentage, derived at creation time.
	IsActive        bool      `json:"is_active"`        // Whether the deal is currently purchasable.
	IsFeatured      bool      `json:"is_featured"`      // Whether the deal is highlighted in listings.
	AvailableCount  int       `json:"available_count"`  // Remaining number of vouchers that can be issued for this deal.
	ExpiresAt       time.Time `json:"expires_at"`       // After this time the deal can no longer be purchased.
	CreatedAt       time.Time `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt       time.Time `json:"updated_at"`       // Timestamp of the last modification.
}

// IsExpired reports whether the deal has passed its expiry at the given time.
func (d *Deal) IsExpired(now time.Time) bool {
	return d.ExpiresAt.Before(now)
}

// Category groups deals for browsing.
type Category struct {
	ID   uuid.UUID `json:"id"`   // The Global Unique Identifier (GUID) for the category.
	Name string    `json:"name"` // Human-readable category name.
	Slug string    `json:"slug"` // URL-safe identifier used in listing filters.
}
