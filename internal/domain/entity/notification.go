package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification type tags. Stored as plain strings so new event sources can
// add tags without a schema change.
const (
	NotificationTypeVoucherIssued   = "voucher_issued"
	NotificationTypeVoucherRedeemed = "voucher_redeemed"
	NotificationTypeReservation     = "reservation"
	NotificationTypeSubmission      = "submission"
)

// Notification is a user-facing message created as a side effect of
// redemption, reservation, and other events. Read-state is mutated by the user.
type Notification struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID `json:"user_id"`    // The owning user.
	Title     string    `json:"title"`      // Short notification title.
	Message   string    `json:"message"`    // Notification body.
	Type      string    `json:"type"`       // Event type tag, see the NotificationType constants.
	IsRead    bool      `json:"is_read"`    // Whether the user has read this notification.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
}
