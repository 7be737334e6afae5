package repository

import (
	"context"
	"errors"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the operations for user notification persistence.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUser retrieves a user's notifications, newest first, with pagination.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead sets the read flag on one of the user's notifications.
	// Scoping by user prevents cross-account read-state mutation.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
