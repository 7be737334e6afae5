package usecase

import (
	"context"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for user notification management.
type NotificationUsecase interface {
	// GetUserNotifications retrieves a user's notifications, newest first.
	GetUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkNotificationRead marks one of the user's notifications as read.
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
