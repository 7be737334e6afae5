package impl

import (
	"context"
	"testing"

	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	mockRepo "dealspot/internal/mocks/repository"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationServiceForTest(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	t.Helper()

	notifyRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{NotifyRepo: notifyRepo})

	return service, notifyRepo
}

func TestNotificationService_GetUserNotifications(t *testing.T) {
	service, notifyRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	notifications := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Type: entity.NotificationTypeVoucherIssued},
		{ID: uuid.New(), UserID: userID, Type: entity.NotificationTypeVoucherRedeemed, IsRead: true},
	}

	notifyRepo.EXPECT().
		FindByUser(ctx, userID, 20, 0).
		Return(notifications, nil)

	found, err := service.GetUserNotifications(ctx, userID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestNotificationService_MarkNotificationRead(t *testing.T) {
	service, notifyRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	notifyRepo.EXPECT().
		MarkRead(ctx, notificationID, userID).
		Return(nil)

	require.NoError(t, service.MarkNotificationRead(ctx, notificationID, userID))
}

func TestNotificationService_MarkNotificationRead_NotFound(t *testing.T) {
	service, notifyRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	// Also the outcome when the notification belongs to someone else; the
	// scoped update reveals nothing about other users' notifications.
	notifyRepo.EXPECT().
		MarkRead(ctx, notificationID, userID).
		Return(repository.ErrNotificationNotFound)

	err := service.MarkNotificationRead(ctx, notificationID, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_CountUnread(t *testing.T) {
	service, notifyRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	notifyRepo.EXPECT().
		CountUnread(ctx, userID).
		Return(int64(3), nil)

	count, err := service.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
