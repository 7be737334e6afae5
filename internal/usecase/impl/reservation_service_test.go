package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	mockRepo "dealspot/internal/mocks/repository"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reservationServiceMocks struct {
	reservationRepo *mockRepo.MockReservationRepository
	businessRepo    *mockRepo.MockBusinessRepository
	notifyRepo      *mockRepo.MockNotificationRepository
}

func newReservationServiceForTest(t *testing.T) (usecase.ReservationUsecase, *reservationServiceMocks) {
	t.Helper()

	mocks := &reservationServiceMocks{
		reservationRepo: mockRepo.NewMockReservationRepository(t),
		businessRepo:    mockRepo.NewMockBusinessRepository(t),
		notifyRepo:      mockRepo.NewMockNotificationRepository(t),
	}

	service := NewReservationService(ReservationServiceParams{
		ReservationRepo: mocks.reservationRepo,
		BusinessRepo:    mocks.businessRepo,
		NotifyRepo:      mocks.notifyRepo,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, mocks
}

func TestReservationService_CreateReservation(t *testing.T) {
	service, mocks := newReservationServiceForTest(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := usecase.CreateReservationInput{
		UserID:      uuid.New(),
		BusinessID:  businessID,
		PartySize:   4,
		ReservedFor: time.Now().Add(48 * time.Hour),
		Note:        "window table if possible",
	}

	mocks.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{ID: businessID, Name: "Nonna's Kitchen"}, nil)

	mocks.reservationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Reservation")).
		Return(nil)

	mocks.notifyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			assert.Equal(t, input.UserID, notification.UserID)
			assert.Equal(t, entity.NotificationTypeReservation, notification.Type)
		}).
		Return(nil)

	reservation, err := service.CreateReservation(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusConfirmed, reservation.Status)
	assert.Equal(t, 4, reservation.PartySize)
	assert.Equal(t, input.Note, reservation.Note)
}

func TestReservationService_CreateReservation_NotificationFailureIsBestEffort(t *testing.T) {
	service, mocks := newReservationServiceForTest(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := usecase.CreateReservationInput{
		UserID:      uuid.New(),
		BusinessID:  businessID,
		PartySize:   2,
		ReservedFor: time.Now().Add(24 * time.Hour),
	}

	mocks.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{ID: businessID, Name: "Harbour Cafe"}, nil)

	mocks.reservationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Reservation")).
		Return(nil)

	mocks.notifyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("notification store down"))

	reservation, err := service.CreateReservation(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusConfirmed, reservation.Status)
}

func TestReservationService_CreateReservation_RejectsPastTime(t *testing.T) {
	service, _ := newReservationServiceForTest(t)

	ctx := context.Background()

	reservation, err := service.CreateReservation(ctx, usecase.CreateReservationInput{
		UserID:      uuid.New(),
		BusinessID:  uuid.New(),
		PartySize:   2,
		ReservedFor: time.Now().Add(-time.Hour),
	})
	require.Error(t, err)
	assert.Nil(t, reservation)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestReservationService_CreateReservation_RejectsNonPositiveParty(t *testing.T) {
	service, _ := newReservationServiceForTest(t)

	ctx := context.Background()

	reservation, err := service.CreateReservation(ctx, usecase.CreateReservationInput{
		UserID:      uuid.New(),
		BusinessID:  uuid.New(),
		PartySize:   0,
		ReservedFor: time.Now().Add(time.Hour),
	})
	require.Error(t, err)
	assert.Nil(t, reservation)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestReservationService_CreateReservation_BusinessNotFound(t *testing.T) {
	service, mocks := newReservationServiceForTest(t)

	ctx := context.Background()
	businessID := uuid.New()

	mocks.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(nil, repository.ErrBusinessNotFound)

	reservation, err := service.CreateReservation(ctx, usecase.CreateReservationInput{
		UserID:      uuid.New(),
		BusinessID:  businessID,
		PartySize:   2,
		ReservedFor: time.Now().Add(time.Hour),
	})
	require.Error(t, err)
	assert.Nil(t, reservation)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestReservationService_CancelReservation(t *testing.T) {
	service, mocks := newReservationServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	reservationID := uuid.New()

	mocks.reservationRepo.EXPECT().
		FindByID(ctx, reservationID).
		Return(&entity.Reservation{ID: reservationID, UserID: userID, Status: entity.ReservationStatusConfirmed}, nil)

	mocks.reservationRepo.EXPECT().
		UpdateStatus(ctx, reservationID, entity.ReservationStatusCancelled).
		Return(nil)

	require.NoError(t, service.CancelReservation(ctx, userID, reservationID))
}

func TestReservationService_CancelReservation_NotOwner(t *testing.T) {
	service, mocks := newReservationServiceForTest(t)

	ctx := context.Background()
	reservationID := uuid.New()

	mocks.reservationRepo.EXPECT().
		FindByID(ctx, reservationID).
		Return(&entity.Reservation{ID: reservationID, UserID: uuid.New()}, nil)

	err := service.CancelReservation(ctx, uuid.New(), reservationID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReservationService_CancelReservation_NotFound(t *testing.T) {
	service, mocks := newReservationServiceForTest(t)

	ctx := context.Background()
	reservationID := uuid.New()

	mocks.reservationRepo.EXPECT().
		FindByID(ctx, reservationID).
		Return(nil, repository.ErrReservationNotFound)

	err := service.CancelReservation(ctx, uuid.New(), reservationID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReservationNotFound))
}

func TestReservationService_GetUserReservations(t *testing.T) {
	service, mocks := newReservationServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.reservationRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.Reservation{{ID: uuid.New(), UserID: userID}}, nil)

	found, err := service.GetUserReservations(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
