package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "dealspot/internal/delivery/context"
	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	businessRepo    repository.BusinessRepository
	notifyRepo      repository.NotificationRepository
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	ReservationRepo repository.ReservationRepository
	BusinessRepo    repository.BusinessRepository
	NotifyRepo      repository.NotificationRepository
	Logger          *slog.Logger
}

// NewReservationService creates a new reservation service instance
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		reservationRepo: params.ReservationRepo,
		businessRepo:    params.BusinessRepo,
		notifyRepo:      params.NotifyRepo,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateReservation books a table and writes a confirmation notification.
// The notification is best-effort; a booked table is not undone by a failed
// message insert.
func (s *reservationService) CreateReservation(ctx context.Context, input usecase.CreateReservationInput) (*entity.Reservation, error) {
	if input.PartySize <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("party size must be positive")
	}
	if input.ReservedFor.Before(time.Now()) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reservation time must be in the future")
	}

	business, err := s.businessRepo.FindByID(ctx, input.BusinessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	reservation := &entity.Reservation{
		UserID:      input.UserID,
		BusinessID:  input.BusinessID,
		PartySize:   input.PartySize,
		ReservedFor: input.ReservedFor,
		Note:        input.Note,
		Status:      entity.ReservationStatusConfirmed,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		UserID: input.UserID,
		Title:  "Reservation confirmed",
		Message: fmt.Sprintf("Table for %d at %s on %s.",
			input.PartySize, business.Name, input.ReservedFor.Format(time.RFC1123)),
		Type: entity.NotificationTypeReservation,
	}
	if err := s.notifyRepo.Create(ctx, notification); err != nil {
		s.log(ctx).ErrorContext(ctx, "Failed to create reservation notification",
			slog.String("reservationID", reservation.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return reservation, nil
}

// CancelReservation sets the reservation to cancelled. Only the booking user
// may cancel; the row is kept.
func (s *reservationService) CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) error {
	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return domainerrors.ErrReservationNotFound
		}

		return errors.Wrap(err, "failed to find reservation")
	}

	if reservation.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, entity.ReservationStatusCancelled); err != nil {
		return errors.Wrap(err, "failed to cancel reservation")
	}

	return nil
}

// GetUserReservations retrieves a user's reservations, newest booking first.
func (s *reservationService) GetUserReservations(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	reservations, err := s.reservationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by user")
	}

	return reservations, nil
}
