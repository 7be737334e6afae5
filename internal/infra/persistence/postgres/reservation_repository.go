package postgres

import (
	"context"

	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	"dealspot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reservationRepository implements the domain.ReservationRepository interface using GORM.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

// Create persists a new reservation.
func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Create(reservationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid user or business reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required reservation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	reservation.ID = reservationM.ID
	reservation.CreatedAt = reservationM.CreatedAt
	reservation.UpdatedAt = reservationM.UpdatedAt

	return nil
}

// FindByID retrieves a reservation by its unique ID.
func (repo *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel
	err := repo.db.WithContext(ctx).First(&reservationM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by id")
	}

	return toReservationDomain(&reservationM), nil
}

// FindByUser retrieves a user's reservations, newest booking first.
func (repo *reservationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("reserved_for DESC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by user")
	}

	reservations := make([]*entity.Reservation, 0, len(reservationModels))
	for _, reservationM := range reservationModels {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations, nil
}

// UpdateStatus moves a reservation to a new status. Rows are never deleted.
func (repo *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reservation status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toReservationDomain converts a GORM ReservationModel to a domain Reservation entity.
func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	if data == nil {
		return nil
	}

	return &entity.Reservation{
		ID:          data.ID,
		UserID:      data.UserID,
		BusinessID:  data.BusinessID,
		PartySize:   data.PartySize,
		ReservedFor: data.ReservedFor,
		Note:        data.Note,
		Status:      entity.ReservationStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromReservationDomain converts a domain Reservation entity to a GORM ReservationModel.
func fromReservationDomain(data *entity.Reservation) *model.ReservationModel {
	if data == nil {
		return nil
	}

	return &model.ReservationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		BusinessID:  data.BusinessID,
		PartySize:   data.PartySize,
		ReservedFor: data.ReservedFor,
		Note:        data.Note,
		Status:      string(data.Status),
	}
}
