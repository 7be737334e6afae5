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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their role profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("BusinessProfile").
		Preload("AdminProfile").
		First(&userM, "id = ?", id).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading role profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("BusinessProfile").
		Preload("AdminProfile").
		First(&userM, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its attached role profiles.
// GORM's Create with associations inserts users and the profile rows together.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.CustomerProfile != nil && userM.CustomerProfile != nil {
		user.CustomerProfile.UserID = userM.CustomerProfile.UserID
		user.CustomerProfile.UpdatedAt = userM.CustomerProfile.UpdatedAt
	}
	if user.BusinessProfile != nil && userM.BusinessProfile != nil {
		user.BusinessProfile.UserID = userM.BusinessProfile.UserID
		user.BusinessProfile.UpdatedAt = userM.BusinessProfile.UpdatedAt
	}
	if user.AdminProfile != nil && userM.AdminProfile != nil {
		user.AdminProfile.UserID = userM.AdminProfile.UserID
		user.AdminProfile.UpdatedAt = userM.AdminProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity, including its role profiles, in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		CustomerProfile: toCustomerProfileDomain(data.CustomerProfile),
		BusinessProfile: toBusinessMemberDomain(data.BusinessProfile),
		AdminProfile:    toAdminProfileDomain(data.AdminProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		CustomerProfile: fromCustomerProfileDomain(data.CustomerProfile),
		BusinessProfile: fromBusinessMemberDomain(data.BusinessProfile),
		AdminProfile:    fromAdminProfileDomain(data.AdminProfile),
	}
}

func toCustomerProfileDomain(data *model.CustomerProfileModel) *entity.CustomerProfile {
	if data == nil {
		return nil
	}

	return &entity.CustomerProfile{
		UserID:    data.UserID,
		City:      data.City,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCustomerProfileDomain(data *entity.CustomerProfile) *model.CustomerProfileModel {
	if data == nil {
		return nil
	}

	return &model.CustomerProfileModel{
		UserID: data.UserID,
		City:   data.City,
	}
}

func toBusinessMemberDomain(data *model.BusinessMemberModel) *entity.BusinessMember {
	if data == nil {
		return nil
	}

	return &entity.BusinessMember{
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		Position:   data.Position,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromBusinessMemberDomain(data *entity.BusinessMember) *model.BusinessMemberModel {
	if data == nil {
		return nil
	}

	return &model.BusinessMemberModel{
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		Position:   data.Position,
	}
}

func toAdminProfileDomain(data *model.AdminProfileModel) *entity.AdminProfile {
	if data == nil {
		return nil
	}

	return &entity.AdminProfile{
		UserID:    data.UserID,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAdminProfileDomain(data *entity.AdminProfile) *model.AdminProfileModel {
	if data == nil {
		return nil
	}

	return &model.AdminProfileModel{
		UserID: data.UserID,
	}
}
