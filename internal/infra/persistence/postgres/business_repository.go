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

// businessRepository implements the domain.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// Create persists a new business.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindByID retrieves a business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel
	err := repo.db.WithContext(ctx).First(&businessM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByCity retrieves businesses in a city with pagination, best-rated first.
func (repo *businessRepository) FindByCity(ctx context.Context, city string, limit, offset int) ([]*entity.Business, error) {
	query := repo.db.WithContext(ctx).Where("city = ?", city)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var businessModels []*model.BusinessModel
	if err := query.
		Order("rating DESC, review_count DESC").
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find businesses by city")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

// AddReviewScore folds a new review score into the business's running-average
// rating and increments the review count. Doing the arithmetic in SQL keeps
// the update atomic at the row level, so concurrent reviews never lose an
// increment.
func (repo *businessRepository) AddReviewScore(ctx context.Context, id uuid.UUID, score int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":       gorm.Expr("(rating * review_count + ?) / (review_count + 1)", score),
			"review_count": gorm.Expr("review_count + 1"),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add review score")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		City:        data.City,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Phone:       data.Phone,
		Email:       data.Email,
		Rating:      data.Rating,
		ReviewCount: data.ReviewCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		City:        data.City,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Phone:       data.Phone,
		Email:       data.Email,
		Rating:      data.Rating,
		ReviewCount: data.ReviewCount,
	}
}
