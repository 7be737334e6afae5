package postgres

import (
	"context"
	"time"

	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	"dealspot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dealRepository implements the domain.DealRepository interface using GORM.
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{db: db}
}

// Create persists a new deal.
func (repo *dealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	dealM := fromDealDomain(deal)

	if err := repo.db.WithContext(ctx).Create(dealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid business or category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required deal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create deal")
	}

	deal.ID = dealM.ID
	deal.CreatedAt = dealM.CreatedAt
	deal.UpdatedAt = dealM.UpdatedAt

	return nil
}

// FindByID retrieves a deal by its unique ID.
func (repo *dealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var dealM model.DealModel
	err := repo.db.WithContext(ctx).First(&dealM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal by id")
	}

	return toDealDomain(&dealM), nil
}

// FindActive retrieves active, unexpired deals matching the filter,
// featured deals first, then newest.
func (repo *dealRepository) FindActive(ctx context.Context, filter repository.DealFilter) ([]*entity.Deal, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("deals.is_active = ? AND deals.expires_at > ?", true, time.Now())

	if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = deals.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.City != "" {
		query = query.
			Joins("JOIN businesses ON businesses.id = deals.business_id").
			Where("businesses.city = ?", filter.City)
	}
	if filter.FeaturedOnly {
		query = query.Where("deals.is_featured = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var dealModels []*model.DealModel
	if err := query.
		Order("deals.is_featured DESC, deals.created_at DESC").
		Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active deals")
	}

	deals := make([]*entity.Deal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toDealDomain(dealM))
	}

	return deals, nil
}

// TakeAvailable decrements the deal's available count by one, conditioned on
// the deal being purchasable at now. A zero-row match means the deal is
// inactive, expired, or sold out; the caller cannot tell which and does not
// need to.
func (repo *dealRepository) TakeAvailable(ctx context.Context, id uuid.UUID, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ? AND is_active = ? AND expires_at > ? AND available_count > 0", id, true, now).
		Update("available_count", gorm.Expr("available_count - 1"))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to take deal stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealUnavailable
	}

	return nil
}

// Deactivate clears the deal's active flag. Deals are never hard-deleted.
func (repo *dealRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate deal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// ListCategories retrieves all deal categories ordered by name.
func (repo *dealRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, &entity.Category{
			ID:   categoryM.ID,
			Name: categoryM.Name,
			Slug: categoryM.Slug,
		})
	}

	return categories, nil
}

// --- Mapper Functions ---

// toDealDomain converts a GORM DealModel to a domain Deal entity.
func toDealDomain(data *model.DealModel) *entity.Deal {
	if data == nil {
		return nil
	}

	return &entity.Deal{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		CategoryID:      data.CategoryID,
		Title:           data.Title,
		Description:     data.Description,
		OriginalPrice:   data.OriginalPrice,
		DiscountedPrice: data.DiscountedPrice,
		DiscountPercent: data.DiscountPercent,
		IsActive:        data.IsActive,
		IsFeatured:      data.IsFeatured,
		AvailableCount:  data.AvailableCount,
		ExpiresAt:       data.ExpiresAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromDealDomain converts a domain Deal entity to a GORM DealModel.
func fromDealDomain(data *entity.Deal) *model.DealModel {
	if data == nil {
		return nil
	}

	return &model.DealModel{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		CategoryID:      data.CategoryID,
		Title:           data.Title,
		Description:     data.Description,
		OriginalPrice:   data.OriginalPrice,
		DiscountedPrice: data.DiscountedPrice,
		DiscountPercent: data.DiscountPercent,
		IsActive:        data.IsActive,
		IsFeatured:      data.IsFeatured,
		AvailableCount:  data.AvailableCount,
		ExpiresAt:       data.ExpiresAt,
	}
}
