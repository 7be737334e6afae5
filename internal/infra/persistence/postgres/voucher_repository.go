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

// voucherRepository implements the domain.VoucherRepository interface using GORM.
type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository is the constructor for voucherRepository.
func NewVoucherRepository(db *gorm.DB) repository.VoucherRepository {
	return &voucherRepository{db: db}
}

// Create persists a new voucher.
func (repo *voucherRepository) Create(ctx context.Context, voucher *entity.Voucher) error {
	voucherM := fromVoucherDomain(voucher)

	if err := repo.db.WithContext(ctx).Create(voucherM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrVoucherCodeConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDealNotFound.WrapMessage("invalid deal or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create voucher")
	}

	voucher.ID = voucherM.ID
	voucher.CreatedAt = voucherM.CreatedAt
	voucher.UpdatedAt = voucherM.UpdatedAt

	return nil
}

// FindByID retrieves a voucher by its unique ID.
func (repo *voucherRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	var voucherM model.VoucherModel
	err := repo.db.WithContext(ctx).First(&voucherM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher by id")
	}

	return toVoucherDomain(&voucherM), nil
}

// FindByCode retrieves a voucher by exact code match.
func (repo *voucherRepository) FindByCode(ctx context.Context, code string) (*entity.Voucher, error) {
	var voucherM model.VoucherModel
	err := repo.db.WithContext(ctx).First(&voucherM, "code = ?", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher by code")
	}

	return toVoucherDomain(&voucherM), nil
}

// voucherDetailsRow is the scan target for the verification join.
type voucherDetailsRow struct {
	model.VoucherModel
	DealTitle       string
	OriginalPrice   int64
	DiscountedPrice int64
	BusinessID      uuid.UUID
	BusinessName    string
	BusinessAddress string
	BuyerEmail      string
}

// FindDetailsByCode retrieves a voucher by code joined with its deal, business,
// and buyer context. One query keeps operator verification at a single round trip.
func (repo *voucherRepository) FindDetailsByCode(ctx context.Context, code string) (*entity.VoucherDetails, error) {
	var row voucherDetailsRow
	err := repo.db.WithContext(ctx).
		Table("vouchers").
		Select(`vouchers.*,
			deals.title AS deal_title,
			deals.original_price AS original_price,
			deals.discounted_price AS discounted_price,
			businesses.id AS business_id,
			businesses.name AS business_name,
			businesses.address AS business_address,
			users.email AS buyer_email`).
		Joins("JOIN deals ON deals.id = vouchers.deal_id").
		Joins("JOIN businesses ON businesses.id = deals.business_id").
		Joins("JOIN users ON users.id = vouchers.user_id").
		Where("vouchers.code = ?", code).
		Take(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher details by code")
	}

	return &entity.VoucherDetails{
		Voucher:         *toVoucherDomain(&row.VoucherModel),
		DealTitle:       row.DealTitle,
		OriginalPrice:   row.OriginalPrice,
		DiscountedPrice: row.DiscountedPrice,
		BusinessID:      row.BusinessID,
		BusinessName:    row.BusinessName,
		BusinessAddress: row.BusinessAddress,
		BuyerEmail:      row.BuyerEmail,
	}, nil
}

// FindByUser retrieves all vouchers owned by a user, newest first.
func (repo *voucherRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Voucher, error) {
	var voucherModels []*model.VoucherModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&voucherModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find vouchers by user")
	}

	vouchers := make([]*entity.Voucher, 0, len(voucherModels))
	for _, voucherM := range voucherModels {
		vouchers = append(vouchers, toVoucherDomain(voucherM))
	}

	return vouchers, nil
}

// MarkUsed flips status to "used" and stamps used_at, conditioned on the stored
// status still being "active". The condition makes the transition atomic at the
// row level: of N concurrent attempts exactly one matches, the rest see zero
// affected rows and get ErrVoucherNotActive.
func (repo *voucherRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VoucherModel{}).
		Where("id = ? AND status = ?", id, string(entity.VoucherStatusActive)).
		Updates(map[string]any{
			"status":  string(entity.VoucherStatusUsed),
			"used_at": usedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark voucher used")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVoucherNotActive
	}

	return nil
}

// --- Mapper Functions ---

// toVoucherDomain converts a GORM VoucherModel to a domain Voucher entity.
func toVoucherDomain(data *model.VoucherModel) *entity.Voucher {
	if data == nil {
		return nil
	}

	return &entity.Voucher{
		ID:        data.ID,
		UserID:    data.UserID,
		DealID:    data.DealID,
		Code:      data.Code,
		Status:    entity.VoucherStatus(data.Status),
		IssuedAt:  data.IssuedAt,
		UsedAt:    data.UsedAt,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromVoucherDomain converts a domain Voucher entity to a GORM VoucherModel.
func fromVoucherDomain(data *entity.Voucher) *model.VoucherModel {
	if data == nil {
		return nil
	}

	return &model.VoucherModel{
		ID:        data.ID,
		UserID:    data.UserID,
		DealID:    data.DealID,
		Code:      data.Code,
		Status:    string(data.Status),
		IssuedAt:  data.IssuedAt,
		UsedAt:    data.UsedAt,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
