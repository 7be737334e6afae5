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

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new payout ledger entry. The unique index on voucher_id
// turns a duplicate insert into ErrPaymentExists, which is how redemption
// retries avoid double payouts.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.BusinessPayment) error {
	paymentM := fromBusinessPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPaymentExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVoucherNotFound.WrapMessage("invalid voucher or business reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// UpdateStatus moves a ledger entry to a new status, recording the external
// transfer reference when one exists.
func (repo *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, transferRef string) error {
	updates := map[string]any{"status": string(status)}
	if transferRef != "" {
		updates["transfer_ref"] = transferRef
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessPaymentModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// FindByVoucher retrieves the ledger entry for a voucher.
func (repo *paymentRepository) FindByVoucher(ctx context.Context, voucherID uuid.UUID) (*entity.BusinessPayment, error) {
	var paymentM model.BusinessPaymentModel
	err := repo.db.WithContext(ctx).First(&paymentM, "voucher_id = ?", voucherID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by voucher")
	}

	return toBusinessPaymentDomain(&paymentM), nil
}

// FindByBusiness retrieves ledger entries for a business, newest first.
func (repo *paymentRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.BusinessPayment, error) {
	query := repo.db.WithContext(ctx).Where("business_id = ?", businessID)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var paymentModels []*model.BusinessPaymentModel
	if err := query.
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payments by business")
	}

	payments := make([]*entity.BusinessPayment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toBusinessPaymentDomain(paymentM))
	}

	return payments, nil
}

// --- Mapper Functions ---

// toBusinessPaymentDomain converts a GORM BusinessPaymentModel to a domain BusinessPayment entity.
func toBusinessPaymentDomain(data *model.BusinessPaymentModel) *entity.BusinessPayment {
	if data == nil {
		return nil
	}

	return &entity.BusinessPayment{
		ID:          data.ID,
		BusinessID:  data.BusinessID,
		VoucherID:   data.VoucherID,
		Amount:      data.Amount,
		Description: data.Description,
		Status:      entity.PaymentStatus(data.Status),
		TransferRef: data.TransferRef,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBusinessPaymentDomain converts a domain BusinessPayment entity to a GORM BusinessPaymentModel.
func fromBusinessPaymentDomain(data *entity.BusinessPayment) *model.BusinessPaymentModel {
	if data == nil {
		return nil
	}

	return &model.BusinessPaymentModel{
		ID:          data.ID,
		BusinessID:  data.BusinessID,
		VoucherID:   data.VoucherID,
		Amount:      data.Amount,
		Description: data.Description,
		Status:      string(data.Status),
		TransferRef: data.TransferRef,
	}
}
