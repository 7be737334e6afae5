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

// submissionRepository implements the domain.SubmissionRepository interface using GORM.
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(db *gorm.DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create persists a new submission.
func (repo *submissionRepository) Create(ctx context.Context, submission *entity.DealSubmission) error {
	submissionM := fromDealSubmissionDomain(submission)

	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid business or category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required submission information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create submission")
	}

	submission.ID = submissionM.ID
	submission.CreatedAt = submissionM.CreatedAt
	submission.UpdatedAt = submissionM.UpdatedAt

	return nil
}

// FindByID retrieves a submission by its unique ID.
func (repo *submissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DealSubmission, error) {
	var submissionM model.DealSubmissionModel
	err := repo.db.WithContext(ctx).First(&submissionM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission by id")
	}

	return toDealSubmissionDomain(&submissionM), nil
}

// FindByBusiness retrieves a business's submissions, newest first.
func (repo *submissionRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.DealSubmission, error) {
	var submissionModels []*model.DealSubmissionModel
	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find submissions by business")
	}

	return toDealSubmissionDomainSlice(submissionModels), nil
}

// FindPending retrieves pending submissions for admin review, oldest first so
// the queue is worked in arrival order.
func (repo *submissionRepository) FindPending(ctx context.Context, limit, offset int) ([]*entity.DealSubmission, error) {
	query := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.SubmissionStatusPending))
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var submissionModels []*model.DealSubmissionModel
	if err := query.
		Order("created_at ASC").
		Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending submissions")
	}

	return toDealSubmissionDomainSlice(submissionModels), nil
}

// CountForBusinessSince counts submissions a business has made since the given
// time. Runs inside the submission transaction so the monthly quota check and
// the insert see a consistent snapshot.
func (repo *submissionRepository) CountForBusinessSince(ctx context.Context, businessID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DealSubmissionModel{}).
		Where("business_id = ? AND created_at >= ?", businessID, since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count submissions")
	}

	return count, nil
}

// UpdateDecision records an admin decision on a submission.
func (repo *submissionRepository) UpdateDecision(ctx context.Context, submission *entity.DealSubmission) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealSubmissionModel{}).
		Where("id = ?", submission.ID).
		Updates(map[string]any{
			"status":        string(submission.Status),
			"reject_reason": submission.RejectReason,
			"reviewed_by":   submission.ReviewedBy,
			"reviewed_at":   submission.ReviewedAt,
			"deal_id":       submission.DealID,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update submission decision")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubmissionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDealSubmissionDomain converts a GORM DealSubmissionModel to a domain DealSubmission entity.
func toDealSubmissionDomain(data *model.DealSubmissionModel) *entity.DealSubmission {
	if data == nil {
		return nil
	}

	return &entity.DealSubmission{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		SubmittedBy:     data.SubmittedBy,
		CategoryID:      data.CategoryID,
		Title:           data.Title,
		Description:     data.Description,
		OriginalPrice:   data.OriginalPrice,
		DiscountedPrice: data.DiscountedPrice,
		AvailableCount:  data.AvailableCount,
		ExpiresAt:       data.ExpiresAt,
		Status:          entity.SubmissionStatus(data.Status),
		ReviewedBy:      data.ReviewedBy,
		ReviewedAt:      data.ReviewedAt,
		RejectReason:    data.RejectReason,
		DealID:          data.DealID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toDealSubmissionDomainSlice(models []*model.DealSubmissionModel) []*entity.DealSubmission {
	submissions := make([]*entity.DealSubmission, 0, len(models))
	for _, submissionM := range models {
		submissions = append(submissions, toDealSubmissionDomain(submissionM))
	}

	return submissions
}

// fromDealSubmissionDomain converts a domain DealSubmission entity to a GORM DealSubmissionModel.
func fromDealSubmissionDomain(data *entity.DealSubmission) *model.DealSubmissionModel {
	if data == nil {
		return nil
	}

	return &model.DealSubmissionModel{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		SubmittedBy:     data.SubmittedBy,
		CategoryID:      data.CategoryID,
		Title:           data.Title,
		Description:     data.Description,
		OriginalPrice:   data.OriginalPrice,
		DiscountedPrice: data.DiscountedPrice,
		AvailableCount:  data.AvailableCount,
		ExpiresAt:       data.ExpiresAt,
		Status:          string(data.Status),
		ReviewedBy:      data.ReviewedBy,
		ReviewedAt:      data.ReviewedAt,
		RejectReason:    data.RejectReason,
		DealID:          data.DealID,
	}
}
