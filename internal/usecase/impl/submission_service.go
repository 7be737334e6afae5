package impl

import (
	"context"
	"time"

	"dealspot/config"
	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMonthlyQuota = 10

type submissionService struct {
	txManager      repository.TransactionManager
	submissionRepo repository.SubmissionRepository
	config         *config.Config
}

// SubmissionServiceParams holds dependencies for SubmissionService, injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	SubmissionRepo repository.SubmissionRepository
	Config         *config.Config
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	return &submissionService{
		txManager:      params.TxManager,
		submissionRepo: params.SubmissionRepo,
		config:         params.Config,
	}
}

func (s *submissionService) monthlyQuota() int64 {
	if s.config != nil && s.config.Submission != nil && s.config.Submission.MonthlyQuota > 0 {
		return int64(s.config.Submission.MonthlyQuota)
	}

	return defaultMonthlyQuota
}

// SubmitDeal queues a deal proposal for admin review. The quota count and the
// insert run in one transaction so concurrent submissions cannot slip past the
// monthly limit.
func (s *submissionService) SubmitDeal(ctx context.Context, input usecase.SubmitDealInput) (*entity.DealSubmission, error) {
	if input.DiscountedPrice <= 0 || input.DiscountedPrice >= input.OriginalPrice {
		return nil, domainerrors.ErrValidationFailed.WithDetails("discounted price must be positive and below the original price")
	}
	if input.ExpiresAt.Before(time.Now()) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("deal expiry must be in the future")
	}

	submission := &entity.DealSubmission{
		BusinessID:      input.BusinessID,
		SubmittedBy:     input.SubmittedBy,
		CategoryID:      input.CategoryID,
		Title:           input.Title,
		Description:     input.Description,
		OriginalPrice:   input.OriginalPrice,
		DiscountedPrice: input.DiscountedPrice,
		AvailableCount:  input.AvailableCount,
		ExpiresAt:       input.ExpiresAt,
		Status:          entity.SubmissionStatusPending,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		submissionRepo := repoFactory.SubmissionRepo()

		monthStart := startOfMonth(time.Now())
		count, err := submissionRepo.CountForBusinessSince(ctx, input.BusinessID, monthStart)
		if err != nil {
			return errors.Wrap(err, "failed to count submissions")
		}
		if count >= s.monthlyQuota() {
			return domainerrors.ErrSubmissionQuotaExceeded
		}

		return submissionRepo.Create(ctx, submission)
	})
	if err != nil {
		return nil, err
	}

	return submission, nil
}

// startOfMonth truncates a time to the first instant of its calendar month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// GetBusinessSubmissions retrieves a business's submissions, newest first.
func (s *submissionService) GetBusinessSubmissions(ctx context.Context, businessID uuid.UUID) ([]*entity.DealSubmission, error) {
	submissions, err := s.submissionRepo.FindByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find submissions by business")
	}

	return submissions, nil
}

// GetPendingSubmissions retrieves the admin review queue, oldest first.
func (s *submissionService) GetPendingSubmissions(ctx context.Context, limit, offset int) ([]*entity.DealSubmission, error) {
	submissions, err := s.submissionRepo.FindPending(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending submissions")
	}

	return submissions, nil
}

// DecideSubmission records an admin decision. Approval creates the Deal and
// stamps the submission with its ID in the same transaction, so an approved
// submission always points at a real deal.
func (s *submissionService) DecideSubmission(ctx context.Context, input usecase.DecideSubmissionInput) (*entity.DealSubmission, error) {
	if !input.Approve && input.RejectReason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a rejection requires a reason")
	}

	var decided *entity.DealSubmission

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		submissionRepo := repoFactory.SubmissionRepo()

		submission, err := submissionRepo.FindByID(ctx, input.SubmissionID)
		if err != nil {
			if errors.Is(err, repository.ErrSubmissionNotFound) {
				return domainerrors.ErrSubmissionNotFound
			}

			return errors.Wrap(err, "failed to find submission")
		}

		if submission.Status != entity.SubmissionStatusPending {
			return domainerrors.ErrSubmissionAlreadyDecided
		}

		now := time.Now()
		submission.ReviewedBy = &input.AdminID
		submission.ReviewedAt = &now

		if input.Approve {
			deal := &entity.Deal{
				BusinessID:      submission.BusinessID,
				CategoryID:      submission.CategoryID,
				Title:           submission.Title,
				Description:     submission.Description,
				OriginalPrice:   submission.OriginalPrice,
				DiscountedPrice: submission.DiscountedPrice,
				DiscountPercent: discountPercent(submission.OriginalPrice, submission.DiscountedPrice),
				IsActive:        true,
				IsFeatured:      input.IsFeatured,
				AvailableCount:  submission.AvailableCount,
				ExpiresAt:       submission.ExpiresAt,
			}
			if err := repoFactory.DealRepo().Create(ctx, deal); err != nil {
				return errors.Wrap(err, "failed to create approved deal")
			}

			submission.Status = entity.SubmissionStatusApproved
			submission.DealID = &deal.ID
		} else {
			submission.Status = entity.SubmissionStatusRejected
			submission.RejectReason = input.RejectReason
		}

		if err := submissionRepo.UpdateDecision(ctx, submission); err != nil {
			return errors.Wrap(err, "failed to record submission decision")
		}

		decided = submission

		return nil
	})
	if err != nil {
		return nil, err
	}

	return decided, nil
}
