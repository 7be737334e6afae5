package impl

import (
	"context"

	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minReviewScore = 1
	maxReviewScore = 5
)

type businessService struct {
	txManager    repository.TransactionManager
	businessRepo repository.BusinessRepository
	reviewRepo   repository.ReviewRepository
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BusinessRepo repository.BusinessRepository
	ReviewRepo   repository.ReviewRepository
}

// NewBusinessService creates a new business service instance
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager:    params.TxManager,
		businessRepo: params.BusinessRepo,
		reviewRepo:   params.ReviewRepo,
	}
}

// GetBusiness retrieves a business by ID.
func (s *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := s.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

// ListBusinessesByCity retrieves businesses in a city, best-rated first.
func (s *businessService) ListBusinessesByCity(ctx context.Context, city string, limit, offset int) ([]*entity.Business, error) {
	businesses, err := s.businessRepo.FindByCity(ctx, city, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find businesses by city")
	}

	return businesses, nil
}

// CreateReview records a review and folds its score into the business's
// running-average rating. Both writes share one transaction so the aggregate
// never drifts from the review rows.
func (s *businessService) CreateReview(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Score < minReviewScore || input.Score > maxReviewScore {
		return nil, domainerrors.ErrValidationFailed.WithDetails("review score must be between 1 and 5")
	}

	review := &entity.Review{
		BusinessID: input.BusinessID,
		UserID:     input.UserID,
		Score:      input.Score,
		Comment:    input.Comment,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			return err
		}

		if err := repoFactory.BusinessRepo().AddReviewScore(ctx, input.BusinessID, input.Score); err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessNotFound
			}

			return errors.Wrap(err, "failed to update business rating")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// GetBusinessReviews retrieves reviews for a business, newest first.
func (s *businessService) GetBusinessReviews(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by business")
	}

	return reviews, nil
}
