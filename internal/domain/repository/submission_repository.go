package repository

import (
	"context"
	"errors"
	"time"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubmissionNotFound is returned when a deal submission is not found.
var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionRepository defines the operations for the persisted deal-submission queue.
type SubmissionRepository interface {
	// Create persists a new submission.
	Create(ctx context.Context, submission *entity.DealSubmission) error

	// FindByID retrieves a submission by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DealSubmission, error)

	// FindByBusiness retrieves a business's submissions, newest first.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.DealSubmission, error)

	// FindPending retrieves pending submissions for admin review, oldest first.
	FindPending(ctx context.Context, limit, offset int) ([]*entity.DealSubmission, error)

	// CountForBusinessSince counts submissions a business has made since the
	// given time. Used for the monthly quota check inside a transaction.
	CountForBusinessSince(ctx context.Context, businessID uuid.UUID, since time.Time) (int64, error)

	// UpdateDecision records an admin decision on a submission.
	UpdateDecision(ctx context.Context, submission *entity.DealSubmission) error
}
