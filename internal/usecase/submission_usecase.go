package usecase

import (
	"context"
	"time"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitDealInput defines the data a business supplies when proposing a deal.
type SubmitDealInput struct {
	BusinessID      uuid.UUID
	SubmittedBy     uuid.UUID
	CategoryID      uuid.UUID
	Title           string
	Description     string
	OriginalPrice   int64
	DiscountedPrice int64
	AvailableCount  int
	ExpiresAt       time.Time
}

// DecideSubmissionInput defines an admin decision on a pending submission.
type DecideSubmissionInput struct {
	SubmissionID uuid.UUID
	AdminID      uuid.UUID
	Approve      bool
	RejectReason string // Required when Approve is false.
	IsFeatured   bool   // Applied to the created deal on approval.
}

// SubmissionUsecase defines the interface for the moderated deal pipeline.
type SubmissionUsecase interface {
	// SubmitDeal queues a deal proposal for admin review. The monthly
	// submission quota is checked inside the same transaction as the insert.
	SubmitDeal(ctx context.Context, input SubmitDealInput) (*entity.DealSubmission, error)

	// GetBusinessSubmissions retrieves a business's submissions, newest first.
	GetBusinessSubmissions(ctx context.Context, businessID uuid.UUID) ([]*entity.DealSubmission, error)

	// GetPendingSubmissions retrieves the admin review queue, oldest first.
	GetPendingSubmissions(ctx context.Context, limit, offset int) ([]*entity.DealSubmission, error)

	// DecideSubmission records an admin decision. Approval creates the Deal in
	// the same transaction; a decided submission cannot be decided again.
	DecideSubmission(ctx context.Context, input DecideSubmissionInput) (*entity.DealSubmission, error)
}
