package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus is the moderation state of a business deal submission.
type SubmissionStatus string

const (
	// SubmissionStatusPending means the submission awaits admin review.
	SubmissionStatusPending SubmissionStatus = "pending"
	// SubmissionStatusApproved means an admin approved it and a Deal was created.
	SubmissionStatusApproved SubmissionStatus = "approved"
	// SubmissionStatusRejected means an admin rejected it.
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// DealSubmission is a business's proposed deal awaiting admin moderation.
// Submissions are persisted rows, not process-local state, so the queue
// survives restarts and is shared across server instances.
type DealSubmission struct {
	ID              uuid.UUID        `json:"id"`                      // The Global Unique Identifier (GUID) for the submission.
	BusinessID      uuid.UUID        `json:"business_id"`            // The submitting business.
	SubmittedBy     uuid.UUID        `json:"submitted_by"`           // The business member who submitted it.
	CategoryID      uuid.UUID        `json:"category_id"`            // The proposed deal category.
	Title           string           `json:"title"`                  // Proposed deal title.
	Description     string           `json:"description"`            // Proposed deal description.
	OriginalPrice   int64            `json:"original_price"`         // Proposed original price in cents.
	DiscountedPrice int64            `json:"discounted_price"`       // Proposed discounted price in cents.
	AvailableCount  int              `json:"available_count"`        // Proposed voucher stock.
	ExpiresAt       time.Time        `json:"expires_at"`             // Proposed deal expiry.
	Status          SubmissionStatus `json:"status"`                 // Moderation state.
	ReviewedBy      *uuid.UUID       `json:"reviewed_by,omitempty"`  // The admin who decided, once decided.
	ReviewedAt      *time.Time       `json:"reviewed_at,omitempty"`  // When the decision was made.
	RejectReason    string           `json:"reject_reason"`          // Reason supplied on rejection.
	DealID          *uuid.UUID       `json:"deal_id,omitempty"`      // The Deal created on approval.
	CreatedAt       time.Time        `json:"created_at"`             // Timestamp of when this record was created.
	UpdatedAt       time.Time        `json:"updated_at"`             // Timestamp of the last modification.
}
