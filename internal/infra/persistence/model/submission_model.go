package model

import (
	"time"

	"github.com/google/uuid"
)

// DealSubmissionModel mirrors the 'deal_submissions' table. A submission stays
// pending until an admin decision stamps reviewed_by/reviewed_at; approval also
// records the created deal's ID.
type DealSubmissionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SubmittedBy     uuid.UUID `gorm:"type:uuid;not null"`
	CategoryID      uuid.UUID `gorm:"type:uuid;not null"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	OriginalPrice   int64     `gorm:"not null"`
	DiscountedPrice int64     `gorm:"not null"`
	AvailableCount  int       `gorm:"not null"`
	ExpiresAt       time.Time `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectReason    string    `gorm:"type:text"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	DealID          *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealSubmissionModel) TableName() string {
	return "deal_submissions"
}
