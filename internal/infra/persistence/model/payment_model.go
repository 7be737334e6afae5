package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessPaymentModel mirrors the 'business_payments' table. The unique index
// on voucher_id guarantees at most one payout row per redeemed voucher.
type BusinessPaymentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VoucherID   uuid.UUID `gorm:"type:uuid;unique;not null"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      int64     `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	TransferRef string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessPaymentModel) TableName() string {
	return "business_payments"
}
