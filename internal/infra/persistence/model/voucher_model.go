package model

import (
	"time"

	"github.com/google/uuid"
)

// VoucherModel mirrors the 'vouchers' table. Code carries a unique index so a
// generator collision surfaces as a constraint violation instead of a silent
// duplicate. Status transitions active -> used happen via a guarded UPDATE.
type VoucherModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code      string    `gorm:"type:varchar(64);unique;not null"`
	DealID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active';index"`
	IssuedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Deal *DealModel `gorm:"foreignKey:DealID"`
	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (VoucherModel) TableName() string {
	return "vouchers"
}
