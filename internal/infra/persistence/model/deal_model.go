package model

import (
	"time"

	"github.com/google/uuid"
)

// DealModel mirrors the 'deals' table. Prices are stored in cents;
// available_count is decremented with a conditional UPDATE at purchase time.
type DealModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	OriginalPrice   int64     `gorm:"not null"`
	DiscountedPrice int64     `gorm:"not null"`
	DiscountPercent int       `gorm:"not null;default:0"`
	AvailableCount  int       `gorm:"not null;default:0"`
	IsActive        bool      `gorm:"not null;default:true;index"`
	IsFeatured      bool      `gorm:"not null;default:false"`
	ExpiresAt       time.Time `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Business *BusinessModel `gorm:"foreignKey:BusinessID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (DealModel) TableName() string {
	return "deals"
}

// CategoryModel mirrors the 'categories' table. Slug is the URL-facing key.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
