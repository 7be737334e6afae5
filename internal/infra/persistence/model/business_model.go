package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table. Rating is a running average
// maintained in SQL so concurrent reviews never lose an increment.
type BusinessModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Address     string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(100);index"`
	Latitude    float64   `gorm:"type:double precision;not null;default:0"`
	Longitude   float64   `gorm:"type:double precision;not null;default:0"`
	Phone       string    `gorm:"type:varchar(50)"`
	Email       string    `gorm:"type:varchar(255)"`
	Rating      float64   `gorm:"type:numeric(3,2);not null;default:0"`
	ReviewCount int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
