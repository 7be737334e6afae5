package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel mirrors the 'reservations' table.
type ReservationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;index"`
	PartySize   int       `gorm:"not null"`
	ReservedFor time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'confirmed'"`
	Note        string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
