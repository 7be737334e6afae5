package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	CustomerProfile *CustomerProfileModel `gorm:"foreignKey:UserID"`
	BusinessProfile *BusinessMemberModel  `gorm:"foreignKey:UserID"`
	AdminProfile    *AdminProfileModel    `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CustomerProfileModel mirrors the 'customer_profiles' table. UserID references users.id (UUID).
type CustomerProfileModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	City      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}

// BusinessMemberModel mirrors the 'business_members' table. UserID references users.id (UUID).
type BusinessMemberModel struct {
	UserID     uuid.UUID `gorm:"primaryKey"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   string    `gorm:"type:varchar(100)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessMemberModel) TableName() string {
	return "business_members"
}

// AdminProfileModel mirrors the 'admin_profiles' table. UserID references users.id (UUID).
type AdminProfileModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminProfileModel) TableName() string {
	return "admin_profiles"
}
