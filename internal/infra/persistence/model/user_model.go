// Package model contains the GORM-specific persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
// Emails are stored lowercased so the unique index is case-insensitive in practice.
type UserModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName     string     `gorm:"type:varchar(100);not null"`
	LastName      string     `gorm:"type:varchar(100);not null"`
	Email         string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash  string     `gorm:"type:varchar(255);not null"`
	DateOfBirth   *time.Time `gorm:"type:date"`
	ContactNumber string     `gorm:"type:varchar(30)"`
	CountryID     *uuid.UUID `gorm:"type:uuid"`
	Role          string     `gorm:"type:varchar(20);not null;default:REGISTERED_USER"`
	IsActive      bool       `gorm:"not null;index"`
	EmailVerified bool       `gorm:"not null;default:false"`
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Country *CountryModel `gorm:"foreignKey:CountryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
