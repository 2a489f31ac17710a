package model

import (
	"time"

	"github.com/google/uuid"
)

// CountryModel is the GORM-specific struct for the 'countries' table.
type CountryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Code         string    `gorm:"type:char(2);not null;uniqueIndex"`
	CurrencyCode string    `gorm:"type:char(3);not null"`
	Multiplier   float64   `gorm:"type:numeric(10,4);not null;check:multiplier >= 0"`
	Continent    string    `gorm:"type:varchar(20);not null"`
	ShippingZone string    `gorm:"type:varchar(20);not null"`
	IsActive     bool      `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}
