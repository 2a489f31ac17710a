package model

import (
	"time"

	"github.com/google/uuid"
)

// BoxTypeModel is the GORM-specific struct for the 'box_types' table.
type BoxTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Length      float64   `gorm:"type:numeric(10,2);not null;check:length > 0"`
	Width       float64   `gorm:"type:numeric(10,2);not null;check:width > 0"`
	Height      float64   `gorm:"type:numeric(10,2);not null;check:height > 0"`
	Weight      float64   `gorm:"type:numeric(10,2);not null;check:weight > 0"`
	BasePrice   float64   `gorm:"type:numeric(12,2);not null;check:base_price > 0"`
	Color       string    `gorm:"type:varchar(7)"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BoxTypeModel) TableName() string {
	return "box_types"
}
