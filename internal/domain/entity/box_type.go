package entity

import (
	"time"

	"github.com/google/uuid"
)

// BoxType is a parcel size tier with its base price.
// Dimensions are centimetres and weight is kilograms; all are strictly positive.
type BoxType struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Length      float64   `json:"length"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	Weight      float64   `json:"weight"`
	BasePrice   float64   `json:"base_price"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Volume returns the box volume in cubic centimetres.
func (b *BoxType) Volume() float64 {
	return b.Length * b.Width * b.Height
}
