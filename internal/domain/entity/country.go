// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Continent is the closed set of continents a destination country belongs to.
type Continent string

const (
	ContinentAfrica       Continent = "Africa"
	ContinentAntarctica   Continent = "Antarctica"
	ContinentAsia         Continent = "Asia"
	ContinentEurope       Continent = "Europe"
	ContinentNorthAmerica Continent = "North America"
	ContinentOceania      Continent = "Oceania"
	ContinentSouthAmerica Continent = "South America"
)

// IsValid checks if the Continent is a valid value.
func (c Continent) IsValid() bool {
	switch c {
	case ContinentAfrica, ContinentAntarctica, ContinentAsia, ContinentEurope,
		ContinentNorthAmerica, ContinentOceania, ContinentSouthAmerica:
		return true
	default:
		return false
	}
}

// ShippingZone groups countries into price bands.
type ShippingZone string

const (
	ShippingZoneDomestic ShippingZone = "domestic"
	ShippingZone1        ShippingZone = "zone1"
	ShippingZone2        ShippingZone = "zone2"
	ShippingZone3        ShippingZone = "zone3"
)

// IsValid checks if the ShippingZone is a valid value.
func (z ShippingZone) IsValid() bool {
	switch z {
	case ShippingZoneDomestic, ShippingZone1, ShippingZone2, ShippingZone3:
		return true
	default:
		return false
	}
}

// Country is a shipping destination with its price multiplier.
type Country struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Code         string       `json:"code"`          // ISO 3166-1 alpha-2, always uppercase.
	CurrencyCode string       `json:"currency_code"` // ISO 4217, three letters.
	Multiplier   float64      `json:"multiplier"`    // Applied to a box's base price; never negative.
	Continent    Continent    `json:"continent"`
	ShippingZone ShippingZone `json:"shipping_zone"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
