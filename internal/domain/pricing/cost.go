// Package pricing computes shipping costs from reference data.
package pricing

import (
	"math"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
)

// Calculate returns box.BasePrice * country.Multiplier without rounding.
// Either reference being nil fails with ErrInvalidReference.
func Calculate(box *entity.BoxType, country *entity.Country) (float64, error) {
	if box == nil {
		return 0, domainerrors.ErrInvalidReference.WithDetails("box type is missing")
	}
	if country == nil {
		return 0, domainerrors.ErrInvalidReference.WithDetails("country is missing")
	}

	return box.BasePrice * country.Multiplier, nil
}

// CalculateActive is Calculate with the additional requirement that both references are active.
func CalculateActive(box *entity.BoxType, country *entity.Country) (float64, error) {
	if box != nil && !box.IsActive {
		return 0, domainerrors.ErrInvalidReference.WithDetails("box type is inactive")
	}
	if country != nil && !country.IsActive {
		return 0, domainerrors.ErrInvalidReference.WithDetails("country is inactive")
	}

	return Calculate(box, country)
}

// RoundForDisplay rounds a stored amount half away from zero to two decimals.
func RoundForDisplay(amount float64) float64 {
	return math.Round(amount*100) / 100
}
