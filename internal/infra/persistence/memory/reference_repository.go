package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"boxtrack/internal/domain/entity"
	"boxtrack/internal/domain/repository"

	"github.com/google/uuid"
)

type countryRepository struct {
	access access
	now    func() time.Time
}

func (r *countryRepository) Create(_ context.Context, country *entity.Country) error {
	return r.access(func(d *dataset) error {
		if countryTaken(d, country) {
			return repository.ErrDuplicateCountry
		}
		stamp(&country.ID, &country.CreatedAt, &country.UpdatedAt, r.now())
		d.countries[country.ID] = *country

		return nil
	})
}

func (r *countryRepository) Update(_ context.Context, country *entity.Country) error {
	return r.access(func(d *dataset) error {
		stored, ok := d.countries[country.ID]
		if !ok {
			return repository.ErrCountryNotFound
		}
		if countryTaken(d, country) {
			return repository.ErrDuplicateCountry
		}
		country.CreatedAt = stored.CreatedAt
		country.UpdatedAt = r.now()
		d.countries[country.ID] = *country

		return nil
	})
}

func countryTaken(d *dataset, country *entity.Country) bool {
	for id, existing := range d.countries {
		if id == country.ID {
			continue
		}
		if existing.Code == country.Code || strings.EqualFold(existing.Name, country.Name) {
			return true
		}
	}

	return false
}

func (r *countryRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.access(func(d *dataset) error {
		if _, ok := d.countries[id]; !ok {
			return repository.ErrCountryNotFound
		}
		if countReferences(d, func(s entity.Shipment) bool { return s.Receiver.CountryID == id }) > 0 {
			return repository.ErrReferenced
		}
		delete(d.countries, id)

		return nil
	})
}

func (r *countryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Country, error) {
	var found *entity.Country
	err := r.access(func(d *dataset) error {
		country, ok := d.countries[id]
		if !ok {
			return repository.ErrCountryNotFound
		}
		found = &country

		return nil
	})

	return found, err
}

func (r *countryRepository) List(_ context.Context, activeOnly bool) ([]*entity.Country, error) {
	var countries []*entity.Country
	err := r.access(func(d *dataset) error {
		for _, country := range d.countries {
			if activeOnly && !country.IsActive {
				continue
			}
			countries = append(countries, &country)
		}
		sort.Slice(countries, func(i, j int) bool { return countries[i].Name < countries[j].Name })

		return nil
	})

	return countries, err
}

func (r *countryRepository) CountActive(_ context.Context) (int64, error) {
	var n int64
	err := r.access(func(d *dataset) error {
		for _, country := range d.countries {
			if country.IsActive {
				n++
			}
		}

		return nil
	})

	return n, err
}

type boxTypeRepository struct {
	access access
	now    func() time.Time
}

func (r *boxTypeRepository) Create(_ context.Context, box *entity.BoxType) error {
	return r.access(func(d *dataset) error {
		if boxTypeTaken(d, box) {
			return repository.ErrDuplicateBoxType
		}
		stamp(&box.ID, &box.CreatedAt, &box.UpdatedAt, r.now())
		d.boxTypes[box.ID] = *box

		return nil
	})
}

func (r *boxTypeRepository) Update(_ context.Context, box *entity.BoxType) error {
	return r.access(func(d *dataset) error {
		stored, ok := d.boxTypes[box.ID]
		if !ok {
			return repository.ErrBoxTypeNotFound
		}
		if boxTypeTaken(d, box) {
			return repository.ErrDuplicateBoxType
		}
		box.CreatedAt = stored.CreatedAt
		box.UpdatedAt = r.now()
		d.boxTypes[box.ID] = *box

		return nil
	})
}

func boxTypeTaken(d *dataset, box *entity.BoxType) bool {
	for id, existing := range d.boxTypes {
		if id != box.ID && strings.EqualFold(existing.Name, box.Name) {
			return true
		}
	}

	return false
}

func (r *boxTypeRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.access(func(d *dataset) error {
		if _, ok := d.boxTypes[id]; !ok {
			return repository.ErrBoxTypeNotFound
		}
		if countReferences(d, func(s entity.Shipment) bool { return s.BoxTypeID == id }) > 0 {
			return repository.ErrReferenced
		}
		delete(d.boxTypes, id)

		return nil
	})
}

func (r *boxTypeRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.BoxType, error) {
	var found *entity.BoxType
	err := r.access(func(d *dataset) error {
		box, ok := d.boxTypes[id]
		if !ok {
			return repository.ErrBoxTypeNotFound
		}
		found = &box

		return nil
	})

	return found, err
}

func (r *boxTypeRepository) List(_ context.Context, activeOnly bool) ([]*entity.BoxType, error) {
	var boxes []*entity.BoxType
	err := r.access(func(d *dataset) error {
		for _, box := range d.boxTypes {
			if activeOnly && !box.IsActive {
				continue
			}
			boxes = append(boxes, &box)
		}
		sort.Slice(boxes, func(i, j int) bool {
			if boxes[i].BasePrice != boxes[j].BasePrice {
				return boxes[i].BasePrice < boxes[j].BasePrice
			}

			return boxes[i].Name < boxes[j].Name
		})

		return nil
	})

	return boxes, err
}

func (r *boxTypeRepository) CountActive(_ context.Context) (int64, error) {
	var n int64
	err := r.access(func(d *dataset) error {
		for _, box := range d.boxTypes {
			if box.IsActive {
				n++
			}
		}

		return nil
	})

	return n, err
}
