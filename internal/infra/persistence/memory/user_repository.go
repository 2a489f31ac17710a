package memory

import (
	"context"
	"time"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	access access
	now    func() time.Time
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	err := r.access(func(d *dataset) error {
		user, ok := d.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = &user

		return nil
	})

	return found, err
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)

	var found *entity.User
	err := r.access(func(d *dataset) error {
		for _, user := range d.users {
			if user.Email == email {
				found = &user

				return nil
			}
		}

		return repository.ErrUserNotFound
	})

	return found, err
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	return r.access(func(d *dataset) error {
		if err := checkUser(d, user); err != nil {
			return err
		}
		user.Email = entity.NormalizeEmail(user.Email)
		stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt, r.now())
		d.users[user.ID] = *user

		return nil
	})
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	return r.access(func(d *dataset) error {
		if _, ok := d.users[user.ID]; !ok {
			return repository.ErrUserNotFound
		}
		if err := checkUser(d, user); err != nil {
			return err
		}
		user.Email = entity.NormalizeEmail(user.Email)
		user.UpdatedAt = r.now()
		d.users[user.ID] = *user

		return nil
	})
}

func checkUser(d *dataset, user *entity.User) error {
	email := entity.NormalizeEmail(user.Email)
	for id, existing := range d.users {
		if id != user.ID && existing.Email == email {
			return repository.ErrDuplicateEmail
		}
	}
	if user.CountryID != nil {
		if _, ok := d.countries[*user.CountryID]; !ok {
			return domainerrors.ErrInvalidReference.WithDetails("country does not exist")
		}
	}

	return nil
}

func (r *userRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.access(func(d *dataset) error {
		if _, ok := d.users[id]; !ok {
			return repository.ErrUserNotFound
		}
		if countReferences(d, func(s entity.Shipment) bool { return s.SenderID == id }) > 0 {
			return repository.ErrUserHasShipments
		}
		for deviceID, device := range d.devices {
			if device.UserID == id {
				delete(d.devices, deviceID)
			}
		}
		delete(d.users, id)

		return nil
	})
}

func (r *userRepository) CountActive(_ context.Context) (int64, error) {
	var n int64
	err := r.access(func(d *dataset) error {
		for _, user := range d.users {
			if user.IsActive {
				n++
			}
		}

		return nil
	})

	return n, err
}
