package memory

import (
	"context"
	"sort"
	"time"

	"boxtrack/internal/domain/entity"
	"boxtrack/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceRepository struct {
	access access
	now    func() time.Time
}

func (r *deviceRepository) CreateDevice(_ context.Context, device *entity.UserDevice) error {
	return r.access(func(d *dataset) error {
		for _, existing := range d.devices {
			if existing.UserID == device.UserID && existing.DeviceID == device.DeviceID {
				return repository.ErrDuplicateDevice
			}
		}
		stamp(&device.ID, &device.CreatedAt, &device.UpdatedAt, r.now())
		d.devices[device.ID] = *device

		return nil
	})
}

func (r *deviceRepository) FindDeviceByID(_ context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var found *entity.UserDevice
	err := r.access(func(d *dataset) error {
		device, ok := d.devices[id]
		if !ok {
			return repository.ErrDeviceNotFound
		}
		found = &device

		return nil
	})

	return found, err
}

func (r *deviceRepository) FindDevicesByUser(_ context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return r.devicesOf(userID, false)
}

func (r *deviceRepository) FindActiveDevicesByUser(_ context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return r.devicesOf(userID, true)
}

func (r *deviceRepository) devicesOf(userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error) {
	var devices []*entity.UserDevice
	err := r.access(func(d *dataset) error {
		for _, device := range d.devices {
			if device.UserID != userID || (activeOnly && !device.IsActive) {
				continue
			}
			devices = append(devices, &device)
		}
		sort.Slice(devices, func(i, j int) bool { return devices[i].CreatedAt.After(devices[j].CreatedAt) })

		return nil
	})

	return devices, err
}

func (r *deviceRepository) UpdateFCMToken(_ context.Context, deviceID uuid.UUID, fcmToken string) error {
	return r.update(deviceID, func(device *entity.UserDevice) {
		device.FCMToken = fcmToken
		device.IsActive = true
		device.LastSeenAt = device.UpdatedAt
	})
}

func (r *deviceRepository) DeactivateDevice(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(device *entity.UserDevice) {
		device.IsActive = false
	})
}

func (r *deviceRepository) update(id uuid.UUID, apply func(device *entity.UserDevice)) error {
	return r.access(func(d *dataset) error {
		device, ok := d.devices[id]
		if !ok {
			return repository.ErrDeviceNotFound
		}
		device.UpdatedAt = r.now()
		apply(&device)
		d.devices[id] = device

		return nil
	})
}

func (r *deviceRepository) DeleteDevice(_ context.Context, id uuid.UUID) error {
	return r.access(func(d *dataset) error {
		if _, ok := d.devices[id]; !ok {
			return repository.ErrDeviceNotFound
		}
		delete(d.devices, id)

		return nil
	})
}

type notificationRepository struct {
	access access
}

func (r *notificationRepository) BatchCreateNotificationLogs(_ context.Context, logs []*entity.NotificationLog) error {
	return r.access(func(d *dataset) error {
		for _, log := range logs {
			if log.ID == uuid.Nil {
				log.ID = uuid.New()
			}
			d.logs = append(d.logs, *log)
		}

		return nil
	})
}

func (r *notificationRepository) CountByEvent(_ context.Context, eventID uuid.UUID) (int64, error) {
	var n int64
	err := r.access(func(d *dataset) error {
		for _, log := range d.logs {
			if log.EventID == eventID {
				n++
			}
		}

		return nil
	})

	return n, err
}
