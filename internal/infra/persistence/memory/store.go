// Package memory is an in-process implementation of the repository interfaces.
// Transactions are serialized and run on a copy of the data set, which replaces
// the live one only when the callback succeeds.
package memory

import (
	"context"
	"sync"
	"time"

	"boxtrack/internal/domain/entity"
	"boxtrack/internal/domain/repository"

	"github.com/google/uuid"
)

type dataset struct {
	shipments map[uuid.UUID]entity.Shipment
	events    map[uuid.UUID][]entity.TrackingEvent // keyed by shipment
	countries map[uuid.UUID]entity.Country
	boxTypes  map[uuid.UUID]entity.BoxType
	users     map[uuid.UUID]entity.User
	devices   map[uuid.UUID]entity.UserDevice
	logs      []entity.NotificationLog
}

func newDataset() *dataset {
	return &dataset{
		shipments: make(map[uuid.UUID]entity.Shipment),
		events:    make(map[uuid.UUID][]entity.TrackingEvent),
		countries: make(map[uuid.UUID]entity.Country),
		boxTypes:  make(map[uuid.UUID]entity.BoxType),
		users:     make(map[uuid.UUID]entity.User),
		devices:   make(map[uuid.UUID]entity.UserDevice),
	}
}

func (d *dataset) clone() *dataset {
	c := newDataset()
	for k, v := range d.shipments {
		c.shipments[k] = v
	}
	for k, v := range d.events {
		c.events[k] = append([]entity.TrackingEvent(nil), v...)
	}
	for k, v := range d.countries {
		c.countries[k] = v
	}
	for k, v := range d.boxTypes {
		c.boxTypes[k] = v
	}
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.devices {
		c.devices[k] = v
	}
	c.logs = append([]entity.NotificationLog(nil), d.logs...)

	return c
}

// access runs fn against a data set with exclusive access.
type access func(fn func(d *dataset) error) error

// Store holds every table in memory. The zero value is not usable; call NewStore.
type Store struct {
	mu   sync.Mutex
	data *dataset
	now  func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: newDataset(), now: time.Now}
}

func (s *Store) with(fn func(d *dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

// Execute implements repository.TransactionManager.
func (s *Store) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	direct := func(inner func(d *dataset) error) error {
		return inner(snapshot)
	}
	if err := fn(&repositoryFactory{access: direct, now: s.now}); err != nil {
		return err
	}
	s.data = snapshot

	return nil
}

type repositoryFactory struct {
	access access
	now    func() time.Time
}

func (f *repositoryFactory) ShipmentRepo() repository.ShipmentRepository {
	return &shipmentRepository{access: f.access, now: f.now}
}

func (f *repositoryFactory) TrackingEventRepo() repository.TrackingEventRepository {
	return &trackingEventRepository{access: f.access}
}

func (f *repositoryFactory) CountryRepo() repository.CountryRepository {
	return &countryRepository{access: f.access, now: f.now}
}

func (f *repositoryFactory) BoxTypeRepo() repository.BoxTypeRepository {
	return &boxTypeRepository{access: f.access, now: f.now}
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{access: f.access, now: f.now}
}

func (s *Store) factory() *repositoryFactory {
	return &repositoryFactory{access: s.with, now: s.now}
}

// Shipments returns a repository that reads and writes outside any transaction.
func (s *Store) Shipments() repository.ShipmentRepository { return s.factory().ShipmentRepo() }

// TrackingEvents returns the ledger repository.
func (s *Store) TrackingEvents() repository.TrackingEventRepository {
	return s.factory().TrackingEventRepo()
}

func (s *Store) Countries() repository.CountryRepository { return s.factory().CountryRepo() }

func (s *Store) BoxTypes() repository.BoxTypeRepository { return s.factory().BoxTypeRepo() }

func (s *Store) Users() repository.UserRepository { return s.factory().UserRepo() }

func (s *Store) Devices() repository.DeviceRepository {
	return &deviceRepository{access: s.with, now: s.now}
}

func (s *Store) Notifications() repository.NotificationRepository {
	return &notificationRepository{access: s.with}
}

func stamp(id *uuid.UUID, createdAt, updatedAt *time.Time, now time.Time) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}
