package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/repository"

	"github.com/google/uuid"
)

type shipmentRepository struct {
	access access
	now    func() time.Time
}

func (r *shipmentRepository) Create(_ context.Context, shipment *entity.Shipment) error {
	return r.access(func(d *dataset) error {
		for _, existing := range d.shipments {
			if existing.TrackingNumber == shipment.TrackingNumber {
				return repository.ErrDuplicateTrackingNumber
			}
		}
		if _, ok := d.boxTypes[shipment.BoxTypeID]; !ok {
			return domainerrors.ErrInvalidReference.WithDetails("box type does not exist")
		}
		if _, ok := d.countries[shipment.Receiver.CountryID]; !ok {
			return domainerrors.ErrInvalidReference.WithDetails("country does not exist")
		}

		stamp(&shipment.ID, &shipment.CreatedAt, &shipment.UpdatedAt, r.now())
		d.shipments[shipment.ID] = *shipment

		return nil
	})
}

func (r *shipmentRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Shipment, error) {
	var found *entity.Shipment
	err := r.access(func(d *dataset) error {
		shipment, ok := d.shipments[id]
		if !ok {
			return repository.ErrShipmentNotFound
		}
		found = &shipment

		return nil
	})

	return found, err
}

func (r *shipmentRepository) FindByTrackingNumber(_ context.Context, trackingNumber string) (*entity.Shipment, error) {
	var found *entity.Shipment
	err := r.access(func(d *dataset) error {
		for _, shipment := range d.shipments {
			if shipment.TrackingNumber == trackingNumber {
				found = &shipment

				return nil
			}
		}

		return repository.ErrShipmentNotFound
	})

	return found, err
}

func (r *shipmentRepository) UpdateStatus(_ context.Context, shipment *entity.Shipment, expected entity.ShipmentStatus) error {
	return r.access(func(d *dataset) error {
		stored, ok := d.shipments[shipment.ID]
		if !ok {
			return repository.ErrShipmentNotFound
		}
		if stored.Status != expected {
			return repository.ErrStatusConflict
		}

		stored.Status = shipment.Status
		stored.ActualDeliveryDate = shipment.ActualDeliveryDate
		stored.UpdatedAt = shipment.UpdatedAt
		d.shipments[shipment.ID] = stored

		return nil
	})
}

func (r *shipmentRepository) UpdatePayment(_ context.Context, id uuid.UUID, status entity.PaymentStatus, method string) error {
	return r.access(func(d *dataset) error {
		stored, ok := d.shipments[id]
		if !ok {
			return repository.ErrShipmentNotFound
		}

		stored.PaymentStatus = status
		stored.PaymentMethod = method
		stored.UpdatedAt = r.now()
		d.shipments[id] = stored

		return nil
	})
}

func (r *shipmentRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.access(func(d *dataset) error {
		if _, ok := d.shipments[id]; !ok {
			return repository.ErrShipmentNotFound
		}
		delete(d.shipments, id)
		delete(d.events, id)

		return nil
	})
}

func (r *shipmentRepository) List(_ context.Context, query repository.ShipmentQuery) ([]*entity.Shipment, int64, error) {
	var (
		page  []*entity.Shipment
		total int64
	)
	err := r.access(func(d *dataset) error {
		matched := make([]entity.Shipment, 0, len(d.shipments))
		for _, shipment := range d.shipments {
			if matches(shipment, query) {
				matched = append(matched, shipment)
			}
		}
		sort.Slice(matched, func(i, j int) bool {
			if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
				return matched[i].CreatedAt.After(matched[j].CreatedAt)
			}

			return matched[i].ID.String() > matched[j].ID.String()
		})

		total = int64(len(matched))
		start := min(max(query.Offset, 0), len(matched))
		end := len(matched)
		if query.Limit > 0 {
			end = min(start+query.Limit, len(matched))
		}
		page = make([]*entity.Shipment, 0, end-start)
		for i := start; i < end; i++ {
			page = append(page, &matched[i])
		}

		return nil
	})

	return page, total, err
}

func matches(shipment entity.Shipment, query repository.ShipmentQuery) bool {
	if query.SenderID != nil && shipment.SenderID != *query.SenderID {
		return false
	}
	if len(query.Statuses) > 0 && !slices.Contains(query.Statuses, shipment.Status) {
		return false
	}
	if slices.Contains(query.ExcludeStatuses, shipment.Status) {
		return false
	}
	if query.Priority != nil && shipment.Priority != *query.Priority {
		return false
	}
	if query.Search != "" {
		needle := strings.ToLower(query.Search)
		if !strings.Contains(strings.ToLower(shipment.TrackingNumber), needle) &&
			!strings.Contains(strings.ToLower(shipment.Receiver.Email), needle) {
			return false
		}
	}

	return true
}

func (r *shipmentRepository) CountByStatus(_ context.Context, senderID *uuid.UUID) ([]repository.StatusCount, error) {
	var counts []repository.StatusCount
	err := r.access(func(d *dataset) error {
		byStatus := make(map[entity.ShipmentStatus]int64)
		for _, shipment := range d.shipments {
			if senderID == nil || shipment.SenderID == *senderID {
				byStatus[shipment.Status]++
			}
		}
		for _, status := range entity.AllShipmentStatuses {
			if n, ok := byStatus[status]; ok {
				counts = append(counts, repository.StatusCount{Status: status, Count: n})
			}
		}

		return nil
	})

	return counts, err
}

func (r *shipmentRepository) SumPaid(_ context.Context, senderID *uuid.UUID) (*repository.RevenueSummary, error) {
	summary := &repository.RevenueSummary{}
	err := r.access(func(d *dataset) error {
		for _, shipment := range d.shipments {
			if shipment.PaymentStatus != entity.PaymentPaid {
				continue
			}
			if senderID != nil && shipment.SenderID != *senderID {
				continue
			}
			summary.Total += shipment.ShippingCost
			summary.Count++
		}
		if summary.Count > 0 {
			summary.Average = summary.Total / float64(summary.Count)
		}

		return nil
	})

	return summary, err
}

func (r *shipmentRepository) TopDestinations(_ context.Context, limit int) ([]repository.ReferenceUsage, error) {
	var usage []repository.ReferenceUsage
	err := r.access(func(d *dataset) error {
		usage = rank(d, limit, func(s entity.Shipment) uuid.UUID { return s.Receiver.CountryID }, func(id uuid.UUID) string {
			return d.countries[id].Name
		})

		return nil
	})

	return usage, err
}

func (r *shipmentRepository) TopBoxTypes(_ context.Context, limit int) ([]repository.ReferenceUsage, error) {
	var usage []repository.ReferenceUsage
	err := r.access(func(d *dataset) error {
		usage = rank(d, limit, func(s entity.Shipment) uuid.UUID { return s.BoxTypeID }, func(id uuid.UUID) string {
			return d.boxTypes[id].Name
		})

		return nil
	})

	return usage, err
}

func rank(d *dataset, limit int, key func(entity.Shipment) uuid.UUID, name func(uuid.UUID) string) []repository.ReferenceUsage {
	counts := make(map[uuid.UUID]int64)
	for _, shipment := range d.shipments {
		counts[key(shipment)]++
	}

	usage := make([]repository.ReferenceUsage, 0, len(counts))
	for id, n := range counts {
		usage = append(usage, repository.ReferenceUsage{ID: id, Name: name(id), Count: n})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Count != usage[j].Count {
			return usage[i].Count > usage[j].Count
		}

		return usage[i].Name < usage[j].Name
	})
	if limit > 0 && len(usage) > limit {
		usage = usage[:limit]
	}

	return usage
}

func (r *shipmentRepository) CountByCountry(_ context.Context, countryID uuid.UUID) (int64, error) {
	var n int64
	err := r.access(func(d *dataset) error {
		n = countReferences(d, func(s entity.Shipment) bool { return s.Receiver.CountryID == countryID })

		return nil
	})

	return n, err
}

func (r *shipmentRepository) CountByBoxType(_ context.Context, boxTypeID uuid.UUID) (int64, error) {
	var n int64
	err := r.access(func(d *dataset) error {
		n = countReferences(d, func(s entity.Shipment) bool { return s.BoxTypeID == boxTypeID })

		return nil
	})

	return n, err
}

func countReferences(d *dataset, match func(entity.Shipment) bool) int64 {
	var n int64
	for _, shipment := range d.shipments {
		if match(shipment) {
			n++
		}
	}

	return n
}

func createdIn(shipment entity.Shipment, rng repository.CreatedRange) bool {
	if rng.From != nil && shipment.CreatedAt.Before(*rng.From) {
		return false
	}

	return rng.To == nil || shipment.CreatedAt.Before(*rng.To)
}

func (r *shipmentRepository) CountByPriority(_ context.Context, rng repository.CreatedRange) ([]repository.PriorityCount, error) {
	var counts []repository.PriorityCount
	err := r.access(func(d *dataset) error {
		byPriority := make(map[entity.Priority]int64)
		for _, shipment := range d.shipments {
			if createdIn(shipment, rng) {
				byPriority[shipment.Priority]++
			}
		}
		for _, priority := range entity.AllPriorities {
			if n, ok := byPriority[priority]; ok {
				counts = append(counts, repository.PriorityCount{Priority: priority, Count: n})
			}
		}

		return nil
	})

	return counts, err
}

func (r *shipmentRepository) RevenueByDestination(_ context.Context, rng repository.CreatedRange) ([]repository.DestinationRevenue, error) {
	var rows []repository.DestinationRevenue
	err := r.access(func(d *dataset) error {
		byCountry := make(map[uuid.UUID]*repository.DestinationRevenue)
		for _, shipment := range d.shipments {
			if !createdIn(shipment, rng) {
				continue
			}
			row, ok := byCountry[shipment.Receiver.CountryID]
			if !ok {
				countryID := shipment.Receiver.CountryID
				row = &repository.DestinationRevenue{ID: countryID, Name: d.countries[countryID].Name}
				byCountry[countryID] = row
			}
			row.Count++
			row.Revenue += shipment.ShippingCost
		}

		rows = make([]repository.DestinationRevenue, 0, len(byCountry))
		for _, row := range byCountry {
			rows = append(rows, *row)
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Count != rows[j].Count {
				return rows[i].Count > rows[j].Count
			}

			return rows[i].Name < rows[j].Name
		})

		return nil
	})

	return rows, err
}

func (r *shipmentRepository) DeliveryTimes(_ context.Context, rng repository.CreatedRange) (*repository.DeliveryTimeSummary, error) {
	summary := &repository.DeliveryTimeSummary{}
	err := r.access(func(d *dataset) error {
		var total float64
		for _, shipment := range d.shipments {
			if shipment.Status != entity.StatusCompleted || shipment.ActualDeliveryDate == nil || !createdIn(shipment, rng) {
				continue
			}

			days := shipment.ActualDeliveryDate.Sub(shipment.CreatedAt).Hours() / 24
			if summary.Count == 0 || days < summary.MinDays {
				summary.MinDays = days
			}
			if summary.Count == 0 || days > summary.MaxDays {
				summary.MaxDays = days
			}
			total += days
			summary.Count++
		}
		if summary.Count > 0 {
			summary.AverageDays = total / float64(summary.Count)
		}

		return nil
	})

	return summary, err
}

func (r *shipmentRepository) FindOverdue(_ context.Context, from, to time.Time) ([]*entity.Shipment, error) {
	var overdue []*entity.Shipment
	err := r.access(func(d *dataset) error {
		for _, shipment := range d.shipments {
			if shipment.Status.IsTerminal() {
				continue
			}
			eta := shipment.EstimatedDeliveryDate
			if eta.After(from) && !eta.After(to) {
				overdue = append(overdue, &shipment)
			}
		}
		sort.Slice(overdue, func(i, j int) bool {
			return overdue[i].EstimatedDeliveryDate.Before(overdue[j].EstimatedDeliveryDate)
		})

		return nil
	})

	return overdue, err
}

type trackingEventRepository struct {
	access access
}

func (r *trackingEventRepository) Append(_ context.Context, event *entity.TrackingEvent) error {
	return r.access(func(d *dataset) error {
		if _, ok := d.shipments[event.ShipmentID]; !ok {
			return repository.ErrShipmentNotFound
		}
		if event.ID == uuid.Nil {
			event.ID = uuid.New()
		}
		d.events[event.ShipmentID] = append(d.events[event.ShipmentID], *event)

		return nil
	})
}

func (r *trackingEventRepository) ListByShipment(_ context.Context, shipmentID uuid.UUID) ([]*entity.TrackingEvent, error) {
	var events []*entity.TrackingEvent
	err := r.access(func(d *dataset) error {
		ledger := append([]entity.TrackingEvent(nil), d.events[shipmentID]...)
		sort.SliceStable(ledger, func(i, j int) bool {
			return ledger[i].Timestamp.Before(ledger[j].Timestamp)
		})
		events = make([]*entity.TrackingEvent, 0, len(ledger))
		for i := range ledger {
			events = append(events, &ledger[i])
		}

		return nil
	})

	return events, err
}

func (r *trackingEventRepository) Latest(ctx context.Context, shipmentID uuid.UUID) (*entity.TrackingEvent, error) {
	events, err := r.ListByShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, repository.ErrShipmentNotFound
	}

	return events[len(events)-1], nil
}

func (r *trackingEventRepository) DeleteByShipment(_ context.Context, shipmentID uuid.UUID) (int64, error) {
	var removed int64
	err := r.access(func(d *dataset) error {
		removed = int64(len(d.events[shipmentID]))
		delete(d.events, shipmentID)

		return nil
	})

	return removed, err
}
