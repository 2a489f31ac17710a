package entity

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the handling speed a sender paid for.
type Priority string

const (
	PriorityNormal  Priority = "NORMAL"
	PriorityExpress Priority = "EXPRESS"
	PriorityUrgent  Priority = "URGENT"
)

// AllPriorities lists every priority, slowest first.
var AllPriorities = []Priority{PriorityNormal, PriorityExpress, PriorityUrgent}

// IsValid checks if the Priority is a valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityNormal, PriorityExpress, PriorityUrgent:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks whether the shipping cost has been settled.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// Receiver is the contact block embedded in a shipment. The receiver has no account.
type Receiver struct {
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contact_number"`
	Street        string    `json:"street"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zip_code"`
	CountryID     uuid.UUID `json:"country_id"`
}

// FullName joins first and last name.
func (r Receiver) FullName() string {
	if r.LastName == "" {
		return r.FirstName
	}

	return r.FirstName + " " + r.LastName
}

// Shipment is a parcel travelling from a registered sender to a receiver.
// ShippingCost is fixed at creation. ActualDeliveryDate is set only once Status is COMPLETED.
type Shipment struct {
	ID                    uuid.UUID      `json:"id"`
	TrackingNumber        string         `json:"tracking_number"`
	SenderID              uuid.UUID      `json:"sender_id"`
	Receiver              Receiver       `json:"receiver"`
	BoxTypeID             uuid.UUID      `json:"box_type_id"`
	Weight                float64        `json:"weight"`
	Contents              string         `json:"contents"`
	ShippingCost          float64        `json:"shipping_cost"`
	Priority              Priority       `json:"priority"`
	IsFragile             bool           `json:"is_fragile"`
	Status                ShipmentStatus `json:"status"`
	EstimatedDeliveryDate time.Time      `json:"estimated_delivery_date"`
	ActualDeliveryDate    *time.Time     `json:"actual_delivery_date"`
	PaymentStatus         PaymentStatus  `json:"payment_status"`
	PaymentMethod         string         `json:"payment_method,omitempty"`
	IsInsured             bool           `json:"is_insured"`
	InsuranceValue        float64        `json:"insurance_value"`
	Notes                 string         `json:"notes,omitempty"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// IsOwnedBy reports whether userID is the shipment's sender.
func (s *Shipment) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && s.SenderID == userID
}

// ApplyStatus moves the shipment to next at the given time and maintains the delivery date.
// It does not check the transition table.
func (s *Shipment) ApplyStatus(next ShipmentStatus, at time.Time) {
	s.Status = next
	s.UpdatedAt = at
	if next == StatusCompleted {
		delivered := at
		s.ActualDeliveryDate = &delivered
	}
}
