package entity

import "strings"

// ShipmentStatus is the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusCreated   ShipmentStatus = "CREATED"
	StatusReceived  ShipmentStatus = "RECEIVED"
	StatusInTransit ShipmentStatus = "IN_TRANSIT"
	StatusCompleted ShipmentStatus = "COMPLETED"
	StatusCancelled ShipmentStatus = "CANCELLED"
)

// AllShipmentStatuses lists every status in lifecycle order.
var AllShipmentStatuses = []ShipmentStatus{
	StatusCreated,
	StatusReceived,
	StatusInTransit,
	StatusCompleted,
	StatusCancelled,
}

// shipmentTransitions maps each status to the statuses it may move to.
// Terminal statuses have no entry. A status never maps to itself.
var shipmentTransitions = map[ShipmentStatus]map[ShipmentStatus]struct{}{
	StatusCreated: {
		StatusReceived:  {},
		StatusInTransit: {},
		StatusCompleted: {},
		StatusCancelled: {},
	},
	StatusReceived: {
		StatusInTransit: {},
		StatusCompleted: {},
		StatusCancelled: {},
	},
	StatusInTransit: {
		StatusCompleted: {},
		StatusCancelled: {},
	},
}

// String returns the string representation of the status.
func (s ShipmentStatus) String() string {
	return string(s)
}

// Label is the human readable form used in notifications, e.g. "In Transit".
func (s ShipmentStatus) Label() string {
	words := strings.Split(strings.ToLower(string(s)), "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}

	return strings.Join(words, " ")
}

// IsValid checks if the status is one of the defined values.
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case StatusCreated, StatusReceived, StatusInTransit, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition may leave this status.
func (s ShipmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	_, ok := shipmentTransitions[s][next]

	return ok
}

// NextStatuses returns the statuses reachable from s, in lifecycle order.
func (s ShipmentStatus) NextStatuses() []ShipmentStatus {
	next := make([]ShipmentStatus, 0, len(shipmentTransitions[s]))
	for _, candidate := range AllShipmentStatuses {
		if s.CanTransitionTo(candidate) {
			next = append(next, candidate)
		}
	}

	return next
}

// TerminalStatuses returns the statuses no transition may leave.
func TerminalStatuses() []ShipmentStatus {
	return []ShipmentStatus{StatusCompleted, StatusCancelled}
}
