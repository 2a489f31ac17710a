// Package policy decides which actors may read or change a shipment.
package policy

import (
	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
)

// CanRead returns nil when actor may see shipment, otherwise ErrForbidden.
// Administrators see everything; customers see only what they sent.
func CanRead(actor entity.Actor, shipment *entity.Shipment) error {
	switch {
	case actor.IsAnonymous():
		return domainerrors.ErrForbidden.WithDetails("authentication required")
	case actor.IsAdmin():
		return nil
	case shipment.IsOwnedBy(actor.ID):
		return nil
	default:
		return domainerrors.ErrForbidden.WithDetails("shipment belongs to another user")
	}
}

// CanTransition returns nil when actor may request status on shipment, otherwise ErrForbidden.
// It does not consult the transition table; a permitted request may still be illegal.
func CanTransition(actor entity.Actor, shipment *entity.Shipment, status entity.ShipmentStatus) error {
	switch {
	case actor.IsAnonymous():
		return domainerrors.ErrForbidden.WithDetails("authentication required")
	case actor.IsAdmin():
		return nil
	case !shipment.IsOwnedBy(actor.ID):
		return domainerrors.ErrForbidden.WithDetails("shipment belongs to another user")
	case status != entity.StatusCancelled:
		return domainerrors.ErrForbidden.WithDetails("customers may only cancel shipments")
	case shipment.Status.IsTerminal():
		return domainerrors.ErrForbidden.WithDetails("shipment is already closed")
	default:
		return nil
	}
}

// CanDelete returns nil only for administrators.
func CanDelete(actor entity.Actor) error {
	return RequireAdmin(actor)
}

// RequireAdmin guards catalogue maintenance and system-wide reports.
func RequireAdmin(actor entity.Actor) error {
	if actor.IsAdmin() {
		return nil
	}

	return domainerrors.ErrForbidden.WithDetails("administrator role required")
}

// CanCreate returns nil for any signed-in actor.
func CanCreate(actor entity.Actor) error {
	if actor.IsAnonymous() {
		return domainerrors.ErrForbidden.WithDetails("authentication required")
	}

	return nil
}

// CanPay returns nil when actor owns shipment or is an administrator.
func CanPay(actor entity.Actor, shipment *entity.Shipment) error {
	return CanRead(actor, shipment)
}
