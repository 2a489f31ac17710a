package policy

import (
	"testing"

	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanRead(t *testing.T) {
	ownerID := uuid.New()
	shipment := &entity.Shipment{ID: uuid.New(), SenderID: ownerID, Status: entity.StatusCreated}

	tests := []struct {
		name    string
		actor   entity.Actor
		allowed bool
	}{
		{name: "owner", actor: entity.Actor{ID: ownerID, Role: entity.RoleRegisteredUser}, allowed: true},
		{name: "admin", actor: entity.Actor{ID: uuid.New(), Role: entity.RoleAdministrator}, allowed: true},
		{name: "other user", actor: entity.Actor{ID: uuid.New(), Role: entity.RoleRegisteredUser}, allowed: false},
		{name: "anonymous", actor: entity.AnonymousActor(), allowed: false},
		{name: "owner id without role", actor: entity.Actor{ID: ownerID}, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanRead(tt.actor, shipment)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrForbidden)
			}
		})
	}
}

func TestCanTransition_RegisteredUser(t *testing.T) {
	ownerID := uuid.New()
	owner := entity.Actor{ID: ownerID, Role: entity.RoleRegisteredUser}
	shipment := &entity.Shipment{ID: uuid.New(), SenderID: ownerID, Status: entity.StatusReceived}

	assert.NoError(t, CanTransition(owner, shipment, entity.StatusCancelled))

	for _, status := range []entity.ShipmentStatus{entity.StatusCreated, entity.StatusReceived, entity.StatusInTransit, entity.StatusCompleted} {
		assert.ErrorIs(t, CanTransition(owner, shipment, status), domainerrors.ErrForbidden, "status %s", status)
	}

	stranger := entity.Actor{ID: uuid.New(), Role: entity.RoleRegisteredUser}
	assert.ErrorIs(t, CanTransition(stranger, shipment, entity.StatusCancelled), domainerrors.ErrForbidden)

	closed := &entity.Shipment{ID: uuid.New(), SenderID: ownerID, Status: entity.StatusCompleted}
	assert.ErrorIs(t, CanTransition(owner, closed, entity.StatusCancelled), domainerrors.ErrForbidden)
}

func TestCanTransition_AdminAndAnonymous(t *testing.T) {
	shipment := &entity.Shipment{ID: uuid.New(), SenderID: uuid.New(), Status: entity.StatusCreated}
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdministrator}

	for _, status := range entity.AllShipmentStatuses {
		assert.NoError(t, CanTransition(admin, shipment, status))
		assert.ErrorIs(t, CanTransition(entity.AnonymousActor(), shipment, status), domainerrors.ErrForbidden)
	}
}

func TestCanDeleteAndCreate(t *testing.T) {
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdministrator}
	user := entity.Actor{ID: uuid.New(), Role: entity.RoleRegisteredUser}

	assert.NoError(t, CanDelete(admin))
	assert.ErrorIs(t, CanDelete(user), domainerrors.ErrForbidden)
	assert.NoError(t, CanCreate(user))
	assert.ErrorIs(t, CanCreate(entity.AnonymousActor()), domainerrors.ErrForbidden)
}
