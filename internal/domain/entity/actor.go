package entity

import "github.com/google/uuid"

// Actor is the identity a core operation runs on behalf of.
// The zero value is the anonymous actor.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// AnonymousActor returns an actor without identity or rights.
func AnonymousActor() Actor {
	return Actor{}
}

// NewActor builds an actor from a user ID and token roles. Administrator wins when both roles are present.
func NewActor(userID uuid.UUID, roles Roles) Actor {
	if userID == uuid.Nil {
		return AnonymousActor()
	}
	if roles.Contains(RoleAdministrator) {
		return Actor{ID: userID, Role: RoleAdministrator}
	}
	if roles.Contains(RoleRegisteredUser) {
		return Actor{ID: userID, Role: RoleRegisteredUser}
	}

	return AnonymousActor()
}

// IsAnonymous reports whether the actor carries no identity.
func (a Actor) IsAnonymous() bool {
	return a.ID == uuid.Nil || !a.Role.IsValid()
}

// IsAdmin reports whether the actor is an administrator.
func (a Actor) IsAdmin() bool {
	return !a.IsAnonymous() && a.Role == RoleAdministrator
}

// IsRegisteredUser reports whether the actor is a customer account.
func (a Actor) IsRegisteredUser() bool {
	return !a.IsAnonymous() && a.Role == RoleRegisteredUser
}
