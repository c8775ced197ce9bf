package user

import (
	"errors"

	"printdrop/internal/core/domain/model/kernel"
)

// Actor is the authenticated caller of a use case. Its role always comes
// from the stored user record.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor builds an Actor from a verified user id and the stored role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ActorOf returns the Actor for a stored user.
func ActorOf(u *User) Actor {
	return Actor{id: u.ID(), role: u.Role()}
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// Validate rejects the zero Actor.
func (a Actor) Validate() error {
	return errors.Join(a.id.Validate(), a.role.Validate())
}
