package queries

import (
	"errors"

	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/guard"
)

var ErrListAvailableOrdersQueryIsNotConstructed = errors.New(
	"ListAvailableOrdersQuery must be created via NewListAvailableOrdersQuery constructor",
)

// ListAvailableOrdersQuery is the courier board: orders nobody has picked yet.
type ListAvailableOrdersQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewListAvailableOrdersQuery(actor user.Actor) (ListAvailableOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListAvailableOrdersQuery{}, err
	}
	return ListAvailableOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableOrdersQueryIsNotConstructed)
}
