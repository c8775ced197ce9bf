package queries

import (
	"errors"

	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/guard"
)

var ErrListMyOrdersQueryIsNotConstructed = errors.New(
	"ListMyOrdersQuery must be created via NewListMyOrdersQuery constructor",
)

// ListMyOrdersQuery lists the caller's own orders, newest first.
type ListMyOrdersQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewListMyOrdersQuery(actor user.Actor) (ListMyOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListMyOrdersQuery{}, err
	}
	return ListMyOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListMyOrdersQueryIsNotConstructed)
}
