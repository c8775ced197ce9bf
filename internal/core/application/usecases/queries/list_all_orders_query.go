package queries

import (
	"errors"

	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/guard"
)

var ErrListAllOrdersQueryIsNotConstructed = errors.New(
	"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
)

// ListAllOrdersQuery is the admin overview of every order with owner and
// courier details.
type ListAllOrdersQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewListAllOrdersQuery(actor user.Actor) (ListAllOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListAllOrdersQuery{}, err
	}
	return ListAllOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}
