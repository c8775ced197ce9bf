package commands

import (
	"context"
	"errors"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/errs"
)

// orderTransition loads one order, applies a change and writes it back in a
// single unit of work. The repository's version check turns the write into a
// compare-and-swap, so a concurrent transition surfaces as a state error.
type orderTransition struct {
	orderID kernel.UUID

	// onMissing maps the not-found error of the lookup. Nil keeps it as is.
	onMissing func(err error) error
	apply     func(o *order.Order) error
}

func (t orderTransition) run(ctx context.Context, uowFactory ports.UnitOfWorkFactory) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, t.orderID)
	if err != nil {
		if t.onMissing != nil && errors.Is(err, errs.ErrObjectNotFound) {
			return nil, t.onMissing(err)
		}
		return nil, err
	}

	if err = t.apply(o); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
