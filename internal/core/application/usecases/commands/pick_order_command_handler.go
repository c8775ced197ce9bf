package commands

import (
	"context"

	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/domain/services"
	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/errs"
)

// PickOrderCommandHandler lets a courier claim an order that nobody has
// picked yet. An unknown order is reported as unavailable, like one that is
// already taken.
type PickOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	gate       services.AccessGate
}

func NewPickOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) *PickOrderCommandHandler {
	return &PickOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

func (h *PickOrderCommandHandler) Handle(ctx context.Context, cmd OrderActionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor().Role(), services.OpPickOrder); err != nil {
		return nil, err
	}

	return orderTransition{
		orderID: cmd.OrderID(),
		onMissing: func(err error) error {
			return errs.NewStateIsInvalidErrorWithCause("order", "order is not available", err)
		},
		apply: func(o *order.Order) error {
			return o.Pick(cmd.Actor().ID())
		},
	}.run(ctx, h.uowFactory)
}
