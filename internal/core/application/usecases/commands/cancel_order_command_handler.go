package commands

import (
	"context"

	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/domain/services"
	"printdrop/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order for its owner. Failures come in
// the order not found, not owner, wrong state.
type CancelOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	gate       services.AccessGate
}

func NewCancelOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) *CancelOrderCommandHandler {
	return &CancelOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd OrderActionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor().Role(), services.OpCancelOrder); err != nil {
		return nil, err
	}

	return orderTransition{
		orderID: cmd.OrderID(),
		apply: func(o *order.Order) error {
			return o.Cancel(cmd.Actor().ID())
		},
	}.run(ctx, h.uowFactory)
}
