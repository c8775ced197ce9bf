package commands

import (
	"context"

	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/domain/services"
	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/errs"
)

// DeliverOrderCommandHandler completes an order on behalf of its assigned
// courier. Orders the caller is not assigned to, including unknown ones, are
// forbidden before any state check.
type DeliverOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	gate       services.AccessGate
}

func NewDeliverOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) *DeliverOrderCommandHandler {
	return &DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd OrderActionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor().Role(), services.OpDeliverOrder); err != nil {
		return nil, err
	}

	return orderTransition{
		orderID: cmd.OrderID(),
		onMissing: func(error) error {
			return errs.NewAccessDeniedError(string(services.OpDeliverOrder), "caller is not the assigned courier")
		},
		apply: func(o *order.Order) error {
			return o.Deliver(cmd.Actor().ID())
		},
	}.run(ctx, h.uowFactory)
}
