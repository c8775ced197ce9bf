package commands

import (
	"context"
	"errors"

	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/domain/services"
	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/errs"
)

// MarkOrderPaidCommandHandler flips the paid flag once the gateway signature
// checks out.
type MarkOrderPaidCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	verifier   ports.PaymentVerifier
	gate       services.AccessGate
}

func NewMarkOrderPaidCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	verifier ports.PaymentVerifier,
) *MarkOrderPaidCommandHandler {
	return &MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
		gate:       services.NewAccessGate(),
	}
}

func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor().Role(), services.OpPayOrder); err != nil {
		return nil, err
	}
	if !h.verifier.Verify(cmd.Proof()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("razorpaySignature", errors.New("signature does not match"))
	}

	return orderTransition{
		orderID: cmd.OrderID(),
		apply: func(o *order.Order) error {
			return o.MarkPaid(cmd.Actor().ID())
		},
	}.run(ctx, h.uowFactory)
}
