package commands

import (
	"errors"
	"strings"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/errs"
	"printdrop/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand carries the gateway proof of an online payment.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.UUID
	proof   ports.PaymentProof

	guard guard.ConstructorGuard
}

func NewMarkOrderPaidCommand(actor user.Actor, orderID kernel.UUID, proof ports.PaymentProof) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{guard: guard.NewConstructorGuard()}

	var errList []error
	if err := actor.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(proof.GatewayOrderID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("razorpayOrderId"))
	}
	if strings.TrimSpace(proof.PaymentID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("razorpayPaymentId"))
	}
	if strings.TrimSpace(proof.Signature) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("razorpaySignature"))
	}
	if err := errors.Join(errList...); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	cmd.actor = actor
	cmd.orderID = orderID
	cmd.proof = proof
	return cmd, nil
}

func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

func (c MarkOrderPaidCommand) Actor() user.Actor {
	return c.actor
}

func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MarkOrderPaidCommand) Proof() ports.PaymentProof {
	return c.proof
}
