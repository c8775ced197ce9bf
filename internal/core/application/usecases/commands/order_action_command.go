package commands

import (
	"errors"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/guard"
)

var ErrOrderActionCommandIsNotConstructed = errors.New(
	"OrderActionCommand must be created via NewOrderActionCommand constructor",
)

// OrderActionCommand names an order and the caller acting on it. Pick,
// deliver and cancel all take this shape.
//
// Example:
//
//	cmd, err := NewOrderActionCommand(courier, orderID)
//	if err != nil {
//	    return err
//	}
//	picked, err := pickHandler.Handle(ctx, cmd)
type OrderActionCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewOrderActionCommand(actor user.Actor, orderID kernel.UUID) (OrderActionCommand, error) {
	cmd := OrderActionCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return OrderActionCommand{}, err
	}

	return cmd, nil
}

func (c OrderActionCommand) Validate() error {
	return c.guard.Validate(ErrOrderActionCommandIsNotConstructed)
}

func (c OrderActionCommand) Actor() user.Actor {
	return c.actor
}

func (c OrderActionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *OrderActionCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *OrderActionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
