package commands

import (
	"errors"
	"fmt"
	"strings"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/errs"
	"printdrop/internal/pkg/guard"
)

const maxIdempotencyKeyLength = 128

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks to turn a set of the caller's documents into an order.
//
// Example:
//
//	delivery, _ := order.NewDeliveryInfo("12 MG Road", "Asha Rao", "98450", "asha@example.com")
//	cmd, err := NewCreateOrderCommand(actor, docIDs, delivery, order.Cash, r.Header.Get("Idempotency-Key"))
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor          user.Actor
	documentIDs    []kernel.UUID
	delivery       order.DeliveryInfo
	paymentType    order.PaymentType
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. idempotencyKey may be empty.
func NewCreateOrderCommand(
	actor user.Actor,
	documentIDs []kernel.UUID,
	delivery order.DeliveryInfo,
	paymentType order.PaymentType,
	idempotencyKey string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		delivery: delivery,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDocumentIDs(documentIDs),
		cmd.setPaymentType(paymentType),
		cmd.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() user.Actor {
	return c.actor
}

func (c CreateOrderCommand) DocumentIDs() []kernel.UUID {
	return c.documentIDs
}

func (c CreateOrderCommand) Delivery() order.DeliveryInfo {
	return c.delivery
}

func (c CreateOrderCommand) PaymentType() order.PaymentType {
	return c.paymentType
}

func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CreateOrderCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setDocumentIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("documentIds", errors.New("no documents selected"))
	}
	c.documentIDs = ids
	return nil
}

func (c *CreateOrderCommand) setPaymentType(paymentType order.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	c.paymentType = paymentType
	return nil
}

func (c *CreateOrderCommand) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if len(key) > maxIdempotencyKeyLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"Idempotency-Key",
			fmt.Errorf("longer than %d characters", maxIdempotencyKeyLength),
		)
	}
	c.idempotencyKey = key
	return nil
}
