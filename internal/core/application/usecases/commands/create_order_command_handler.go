package commands

import (
	"context"
	"fmt"
	"log/slog"

	"printdrop/internal/core/domain/model/document"
	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/domain/services"
	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders. It loads the referenced documents,
// prices them, stores the order as ordered and then sends a best-effort
// confirmation.
//
// When the command carries an idempotency key and a store is configured, a
// repeated request returns the order created by the first one.
type CreateOrderCommandHandler struct {
	uowFactory  ports.UnitOfWorkFactory
	gate        services.AccessGate
	pricing     services.PricingEngine
	notifier    ports.Notifier
	idempotency ports.IdempotencyStore
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler wires the handler. idempotency may be nil.
func NewCreateOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	notifier ports.Notifier,
	idempotency ports.IdempotencyStore,
	logger *slog.Logger,
) *CreateOrderCommandHandler {
	return &CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		gate:        services.NewAccessGate(),
		pricing:     services.NewPricingEngine(),
		notifier:    notifier,
		idempotency: idempotency,
		logger:      logger.With("component", "create_order"),
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor().Role(), services.OpCreateOrder); err != nil {
		return nil, err
	}

	key := h.idempotencyKey(cmd)
	if key != "" {
		existingID, err := h.idempotency.Reserve(ctx, key)
		if err != nil {
			return nil, err
		}
		if existingID != nil {
			return h.replay(ctx, *existingID)
		}
	}

	created, err := h.create(ctx, cmd)
	if err != nil {
		if key != "" {
			if releaseErr := h.idempotency.Release(ctx, key); releaseErr != nil {
				h.logger.WarnContext(ctx, "failed to release idempotency key", "error", releaseErr)
			}
		}
		return nil, err
	}

	if key != "" {
		if err = h.idempotency.Complete(ctx, key, created.ID()); err != nil {
			h.logger.WarnContext(ctx, "failed to complete idempotency key",
				"order_id", created.ID().String(), "error", err)
		}
	}

	h.notify(ctx, created)
	return created, nil
}

func (h *CreateOrderCommandHandler) create(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	docs, err := uow.DocumentRepository().FindManyByIDs(ctx, cmd.DocumentIDs())
	if err != nil {
		return nil, err
	}
	if err = ensureAllOwned(cmd, docs); err != nil {
		return nil, err
	}

	total, err := h.pricing.ComputeTotal(docs)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Actor().ID(),
		cmd.DocumentIDs(),
		cmd.Delivery(),
		cmd.PaymentType(),
		total,
	)
	if err != nil {
		return nil, err
	}
	if err = created.Place(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func (h *CreateOrderCommandHandler) replay(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	existing, err := h.uowFactory.Create().OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	h.logger.InfoContext(ctx, "replayed idempotent order creation", "order_id", orderID.String())
	return existing, nil
}

// notify never fails the request; errors are logged and dropped.
func (h *CreateOrderCommandHandler) notify(ctx context.Context, created *order.Order) {
	email := created.Delivery().CustomerEmail()
	if email == "" {
		h.logger.DebugContext(ctx, "no customer e-mail, skipping confirmation", "order_id", created.ID().String())
		return
	}

	err := h.notifier.NotifyOrderConfirmed(ctx, ports.OrderConfirmation{
		Email:        email,
		CustomerName: created.Delivery().CustomerName(),
		OrderID:      created.ID(),
		Total:        created.Total(),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "order confirmation failed",
			"order_id", created.ID().String(), "error", err)
	}
}

func (h *CreateOrderCommandHandler) idempotencyKey(cmd CreateOrderCommand) string {
	if h.idempotency == nil || cmd.IdempotencyKey() == "" {
		return ""
	}
	return fmt.Sprintf("create-order:%s:%s", cmd.Actor().ID(), cmd.IdempotencyKey())
}

// ensureAllOwned reports the first requested id that is missing or belongs to
// somebody else. Foreign documents are indistinguishable from missing ones.
func ensureAllOwned(cmd CreateOrderCommand, docs []*document.Document) error {
	found := make(map[kernel.UUID]*document.Document, len(docs))
	for _, doc := range docs {
		found[doc.ID()] = doc
	}

	for _, id := range cmd.DocumentIDs() {
		doc, ok := found[id]
		if !ok || !doc.IsOwnedBy(cmd.Actor().ID()) {
			return errs.NewObjectNotFoundError("document", id)
		}
	}
	return nil
}
