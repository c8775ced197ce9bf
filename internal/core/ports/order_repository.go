// Package ports defines the contracts between the core and its adapters:
// repositories bound to a unit of work, and the outbound collaborators
// (blob store, notifier, identity, payment, events, idempotency).
package ports

import (
	"context"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its document references.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the aggregate back only if the stored version still
	// equals aggregate.Version(). A lost race yields an errs.StateIsInvalidError,
	// so two couriers can never pick the same order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
