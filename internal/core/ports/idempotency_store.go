package ports

import (
	"context"

	"printdrop/internal/core/domain/model/kernel"
)

// IdempotencyStore remembers which order a client-supplied key produced.
type IdempotencyStore interface {
	// Reserve claims key. It returns the order id when the key already
	// completed, nil when the caller now owns the key, and an
	// errs.ObjectAlreadyExistsError while another request holds it.
	Reserve(ctx context.Context, key string) (*kernel.UUID, error)

	// Complete binds the reserved key to the created order.
	Complete(ctx context.Context, key string, orderID kernel.UUID) error

	// Release frees a reservation whose request failed.
	Release(ctx context.Context, key string) error
}
