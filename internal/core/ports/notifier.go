package ports

import (
	"context"

	"printdrop/internal/core/domain/model/kernel"
)

// OrderConfirmation is the payload of the order-confirmed notification.
type OrderConfirmation struct {
	Email        string
	CustomerName string
	OrderID      kernel.UUID
	Total        kernel.Money
}

// Notifier delivers order notifications to customers.
type Notifier interface {
	NotifyOrderConfirmed(ctx context.Context, msg OrderConfirmation) error
}
