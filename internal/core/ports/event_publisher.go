package ports

import (
	"context"

	"printdrop/internal/core/domain/model/kernel"
)

// EventPublisher ships committed domain events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
