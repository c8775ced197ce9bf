package order

import (
	"time"

	"printdrop/internal/core/domain/model/kernel"
)

const StatusChangedEventName = "order.status_changed"

// StatusChanged is recorded on every lifecycle transition.
type StatusChanged struct {
	OrderID   kernel.UUID
	OwnerID   kernel.UUID
	Status    Status
	CourierID *kernel.UUID
	At        time.Time
}

func (e StatusChanged) EventName() string {
	return StatusChangedEventName
}

func (e StatusChanged) AggregateID() kernel.UUID {
	return e.OrderID
}

func (e StatusChanged) OccurredAt() time.Time {
	return e.At
}
