package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a state change and
// published once the surrounding transaction has committed.
type DomainEvent interface {
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}
