package order

import (
	"fmt"

	"printdrop/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial state of a freshly built order.
	Pending

	// Ordered is set as soon as the customer places the order.
	Ordered

	// Picked means a courier has claimed the order.
	Picked

	// Delivered is final.
	Delivered

	// Cancelled is final.
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:   "unknown",
	Pending:   "pending",
	Ordered:   "ordered",
	Picked:    "picked",
	Delivered: "delivered",
	Cancelled: "cancelled",
}

// StatusFromString parses the lower-case name of a valid status.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusNames {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case name used on the wire.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// IsPickable reports whether a courier may claim an order in this status.
func (s Status) IsPickable() bool {
	return s == Pending || s == Ordered
}

// PickableStatuses lists every status IsPickable accepts.
func PickableStatuses() []Status {
	return []Status{Pending, Ordered}
}

// IsCancellable reports whether the owner may still cancel. Only orders
// that were never placed qualify.
func (s Status) IsCancellable() bool {
	return s == Pending
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCanHaveCourier checks that a courier is assigned exactly in the
// picked and delivered states.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	needsCourier := s == Picked || s == Delivered

	if courier && !needsCourier {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}
	if !courier && needsCourier {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}
	return nil
}

// Place transitions pending -> ordered.
func (s Status) Place() (Status, error) {
	if s != Pending {
		return Unknown, s.transitionError("place")
	}
	return Ordered, nil
}

// Pick transitions a pickable status -> picked.
func (s Status) Pick() (Status, error) {
	if !s.IsPickable() {
		return Unknown, s.transitionError("pick")
	}
	return Picked, nil
}

// Deliver transitions picked -> delivered.
func (s Status) Deliver() (Status, error) {
	if s != Picked {
		return Unknown, s.transitionError("deliver")
	}
	return Delivered, nil
}

// Cancel transitions a cancellable status -> cancelled.
func (s Status) Cancel() (Status, error) {
	if !s.IsCancellable() {
		return Unknown, s.transitionError("cancel")
	}
	return Cancelled, nil
}

func (s Status) transitionError(action string) error {
	if s.IsFinal() {
		return errs.NewStateIsInvalidError("order", fmt.Sprintf("cannot %s an order that is already %s", action, s))
	}
	return errs.NewStateIsInvalidError("order", fmt.Sprintf("cannot %s an order in status %s", action, s))
}
