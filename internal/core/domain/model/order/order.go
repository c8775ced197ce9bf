package order

import (
	"errors"
	"fmt"
	"time"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/pkg/errs"
	"printdrop/internal/pkg/guard"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a print order. It owns its status, its
// courier assignment and its payment flag; the documents it references live
// in their own aggregate and are referenced by ID only.
//
// The version field is the optimistic-lock token used by the repository to
// turn every status change into a compare-and-swap.
type Order struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	documentIDs []kernel.UUID
	delivery    DeliveryInfo
	paymentType PaymentType
	isPaid      bool
	total       kernel.Money
	courierID   *kernel.UUID
	status      Status
	version     int
	createdAt   time.Time
	updatedAt   time.Time

	events []kernel.DomainEvent
	guard  guard.ConstructorGuard
}

// NewOrder builds a pending order. total must already be computed from the
// referenced documents.
//
// Example:
//
//	total, _ := services.NewPricingEngine().ComputeTotal(docs)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, docIDs, delivery, order.Cash, total)
//	if err != nil {
//	    return nil, err
//	}
//	err = o.Place()
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	documentIDs []kernel.UUID,
	delivery DeliveryInfo,
	paymentType PaymentType,
	total kernel.Money,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:    Pending,
		total:     total,
		version:   1,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setDocumentIDs(documentIDs),
		o.setDelivery(delivery),
		o.setPaymentType(paymentType),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order from persistence, re-checking the status and
// courier consistency.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	documentIDs []kernel.UUID,
	delivery DeliveryInfo,
	paymentType PaymentType,
	isPaid bool,
	total kernel.Money,
	status Status,
	courierID *kernel.UUID,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isPaid:    isPaid,
		total:     total,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setDocumentIDs(documentIDs),
		o.setDelivery(delivery),
		o.setPaymentType(paymentType),
		o.setStatusAndCourier(status, courierID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// DocumentIDs returns a copy of the referenced document IDs in order.
func (o *Order) DocumentIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(o.documentIDs))
	copy(out, o.documentIDs)
	return out
}

func (o *Order) Delivery() DeliveryInfo {
	return o.delivery
}

func (o *Order) PaymentType() PaymentType {
	return o.paymentType
}

func (o *Order) IsPaid() bool {
	return o.isPaid
}

func (o *Order) Total() kernel.Money {
	return o.total
}

// Courier returns the assigned courier or nil.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

func (o *Order) Status() Status {
	return o.status
}

// Version is the value read from storage; the repository bumps it on update.
func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID.IsEqual(userID)
}

// IsAssignedTo reports whether courierID is the assigned courier.
func (o *Order) IsAssignedTo(courierID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(courierID)
}

// Place marks the order as ordered by its customer.
func (o *Order) Place() error {
	next, err := o.status.Place()
	if err != nil {
		return err
	}

	o.transition(next)
	return nil
}

// Pick assigns courierID and moves the order to picked. It fails with a state
// error unless the order is pickable and has no courier yet.
func (o *Order) Pick(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return errs.NewStateIsInvalidError("order", "order already has a courier")
	}

	next, err := o.status.Pick()
	if err != nil {
		return err
	}

	o.courierID = &courierID
	o.transition(next)
	return nil
}

// Deliver completes the order. Only the assigned courier may do so,
// whatever the current status is.
func (o *Order) Deliver(courierID kernel.UUID) error {
	if !o.IsAssignedTo(courierID) {
		return errs.NewAccessDeniedError("deliver order", "caller is not the assigned courier")
	}

	next, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.transition(next)
	return nil
}

// Cancel cancels the order on behalf of its owner while it is still cancellable.
func (o *Order) Cancel(customerID kernel.UUID) error {
	if !o.IsOwnedBy(customerID) {
		return errs.NewAccessDeniedError("cancel order", "caller is not the owner")
	}

	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.transition(next)
	return nil
}

// MarkPaid records a verified online payment made by the owner.
func (o *Order) MarkPaid(customerID kernel.UUID) error {
	if !o.IsOwnedBy(customerID) {
		return errs.NewAccessDeniedError("pay order", "caller is not the owner")
	}

	switch {
	case o.paymentType != Online:
		return errs.NewStateIsInvalidError("order", "order is not paid online")
	case o.isPaid:
		return errs.NewStateIsInvalidError("order", "order is already paid")
	case o.status == Cancelled:
		return errs.NewStateIsInvalidError("order", "order is cancelled")
	}

	o.isPaid = true
	o.updatedAt = time.Now().UTC()
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	out := make([]kernel.DomainEvent, len(o.events))
	copy(out, o.events)
	return out
}

// ClearDomainEvents drops the recorded events once they were handed off.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) transition(next Status) {
	o.status = next
	o.updatedAt = time.Now().UTC()

	var courierID *kernel.UUID
	if o.courierID != nil {
		id := *o.courierID
		courierID = &id
	}

	o.events = append(o.events, StatusChanged{
		OrderID:   o.id,
		OwnerID:   o.ownerID,
		Status:    next,
		CourierID: courierID,
		At:        o.updatedAt,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setDocumentIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("documentIds", errors.New("at least one document must be selected"))
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("documentIds", err)
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("documentIds", fmt.Errorf("document %s is listed twice", id))
		}
		seen[id] = struct{}{}
	}

	o.documentIDs = make([]kernel.UUID, len(ids))
	copy(o.documentIDs, ids)
	return nil
}

func (o *Order) setDelivery(delivery DeliveryInfo) error {
	if err := delivery.validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setPaymentType(paymentType PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	o.paymentType = paymentType
	return nil
}

func (o *Order) setStatusAndCourier(status Status, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}

	o.status = status
	o.courierID = courierID
	return nil
}
