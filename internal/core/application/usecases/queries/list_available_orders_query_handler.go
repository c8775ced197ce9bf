package queries

import (
	"context"

	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/domain/services"

	"gorm.io/gorm"
)

type ListAvailableOrdersQueryHandler struct {
	reader orderReader
	gate   services.AccessGate
}

func NewListAvailableOrdersQueryHandler(db *gorm.DB) ListAvailableOrdersQueryHandler {
	return ListAvailableOrdersQueryHandler{reader: orderReader{db: db}, gate: services.NewAccessGate()}
}

// Handle returns pickable orders without a courier. Couriers only.
func (h ListAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(query.actor.Role(), services.OpListAvailableOrders); err != nil {
		return nil, err
	}

	pickable := order.PickableStatuses()
	names := make([]string, 0, len(pickable))
	for _, s := range pickable {
		names = append(names, s.String())
	}

	return h.reader.list(ctx, "WHERE o.courier_id IS NULL AND o.status IN ?", names)
}
