package queries

import (
	"context"

	"printdrop/internal/core/domain/services"

	"gorm.io/gorm"
)

type ListMyOrdersQueryHandler struct {
	reader orderReader
	gate   services.AccessGate
}

func NewListMyOrdersQueryHandler(db *gorm.DB) ListMyOrdersQueryHandler {
	return ListMyOrdersQueryHandler{reader: orderReader{db: db}, gate: services.NewAccessGate()}
}

// Handle returns an empty slice when the caller has no orders.
func (h ListMyOrdersQueryHandler) Handle(ctx context.Context, query ListMyOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(query.actor.Role(), services.OpListOwnOrders); err != nil {
		return nil, err
	}

	return h.reader.list(ctx, "WHERE o.owner_id = ?", query.actor.ID().Bytes())
}
