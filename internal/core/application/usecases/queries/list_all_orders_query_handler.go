package queries

import (
	"context"

	"printdrop/internal/core/domain/services"

	"gorm.io/gorm"
)

type ListAllOrdersQueryHandler struct {
	reader orderReader
	gate   services.AccessGate
}

func NewListAllOrdersQueryHandler(db *gorm.DB) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{reader: orderReader{db: db}, gate: services.NewAccessGate()}
}

// Handle is admin only; any other role gets an AccessDeniedError.
func (h ListAllOrdersQueryHandler) Handle(ctx context.Context, query ListAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(query.actor.Role(), services.OpListAllOrders); err != nil {
		return nil, err
	}

	return h.reader.list(ctx, "")
}
