// Package orderrepo maps order aggregates onto the orders and
// order_documents tables.
package orderrepo

import (
	"time"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row shape of the orders table.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	PaymentType     string
	IsPaid          bool
	TotalAmount     int64
	CourierID       *uuid.UUID `gorm:"type:uuid"`
	Status          string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderDocumentDTO links an order to one of its documents. Position keeps the
// order in which the customer selected them.
type OrderDocumentDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentID uuid.UUID `gorm:"type:uuid"`
	Position   int       `gorm:"primaryKey"`
}

func (OrderDocumentDTO) TableName() string {
	return "order_documents"
}

func fromDomain(o *order.Order) (OrderDTO, []OrderDocumentDTO) {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	delivery := o.Delivery()
	dto := OrderDTO{
		ID:              o.ID().Bytes(),
		OwnerID:         o.OwnerID().Bytes(),
		DeliveryAddress: delivery.Address(),
		CustomerName:    delivery.CustomerName(),
		CustomerPhone:   delivery.CustomerPhone(),
		CustomerEmail:   delivery.CustomerEmail(),
		PaymentType:     o.PaymentType().String(),
		IsPaid:          o.IsPaid(),
		TotalAmount:     o.Total().Amount(),
		CourierID:       courierID,
		Status:          o.Status().String(),
		Version:         o.Version(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}

	links := make([]OrderDocumentDTO, 0, len(o.DocumentIDs()))
	for i, docID := range o.DocumentIDs() {
		links = append(links, OrderDocumentDTO{
			OrderID:    dto.ID,
			DocumentID: docID.Bytes(),
			Position:   i,
		})
	}

	return dto, links
}

func toDomain(dto OrderDTO, links []OrderDocumentDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	docIDs := make([]kernel.UUID, 0, len(links))
	for _, link := range links {
		docID, docErr := kernel.UUIDFromBytes(link.DocumentID[:])
		if docErr != nil {
			return nil, docErr
		}
		docIDs = append(docIDs, docID)
	}

	delivery, err := order.NewDeliveryInfo(dto.DeliveryAddress, dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail)
	if err != nil {
		return nil, err
	}
	paymentType, err := order.PaymentTypeFromString(dto.PaymentType)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		ownerID,
		docIDs,
		delivery,
		paymentType,
		dto.IsPaid,
		total,
		status,
		courierID,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
