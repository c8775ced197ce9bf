package queries

import (
	"context"
	"database/sql"

	"printdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const selectOrders = `
	SELECT
		o.id,
		o.delivery_address,
		o.customer_name,
		o.customer_phone,
		o.customer_email,
		o.payment_type,
		o.is_paid,
		o.total_amount,
		o.status,
		o.created_at,
		o.updated_at,
		ow.id,
		ow.fullname,
		ow.email,
		c.id,
		c.fullname,
		c.email
	FROM orders o
	JOIN users ow ON ow.id = o.owner_id
	LEFT JOIN users c ON c.id = o.courier_id
`

// orderReader loads order views for a WHERE clause and attaches their documents.
type orderReader struct {
	db *gorm.DB
}

func (r orderReader) list(ctx context.Context, where string, args ...any) ([]OrderView, error) {
	rows, err := r.db.WithContext(ctx).
		Raw(selectOrders+where+" ORDER BY o.created_at DESC, o.id", args...).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			view                      OrderView
			id, ownerID               uuid.UUID
			courierID                 uuid.NullUUID
			courierName, courierEmail sql.NullString
		)
		err = rows.Scan(
			&id,
			&view.DeliveryAddress,
			&view.CustomerName,
			&view.CustomerPhone,
			&view.CustomerEmail,
			&view.PaymentType,
			&view.IsPaid,
			&view.TotalAmount,
			&view.Status,
			&view.CreatedAt,
			&view.UpdatedAt,
			&ownerID,
			&view.Owner.Fullname,
			&view.Owner.Email,
			&courierID,
			&courierName,
			&courierEmail,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.Owner.ID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		if courierID.Valid {
			cid, cidErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if cidErr != nil {
				return nil, cidErr
			}
			view.Courier = &UserSummary{ID: cid, Fullname: courierName.String, Email: courierEmail.String}
		}

		view.Documents = make([]DocumentView, 0)
		index[id] = len(views)
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(views) == 0 {
		return views, nil
	}
	if err = r.attachDocuments(ctx, views, index); err != nil {
		return nil, err
	}
	return views, nil
}

func (r orderReader) attachDocuments(ctx context.Context, views []OrderView, index map[uuid.UUID]int) error {
	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			od.order_id,
			d.id,
			d.owner_id,
			d.file_url,
			d.original_name,
			d.page_count,
			d.size,
			d.color_type,
			d.binding,
			d.copies,
			d.created_at
		FROM order_documents od
		JOIN documents d ON d.id = od.document_id
		WHERE od.order_id IN ?
		ORDER BY od.order_id, od.position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		doc, scanErr := scanDocument(rows, &orderID)
		if scanErr != nil {
			return scanErr
		}
		i := index[orderID]
		views[i].Documents = append(views[i].Documents, doc)
	}
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

// scanDocument reads the document columns in the order used by every
// document query, after any leading columns.
func scanDocument(s scanner, leading ...any) (DocumentView, error) {
	var (
		view        DocumentView
		id, ownerID uuid.UUID
	)
	dest := append(leading,
		&id,
		&ownerID,
		&view.FileURL,
		&view.OriginalName,
		&view.PageCount,
		&view.Size,
		&view.ColorType,
		&view.Binding,
		&view.Copies,
		&view.CreatedAt,
	)
	if err := s.Scan(dest...); err != nil {
		return DocumentView{}, err
	}

	var err error
	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DocumentView{}, err
	}
	if view.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return DocumentView{}, err
	}
	return view, nil
}
