package queries

import (
	"context"
	"database/sql"
	"errors"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/errs"
	"printdrop/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrListMyDocumentsQueryIsNotConstructed = errors.New(
		"ListMyDocumentsQuery must be created via NewListMyDocumentsQuery constructor",
	)
	ErrGetMyDocumentQueryIsNotConstructed = errors.New(
		"GetMyDocumentQuery must be created via NewGetMyDocumentQuery constructor",
	)
)

const selectDocuments = `
	SELECT
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
	FROM documents d
`

// ListMyDocumentsQuery lists the caller's uploads, newest first.
type ListMyDocumentsQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewListMyDocumentsQuery(actor user.Actor) (ListMyDocumentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListMyDocumentsQuery{}, err
	}
	return ListMyDocumentsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMyDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrListMyDocumentsQueryIsNotConstructed)
}

type ListMyDocumentsQueryHandler struct {
	db *gorm.DB
}

func NewListMyDocumentsQueryHandler(db *gorm.DB) ListMyDocumentsQueryHandler {
	return ListMyDocumentsQueryHandler{db: db}
}

func (h ListMyDocumentsQueryHandler) Handle(ctx context.Context, query ListMyDocumentsQuery) ([]DocumentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		selectDocuments+"WHERE d.owner_id = ? ORDER BY d.created_at DESC, d.id",
		query.actor.ID().Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]DocumentView, 0)
	for rows.Next() {
		doc, scanErr := scanDocument(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

// GetMyDocumentQuery fetches one of the caller's documents.
type GetMyDocumentQuery struct {
	actor      user.Actor
	documentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMyDocumentQuery(actor user.Actor, documentID kernel.UUID) (GetMyDocumentQuery, error) {
	if err := errors.Join(actor.Validate(), documentID.Validate()); err != nil {
		return GetMyDocumentQuery{}, err
	}
	return GetMyDocumentQuery{actor: actor, documentID: documentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMyDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDocumentQueryIsNotConstructed)
}

type GetMyDocumentQueryHandler struct {
	db *gorm.DB
}

func NewGetMyDocumentQueryHandler(db *gorm.DB) GetMyDocumentQueryHandler {
	return GetMyDocumentQueryHandler{db: db}
}

// Handle reports documents of other owners as not found so their existence
// does not leak.
func (h GetMyDocumentQueryHandler) Handle(ctx context.Context, query GetMyDocumentQuery) (DocumentView, error) {
	if err := query.Validate(); err != nil {
		return DocumentView{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		selectDocuments+"WHERE d.id = ? AND d.owner_id = ?",
		query.documentID.Bytes(), query.actor.ID().Bytes(),
	).Row()
	if err := row.Err(); err != nil {
		return DocumentView{}, err
	}

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return DocumentView{}, errs.NewObjectNotFoundError("document", query.documentID.String())
	}
	if err != nil {
		return DocumentView{}, err
	}
	return doc, nil
}
