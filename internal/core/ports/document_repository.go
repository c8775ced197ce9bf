package ports

import (
	"context"

	"printdrop/internal/core/domain/model/document"
	"printdrop/internal/core/domain/model/kernel"
)

// DocumentRepository is the Document Record Store.
type DocumentRepository interface {
	Add(ctx context.Context, doc *document.Document) error

	// Get returns errs.ObjectNotFoundError when the document does not exist.
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)

	// FindManyByIDs returns only the documents that exist. Callers detect
	// missing ids by set difference.
	FindManyByIDs(ctx context.Context, ids []kernel.UUID) ([]*document.Document, error)

	// ListByOwner returns the owner's documents, newest first.
	ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]*document.Document, error)
}
