package commands

import (
	"context"
	"fmt"
	"net/http"

	"printdrop/internal/core/domain/model/document"
	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/services"
	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/errs"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypePNG  = "image/png"
	contentTypeJPEG = "image/jpeg"
)

// UploadDocumentsCommandHandler checks the type and page count of every file,
// then writes them to the blob store and records all documents in one
// transaction. Any failure aborts the whole request, and a file that fails
// inspection aborts it before anything reaches the blob store.
type UploadDocumentsCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	blobs      ports.BlobStore
	pages      ports.PageCounter
	gate       services.AccessGate
}

func NewUploadDocumentsCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	blobs ports.BlobStore,
	pages ports.PageCounter,
) *UploadDocumentsCommandHandler {
	return &UploadDocumentsCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
		pages:      pages,
		gate:       services.NewAccessGate(),
	}
}

func (h *UploadDocumentsCommandHandler) Handle(ctx context.Context, cmd UploadDocumentsCommand) ([]*document.Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor().Role(), services.OpUploadDocuments); err != nil {
		return nil, err
	}

	inspected := make([]inspectedFile, 0, len(cmd.Files()))
	for _, f := range cmd.Files() {
		file, err := h.inspect(f)
		if err != nil {
			return nil, err
		}
		inspected = append(inspected, file)
	}

	docs := make([]*document.Document, 0, len(inspected))
	for _, file := range inspected {
		doc, err := h.store(ctx, cmd, file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DocumentRepository()
	for _, doc := range docs {
		if err := repo.Add(ctx, doc); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return docs, nil
}

type inspectedFile struct {
	UploadedFile
	contentType string
	pageCount   int
}

func (h *UploadDocumentsCommandHandler) inspect(f UploadedFile) (inspectedFile, error) {
	contentType := http.DetectContentType(f.Data)

	pageCount := 1
	switch contentType {
	case contentTypePDF:
		n, err := h.pages.CountPages(f.Data)
		if err != nil {
			return inspectedFile{}, errs.NewDependencyFailedError("pdf parser", fmt.Errorf("%s: %w", f.Name, err))
		}
		if n > document.MaxPageCount {
			return inspectedFile{}, errs.NewValueIsOutOfRangeError(f.Name+" pageCount", n, 1, document.MaxPageCount)
		}
		pageCount = n
	case contentTypePNG, contentTypeJPEG:
	default:
		return inspectedFile{}, errs.NewValueIsInvalidErrorWithCause(
			"documents",
			fmt.Errorf("%s: unsupported file type %s", f.Name, contentType),
		)
	}

	return inspectedFile{UploadedFile: f, contentType: contentType, pageCount: pageCount}, nil
}

func (h *UploadDocumentsCommandHandler) store(ctx context.Context, cmd UploadDocumentsCommand, f inspectedFile) (*document.Document, error) {
	url, err := h.blobs.Put(ctx, f.Name, f.contentType, f.Data)
	if err != nil {
		return nil, errs.NewDependencyFailedError("blob store", err)
	}

	return document.NewDocument(kernel.NewUUID(), cmd.Actor().ID(), url, f.Name, f.pageCount, cmd.Options())
}
