package document

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/pkg/errs"
	"printdrop/internal/pkg/guard"
)

// MaxPageCount is the largest document accepted for printing.
const MaxPageCount = 10000

var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")

// Document is an uploaded file queued for printing.
type Document struct {
	id           kernel.UUID
	ownerID      kernel.UUID
	fileURL      string
	originalName string
	pageCount    int
	options      PrintOptions
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewDocument records a freshly uploaded file.
func NewDocument(
	id kernel.UUID,
	ownerID kernel.UUID,
	fileURL string,
	originalName string,
	pageCount int,
	options PrintOptions,
) (*Document, error) {
	return RestoreDocument(id, ownerID, fileURL, originalName, pageCount, options, time.Now().UTC())
}

// RestoreDocument rebuilds a Document from persistence, re-checking every invariant.
func RestoreDocument(
	id kernel.UUID,
	ownerID kernel.UUID,
	fileURL string,
	originalName string,
	pageCount int,
	options PrintOptions,
	createdAt time.Time,
) (*Document, error) {
	doc := &Document{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		doc.setID(id),
		doc.setOwnerID(ownerID),
		doc.setFileURL(fileURL),
		doc.setOriginalName(originalName),
		doc.setPageCount(pageCount),
		doc.setOptions(options),
	); err != nil {
		return nil, err
	}

	return doc, nil
}

// Validate ensures the Document was created through a constructor.
func (d *Document) Validate() error {
	if d == nil {
		return ErrDocumentIsNotConstructed
	}
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

func (d *Document) ID() kernel.UUID {
	return d.id
}

func (d *Document) OwnerID() kernel.UUID {
	return d.ownerID
}

func (d *Document) FileURL() string {
	return d.fileURL
}

func (d *Document) OriginalName() string {
	return d.originalName
}

func (d *Document) PageCount() int {
	return d.pageCount
}

func (d *Document) Options() PrintOptions {
	return d.options
}

func (d *Document) CreatedAt() time.Time {
	return d.createdAt
}

// IsOwnedBy reports whether userID uploaded the document.
func (d *Document) IsOwnedBy(userID kernel.UUID) bool {
	return d.ownerID.IsEqual(userID)
}

// PrintedPages is the page count multiplied by the number of copies.
func (d *Document) PrintedPages() int {
	return d.pageCount * d.options.copies
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	d.ownerID = ownerID
	return nil
}

func (d *Document) setFileURL(fileURL string) error {
	if strings.TrimSpace(fileURL) == "" {
		return errs.NewValueIsRequiredError("fileUrl")
	}
	d.fileURL = fileURL
	return nil
}

func (d *Document) setOriginalName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("originalName")
	}
	d.originalName = name
	return nil
}

func (d *Document) setPageCount(pageCount int) error {
	if pageCount < 1 {
		return errs.NewValueIsInvalidErrorWithCause("pageCount", fmt.Errorf("%d is not greater than 0", pageCount))
	}
	if pageCount > MaxPageCount {
		return errs.NewValueIsOutOfRangeError("pageCount", pageCount, 1, MaxPageCount)
	}
	d.pageCount = pageCount
	return nil
}

func (d *Document) setOptions(options PrintOptions) error {
	if err := errors.Join(
		options.size.Validate(),
		options.color.Validate(),
		validateCopies(options.copies),
	); err != nil {
		return err
	}
	d.options = options
	return nil
}
