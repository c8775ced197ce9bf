// Package documentrepo is the GORM-backed document record store.
package documentrepo

import (
	"time"

	"printdrop/internal/core/domain/model/document"
	"printdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DocumentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`
	FileURL      string
	OriginalName string
	PageCount    int
	Size         string
	ColorType    string
	Binding      bool
	Copies       int
	CreatedAt    time.Time
}

func (DocumentDTO) TableName() string {
	return "documents"
}

func fromDomain(doc *document.Document) DocumentDTO {
	opts := doc.Options()
	return DocumentDTO{
		ID:           doc.ID().Bytes(),
		OwnerID:      doc.OwnerID().Bytes(),
		FileURL:      doc.FileURL(),
		OriginalName: doc.OriginalName(),
		PageCount:    doc.PageCount(),
		Size:         string(opts.Size()),
		ColorType:    string(opts.Color()),
		Binding:      opts.Binding(),
		Copies:       opts.Copies(),
		CreatedAt:    doc.CreatedAt(),
	}
}

// toDomain rebuilds a Document from its row.
func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	size, err := document.PaperSizeFromString(dto.Size)
	if err != nil {
		return nil, err
	}
	color, err := document.ColorModeFromString(dto.ColorType)
	if err != nil {
		return nil, err
	}
	opts, err := document.NewPrintOptions(size, color, dto.Binding, dto.Copies)
	if err != nil {
		return nil, err
	}

	return document.RestoreDocument(id, ownerID, dto.FileURL, dto.OriginalName, dto.PageCount, opts, dto.CreatedAt)
}
