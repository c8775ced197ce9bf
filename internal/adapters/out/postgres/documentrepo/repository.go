package documentrepo

import (
	"context"
	"errors"

	"printdrop/internal/core/domain/model/document"
	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormDocumentRepository struct {
	db *gorm.DB
}

func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

func (r *GormDocumentRepository) Add(ctx context.Context, doc *document.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(doc)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DocumentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindManyByIDs returns the existing documents among ids, in no particular order.
func (r *GormDocumentRepository) FindManyByIDs(ctx context.Context, ids []kernel.UUID) ([]*document.Document, error) {
	if len(ids) == 0 {
		return []*document.Document{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []DocumentDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormDocumentRepository) ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]*document.Document, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DocumentDTO
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func toDomainList(dtos []DocumentDTO) ([]*document.Document, error) {
	docs := make([]*document.Document, 0, len(dtos))
	for _, dto := range dtos {
		doc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
