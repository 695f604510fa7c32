package repository

import (
	"context"

	"safesign/internal/model"
)

// DocumentRepository defines data access for document aggregates.
// No business logic here — strictly persistence operations. Lifecycle
// rules and signature validation belong to the service layer.
type DocumentRepository interface {
	// Create inserts a new document. The caller provides ID, EnvelopeID
	// and CreatedAt. Fails if the ID already exists.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Save replaces the stored aggregate for doc.ID. Returns ErrNotFound
	// when the document was never created.
	Save(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// FindByEnvelopeID returns a document by its envelope identifier.
	FindByEnvelopeID(ctx context.Context, envelopeID string) (*model.Document, error)

	// FindByShareLink returns a document by its share-link token.
	FindByShareLink(ctx context.Context, token string) (*model.Document, error)

	// List returns a paginated list of documents and total rows count for the given filter.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters plus optional
// owner (Document.CreatedBy) and status filters. Zero-value fields do
// not filter.
type PageQuery struct {
	Limit   int
	Offset  int
	OwnerID string
	Status  model.DocumentStatus
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
