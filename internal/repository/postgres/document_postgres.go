package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"safesign/internal/model"
	"safesign/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// The aggregate is stored as a JSONB payload; the columns it is queried
// by (envelope, share link, owner, status) are kept alongside as plain
// columns so lookups stay indexable.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, envelope_id, share_link, status, created_by, created_at, payload`

// Create inserts a new document row and returns the stored aggregate.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	const q = `
		INSERT INTO documents (id, envelope_id, share_link, status, created_by, created_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.EnvelopeID,
		nullString(doc.ShareLink),
		string(doc.Status),
		doc.CreatedBy,
		doc.CreatedAt,
		payload,
	)
	return scanDocument(row)
}

// Save replaces the stored aggregate and its lookup columns.
func (r *DocumentPostgres) Save(ctx context.Context, doc *model.Document) (*model.Document, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	const q = `
		UPDATE documents
		SET envelope_id = $2, share_link = $3, status = $4, payload = $5
		WHERE id = $1
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.EnvelopeID,
		nullString(doc.ShareLink),
		string(doc.Status),
		payload,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// FindByEnvelopeID fetches a single document by its envelope identifier.
func (r *DocumentPostgres) FindByEnvelopeID(ctx context.Context, envelopeID string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE envelope_id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, envelopeID))
}

// FindByShareLink fetches a single document by its share-link token.
func (r *DocumentPostgres) FindByShareLink(ctx context.Context, token string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE share_link = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, token))
}

// List returns documents using LIMIT/OFFSET pagination and a total count.
// Owner and status filters are optional; empty values match everything, and
// a non-positive limit disables row limiting.
func (r *DocumentPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	const qCount = `
		SELECT COUNT(*) FROM documents
		WHERE ($1 = '' OR created_by = $1) AND ($2 = '' OR status = $2)
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, pq.OwnerID, string(pq.Status)).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE ($1 = '' OR created_by = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	limit := sql.NullInt64{Int64: int64(pq.Limit), Valid: pq.Limit > 0}
	rows, err := r.db.QueryContext(ctx, qList, pq.OwnerID, string(pq.Status), limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanDocument decodes one row into the aggregate. The payload column is
// authoritative; the plain columns exist only for querying.
func scanDocument(row scanner) (*model.Document, error) {
	var (
		id, envelopeID, status, createdBy string
		shareLink                         sql.NullString
		createdAt                         sql.NullTime
		payload                           []byte
	)
	if err := row.Scan(&id, &envelopeID, &shareLink, &status, &createdBy, &createdAt, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var doc model.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	return &doc, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
