package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"safesign/internal/model"
	"safesign/internal/repository"
)

var documentCols = []string{"id", "envelope_id", "share_link", "status", "created_by", "created_at", "payload"}

func payloadFor(t *testing.T, doc *model.Document) []byte {
	t.Helper()
	data, err := json.Marshal(doc)
	assert.NoError(t, err)
	return data
}

func testDoc() *model.Document {
	return &model.Document{
		ID:         "test-uuid",
		EnvelopeID: "env-uuid",
		Type:       "rentalContract",
		Status:     model.StatusDraft,
		CreatedBy:  "owner-1",
		CreatedAt:  time.Now().UTC(),
	}
}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	doc := testDoc()
	payload := payloadFor(t, doc)

	rows := sqlmock.NewRows(documentCols).
		AddRow(doc.ID, doc.EnvelopeID, nil, string(doc.Status), doc.CreatedBy, doc.CreatedAt, payload)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.EnvelopeID, sql.NullString{}, string(doc.Status), doc.CreatedBy, doc.CreatedAt, payload).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Equal(t, doc.EnvelopeID, result.EnvelopeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	doc := testDoc()
	doc.Status = model.StatusActive
	doc.ShareLink = "tok-1"
	payload := payloadFor(t, doc)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(documentCols).
			AddRow(doc.ID, doc.EnvelopeID, doc.ShareLink, string(doc.Status), doc.CreatedBy, doc.CreatedAt, payload)

		mock.ExpectQuery("UPDATE documents").
			WithArgs(doc.ID, doc.EnvelopeID, sql.NullString{String: "tok-1", Valid: true}, string(doc.Status), payload).
			WillReturnRows(rows)

		result, err := repo.Save(ctx, doc)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusActive, result.Status)
		assert.Equal(t, "tok-1", result.ShareLink)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE documents").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Save(ctx, doc)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		doc := testDoc()
		rows := sqlmock.NewRows(documentCols).
			AddRow(doc.ID, doc.EnvelopeID, nil, string(doc.Status), doc.CreatedBy, doc.CreatedAt, payloadFor(t, doc))

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("test-uuid").
			WillReturnRows(rows)

		out, err := repo.FindByID(ctx, "test-uuid")

		assert.NoError(t, err)
		assert.NotNil(t, out)
		assert.Equal(t, "test-uuid", out.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		out, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, out)
	})
}

func TestDocumentPostgres_FindBySecondaryKeys(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()
	doc := testDoc()

	mock.ExpectQuery("SELECT (.+) FROM documents WHERE envelope_id = ?").
		WithArgs("env-uuid").
		WillReturnRows(sqlmock.NewRows(documentCols).
			AddRow(doc.ID, doc.EnvelopeID, nil, string(doc.Status), doc.CreatedBy, doc.CreatedAt, payloadFor(t, doc)))

	byEnv, err := repo.FindByEnvelopeID(ctx, "env-uuid")
	assert.NoError(t, err)
	assert.Equal(t, "test-uuid", byEnv.ID)

	mock.ExpectQuery("SELECT (.+) FROM documents WHERE share_link = ?").
		WithArgs("tok-1").
		WillReturnRows(sqlmock.NewRows(documentCols).
			AddRow(doc.ID, doc.EnvelopeID, "tok-1", string(doc.Status), doc.CreatedBy, doc.CreatedAt, payloadFor(t, doc)))

	byShare, err := repo.FindByShareLink(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Equal(t, "test-uuid", byShare.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		doc := testDoc()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM documents").
			WithArgs("owner-1", "").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(documentCols).
			AddRow(doc.ID, doc.EnvelopeID, nil, string(doc.Status), doc.CreatedBy, doc.CreatedAt, payloadFor(t, doc))

		mock.ExpectQuery("SELECT (.+) FROM documents").
			WithArgs("owner-1", "", 10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0, OwnerID: "owner-1"})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		doc := testDoc()
		doc.Status = model.StatusActive

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM documents").
			WithArgs("", string(model.StatusActive)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(documentCols).
			AddRow(doc.ID, doc.EnvelopeID, nil, string(doc.Status), doc.CreatedBy, doc.CreatedAt, payloadFor(t, doc))

		mock.ExpectQuery("SELECT (.+) FROM documents").
			WithArgs("", string(model.StatusActive), nil, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Status: model.StatusActive})

		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
	})
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs("test-uuid").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-uuid")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
