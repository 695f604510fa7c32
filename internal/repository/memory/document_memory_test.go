package memory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"safesign/internal/model"
	"safesign/internal/repository"
)

func sampleDoc(id, envelope string) *model.Document {
	return &model.Document{
		ID:         id,
		EnvelopeID: envelope,
		Type:       "rentalContract",
		Status:     model.StatusDraft,
		CreatedBy:  "owner-1",
		CreatedAt:  time.Now().UTC(),
		Signers: []model.Signer{
			{ID: "lessor", Role: "lessor", FirstName: "Paul", LastName: "Martin"},
		},
	}
}

func TestMemoryCreateAndFind(t *testing.T) {
	repo := NewDocumentMemory()
	ctx := context.Background()

	doc := sampleDoc("doc-1", "env-1")
	doc.ShareLink = "tok-1"

	created, err := repo.Create(ctx, doc)
	assert.NoError(t, err)
	assert.Equal(t, "doc-1", created.ID)

	_, err = repo.Create(ctx, doc)
	assert.Error(t, err)

	byID, err := repo.FindByID(ctx, "doc-1")
	assert.NoError(t, err)
	assert.Equal(t, "env-1", byID.EnvelopeID)

	byEnv, err := repo.FindByEnvelopeID(ctx, "env-1")
	assert.NoError(t, err)
	assert.Equal(t, "doc-1", byEnv.ID)

	byShare, err := repo.FindByShareLink(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Equal(t, "doc-1", byShare.ID)

	_, err = repo.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.FindByEnvelopeID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.FindByShareLink(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemorySaveReindexes(t *testing.T) {
	repo := NewDocumentMemory()
	ctx := context.Background()

	doc := sampleDoc("doc-1", "env-1")
	_, err := repo.Create(ctx, doc)
	assert.NoError(t, err)

	doc.ShareLink = "tok-1"
	doc.Status = model.StatusActive
	_, err = repo.Save(ctx, doc)
	assert.NoError(t, err)

	byShare, err := repo.FindByShareLink(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusActive, byShare.Status)

	_, err = repo.Save(ctx, sampleDoc("ghost", "env-x"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryReturnsDetachedCopies(t *testing.T) {
	repo := NewDocumentMemory()
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleDoc("doc-1", "env-1"))
	assert.NoError(t, err)

	first, err := repo.FindByID(ctx, "doc-1")
	assert.NoError(t, err)
	first.Signers[0].FirstName = "Mutated"
	first.Status = model.StatusCancelled

	second, err := repo.FindByID(ctx, "doc-1")
	assert.NoError(t, err)
	assert.Equal(t, "Paul", second.Signers[0].FirstName)
	assert.Equal(t, model.StatusDraft, second.Status)
}

func TestMemoryListFilters(t *testing.T) {
	repo := NewDocumentMemory()
	ctx := context.Background()

	for i, id := range []string{"doc-1", "doc-2", "doc-3"} {
		doc := sampleDoc(id, "env-"+id)
		doc.CreatedAt = time.Date(2025, time.July, 1+i, 0, 0, 0, 0, time.UTC)
		if id == "doc-3" {
			doc.CreatedBy = "owner-2"
			doc.Status = model.StatusActive
		}
		_, err := repo.Create(ctx, doc)
		assert.NoError(t, err)
	}

	page, err := repo.List(ctx, repository.PageQuery{OwnerID: "owner-1"})
	assert.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	// Newest first.
	assert.Equal(t, "doc-2", page.Items[0].ID)

	page, err = repo.List(ctx, repository.PageQuery{Status: model.StatusActive})
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "doc-3", page.Items[0].ID)

	page, err = repo.List(ctx, repository.PageQuery{Limit: 1, Offset: 1})
	assert.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "doc-2", page.Items[0].ID)
}

func TestMemoryDelete(t *testing.T) {
	repo := NewDocumentMemory()
	ctx := context.Background()

	doc := sampleDoc("doc-1", "env-1")
	doc.ShareLink = "tok-1"
	_, err := repo.Create(ctx, doc)
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, "doc-1"))
	assert.NoError(t, repo.Delete(ctx, "doc-1"))

	_, err = repo.FindByEnvelopeID(ctx, "env-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.FindByShareLink(ctx, "tok-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store", "documents.json")

	store := NewDocumentMemory()
	doc := sampleDoc("doc-1", "env-1")
	doc.ShareLink = "tok-1"
	_, err := store.Create(ctx, doc)
	assert.NoError(t, err)

	snap := NewSnapshotter(store, path, time.Minute, zap.NewNop())
	assert.NoError(t, snap.Flush())

	restored := NewDocumentMemory()
	restoredSnap := NewSnapshotter(restored, path, time.Minute, zap.NewNop())
	assert.NoError(t, restoredSnap.Restore())

	byShare, err := restored.FindByShareLink(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Equal(t, "doc-1", byShare.ID)
	assert.Equal(t, "env-1", byShare.EnvelopeID)
}

func TestSnapshotRestoreMissingFile(t *testing.T) {
	store := NewDocumentMemory()
	snap := NewSnapshotter(store, filepath.Join(t.TempDir(), "absent.json"), time.Minute, zap.NewNop())
	assert.NoError(t, snap.Restore())
}

func TestSnapshotterStopFlushes(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "documents.json")

	store := NewDocumentMemory()
	_, err := store.Create(ctx, sampleDoc("doc-1", "env-1"))
	assert.NoError(t, err)

	snap := NewSnapshotter(store, path, time.Hour, zap.NewNop())
	go snap.Run(context.Background())
	assert.NoError(t, snap.Stop())

	restored := NewDocumentMemory()
	assert.NoError(t, NewSnapshotter(restored, path, time.Hour, zap.NewNop()).Restore())
	_, err = restored.FindByID(ctx, "doc-1")
	assert.NoError(t, err)
}
