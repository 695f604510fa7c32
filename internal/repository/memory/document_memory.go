// Package memory provides an in-process implementation of
// repository.DocumentRepository backed by maps, with optional JSON
// snapshot persistence across restarts.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"safesign/internal/model"
	"safesign/internal/repository"
)

// DocumentMemory stores document aggregates in maps guarded by a single
// RWMutex. Envelope and share-link indices are maintained together with
// the primary map, under the same lock, so a reader can never observe a
// document through one index and miss it through another.
type DocumentMemory struct {
	mu      sync.RWMutex
	docs    map[string]*model.Document
	byEnv   map[string]string
	byShare map[string]string
	dirty   bool
}

// NewDocumentMemory creates an empty in-memory repository.
func NewDocumentMemory() *DocumentMemory {
	return &DocumentMemory{
		docs:    make(map[string]*model.Document),
		byEnv:   make(map[string]string),
		byShare: make(map[string]string),
	}
}

var _ repository.DocumentRepository = (*DocumentMemory)(nil)

// Create inserts a new document. The stored copy is detached from the
// caller's aggregate.
func (r *DocumentMemory) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.docs[doc.ID]; exists {
		return nil, fmt.Errorf("document %s already exists", doc.ID)
	}
	r.index(doc.Clone())
	r.dirty = true
	return doc.Clone(), nil
}

// Save replaces the stored aggregate for doc.ID.
func (r *DocumentMemory) Save(ctx context.Context, doc *model.Document) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, exists := r.docs[doc.ID]
	if !exists {
		return nil, repository.ErrNotFound
	}
	r.unindex(prev)
	r.index(doc.Clone())
	r.dirty = true
	return doc.Clone(), nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentMemory) FindByID(ctx context.Context, id string) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return doc.Clone(), nil
}

// FindByEnvelopeID fetches a single document by its envelope identifier.
func (r *DocumentMemory) FindByEnvelopeID(ctx context.Context, envelopeID string) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEnv[envelopeID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.docs[id].Clone(), nil
}

// FindByShareLink fetches a single document by its share-link token.
func (r *DocumentMemory) FindByShareLink(ctx context.Context, token string) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byShare[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.docs[id].Clone(), nil
}

// List returns documents filtered by owner and status, newest first.
func (r *DocumentMemory) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.Document, 0, len(r.docs))
	for _, doc := range r.docs {
		if pq.OwnerID != "" && doc.CreatedBy != pq.OwnerID {
			continue
		}
		if pq.Status != "" && doc.Status != pq.Status {
			continue
		}
		matched = append(matched, doc)
	}
	sortByCreatedAtDesc(matched)

	total := len(matched)
	if pq.Offset > 0 {
		if pq.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[pq.Offset:]
		}
	}
	if pq.Limit > 0 && pq.Limit < len(matched) {
		matched = matched[:pq.Limit]
	}

	items := make([]model.Document, 0, len(matched))
	for _, doc := range matched {
		items = append(items, *doc.Clone())
	}
	return &repository.PageResult[model.Document]{Items: items, Total: total}, nil
}

// Delete removes a document by ID. It does not return an error if the document does not exist.
func (r *DocumentMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil
	}
	r.unindex(doc)
	r.dirty = true
	return nil
}

// index stores doc and registers its secondary keys. Caller holds mu.
func (r *DocumentMemory) index(doc *model.Document) {
	r.docs[doc.ID] = doc
	if doc.EnvelopeID != "" {
		r.byEnv[doc.EnvelopeID] = doc.ID
	}
	if doc.ShareLink != "" {
		r.byShare[doc.ShareLink] = doc.ID
	}
}

// unindex removes doc and its secondary keys. Caller holds mu.
func (r *DocumentMemory) unindex(doc *model.Document) {
	delete(r.docs, doc.ID)
	if doc.EnvelopeID != "" {
		delete(r.byEnv, doc.EnvelopeID)
	}
	if doc.ShareLink != "" {
		delete(r.byShare, doc.ShareLink)
	}
}

// snapshotAll returns a detached copy of every stored document and
// clears the dirty flag.
func (r *DocumentMemory) snapshotAll() []*model.Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.Document, 0, len(r.docs))
	for _, doc := range r.docs {
		out = append(out, doc.Clone())
	}
	r.dirty = false
	return out
}

// load replaces the store contents. Used when restoring a snapshot.
func (r *DocumentMemory) load(docs []*model.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs = make(map[string]*model.Document, len(docs))
	r.byEnv = make(map[string]string, len(docs))
	r.byShare = make(map[string]string, len(docs))
	for _, doc := range docs {
		r.index(doc.Clone())
	}
	r.dirty = false
}

// isDirty reports whether the store changed since the last snapshot.
func (r *DocumentMemory) isDirty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dirty
}

// sortByCreatedAtDesc orders newest first, breaking ties on ID so
// pagination stays stable.
func sortByCreatedAtDesc(docs []*model.Document) {
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].CreatedAt.After(docs[j].CreatedAt)
		}
		return docs[i].ID > docs[j].ID
	})
}
