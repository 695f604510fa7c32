package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"safesign/internal/model"
	"safesign/internal/repository"
	"safesign/internal/storage"
	"safesign/internal/template"
)

// Principal identifies the authenticated caller. The service only ever
// asks two questions of it: is this the document owner, and is it an
// admin.
type Principal struct {
	UserID string
	Admin  bool
}

// DocumentView pairs the aggregate with the template-drift flag: true
// when the registered renderer's digest no longer matches the digest
// captured at creation. Drift is a signal, never an error.
type DocumentView struct {
	Document      *model.Document `json:"document"`
	TemplateDrift bool            `json:"templateDrift"`
}

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// UpdateDocumentInput is the owner's draft patch. Nil slices and nil
// pointers leave the corresponding part untouched.
type UpdateDocumentInput struct {
	Title     *string                 `json:"title"`
	Fields    []model.Field           `json:"fields"`
	Signers   []model.Signer          `json:"signers"`
	Settings  *model.DocumentSettings `json:"settings"`
	ExpiresAt *time.Time              `json:"expiresAt"`
}

// ShareInfo is returned by ActivateSharing.
type ShareInfo struct {
	ShareLink  string `json:"shareLink"`
	EnvelopeID string `json:"envelopeId"`
}

// SignatureMeta carries the request metadata recorded on a signature.
type SignatureMeta struct {
	IPAddress string
	UserAgent string
}

// SignResult reports the outcome of a successful SubmitSignature.
type SignResult struct {
	SignatureID string `json:"signatureId"`
	AllSigned   bool   `json:"allSigned"`
}

// PublicSigner is the redacted signer shape exposed through share links:
// name and organization only, no email, address or title.
type PublicSigner struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Organization string `json:"organization,omitempty"`
	Role         string `json:"role"`
	Required     bool   `json:"required"`
	Order        int    `json:"order"`
	HasSigned    bool   `json:"hasSigned"`
}

// PublicDocumentView is what a signer sees through an active share link.
// Readonly fields are withheld.
type PublicDocumentView struct {
	EnvelopeID    string                 `json:"envelopeId"`
	Title         string                 `json:"title"`
	Type          string                 `json:"type"`
	Status        model.DocumentStatus   `json:"status"`
	Signers       []PublicSigner         `json:"signers"`
	Fields        []model.Field          `json:"fields"`
	Settings      model.DocumentSettings `json:"settings"`
	TemplateDrift bool                   `json:"templateDrift"`
}

// DocumentService defines the document lifecycle and signing use cases.
type DocumentService interface {
	// CreateDocument creates a draft of the given template type, seeding
	// fields and signers from the type config and capturing the
	// renderer's digest.
	CreateDocument(ctx context.Context, docType, title string, caller Principal) (*DocumentView, error)

	// GetDocument returns a document to its owner (or an admin).
	GetDocument(ctx context.Context, id string, caller Principal) (*DocumentView, error)

	// ListDocuments returns the caller's documents, newest first. Admins
	// see all documents.
	ListDocuments(ctx context.Context, caller Principal, limit, offset int) (*DocumentListResult, error)

	// UpdateDocument applies a draft-only patch by the owner.
	UpdateDocument(ctx context.Context, id string, patch UpdateDocumentInput, caller Principal) (*DocumentView, error)

	// ActivateSharing assigns the share link (idempotently) and moves the
	// document to active.
	ActivateSharing(ctx context.Context, id string, caller Principal) (*ShareInfo, error)

	// CancelDocument moves an active document to cancelled.
	CancelDocument(ctx context.Context, id string, caller Principal) (*DocumentView, error)

	// DeleteDocument removes a non-completed document.
	DeleteDocument(ctx context.Context, id string, caller Principal) error

	// GetForSigning resolves a share link into the redacted public view.
	GetForSigning(ctx context.Context, shareLink string) (*PublicDocumentView, error)

	// SubmitSignature records one signer's consent and merges their owned
	// field values. The last signature completes the document
	// synchronously.
	SubmitSignature(ctx context.Context, shareLink, signerID string, fieldValues map[string]any, signatureData string, meta SignatureMeta) (*SignResult, error)

	// RenderPreview renders the document for its owner, optionally
	// overriding the derived terms.
	RenderPreview(ctx context.Context, id string, override *template.Terms, caller Principal) (string, error)

	// RenderFinal renders the document addressed by its envelope ID, the
	// only identifier valid for post-completion viewing.
	RenderFinal(ctx context.Context, envelopeID string) (string, error)

	// ArchiveURL returns a time-limited download URL for the archived
	// final render of a completed document.
	ArchiveURL(ctx context.Context, id string, caller Principal) (string, error)

	// ListTemplateTypes enumerates the registered document types.
	ListTemplateTypes() []template.Info

	// GetTemplateConfig returns the static type-level configuration.
	GetTemplateConfig(docType string) (*model.DocumentTypeConfig, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	repo     repository.DocumentRepository
	registry *template.Registry
	store    storage.Storage
	log      *zap.Logger
	locks    *docLocker
	metrics  *Metrics
}

// NewDocumentService constructs a new DocumentService. store may be nil
// when no object storage is configured; archiving is then skipped.
func NewDocumentService(repo repository.DocumentRepository, registry *template.Registry, store storage.Storage, log *zap.Logger, metrics *Metrics) DocumentService {
	return &documentService{
		repo:     repo,
		registry: registry,
		store:    store,
		log:      log,
		locks:    newDocLocker(),
		metrics:  metrics,
	}
}

const (
	archivePrefix     = "archives/"
	defaultListLimit  = 10
	archiveLinkExpiry = 15 * time.Minute
)

func (s *documentService) CreateDocument(ctx context.Context, docType, title string, caller Principal) (*DocumentView, error) {
	renderer, err := s.registry.Get(docType)
	if err != nil {
		return nil, err
	}
	cfg := renderer.Config()
	if title == "" {
		title = renderer.Title()
	}

	now := time.Now().UTC()
	doc := &model.Document{
		ID:             uuid.New().String(),
		EnvelopeID:     uuid.New().String(),
		Title:          title,
		Type:           docType,
		Status:         model.StatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      caller.UserID,
		Signers:        cfg.SeedSigners(),
		Fields:         cfg.SeedFields(),
		TemplateDigest: renderer.Digest(),
		Settings:       model.DefaultSettings(),
	}

	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.metrics.DocumentCreated(docType)
	s.log.Info("document created",
		zap.String("id", stored.ID),
		zap.String("type", docType),
		zap.String("owner", caller.UserID),
	)
	return &DocumentView{Document: stored}, nil
}

func (s *documentService) GetDocument(ctx context.Context, id string, caller Principal) (*DocumentView, error) {
	doc, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, caller); err != nil {
		return nil, err
	}
	return &DocumentView{Document: doc, TemplateDrift: s.templateDrift(doc)}, nil
}

func (s *documentService) ListDocuments(ctx context.Context, caller Principal, limit, offset int) (*DocumentListResult, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	pq := repository.PageQuery{Limit: limit, Offset: offset}
	if !caller.Admin {
		pq.OwnerID = caller.UserID
	}
	res, err := s.repo.List(ctx, pq)
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, id string, patch UpdateDocumentInput, caller Principal) (*DocumentView, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	doc, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, caller); err != nil {
		return nil, err
	}
	if doc.Status != model.StatusDraft {
		return nil, fmt.Errorf("%w: document is %s", ErrInvalidState, doc.Status)
	}

	if patch.Title != nil {
		doc.Title = *patch.Title
	}
	if patch.Settings != nil {
		doc.Settings = *patch.Settings
	}
	if patch.ExpiresAt != nil {
		doc.ExpiresAt = patch.ExpiresAt
	}
	if patch.Signers != nil {
		doc.Signers = patch.Signers
	}
	if patch.Fields != nil {
		for i := range patch.Fields {
			if err := patch.Fields[i].Validate(); err != nil {
				return nil, fmt.Errorf("%w: field %s: %v", ErrValidation, patch.Fields[i].ID, err)
			}
		}
		doc.Fields = patch.Fields
	}
	if err := doc.ValidateIntegrity(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	doc.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.Save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	return &DocumentView{Document: saved, TemplateDrift: s.templateDrift(saved)}, nil
}

func (s *documentService) ActivateSharing(ctx context.Context, id string, caller Principal) (*ShareInfo, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	doc, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, caller); err != nil {
		return nil, err
	}
	if doc.Status.Terminal() {
		return nil, fmt.Errorf("%w: document is %s", ErrInvalidState, doc.Status)
	}

	// Re-sharing returns the same link.
	if doc.ShareLink == "" {
		doc.ShareLink = uuid.New().String()
	}
	doc.ShareLinkActive = true
	doc.Status = model.StatusActive
	doc.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.Save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	s.log.Info("sharing activated", zap.String("id", saved.ID))
	return &ShareInfo{ShareLink: saved.ShareLink, EnvelopeID: saved.EnvelopeID}, nil
}

func (s *documentService) CancelDocument(ctx context.Context, id string, caller Principal) (*DocumentView, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	doc, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, caller); err != nil {
		return nil, err
	}
	if doc.Status != model.StatusActive {
		return nil, fmt.Errorf("%w: document is %s", ErrInvalidState, doc.Status)
	}

	doc.Status = model.StatusCancelled
	doc.ShareLinkActive = false
	doc.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.Save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	s.log.Info("document cancelled", zap.String("id", saved.ID))
	return &DocumentView{Document: saved, TemplateDrift: s.templateDrift(saved)}, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, id string, caller Principal) error {
	if id == "" {
		return ErrIDRequired
	}
	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	doc, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(doc, caller); err != nil {
		return err
	}
	if doc.Status == model.StatusCompleted {
		return fmt.Errorf("%w: completed documents cannot be deleted", ErrInvalidState)
	}
	return s.repo.Delete(ctx, id)
}

func (s *documentService) GetForSigning(ctx context.Context, shareLink string) (*PublicDocumentView, error) {
	doc, err := s.findByShareLink(ctx, shareLink)
	if err != nil {
		return nil, err
	}
	if doc.Status.Terminal() {
		return nil, ErrDocumentClosed
	}
	if !doc.ShareLinkActive || doc.Status != model.StatusActive {
		return nil, ErrLinkInactive
	}
	return s.publicView(doc), nil
}

func (s *documentService) SubmitSignature(ctx context.Context, shareLink, signerID string, fieldValues map[string]any, signatureData string, meta SignatureMeta) (*SignResult, error) {
	// Resolve the link outside the lock to learn the document ID, then
	// re-read under the lock so the guards see the latest aggregate.
	doc, err := s.findByShareLink(ctx, shareLink)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(doc.ID)
	defer s.locks.Unlock(doc.ID)

	doc, err = s.findByShareLink(ctx, shareLink)
	if err != nil {
		return nil, err
	}
	if doc.Status.Terminal() {
		return nil, ErrDocumentClosed
	}
	if !doc.ShareLinkActive || doc.Status != model.StatusActive {
		return nil, ErrLinkInactive
	}
	signer := doc.SignerByID(signerID)
	if signer == nil {
		return nil, ErrUnknownSigner
	}
	if doc.SignatureBySigner(signerID) != nil {
		return nil, ErrAlreadySigned
	}

	// Merge owned field values. Values for fields owned by other signers
	// are dropped, never applied.
	accepted := make(map[string]any, len(fieldValues))
	for fieldID, value := range fieldValues {
		var field *model.Field
		for i := range doc.Fields {
			if doc.Fields[i].ID == fieldID {
				field = &doc.Fields[i]
				break
			}
		}
		if field == nil {
			s.log.Warn("submitted value for unknown field",
				zap.String("document", doc.ID),
				zap.String("field", fieldID),
			)
			continue
		}
		if field.SignerID != signerID {
			s.log.Warn("dropped cross-signer field value",
				zap.String("document", doc.ID),
				zap.String("field", fieldID),
				zap.String("signer", signerID),
			)
			continue
		}
		prev := field.Value
		field.Value = value
		if err := field.Validate(); err != nil {
			field.Value = prev
			return nil, fmt.Errorf("%w: field %s: %v", ErrValidation, fieldID, err)
		}
		accepted[fieldID] = value
	}

	now := time.Now().UTC()
	sig := model.Signature{
		ID:            uuid.New().String(),
		SignerID:      signerID,
		DocumentID:    doc.ID,
		SignedAt:      now,
		IPAddress:     meta.IPAddress,
		UserAgent:     meta.UserAgent,
		SignatureData: signatureData,
		FieldValues:   accepted,
		IsValid:       true,
	}
	doc.Signatures = append(doc.Signatures, sig)
	doc.UpdatedAt = now

	// The last signature completes the document in the same operation.
	completed := doc.AllSigned()
	if completed {
		doc.Status = model.StatusCompleted
		doc.CompletedAt = &now
		doc.ShareLinkActive = false
	}

	saved, err := s.repo.Save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	s.metrics.SignatureRecorded()
	s.log.Info("signature recorded",
		zap.String("document", saved.ID),
		zap.String("signer", signerID),
		zap.Bool("completed", completed),
	)
	if completed {
		s.metrics.DocumentCompleted()
		s.archiveFinal(ctx, saved)
	}
	return &SignResult{SignatureID: sig.ID, AllSigned: completed}, nil
}

func (s *documentService) RenderPreview(ctx context.Context, id string, override *template.Terms, caller Principal) (string, error) {
	doc, err := s.findByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.authorize(doc, caller); err != nil {
		return "", err
	}
	return s.render(doc, override)
}

func (s *documentService) RenderFinal(ctx context.Context, envelopeID string) (string, error) {
	doc, err := s.repo.FindByEnvelopeID(ctx, envelopeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return s.render(doc, nil)
}

func (s *documentService) ArchiveURL(ctx context.Context, id string, caller Principal) (string, error) {
	doc, err := s.findByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.authorize(doc, caller); err != nil {
		return "", err
	}
	if doc.Status != model.StatusCompleted {
		return "", fmt.Errorf("%w: document is %s", ErrInvalidState, doc.Status)
	}
	if s.store == nil {
		return "", ErrNotFound
	}
	url, err := s.store.PresignGet(ctx, archiveKey(doc), archiveLinkExpiry)
	if err != nil {
		return "", fmt.Errorf("presign archive: %w", err)
	}
	return url, nil
}

func (s *documentService) ListTemplateTypes() []template.Info {
	return s.registry.List()
}

func (s *documentService) GetTemplateConfig(docType string) (*model.DocumentTypeConfig, error) {
	renderer, err := s.registry.Get(docType)
	if err != nil {
		return nil, err
	}
	return renderer.Config(), nil
}

// render merges the document into its template. Completed-at, if set,
// anchors the render date so the final view stays stable.
func (s *documentService) render(doc *model.Document, override *template.Terms) (string, error) {
	renderer, err := s.registry.Get(doc.Type)
	if err != nil {
		return "", err
	}
	current := time.Now().UTC()
	if doc.CompletedAt != nil {
		current = *doc.CompletedAt
	}
	return renderer.Render(template.Context{
		Document:    doc,
		Terms:       mergeTerms(buildTerms(doc), override),
		Fields:      doc.FieldValues(),
		Signers:     doc.Signers,
		CurrentDate: current,
	})
}

// archiveFinal stores the completed render in object storage. Best
// effort: a storage failure does not undo the completion.
func (s *documentService) archiveFinal(ctx context.Context, doc *model.Document) {
	if s.store == nil {
		return
	}
	html, err := s.render(doc, nil)
	if err != nil {
		s.log.Error("archive render failed", zap.String("document", doc.ID), zap.Error(err))
		return
	}
	_, err = s.store.Put(ctx, archiveKey(doc), bytes.NewReader([]byte(html)), storage.PutObjectOptions{
		Size:        int64(len(html)),
		ContentType: "text/html; charset=utf-8",
		Metadata: map[string]string{
			"document-id": doc.ID,
			"envelope-id": doc.EnvelopeID,
		},
	})
	if err != nil {
		s.log.Error("archive upload failed", zap.String("document", doc.ID), zap.Error(err))
		return
	}
	s.log.Info("final document archived", zap.String("document", doc.ID))
}

func (s *documentService) publicView(doc *model.Document) *PublicDocumentView {
	signers := make([]PublicSigner, 0, len(doc.Signers))
	for _, sg := range doc.Signers {
		signers = append(signers, PublicSigner{
			ID:           sg.ID,
			FirstName:    sg.FirstName,
			LastName:     sg.LastName,
			Organization: sg.Organization,
			Role:         sg.Role,
			Required:     sg.Required,
			Order:        sg.Order,
			HasSigned:    doc.SignatureBySigner(sg.ID) != nil,
		})
	}
	fields := make([]model.Field, 0, len(doc.Fields))
	for _, f := range doc.Fields {
		if f.Readonly {
			continue
		}
		fields = append(fields, f.Clone())
	}
	return &PublicDocumentView{
		EnvelopeID:    doc.EnvelopeID,
		Title:         doc.Title,
		Type:          doc.Type,
		Status:        doc.Status,
		Signers:       signers,
		Fields:        fields,
		Settings:      doc.Settings,
		TemplateDrift: s.templateDrift(doc),
	}
}

func (s *documentService) templateDrift(doc *model.Document) bool {
	renderer, err := s.registry.Get(doc.Type)
	if err != nil {
		return false
	}
	return doc.TemplateDigest != "" && doc.TemplateDigest != renderer.Digest()
}

func (s *documentService) authorize(doc *model.Document, caller Principal) error {
	if caller.Admin || doc.CreatedBy == caller.UserID {
		return nil
	}
	return ErrForbidden
}

func (s *documentService) findByID(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) findByShareLink(ctx context.Context, token string) (*model.Document, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	doc, err := s.repo.FindByShareLink(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func archiveKey(doc *model.Document) string {
	return archivePrefix + doc.EnvelopeID + ".html"
}
