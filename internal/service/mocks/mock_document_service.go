package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"safesign/internal/model"
	"safesign/internal/service"
	"safesign/internal/template"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) CreateDocument(ctx context.Context, docType, title string, caller service.Principal) (*service.DocumentView, error) {
	args := m.Called(ctx, docType, title, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentView), args.Error(1)
}

func (m *MockDocumentService) GetDocument(ctx context.Context, id string, caller service.Principal) (*service.DocumentView, error) {
	args := m.Called(ctx, id, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentView), args.Error(1)
}

func (m *MockDocumentService) ListDocuments(ctx context.Context, caller service.Principal, limit, offset int) (*service.DocumentListResult, error) {
	args := m.Called(ctx, caller, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentListResult), args.Error(1)
}

func (m *MockDocumentService) UpdateDocument(ctx context.Context, id string, patch service.UpdateDocumentInput, caller service.Principal) (*service.DocumentView, error) {
	args := m.Called(ctx, id, patch, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentView), args.Error(1)
}

func (m *MockDocumentService) ActivateSharing(ctx context.Context, id string, caller service.Principal) (*service.ShareInfo, error) {
	args := m.Called(ctx, id, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ShareInfo), args.Error(1)
}

func (m *MockDocumentService) CancelDocument(ctx context.Context, id string, caller service.Principal) (*service.DocumentView, error) {
	args := m.Called(ctx, id, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentView), args.Error(1)
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, id string, caller service.Principal) error {
	args := m.Called(ctx, id, caller)
	return args.Error(0)
}

func (m *MockDocumentService) GetForSigning(ctx context.Context, shareLink string) (*service.PublicDocumentView, error) {
	args := m.Called(ctx, shareLink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PublicDocumentView), args.Error(1)
}

func (m *MockDocumentService) SubmitSignature(ctx context.Context, shareLink, signerID string, fieldValues map[string]any, signatureData string, meta service.SignatureMeta) (*service.SignResult, error) {
	args := m.Called(ctx, shareLink, signerID, fieldValues, signatureData, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SignResult), args.Error(1)
}

func (m *MockDocumentService) RenderPreview(ctx context.Context, id string, override *template.Terms, caller service.Principal) (string, error) {
	args := m.Called(ctx, id, override, caller)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) RenderFinal(ctx context.Context, envelopeID string) (string, error) {
	args := m.Called(ctx, envelopeID)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) ArchiveURL(ctx context.Context, id string, caller service.Principal) (string, error) {
	args := m.Called(ctx, id, caller)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) ListTemplateTypes() []template.Info {
	args := m.Called()
	return args.Get(0).([]template.Info)
}

func (m *MockDocumentService) GetTemplateConfig(docType string) (*model.DocumentTypeConfig, error) {
	args := m.Called(docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentTypeConfig), args.Error(1)
}
