package service

import "errors"

// Typed guard failures. Handlers branch on these with errors.Is to pick
// a status code; messages are for humans only.
var (
	ErrIDRequired     = errors.New("id is required")
	ErrNotFound       = errors.New("document not found")
	ErrForbidden      = errors.New("caller is not allowed to access this document")
	ErrInvalidState   = errors.New("operation not allowed in current document status")
	ErrAlreadySigned  = errors.New("signer has already signed this document")
	ErrUnknownSigner  = errors.New("signer does not belong to this document")
	ErrLinkInactive   = errors.New("share link is not active")
	ErrDocumentClosed = errors.New("document is no longer available for signing")
	ErrValidation     = errors.New("invalid input")
)
