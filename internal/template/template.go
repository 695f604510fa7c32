// Package template implements the per-document-type legal text renderers
// and the registry that maps document-type identifiers to them. Rendering
// is a pure function of its context: no clock reads, no input mutation.
package template

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"safesign/internal/model"
)

// Terms are the financial and duration terms merged into rental-family
// templates. They are derived from document fields by the caller and may
// be overridden for previews.
type Terms struct {
	RentalType     string    `json:"rentalType,omitempty"`
	DurationMonths int       `json:"durationMonths"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Rent           float64   `json:"rent"`
	Charges        float64   `json:"charges"`
	Deposit        float64   `json:"deposit"`
	Furnished      bool      `json:"furnished"`
	ShortTerm      bool      `json:"shortTerm"`
}

// Context carries everything a renderer may consult. CurrentDate is
// caller-supplied so rendering stays deterministic and testable.
type Context struct {
	Document    *model.Document
	Terms       Terms
	Fields      map[string]any
	Signers     []model.Signer
	CurrentDate time.Time
}

// Renderer produces the final human-readable legal document for one
// document type. Digest is a stable content-identity fingerprint used to
// detect template drift on already-created documents; it is a change
// detector, not an integrity proof.
type Renderer interface {
	Type() string
	Title() string
	Description() string
	Config() *model.DocumentTypeConfig
	Digest() string
	Render(ctx Context) (string, error)
}

// MissingSignerError reports that a structurally required signer role was
// absent from the render context.
type MissingSignerError struct {
	Role string
}

func (e *MissingSignerError) Error() string {
	return fmt.Sprintf("missing required signer role %q", e.Role)
}

// info carries the identity shared by every renderer implementation.
type info struct {
	name        string
	typ         string
	title       string
	description string
	config      *model.DocumentTypeConfig
}

func (i info) Type() string                      { return i.typ }
func (i info) Title() string                     { return i.title }
func (i info) Description() string               { return i.description }
func (i info) Config() *model.DocumentTypeConfig { return i.config }

// Digest fingerprints the renderer's identity: first 16 hex chars of
// sha256("Name:type:title").
func (i info) Digest() string {
	sum := sha256.Sum256([]byte(i.name + ":" + i.typ + ":" + i.title))
	return hex.EncodeToString(sum[:])[:16]
}

// signerByRole finds a signer by its template-defined role label, falling
// back to the signer id for documents whose signer slots were seeded with
// role-named ids.
func signerByRole(signers []model.Signer, role string) (model.Signer, bool) {
	for _, s := range signers {
		if s.Role == role {
			return s, true
		}
	}
	for _, s := range signers {
		if s.ID == role {
			return s, true
		}
	}
	return model.Signer{}, false
}

func requireSigner(signers []model.Signer, role string) (model.Signer, error) {
	s, ok := signerByRole(signers, role)
	if !ok {
		return model.Signer{}, &MissingSignerError{Role: role}
	}
	return s, nil
}
