package template

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTemplate is returned when no renderer is registered for a
	// document-type identifier. Callers surface it as a not-found, never a
	// crash.
	ErrUnknownTemplate = errors.New("unknown template type")

	// ErrDuplicateTemplate is returned when a type is registered twice;
	// last-write-wins registration would silently swap legal text, so the
	// registry refuses it.
	ErrDuplicateTemplate = errors.New("template type already registered")
)

// Info is the enumeration entry for one registered document type.
type Info struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Registry maps document-type identifiers to renderer instances. It is
// populated once at process start and read-only afterwards, so lookups
// need no locking.
type Registry struct {
	renderers map[string]Renderer
	order     []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// NewDefault returns a registry with every built-in document template
// registered in its canonical order.
func NewDefault() *Registry {
	r := New()
	r.MustRegister(NewRentalContract())
	r.MustRegister(NewSubleaseContract())
	r.MustRegister(NewGuaranteeAct())
	r.MustRegister(NewInventory())
	r.MustRegister(NewRentReceipt())
	r.MustRegister(NewResidenceCertificate())
	return r
}

// Register adds a renderer under its type identifier.
func (r *Registry) Register(renderer Renderer) error {
	typ := renderer.Type()
	if _, exists := r.renderers[typ]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTemplate, typ)
	}
	r.renderers[typ] = renderer
	r.order = append(r.order, typ)
	return nil
}

// MustRegister is Register for process wiring, where a duplicate type is a
// programming error.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer for a document-type identifier.
func (r *Registry) Get(typ string) (Renderer, error) {
	renderer, ok := r.renderers[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, typ)
	}
	return renderer, nil
}

// List enumerates the registered types in registration order.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.order))
	for _, typ := range r.order {
		t := r.renderers[typ]
		out = append(out, Info{Type: t.Type(), Title: t.Title(), Description: t.Description()})
	}
	return out
}
