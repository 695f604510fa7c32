package model

// DocumentOption describes one legal variant of a document type, rendered
// as a checkbox/radio/select group when configuring the document.
type DocumentOption struct {
	ID           string         `json:"id"`
	Label        string         `json:"label"`
	Type         string         `json:"type"` // text, number, email, date, textarea, radio, checkbox, select
	Required     bool           `json:"required"`
	Options      []OptionChoice `json:"options,omitempty"`
	DefaultValue any            `json:"defaultValue,omitempty"`
	Placeholder  string         `json:"placeholder,omitempty"`
	Min          *float64       `json:"min,omitempty"`
	Max          *float64       `json:"max,omitempty"`
}

// OptionChoice is one value of a radio/checkbox/select option group.
type OptionChoice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldDefinition is the template-level schema entry from which a
// document's actual fields are seeded at creation.
type FieldDefinition struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	SignerID    string    `json:"signerId"`
	Placeholder string    `json:"placeholder,omitempty"`
	Min         *float64  `json:"min,omitempty"`
	Max         *float64  `json:"max,omitempty"`
	Validation  string    `json:"validation,omitempty"` // regex pattern for text kinds
}

// DefaultSigner is a template-defined signer slot with its role label,
// required flag and signing order.
type DefaultSigner struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Required bool   `json:"required"`
	Order    int    `json:"order"`
}

// DocumentTypeConfig is the static, per-template-type configuration:
// option groups, field definitions and default signer slots. One config
// per registered template type, read-only at runtime.
type DocumentTypeConfig struct {
	Type             string            `json:"type"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Options          []DocumentOption  `json:"options"`
	FieldDefinitions []FieldDefinition `json:"fieldDefinitions"`
	DefaultSigners   []DefaultSigner   `json:"defaultSigners"`
}

// SeedFields instantiates a document's initial fields from the config's
// field definitions.
func (c *DocumentTypeConfig) SeedFields() []Field {
	fields := make([]Field, 0, len(c.FieldDefinitions))
	for _, def := range c.FieldDefinitions {
		f := Field{
			ID:       def.ID,
			Type:     def.Type,
			Label:    def.Label,
			Required: def.Required,
			SignerID: def.SignerID,
		}
		switch def.Type.Kind() {
		case KindText:
			if def.Placeholder != "" || def.Validation != "" {
				f.Text = &TextAttrs{Placeholder: def.Placeholder, Regex: def.Validation}
			}
		case KindNumeric:
			if def.Min != nil || def.Max != nil {
				f.Num = &NumAttrs{Min: def.Min, Max: def.Max}
			}
		}
		fields = append(fields, f)
	}
	return fields
}

// SeedSigners instantiates a document's initial signer slots from the
// config's default signer list. Identity attributes are filled in later by
// the owner while the document is a draft.
func (c *DocumentTypeConfig) SeedSigners() []Signer {
	signers := make([]Signer, 0, len(c.DefaultSigners))
	for _, def := range c.DefaultSigners {
		signers = append(signers, Signer{
			ID:       def.ID,
			Role:     def.Role,
			Required: def.Required,
			Order:    def.Order,
		})
	}
	return signers
}
