package model

import (
	"fmt"
	"regexp"
	"time"
)

// FieldType enumerates every field type a document can carry.
type FieldType string

const (
	// Text kinds
	FieldText            FieldType = "text"
	FieldEmail           FieldType = "email"
	FieldAddress         FieldType = "address"
	FieldSignerName      FieldType = "signerName"
	FieldSignerFirstName FieldType = "signerFirstName"
	FieldSignerTitle     FieldType = "signerTitle"
	FieldSignerEmail     FieldType = "signerEmail"
	FieldSignerOrg       FieldType = "signerOrg"
	FieldSignerAddress   FieldType = "signerAddress"

	// Numeric kinds
	FieldPhone          FieldType = "phone"
	FieldNumber         FieldType = "number"
	FieldAmount         FieldType = "amount"
	FieldCoordinates    FieldType = "coordinates"
	FieldTaxID          FieldType = "taxId"
	FieldBusinessReg    FieldType = "businessReg"
	FieldVATNumber      FieldType = "vatNumber"
	FieldIBAN           FieldType = "iban"
	FieldBIC            FieldType = "bic"
	FieldActivityCode   FieldType = "activityCode"
	FieldSSN            FieldType = "ssn"
	FieldPassport       FieldType = "passport"
	FieldDriversLicense FieldType = "driversLicense"

	// Date kinds
	FieldDate          FieldType = "date"
	FieldSignatureDate FieldType = "signatureDate"

	// Selection kinds
	FieldMultiSelect FieldType = "multiSelect"
	FieldToggle      FieldType = "toggle"

	// Dynamic kinds
	FieldFreeField FieldType = "freeField"
	FieldSignature FieldType = "signature"
	FieldFunction  FieldType = "function"
)

// FieldKind groups field types into the shape families that determine
// which attribute block is legal on a Field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumeric
	KindDate
	KindSelect
	KindDynamic
)

// Kind returns the shape family of a field type.
func (t FieldType) Kind() FieldKind {
	switch t {
	case FieldText, FieldEmail, FieldAddress, FieldSignerName, FieldSignerFirstName,
		FieldSignerTitle, FieldSignerEmail, FieldSignerOrg, FieldSignerAddress:
		return KindText
	case FieldPhone, FieldNumber, FieldAmount, FieldCoordinates, FieldTaxID,
		FieldBusinessReg, FieldVATNumber, FieldIBAN, FieldBIC, FieldActivityCode,
		FieldSSN, FieldPassport, FieldDriversLicense:
		return KindNumeric
	case FieldDate, FieldSignatureDate:
		return KindDate
	case FieldMultiSelect, FieldToggle:
		return KindSelect
	case FieldFreeField, FieldSignature, FieldFunction:
		return KindDynamic
	}
	return KindText
}

// Valid reports whether t is one of the enumerated field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldEmail, FieldAddress, FieldSignerName, FieldSignerFirstName,
		FieldSignerTitle, FieldSignerEmail, FieldSignerOrg, FieldSignerAddress,
		FieldPhone, FieldNumber, FieldAmount, FieldCoordinates, FieldTaxID,
		FieldBusinessReg, FieldVATNumber, FieldIBAN, FieldBIC, FieldActivityCode,
		FieldSSN, FieldPassport, FieldDriversLicense,
		FieldDate, FieldSignatureDate,
		FieldMultiSelect, FieldToggle,
		FieldFreeField, FieldSignature, FieldFunction:
		return true
	}
	return false
}

// Currency is an ISO-like currency code accepted on amount fields.
type Currency string

const (
	EUR  Currency = "EUR"
	USD  Currency = "USD"
	GBP  Currency = "GBP"
	CHF  Currency = "CHF"
	BTC  Currency = "BTC"
	ETH  Currency = "ETH"
	USDC Currency = "USDC"
)

// Position is a layout hint for document editors.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a layout hint for document editors.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TextAttrs are legal only on text-kind fields.
type TextAttrs struct {
	MaxLength   int    `json:"maxLength,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Regex       string `json:"regex,omitempty"`
}

// NumAttrs are legal only on numeric-kind fields.
type NumAttrs struct {
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Currency    Currency `json:"currency,omitempty"`
	CountryCode string   `json:"countryCode,omitempty"`
	Step        float64  `json:"step,omitempty"`
}

// DateAttrs are legal only on date-kind fields.
type DateAttrs struct {
	MinDate          *time.Time `json:"minDate,omitempty"`
	MaxDate          *time.Time `json:"maxDate,omitempty"`
	Format           string     `json:"format,omitempty"`
	DefaultToCurrent bool       `json:"defaultToCurrent,omitempty"`
}

// SelectOption is one choice of a selection field.
type SelectOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Selected bool   `json:"selected,omitempty"`
}

// SelectAttrs are legal only on selection-kind fields.
type SelectAttrs struct {
	Options       []SelectOption `json:"options"`
	MaxSelections int            `json:"maxSelections,omitempty"`
	MinSelections int            `json:"minSelections,omitempty"`
}

// DynaAttrs are legal only on dynamic-kind fields (free fields, drawn
// signatures, computed functions).
type DynaAttrs struct {
	DataType           string   `json:"dataType,omitempty"` // text, drawing or image
	FunctionExpression string   `json:"functionExpression,omitempty"`
	DependsOn          []string `json:"dependsOn,omitempty"`
}

// Field is the atomic unit of document data. The type's kind selects
// exactly one of the attribute blocks; carrying a block for another kind
// is a validation error, so consumers can dispatch on Kind without
// duck-typing individual attributes.
type Field struct {
	ID       string    `json:"id"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
	Readonly bool      `json:"readonly"`
	Unit     string    `json:"unit,omitempty"`
	Rounding int       `json:"rounding,omitempty"`
	Value    any       `json:"value,omitempty"`
	Position *Position `json:"position,omitempty"`
	Size     *Size     `json:"size,omitempty"`
	SignerID string    `json:"signerId,omitempty"`

	Text   *TextAttrs   `json:"text,omitempty"`
	Num    *NumAttrs    `json:"num,omitempty"`
	Date   *DateAttrs   `json:"date,omitempty"`
	Select *SelectAttrs `json:"select,omitempty"`
	Dyna   *DynaAttrs   `json:"dyna,omitempty"`
}

// Validate checks the field definition: known type, exactly the matching
// attribute block, and a value (if set) that satisfies the kind-specific
// constraints.
func (f *Field) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("field: id is required")
	}
	if !f.Type.Valid() {
		return fmt.Errorf("field %s: unknown type %q", f.ID, f.Type)
	}
	if err := f.checkAttrBlocks(); err != nil {
		return err
	}
	if f.Value == nil {
		return nil
	}
	return f.validateValue()
}

func (f *Field) checkAttrBlocks() error {
	kind := f.Type.Kind()
	blocks := []struct {
		kind FieldKind
		set  bool
		name string
	}{
		{KindText, f.Text != nil, "text"},
		{KindNumeric, f.Num != nil, "num"},
		{KindDate, f.Date != nil, "date"},
		{KindSelect, f.Select != nil, "select"},
		{KindDynamic, f.Dyna != nil, "dyna"},
	}
	for _, b := range blocks {
		if b.set && b.kind != kind {
			return fmt.Errorf("field %s: %s attributes are not legal on type %q", f.ID, b.name, f.Type)
		}
	}
	return nil
}

func (f *Field) validateValue() error {
	switch f.Type.Kind() {
	case KindText:
		s, ok := f.Value.(string)
		if !ok {
			return fmt.Errorf("field %s: expected string value", f.ID)
		}
		if f.Text != nil {
			if f.Text.MaxLength > 0 && len([]rune(s)) > f.Text.MaxLength {
				return fmt.Errorf("field %s: value exceeds max length %d", f.ID, f.Text.MaxLength)
			}
			if f.Text.Regex != "" {
				re, err := regexp.Compile(f.Text.Regex)
				if err != nil {
					return fmt.Errorf("field %s: invalid regex: %w", f.ID, err)
				}
				if !re.MatchString(s) {
					return fmt.Errorf("field %s: value does not match pattern", f.ID)
				}
			}
		}
	case KindNumeric:
		n, ok := numericValue(f.Value)
		if !ok {
			// Identifier-style numeric fields (IBAN, SIRET, ...) carry strings.
			if _, isStr := f.Value.(string); isStr {
				return nil
			}
			return fmt.Errorf("field %s: expected numeric value", f.ID)
		}
		if f.Num != nil {
			if f.Num.Min != nil && n < *f.Num.Min {
				return fmt.Errorf("field %s: value %v below minimum %v", f.ID, n, *f.Num.Min)
			}
			if f.Num.Max != nil && n > *f.Num.Max {
				return fmt.Errorf("field %s: value %v above maximum %v", f.ID, n, *f.Num.Max)
			}
		}
	case KindDate:
		t, err := dateValue(f.Value)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.ID, err)
		}
		if f.Date != nil {
			if f.Date.MinDate != nil && t.Before(*f.Date.MinDate) {
				return fmt.Errorf("field %s: date before minimum", f.ID)
			}
			if f.Date.MaxDate != nil && t.After(*f.Date.MaxDate) {
				return fmt.Errorf("field %s: date after maximum", f.ID)
			}
		}
	case KindSelect:
		vals, ok := selectionValues(f.Value)
		if !ok {
			return fmt.Errorf("field %s: expected selection value", f.ID)
		}
		if f.Select != nil {
			if f.Select.MinSelections > 0 && len(vals) < f.Select.MinSelections {
				return fmt.Errorf("field %s: at least %d selections required", f.ID, f.Select.MinSelections)
			}
			if f.Select.MaxSelections > 0 && len(vals) > f.Select.MaxSelections {
				return fmt.Errorf("field %s: at most %d selections allowed", f.ID, f.Select.MaxSelections)
			}
		}
	case KindDynamic:
		if _, ok := f.Value.(string); !ok {
			return fmt.Errorf("field %s: expected opaque string value", f.ID)
		}
	}
	return nil
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func dateValue(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable date %q", d)
	}
	return time.Time{}, fmt.Errorf("expected date value")
}

func selectionValues(v any) ([]string, bool) {
	switch s := v.(type) {
	case string:
		return []string{s}, true
	case bool:
		return []string{fmt.Sprintf("%t", s)}, true
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	if f.Position != nil {
		p := *f.Position
		out.Position = &p
	}
	if f.Size != nil {
		s := *f.Size
		out.Size = &s
	}
	if f.Text != nil {
		t := *f.Text
		out.Text = &t
	}
	if f.Num != nil {
		n := *f.Num
		if f.Num.Min != nil {
			m := *f.Num.Min
			n.Min = &m
		}
		if f.Num.Max != nil {
			m := *f.Num.Max
			n.Max = &m
		}
		out.Num = &n
	}
	if f.Date != nil {
		d := *f.Date
		if f.Date.MinDate != nil {
			m := *f.Date.MinDate
			d.MinDate = &m
		}
		if f.Date.MaxDate != nil {
			m := *f.Date.MaxDate
			d.MaxDate = &m
		}
		out.Date = &d
	}
	if f.Select != nil {
		s := SelectAttrs{
			Options:       append([]SelectOption(nil), f.Select.Options...),
			MaxSelections: f.Select.MaxSelections,
			MinSelections: f.Select.MinSelections,
		}
		out.Select = &s
	}
	if f.Dyna != nil {
		d := *f.Dyna
		d.DependsOn = append([]string(nil), f.Dyna.DependsOn...)
		out.Dyna = &d
	}
	return out
}
