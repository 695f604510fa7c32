package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestFieldValidate(t *testing.T) {
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		field   Field
		wantErr string
	}{
		{
			name:  "text field with matching attrs",
			field: Field{ID: "city", Type: FieldText, Text: &TextAttrs{MaxLength: 64}, Value: "Blois"},
		},
		{
			name:    "unknown type",
			field:   Field{ID: "x", Type: FieldType("bogus")},
			wantErr: "unknown type",
		},
		{
			name:    "missing id",
			field:   Field{Type: FieldText},
			wantErr: "id is required",
		},
		{
			name:    "numeric attrs on text type",
			field:   Field{ID: "city", Type: FieldText, Num: &NumAttrs{Min: f64(0)}},
			wantErr: "num attributes are not legal",
		},
		{
			name:    "select attrs on date type",
			field:   Field{ID: "d", Type: FieldDate, Select: &SelectAttrs{}},
			wantErr: "select attributes are not legal",
		},
		{
			name:    "text regex mismatch",
			field:   Field{ID: "dpe", Type: FieldText, Text: &TextAttrs{Regex: "^[A-G]$"}, Value: "Z9"},
			wantErr: "does not match pattern",
		},
		{
			name:  "amount within bounds",
			field: Field{ID: "rent", Type: FieldAmount, Num: &NumAttrs{Min: f64(0), Max: f64(10000), Currency: EUR}, Value: 480.0},
		},
		{
			name:    "amount above max",
			field:   Field{ID: "rent", Type: FieldAmount, Num: &NumAttrs{Max: f64(100)}, Value: 480.0},
			wantErr: "above maximum",
		},
		{
			name:  "iban carries string value",
			field: Field{ID: "iban", Type: FieldIBAN, Value: "FR7630006000011234567890189"},
		},
		{
			name:    "date before minimum",
			field:   Field{ID: "start", Type: FieldDate, Date: &DateAttrs{MinDate: &past}, Value: "2019-06-01"},
			wantErr: "before minimum",
		},
		{
			name:  "date accepts DD/MM/YYYY strings",
			field: Field{ID: "start", Type: FieldDate, Value: "05/10/2025"},
		},
		{
			name: "multi select under minimum",
			field: Field{ID: "opts", Type: FieldMultiSelect, Select: &SelectAttrs{
				Options:       []SelectOption{{ID: "a", Value: "a"}, {ID: "b", Value: "b"}},
				MinSelections: 2,
			}, Value: []string{"a"}},
			wantErr: "at least 2 selections",
		},
		{
			name:  "toggle accepts bool",
			field: Field{ID: "furnished", Type: FieldToggle, Value: true},
		},
		{
			name:  "signature carries opaque string",
			field: Field{ID: "sig", Type: FieldSignature, Dyna: &DynaAttrs{DataType: "drawing"}, Value: "data:image/png;base64,AAAA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Validate()
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFieldKindDispatch(t *testing.T) {
	assert.Equal(t, KindText, FieldSignerName.Kind())
	assert.Equal(t, KindNumeric, FieldIBAN.Kind())
	assert.Equal(t, KindDate, FieldSignatureDate.Kind())
	assert.Equal(t, KindSelect, FieldToggle.Kind())
	assert.Equal(t, KindDynamic, FieldSignature.Kind())
}

func TestFieldClone(t *testing.T) {
	orig := Field{
		ID:   "rent",
		Type: FieldAmount,
		Num:  &NumAttrs{Min: f64(0), Currency: EUR},
	}
	clone := orig.Clone()
	*clone.Num.Min = 99

	assert.Equal(t, float64(0), *orig.Num.Min)
}
