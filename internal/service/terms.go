package service

import (
	"time"

	"safesign/internal/model"
	"safesign/internal/template"
)

// Well-known field IDs the rental-family templates read their financial
// terms from. Documents without these fields render with zero terms.
const (
	fieldDurationMonths = "durationMonths"
	fieldStartDate      = "startDate"
	fieldRent           = "rent"
	fieldCharges        = "charges"
	fieldDeposit        = "deposit"
)

// buildTerms derives rendering terms from the document's field values.
func buildTerms(doc *model.Document) template.Terms {
	values := doc.FieldValues()

	terms := template.Terms{
		DurationMonths: int(numValue(values, fieldDurationMonths, 0)),
		Rent:           numValue(values, fieldRent, 0),
		Charges:        numValue(values, fieldCharges, 0),
		Deposit:        numValue(values, fieldDeposit, 0),
	}
	if start, ok := dateValue(values, fieldStartDate); ok {
		terms.StartDate = start
		if terms.DurationMonths > 0 {
			terms.EndDate = start.AddDate(0, terms.DurationMonths, 0)
		}
	}
	return terms
}

// mergeTerms overlays the non-zero fields of override onto base. Used by
// previews so the owner can try terms without persisting field values.
func mergeTerms(base template.Terms, override *template.Terms) template.Terms {
	if override == nil {
		return base
	}
	out := base
	if override.RentalType != "" {
		out.RentalType = override.RentalType
	}
	if override.DurationMonths != 0 {
		out.DurationMonths = override.DurationMonths
	}
	if !override.StartDate.IsZero() {
		out.StartDate = override.StartDate
	}
	if !override.EndDate.IsZero() {
		out.EndDate = override.EndDate
	}
	if override.Rent != 0 {
		out.Rent = override.Rent
	}
	if override.Charges != 0 {
		out.Charges = override.Charges
	}
	if override.Deposit != 0 {
		out.Deposit = override.Deposit
	}
	if override.Furnished {
		out.Furnished = true
	}
	if override.ShortTerm {
		out.ShortTerm = true
	}
	if out.EndDate.IsZero() && !out.StartDate.IsZero() && out.DurationMonths > 0 {
		out.EndDate = out.StartDate.AddDate(0, out.DurationMonths, 0)
	}
	return out
}

func numValue(values map[string]any, id string, def float64) float64 {
	switch n := values[id].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return def
}

func dateValue(values map[string]any, id string) (time.Time, bool) {
	switch d := values[id].(type) {
	case time.Time:
		return d, true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
