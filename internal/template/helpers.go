package template

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"safesign/internal/model"
)

// htmlEscaper covers the characters the rendered HTML must never carry
// verbatim from user input. Includes "/" on top of the usual four.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

func escape(s string) string { return htmlEscaper.Replace(s) }

// stringify renders a field value for interpolation. Floats drop their
// trailing zeros so "480" stays "480".
func stringify(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case bool:
		if n {
			return "oui"
		}
		return "non"
	case []string:
		return strings.Join(n, ", ")
	case []any:
		parts := make([]string, 0, len(n))
		for _, e := range n {
			parts = append(parts, stringify(e))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%v", v)
}

// fieldOr returns the escaped field value, or the placeholder marker when
// the field is unfilled. Placeholders are bracketed so a required clause
// is never silently omitted from the output.
func fieldOr(fields map[string]any, id, placeholder string) string {
	if v, ok := fields[id]; ok {
		if s := stringify(v); s != "" {
			return escape(s)
		}
	}
	return placeholder
}

// numField reads a numeric field value, tolerating string-typed numbers.
func numField(fields map[string]any, id string, def float64) float64 {
	v, ok := fields[id]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return def
}

// FormatDate renders a date as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

var currencySymbols = map[model.Currency]string{
	model.EUR: "€",
	model.USD: "$",
	model.GBP: "£",
}

// FormatCurrency renders an amount in French convention: space as
// thousands separator, comma decimals, symbol after the value
// ("1 234,56 €").
func FormatCurrency(amount float64, cur model.Currency) string {
	sym, ok := currencySymbols[cur]
	if !ok {
		sym = string(cur)
	}

	neg := amount < 0 || (amount == 0 && math.Signbit(amount))
	abs := math.Abs(amount)
	cents := int64(math.Round(abs * 100))
	intPart := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(intPart, 10)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteRune(' ')
		}
		grouped.WriteRune(d)
	}

	out := fmt.Sprintf("%s,%02d %s", grouped.String(), frac, sym)
	if neg {
		return "-" + out
	}
	return out
}

var (
	wordsOnes  = []string{"", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf"}
	wordsTeens = []string{"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize", "dix-sept", "dix-huit", "dix-neuf"}
	wordsTens  = []string{"", "", "vingt", "trente", "quarante", "cinquante", "soixante", "soixante-dix", "quatre-vingt", "quatre-vingt-dix"}
	wordsHundreds = []string{"", "cent", "deux cents", "trois cents", "quatre cents", "cinq cents", "six cents", "sept cents", "huit cents", "neuf cents"}
)

// NumberToWords spells out a whole-euro amount in French. Exact for the
// integer domain the legal templates use; values of a million or more
// fall back to digits. Deterministic: same integer, same string.
func NumberToWords(n int) string {
	if n == 0 {
		return "zéro"
	}
	if n < 0 {
		return "moins " + NumberToWords(-n)
	}
	switch {
	case n < 10:
		return wordsOnes[n]
	case n < 20:
		return wordsTeens[n-10]
	case n < 100:
		ten, one := n/10, n%10
		if ten == 7 || ten == 9 {
			return wordsTens[ten-1] + "-" + wordsTeens[one]
		}
		if one == 0 {
			return wordsTens[ten]
		}
		return wordsTens[ten] + "-" + wordsOnes[one]
	case n < 1000:
		hundred, rem := n/100, n%100
		if rem == 0 {
			return wordsHundreds[hundred]
		}
		return wordsHundreds[hundred] + " " + NumberToWords(rem)
	case n < 1000000:
		thousand, rem := n/1000, n%1000
		head := "mille"
		if thousand > 1 {
			head = NumberToWords(thousand) + "-mille"
		}
		if rem == 0 {
			return head
		}
		return head + "-" + NumberToWords(rem)
	}
	return strconv.Itoa(n)
}

// capitalize upper-cases the first rune, leaving the rest untouched.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// formatAddress splits a comma-separated address into HTML lines.
func formatAddress(address string) string {
	parts := strings.Split(address, ",")
	for i, p := range parts {
		parts[i] = escape(strings.TrimSpace(p))
	}
	return strings.Join(parts, "<br>")
}

// signerAddressOr renders a signer's address as HTML lines, or a
// placeholder when absent.
func signerAddressOr(s model.Signer, placeholder string) string {
	if s.Address == "" {
		return placeholder
	}
	return formatAddress(s.Address)
}

// wrapDocument surrounds rendered content with the shared HTML skeleton.
func wrapDocument(content, title string) string {
	return `
<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>` + escape(title) + `</title>
  <link rel="stylesheet" href="/styles.css">
</head>
<body>
  ` + content + `
</body>
</html>`
}
