package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"safesign/internal/model"
)

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "zéro"},
		{1, "un"},
		{10, "dix"},
		{17, "dix-sept"},
		{21, "vingt-un"},
		{70, "soixante-dix"},
		{71, "soixante-onze"},
		{80, "quatre-vingt"},
		{91, "quatre-vingt-onze"},
		{100, "cent"},
		{123, "cent vingt-trois"},
		{200, "deux cents"},
		{480, "quatre cents quatre-vingt"},
		{1000, "mille"},
		{1001, "mille-un"},
		{7100, "sept-mille-cent"},
		{999999, "neuf cents quatre-vingt-dix-neuf-mille-neuf cents quatre-vingt-dix-neuf"},
		{1000000, "1000000"},
		{-42, "moins quarante-deux"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NumberToWords(c.n), "n=%d", c.n)
	}
}

func TestNumberToWordsDeterministic(t *testing.T) {
	for _, n := range []int{0, 7, 77, 777, 7777, 77777} {
		assert.Equal(t, NumberToWords(n), NumberToWords(n))
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "480,00 €", FormatCurrency(480, model.EUR))
	assert.Equal(t, "1 234,56 €", FormatCurrency(1234.56, model.EUR))
	assert.Equal(t, "1 000 000,00 $", FormatCurrency(1000000, model.USD))
	assert.Equal(t, "-12,50 €", FormatCurrency(-12.5, model.EUR))
	// Currencies without a dedicated symbol fall back to the code.
	assert.Equal(t, "5,00 CHF", FormatCurrency(5, model.CHF))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.July, 5, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "05/07/2025", FormatDate(d))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;&amp;&quot;&#x27;&#x2F;", escape(`<b>&"'/`))
}

func TestFieldOr(t *testing.T) {
	fields := map[string]any{
		"surface": 30.0,
		"name":    "<script>",
		"empty":   "",
	}
	assert.Equal(t, "30", fieldOr(fields, "surface", "[SURFACE]"))
	assert.Equal(t, "&lt;script&gt;", fieldOr(fields, "name", ""))
	assert.Equal(t, "[X]", fieldOr(fields, "empty", "[X]"))
	assert.Equal(t, "[X]", fieldOr(fields, "missing", "[X]"))
}

func TestNumField(t *testing.T) {
	fields := map[string]any{
		"a": 7100.0,
		"b": "450.5",
		"c": "not a number",
	}
	assert.Equal(t, 7100.0, numField(fields, "a", 0))
	assert.Equal(t, 450.5, numField(fields, "b", 0))
	assert.Equal(t, 99.0, numField(fields, "c", 99))
	assert.Equal(t, 99.0, numField(fields, "missing", 99))
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t, "25 rue Denis Papin<br>41000 Blois", formatAddress("25 rue Denis Papin, 41000 Blois"))
}
