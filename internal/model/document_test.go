package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func twoPartyDoc() *Document {
	return &Document{
		ID:         "doc-1",
		EnvelopeID: "env-1",
		Type:       "rentalContract",
		Status:     StatusActive,
		Signers: []Signer{
			{ID: "lessor", Role: "lessor", FirstName: "Paul", LastName: "Martin"},
			{ID: "tenant", Role: "tenant", FirstName: "Julie", LastName: "Durand"},
		},
		Fields: []Field{
			{ID: "rent", Type: FieldAmount, SignerID: "lessor", Value: 480.0},
		},
	}
}

func TestDocumentAllSigned(t *testing.T) {
	doc := twoPartyDoc()
	assert.False(t, doc.AllSigned())

	doc.Signatures = append(doc.Signatures, Signature{ID: "s1", SignerID: "lessor", SignedAt: time.Now()})
	assert.False(t, doc.AllSigned())

	doc.Signatures = append(doc.Signatures, Signature{ID: "s2", SignerID: "tenant", SignedAt: time.Now()})
	assert.True(t, doc.AllSigned())
}

func TestDocumentAllSignedNoSigners(t *testing.T) {
	doc := &Document{ID: "d"}
	// A document without signers can never complete.
	assert.False(t, doc.AllSigned())
}

func TestValidateIntegrity(t *testing.T) {
	doc := twoPartyDoc()
	assert.NoError(t, doc.ValidateIntegrity())

	doc.Fields = append(doc.Fields, Field{ID: "ghost", Type: FieldText, SignerID: "nobody"})
	err := doc.ValidateIntegrity()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown signer")

	doc = twoPartyDoc()
	doc.Signatures = []Signature{
		{ID: "s1", SignerID: "lessor"},
		{ID: "s2", SignerID: "lessor"},
	}
	err = doc.ValidateIntegrity()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "more than one signature")
}

func TestDocumentClone(t *testing.T) {
	doc := twoPartyDoc()
	doc.Signatures = []Signature{{ID: "s1", SignerID: "lessor", FieldValues: map[string]any{"rent": 480.0}}}

	clone := doc.Clone()
	clone.Fields[0].Value = 999.0
	clone.Signers[0].FirstName = "Hacked"
	clone.Signatures[0].FieldValues["rent"] = 999.0

	assert.Equal(t, 480.0, doc.Fields[0].Value)
	assert.Equal(t, "Paul", doc.Signers[0].FirstName)
	assert.Equal(t, 480.0, doc.Signatures[0].FieldValues["rent"])
}

func TestSeedFieldsAndSigners(t *testing.T) {
	cfg := &DocumentTypeConfig{
		Type: "rentalContract",
		FieldDefinitions: []FieldDefinition{
			{ID: "propertyAddress", Label: "Adresse du logement", Type: FieldText, Required: true, SignerID: "lessor"},
			{ID: "rent", Label: "Loyer mensuel", Type: FieldAmount, Required: true, SignerID: "lessor", Min: f64(0)},
		},
		DefaultSigners: []DefaultSigner{
			{ID: "lessor", Role: "lessor", Required: true, Order: 1},
			{ID: "tenant", Role: "tenant", Required: true, Order: 2},
		},
	}

	fields := cfg.SeedFields()
	assert.Len(t, fields, 2)
	assert.Nil(t, fields[0].Num)
	assert.NotNil(t, fields[1].Num)
	for _, f := range fields {
		assert.NoError(t, f.Validate())
	}

	signers := cfg.SeedSigners()
	assert.Len(t, signers, 2)
	assert.Equal(t, "lessor", signers[0].Role)
	assert.True(t, signers[1].Required)
}
