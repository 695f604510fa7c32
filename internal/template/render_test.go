package template

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"safesign/internal/model"
)

func renderContext(fields map[string]any, signers ...model.Signer) Context {
	return Context{
		Fields:  fields,
		Signers: signers,
		Terms: Terms{
			DurationMonths: 12,
			StartDate:      time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC),
			Rent:           480,
			Charges:        20,
			Deposit:        960,
			Furnished:      true,
		},
		CurrentDate: time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
	}
}

func lessorTenant() []model.Signer {
	return []model.Signer{
		{ID: RoleLessor, Role: RoleLessor, FirstName: "Paul", LastName: "Martin", Email: "paul@example.com", Address: "25 rue Denis Papin, 41000 Blois"},
		{ID: RoleTenant, Role: RoleTenant, FirstName: "Julie", LastName: "Durand", Email: "julie@example.com"},
	}
}

func TestRentalContractRender(t *testing.T) {
	tpl := NewRentalContract()
	signers := lessorTenant()

	out, err := tpl.Render(renderContext(map[string]any{
		"propertyAddress": "25 rue Denis Papin, 41000 Blois",
		"surface":         30.0,
		"city":            "Blois",
	}, signers...))
	assert.NoError(t, err)

	assert.Contains(t, out, "Paul Martin")
	assert.Contains(t, out, "Julie Durand")
	assert.Contains(t, out, "480,00 €")
	assert.Contains(t, out, "quatre cents quatre-vingt euros")
	assert.Contains(t, out, "05/07/2025")
	assert.Contains(t, out, "12 mois")
	// Unfilled required fields stay visible as bracketed placeholders.
	assert.Contains(t, out, "[IDENTIFIANT FISCAL]")
	assert.Contains(t, out, `<html lang="fr">`)
}

func TestRentalContractMissingSigner(t *testing.T) {
	tpl := NewRentalContract()
	_, err := tpl.Render(renderContext(nil, model.Signer{ID: RoleLessor, Role: RoleLessor, FirstName: "Paul", LastName: "Martin"}))
	var missing *MissingSignerError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, RoleTenant, missing.Role)
}

func TestRenderEscapesFieldValues(t *testing.T) {
	tpl := NewRentalContract()
	out, err := tpl.Render(renderContext(map[string]any{
		"propertyAddress": `<script>alert("x")</script>`,
	}, lessorTenant()...))
	assert.NoError(t, err)
	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderDeterministic(t *testing.T) {
	r := NewDefault()
	fields := map[string]any{"city": "Blois", "propertyAddress": "25 rue Denis Papin"}
	signers := []model.Signer{
		{ID: RoleLessor, Role: RoleLessor, FirstName: "Paul", LastName: "Martin", Address: "25 rue Denis Papin, 41000 Blois"},
		{ID: RoleTenant, Role: RoleTenant, FirstName: "Julie", LastName: "Durand"},
		{ID: RoleGuarantor, Role: RoleGuarantor, FirstName: "Anne", LastName: "Petit", Address: "1 rue du Port, 49300 Cholet"},
		{ID: RoleSublessor, Role: RoleSublessor, FirstName: "Marc", LastName: "Long"},
		{ID: RoleSubtenant, Role: RoleSubtenant, FirstName: "Léa", LastName: "Court"},
		{ID: RoleHost, Role: RoleHost, FirstName: "Hugo", LastName: "Grand"},
		{ID: RoleResident, Role: RoleResident, FirstName: "Emma", LastName: "Roy"},
	}
	for _, info := range r.List() {
		tpl, err := r.Get(info.Type)
		assert.NoError(t, err)
		first, err := tpl.Render(renderContext(fields, signers...))
		assert.NoError(t, err, info.Type)
		second, err := tpl.Render(renderContext(fields, signers...))
		assert.NoError(t, err, info.Type)
		assert.Equal(t, first, second, info.Type)
	}
}

func TestGuaranteeActAmounts(t *testing.T) {
	tpl := NewGuaranteeAct()
	signers := []model.Signer{
		{ID: RoleGuarantor, Role: RoleGuarantor, FirstName: "Anne", LastName: "Petit", Address: "1 rue du Port, 49300 Cholet"},
		{ID: RoleTenant, Role: RoleTenant, FirstName: "Julie", LastName: "Durand"},
		{ID: RoleLessor, Role: RoleLessor, FirstName: "Paul", LastName: "Martin"},
	}
	out, err := tpl.Render(renderContext(map[string]any{"maxEngagement": 7100.0}, signers...))
	assert.NoError(t, err)
	assert.Contains(t, out, "sept-mille-cent")
	assert.Contains(t, out, "7100 €")
	assert.Contains(t, out, "ANNE PETIT")
}

func TestInventoryEntryExit(t *testing.T) {
	tpl := NewInventory()
	signers := lessorTenant()

	out, err := tpl.Render(renderContext(map[string]any{"inventoryType": "entry"}, signers...))
	assert.NoError(t, err)
	assert.Contains(t, out, "D'ENTRÉE")

	out, err = tpl.Render(renderContext(map[string]any{"inventoryType": "exit"}, signers...))
	assert.NoError(t, err)
	assert.Contains(t, out, "DE SORTIE")
	// Room tables fall back to the default condition.
	assert.True(t, strings.Count(out, "<td>Bon</td>") >= 16)
}

func TestRentReceiptTotal(t *testing.T) {
	tpl := NewRentReceipt()
	out, err := tpl.Render(renderContext(map[string]any{
		"rentAmount":    450.0,
		"chargesAmount": 50.0,
		"monthYear":     "Juillet 2025",
	}, lessorTenant()...))
	assert.NoError(t, err)
	assert.Contains(t, out, "cinq cents euros, soit 500 euros")
	assert.Contains(t, out, "Quittance du mois de Juillet 2025")
}

func TestResidenceCertificateVariants(t *testing.T) {
	tpl := NewResidenceCertificate()
	signers := []model.Signer{
		{ID: RoleHost, Role: RoleHost, FirstName: "Hugo", LastName: "Grand", Address: "2 rue Haute, 75011 Paris"},
		{ID: RoleResident, Role: RoleResident, FirstName: "Emma", LastName: "Roy"},
	}

	out, err := tpl.Render(renderContext(map[string]any{"certificateType": "host"}, signers...))
	assert.NoError(t, err)
	assert.Contains(t, out, "ATTESTATION D'HÉBERGEMENT")
	assert.Contains(t, out, "L'Hébergeur")

	out, err = tpl.Render(renderContext(map[string]any{"certificateType": "landlord"}, signers...))
	assert.NoError(t, err)
	assert.Contains(t, out, "ATTESTATION DE LOCATION")
	assert.Contains(t, out, "Le Bailleur")
	assert.Contains(t, out, "Copie du bail de location")

	// Rental-style signer slots still satisfy the host and resident roles.
	out, err = tpl.Render(renderContext(map[string]any{"certificateType": "host"}, lessorTenant()...))
	assert.NoError(t, err)
	assert.Contains(t, out, "Paul Martin")
}
