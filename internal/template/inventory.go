package template

import "strings"

// Inventory renders the entry or exit premises inspection report.
type Inventory struct {
	info
}

func NewInventory() *Inventory {
	return &Inventory{info{
		name:        "Inventory",
		typ:         "inventory",
		title:       "État des Lieux",
		description: "État des lieux d'entrée ou de sortie",
		config:      inventoryConfig(),
	}}
}

// roomRow is one inspected element of a room table. The field id prefix
// yields the condition value; "<prefix>Obs" yields the observation.
type roomRow struct {
	label string
	field string
}

func roomTable(fields map[string]any, title string, rows []roomRow) string {
	var b strings.Builder
	b.WriteString("\n      <h3>" + title + "</h3>\n")
	b.WriteString(`      <table border="1" cellpadding="5" style="width: 100%; border-collapse: collapse;">
        <tr>
          <th>Élément</th>
          <th>État</th>
          <th>Observations</th>
        </tr>`)
	for _, r := range rows {
		b.WriteString(`
        <tr>
          <td>` + r.label + `</td>
          <td>` + fieldOr(fields, r.field, "Bon") + `</td>
          <td>` + fieldOr(fields, r.field+"Obs", "-") + `</td>
        </tr>`)
	}
	b.WriteString("\n      </table>")
	return b.String()
}

func (t *Inventory) Render(ctx Context) (string, error) {
	lessor, err := requireSigner(ctx.Signers, RoleLessor)
	if err != nil {
		return "", err
	}
	tenant, err := requireSigner(ctx.Signers, RoleTenant)
	if err != nil {
		return "", err
	}

	fields := ctx.Fields
	kind := "DE SORTIE"
	if v, ok := fields["inventoryType"]; ok && stringify(v) == "entry" {
		kind = "D'ENTRÉE"
	}

	content := `
      <div class="header-info">
        Fait à ` + fieldOr(fields, "city", "[VILLE]") + `, le ` + FormatDate(ctx.CurrentDate) + `
      </div>

      <h1>ÉTAT DES LIEUX ` + kind + `</h1>
      <p class="article-ref">(Article 3-2 de la loi n°89-462 du 6 juillet 1989)</p>

      <h2>PARTIES PRÉSENTES</h2>

      <p><strong>Bailleur :</strong> ` + escape(lessor.FullName()) + `</p>
      <p><strong>Locataire :</strong> ` + escape(tenant.FullName()) + `</p>

      <h2>LOGEMENT</h2>
      <p>
        <strong>Adresse :</strong> ` + fieldOr(fields, "propertyAddress", "[ADRESSE DU BIEN]") + `<br>
        <strong>Type :</strong> ` + fieldOr(fields, "propertyType", "[TYPE]") + `<br>
        <strong>Surface :</strong> ` + fieldOr(fields, "surface", "[SURFACE]") + ` m²
      </p>

      <h2>RELEVÉS DES COMPTEURS</h2>
      <p>
        <strong>Électricité :</strong> ` + fieldOr(fields, "electricityMeter", "[RELEVÉ]") + ` kWh<br>
        <strong>Gaz :</strong> ` + fieldOr(fields, "gasMeter", "[RELEVÉ]") + ` m³<br>
        <strong>Eau :</strong> ` + fieldOr(fields, "waterMeter", "[RELEVÉ]") + ` m³
      </p>

      <h2>CLÉS REMISES</h2>
      <p>
        <strong>Porte d'entrée :</strong> ` + fieldOr(fields, "entranceKeys", "0") + ` clé(s)<br>
        <strong>Boîte aux lettres :</strong> ` + fieldOr(fields, "mailboxKeys", "0") + ` clé(s)<br>
        <strong>Cave/Garage :</strong> ` + fieldOr(fields, "otherKeys", "0") + ` clé(s)<br>
        <strong>Autres :</strong> ` + fieldOr(fields, "otherKeysDesc", "Néant") + `
      </p>

      <h2>ÉTAT DÉTAILLÉ PAR PIÈCE</h2>
` +
		roomTable(fields, "ENTRÉE", []roomRow{
			{"Sol", "entryFloor"},
			{"Murs", "entryWalls"},
			{"Plafond", "entryCeiling"},
			{"Éclairage", "entryLighting"},
		}) +
		roomTable(fields, "SÉJOUR", []roomRow{
			{"Sol", "livingFloor"},
			{"Murs", "livingWalls"},
			{"Plafond", "livingCeiling"},
			{"Fenêtres", "livingWindows"},
		}) +
		roomTable(fields, "CUISINE", []roomRow{
			{"Sol", "kitchenFloor"},
			{"Murs/Crédence", "kitchenWalls"},
			{"Meubles", "kitchenCabinets"},
			{"Équipements", "kitchenAppliances"},
		}) +
		roomTable(fields, "SALLE DE BAIN", []roomRow{
			{"Sol", "bathroomFloor"},
			{"Murs/Faïence", "bathroomWalls"},
			{"Sanitaires", "bathroomFixtures"},
			{"Robinetterie", "bathroomPlumbing"},
		}) + `

      <h2>OBSERVATIONS GÉNÉRALES</h2>
      <p style="border: 1px solid #ccc; padding: 10px; min-height: 100px;">
        ` + fieldOr(fields, "generalObservations", "Néant") + `
      </p>

      <h2>SIGNATURES</h2>
      <p>Les parties reconnaissent l'exactitude de l'état des lieux et en ont reçu un exemplaire.</p>

      <div class="signatures">
        <div class="signature-block">
          <p>Le Bailleur</p>
          <div class="signature-line"></div>
          <p>` + escape(lessor.FullName()) + `</p>
        </div>
        <div class="signature-block">
          <p>Le Locataire</p>
          <div class="signature-line"></div>
          <p>` + escape(tenant.FullName()) + `</p>
        </div>
      </div>`

	return wrapDocument(content, t.title), nil
}
