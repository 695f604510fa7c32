package template

import "time"

// ResidenceCertificate renders the proof-of-residence attestation, in
// either the host variant (hébergement) or the landlord variant
// (location), selected by the certificateType field.
type ResidenceCertificate struct {
	info
}

func NewResidenceCertificate() *ResidenceCertificate {
	return &ResidenceCertificate{info{
		name:        "ResidenceCertificate",
		typ:         "residenceCertificate",
		title:       "Attestation d'Hébergement",
		description: "Justificatif de domicile / Attestation d'hébergement",
		config:      residenceCertificateConfig(),
	}}
}

// dateFieldOr parses a date-valued field, falling back to def when the
// field is absent or unparseable.
func dateFieldOr(fields map[string]any, id string, def time.Time) time.Time {
	v, ok := fields[id]
	if !ok {
		return def
	}
	switch d := v.(type) {
	case time.Time:
		return d
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006"} {
			if parsed, err := time.Parse(layout, d); err == nil {
				return parsed
			}
		}
	}
	return def
}

func (t *ResidenceCertificate) Render(ctx Context) (string, error) {
	host, err := requireSigner(ctx.Signers, RoleHost)
	if err != nil {
		// Documents seeded from older rental configs carry lessor and
		// tenant slots instead of host and resident.
		if host, err = requireSigner(ctx.Signers, RoleLessor); err != nil {
			return "", &MissingSignerError{Role: RoleHost}
		}
	}
	resident, err := requireSigner(ctx.Signers, RoleResident)
	if err != nil {
		if resident, err = requireSigner(ctx.Signers, RoleTenant); err != nil {
			return "", &MissingSignerError{Role: RoleResident}
		}
	}

	fields := ctx.Fields
	isLandlord := false
	if v, ok := fields["certificateType"]; ok && stringify(v) == "landlord" {
		isLandlord = true
	}

	title := "D'HÉBERGEMENT"
	if isLandlord {
		title = "DE LOCATION"
	}

	var capacity string
	if isLandlord {
		capacity = `
        <p style="margin: 30px 0;">
          agissant en qualité de <strong>propriétaire bailleur</strong> du logement situé :<br>
          <strong>` + fieldOr(fields, "propertyAddress", "[ADRESSE DU BIEN]") + `</strong>
        </p>

        <p>atteste par la présente que :</p>`
	} else {
		capacity = `
        <p style="margin: 30px 0;">
          atteste sur l'honneur héberger à mon domicile situé à l'adresse ci-dessus :
        </p>`
	}

	residentLines := "<strong>" + escape(resident.FullName()) + "</strong><br>"
	if resident.Address != "" && !isLandlord {
		residentLines += "Ancienne adresse : " + escape(resident.Address) + "<br>"
	}
	if v := fieldOr(fields, "residentBirthDate", ""); v != "" {
		residentLines += "Né(e) le " + v
	}
	if v := fieldOr(fields, "residentBirthPlace", ""); v != "" {
		residentLines += " à " + v
	}

	var situation, attachments, signerLabel string
	if isLandlord {
		situation = `
        <p>
          est locataire du logement susmentionné depuis le <strong>` + FormatDate(dateFieldOr(fields, "leaseStartDate", ctx.CurrentDate)) + `</strong>
          en vertu d'un bail de location ` + fieldOr(fields, "leaseType", "") + `.
        </p>

        <p>
          Cette attestation est établie pour servir et valoir ce que de droit, notamment comme justificatif de domicile.
        </p>`
		attachments = "<li>Copie du bail de location</li>"
		signerLabel = "Le Bailleur"
	} else {
		situation = `
        <p>
          depuis le <strong>` + FormatDate(dateFieldOr(fields, "accommodationStartDate", ctx.CurrentDate)) + `</strong>.
        </p>

        <p>
          Cette attestation est établie pour servir et valoir ce que de droit.
        </p>`
		signerLabel = "L'Hébergeur"
	}

	content := `
      <h1>ATTESTATION ` + title + `</h1>

      <div style="margin: 60px 0;">
        <p>Je soussigné(e),</p>

        <p style="margin: 20px 0;">
          <strong>` + escape(host.FullName()) + `</strong><br>
          Né(e) le ` + fieldOr(fields, "hostBirthDate", "[DATE DE NAISSANCE]") + ` à ` + fieldOr(fields, "hostBirthPlace", "[LIEU DE NAISSANCE]") + `<br>
          Demeurant : ` + signerAddressOr(host, "[ADRESSE]") + `
        </p>
` + capacity + `

        <p style="margin: 20px 0; padding: 20px; background: #f5f5f5;">
          ` + residentLines + `
        </p>
` + situation + `
      </div>

      <div style="margin-top: 60px;">
        <p><strong>PIÈCES JOINTES :</strong></p>
        <ul>
          <li>Copie de ma pièce d'identité</li>
          <li>Copie d'un justificatif de domicile à mon nom</li>
          ` + attachments + `
        </ul>
      </div>

      <p style="margin-top: 40px; font-style: italic; font-size: 14px;">
        J'ai connaissance que toute fausse déclaration de ma part m'expose à des sanctions pénales
        conformément à l'article 441-7 du Code pénal.
      </p>

      <div style="margin-top: 60px;">
        <p>Fait à ` + fieldOr(fields, "city", "[VILLE]") + `, le ` + FormatDate(ctx.CurrentDate) + `</p>
        <p>Pour servir et valoir ce que de droit.</p>

        <div style="margin-top: 40px;">
          <p>` + signerLabel + `<br>
          Signature</p>
          <div class="signature-line" style="width: 300px;"></div>
          <p>` + escape(host.FullName()) + `</p>
        </div>
      </div>

      <div style="margin-top: 40px; padding: 20px; border: 1px solid #ccc; font-size: 12px;">
        <p><strong>Article 441-7 du Code pénal :</strong></p>
        <p style="font-style: italic;">
          "Est puni d'un an d'emprisonnement et de 15 000 euros d'amende le fait d'établir une attestation
          ou un certificat faisant état de faits matériellement inexacts."
        </p>
      </div>`

	return wrapDocument(content, t.title), nil
}
