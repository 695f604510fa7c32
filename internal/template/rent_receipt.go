package template

// RentReceipt renders the monthly rent receipt. The total is spelled out
// in words in the body, as the printed quittance formula requires.
type RentReceipt struct {
	info
}

func NewRentReceipt() *RentReceipt {
	return &RentReceipt{info{
		name:        "RentReceipt",
		typ:         "rentReceipt",
		title:       "Quittance de Loyer",
		description: "Quittance de loyer mensuelle (France)",
		config:      rentReceiptConfig(),
	}}
}

func (t *RentReceipt) Render(ctx Context) (string, error) {
	lessor, err := requireSigner(ctx.Signers, RoleLessor)
	if err != nil {
		return "", err
	}
	tenant, err := requireSigner(ctx.Signers, RoleTenant)
	if err != nil {
		return "", err
	}

	fields := ctx.Fields
	rentAmount := numField(fields, "rentAmount", 450)
	chargesAmount := numField(fields, "chargesAmount", 50)
	totalAmount := rentAmount + chargesAmount

	payer := "Madame " + escape(tenant.FullName())
	if tenant.Organization != "" {
		payer = escape(tenant.Organization)
	}

	content := `
      <div class="quittance-container">
        <div class="header-box" style="border: 2px solid black; padding: 10px; margin-bottom: 10px;">
          <div style="text-align: center;">
            <strong style="font-size: 18px;">Quittance de loyer</strong><br>
            <small style="font-size: 10px;">(Soumis au titre Ier bis de la loi du 6 juillet 1989 et portant modification de la loi n° 86-1290 du 23 décembre 1986 – bail type<br>
            conforme aux dispositions de la loi ALUR de 2014, mis en application par le décret du 29 mai 2015)</small><br>
            <strong style="font-size: 12px;">LOCAUX MEUBLÉS À USAGE D'HABITATION</strong>
          </div>
        </div>

        <div class="title-box" style="border: 2px solid black; padding: 15px; margin-bottom: 15px; text-align: center;">
          <h1 class="title" style="font-size: 20px; margin: 0; font-weight: bold;">Quittance du mois de ` + fieldOr(fields, "monthYear", "[MOIS]") + `</h1>
        </div>

        <div style="text-align: right; margin-bottom: 20px; font-size: 14px;">
          <strong>Locataire</strong><br><br>
          <strong>` + escape(tenant.FullName()) + `</strong><br>
          ` + signerAddressOr(tenant, "[ADRESSE DU LOCATAIRE]") + `
        </div>

        <div class="section" style="margin-bottom: 20px; font-size: 14px; line-height: 1.4;">
          <p>Je soussigné ` + escape(lessor.FullName()) + `, propriétaire bailleur de l'appartement lot ` + fieldOr(fields, "lotNumber", "[LOT]") + ` du ` + fieldOr(fields, "propertyAddress", "[ADRESSE DE LA LOCATION]") + `, déclare avoir reçu de ` + payer + `, la somme de ` + NumberToWords(int(totalAmount)) + ` euros, soit ` + stringify(totalAmount) + ` euros, au titre du paiement du loyer et des charges pour la période de location du ` + fieldOr(fields, "periodStart", "[DÉBUT]") + ` (début de la mensualité) au ` + fieldOr(fields, "periodEnd", "[ÉCHÉANCE]") + ` (échéance de la mensualité) et lui en donne quittance, sous réserve de tous mes droits.</p>
        </div>

        <div class="detail-section" style="margin-bottom: 30px; font-size: 14px;">
          <p><strong>Détail du règlement</strong></p>
          <p style="line-height: 1.6;">
            Adresse de la location: ` + fieldOr(fields, "propertyAddress", "[ADRESSE DE LA LOCATION]") + `<br>
            Loyer: ` + stringify(rentAmount) + ` euros<br>
            Provision pour charges: ` + stringify(chargesAmount) + ` euros<br>
            Total: ` + stringify(totalAmount) + ` euros<br>
            Date du paiement: ` + fieldOr(fields, "paymentDate", "[DATE DU PAIEMENT]") + `
          </p>
        </div>

        <div class="signature-section" style="text-align: right; margin-bottom: 30px; font-size: 14px;">
          <p><strong>Bailleur</strong></p>
          <p style="line-height: 1.4;">
            <strong>` + escape(lessor.FullName()) + `</strong><br>
            ` + signerAddressOr(lessor, "[ADRESSE DU BAILLEUR]") + `
          </p>
          <p style="margin-top: 15px;">Fait à ` + fieldOr(fields, "city", "[VILLE]") + `, le ` + FormatDate(ctx.CurrentDate) + `</p>
          <div style="margin-top: 40px; text-align: right;">
            <div class="signature-line" style="width: 200px; height: 50px; margin-left: auto;"></div>
          </div>
        </div>

        <div class="footer-note" style="border: 2px solid black; padding: 8px; font-size: 10px; text-align: justify; margin-top: 20px;">
          Cette quittance annule tous les reçus qui auraient pu être établis précédemment en cas de paiement partiel du montant du présent terme. Elle est à conserver pendant trois ans par le locataire (loi n° 89-462 du 6 juillet 1989 : art. 7-1).
        </div>
      </div>`

	return wrapDocument(content, t.title), nil
}
