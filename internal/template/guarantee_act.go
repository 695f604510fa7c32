package template

import "strings"

// GuaranteeAct renders the joint-surety act. Amounts are spelled out in
// words next to their numeric form, as the legal formula requires.
type GuaranteeAct struct {
	info
}

func NewGuaranteeAct() *GuaranteeAct {
	return &GuaranteeAct{info{
		name:        "GuaranteeAct",
		typ:         "guaranteeAct",
		title:       "Acte de Cautionnement",
		description: "Acte de cautionnement solidaire pour location (France)",
		config:      guaranteeActConfig(),
	}}
}

func (t *GuaranteeAct) Render(ctx Context) (string, error) {
	guarantor, err := requireSigner(ctx.Signers, RoleGuarantor)
	if err != nil {
		return "", err
	}
	tenant, err := requireSigner(ctx.Signers, RoleTenant)
	if err != nil {
		return "", err
	}
	lessor, err := requireSigner(ctx.Signers, RoleLessor)
	if err != nil {
		return "", err
	}

	fields := ctx.Fields
	rent := ctx.Terms.Rent
	if rent == 0 {
		rent = 480
	}
	engagement := numField(fields, "maxEngagement", 7100)
	property := fieldOr(fields, "propertyAddress", "[ADRESSE DU LOGEMENT]")

	rentWords := capitalize(NumberToWords(int(rent)))
	engagementWords := NumberToWords(int(engagement))

	content := `
      <div class="cautionnement-container">
        <div class="header-box">
          <strong>Acte de cautionnement solidaire</strong><br>
          <small>(Soumis au titre Ier bis de la loi du 6 juillet 1989 et portant modification de la loi n° 86-1290 du 23 décembre 1986 – bail type conforme<br>
          aux dispositions de la loi ALUR de 2014, mis en application par le décret du 29 mai 2015)</small><br>
          <strong>LOCAUX MEUBLES A USAGE D'HABITATION</strong>
        </div>

        <div class="section">
          <p>Je soussignée ` + escape(guarantor.FullName()) + `, née le ` + fieldOr(fields, "guarantorBirthDate", "[DATE DE NAISSANCE]") + ` à ` + fieldOr(fields, "guarantorBirthPlace", "[LIEU DE NAISSANCE]") + `, résidant au ` + signerAddressOr(guarantor, "[ADRESSE DE LA CAUTION]") + `, déclare me porter caution solidaire de ` + escape(tenant.FullName()) + ` pour les obligations résultant du bail qui a été consenti par le bailleur ` + escape(lessor.FullName()) + `, demeurant ` + property + `, pour la location du logement situé ` + property + `.</p>

          <p>J'ai pris connaissance du montant du loyer de ` + rentWords + `, soit ` + stringify(rent) + ` € hors charges par mois. Il sera révisé annuellement tous les ` + fieldOr(fields, "rentStartDate", "5 Octobre") + ` selon la variation de l'indice de référence des loyers publié par l'INSEE au 3e trimestre 2024.</p>

          <p>Cet engagement vaut pour le paiement, en cas de défaillance du locataire, des loyers, des indemnités d'occupation, des charges, des réparations et des dégradations locatives pouvant excéder le dépôt de garantie, des impôts et taxes, des frais et dépens de procédure, des coûts des actes dus, soit un total minimum de ` + engagementWords + `, soit ` + stringify(engagement) + ` €, en principal et accessoires.</p>

          <p>Cet engagement est valable pour une durée déterminée (` + fieldOr(fields, "duration", "12 mois") + `), définie par le contrat de location ci-joint.</p>

          <p>Je reconnais avoir pris connaissance de l'avant-dernier alinéa de l'article 22-1 de la loi du 6 juillet 1989, selon lequel :</p>

          <div class="legal-quote">
            <p>« Lorsque le cautionnement d'obligations résultant d'un contrat de location conclu en application du présent titre ne comporte aucune indication de durée ou lorsque la durée du cautionnement est stipulée indéterminée, la caution peut le résilier unilatéralement. La résiliation prend effet au terme du contrat de location, qu'il s'agisse du contrat initial ou d'un contrat reconduit ou renouvelé au cours duquel le bailleur reçoit notification de la résiliation. »</p>
          </div>

          <p>Je reconnais également avoir pris connaissance de l'article 2297 du code civil, selon lequel :</p>

          <div class="legal-quote">
            <p>« Si la caution est privée des bénéfices de discussion ou de division, elle reconnaît ne pouvoir exiger du créancier qu'il poursuive d'abord le débiteur ou qu'il divise ses poursuites entre les cautions. À défaut, elle conserve le droit de se prévaloir de ces bénéfices. »</p>
          </div>
        </div>

        <div class="signature-section">
          <p>Fait à ________________________, le _______________________</p>

          <div style="margin-top: 100px; text-align: right;">
            <p>Signature</p>
            <div style="margin-top: 100px;">
              <p>` + escape(strings.ToUpper(guarantor.FullName())) + `</p>
            </div>
          </div>
        </div>

        <div class="footer-link">
          <p>Acte de cautionnement généré par l'outil https://www.service-public.fr/simulateur/calcul/ActeCautionnement de France Services.</p>
        </div>
      </div>`

	return wrapDocument(content, t.title), nil
}
