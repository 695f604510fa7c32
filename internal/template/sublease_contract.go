package template

import (
	"strconv"

	"safesign/internal/model"
)

// SubleaseContract renders the residential sublease agreement.
type SubleaseContract struct {
	info
}

func NewSubleaseContract() *SubleaseContract {
	return &SubleaseContract{info{
		name:        "SubleaseContract",
		typ:         "subleaseContract",
		title:       "Contrat de Sous-location",
		description: "Contrat de sous-location d'habitation",
		config:      subleaseContractConfig(),
	}}
}

func (t *SubleaseContract) Render(ctx Context) (string, error) {
	sublessor, err := requireSigner(ctx.Signers, RoleSublessor)
	if err != nil {
		return "", err
	}
	subtenant, err := requireSigner(ctx.Signers, RoleSubtenant)
	if err != nil {
		return "", err
	}

	fields := ctx.Fields
	terms := ctx.Terms
	totalRent := terms.Rent + terms.Charges

	sublessorEmail := ""
	if sublessor.Email != "" {
		sublessorEmail = "Email : " + escape(sublessor.Email)
	}
	subtenantEmail := ""
	if subtenant.Email != "" {
		subtenantEmail = "Email : " + escape(subtenant.Email)
	}

	content := `
      <div class="header-info">
        Fait à ` + fieldOr(fields, "city", "[VILLE]") + `, le ` + FormatDate(ctx.CurrentDate) + `
      </div>

      <h1>CONTRAT DE SOUS-LOCATION</h1>
      <p class="article-ref">(Article 8 de la loi n°89-462 du 6 juillet 1989)</p>

      <h2>ENTRE LES SOUSSIGNÉS</h2>

      <p><strong>Le sous-bailleur (locataire principal) :</strong><br>
      ` + escape(sublessor.FullName()) + `<br>
      ` + signerAddressOr(sublessor, "") + `<br>
      ` + sublessorEmail + `
      </p>

      <p><strong>Le sous-locataire :</strong><br>
      ` + escape(subtenant.FullName()) + `<br>
      ` + signerAddressOr(subtenant, "") + `<br>
      ` + subtenantEmail + `
      </p>

      <p>Il a été convenu et arrêté ce qui suit :</p>

      <h2>ARTICLE 1 - AUTORISATION DE SOUS-LOCATION</h2>
      <p>Le sous-bailleur déclare avoir obtenu l'accord écrit du bailleur principal,
      ` + fieldOr(fields, "landlordName", "[NOM DU BAILLEUR PRINCIPAL]") + `, pour sous-louer le logement objet du présent contrat.</p>
      <p>Une copie de cette autorisation est annexée au présent contrat.</p>

      <h2>ARTICLE 2 - OBJET DE LA SOUS-LOCATION</h2>
      <p>Le sous-bailleur sous-loue au sous-locataire, qui accepte :</p>
      <p>
        <strong>Adresse :</strong> ` + fieldOr(fields, "propertyAddress", "[ADRESSE DU BIEN]") + `<br>
        <strong>Type :</strong> ` + fieldOr(fields, "propertyType", "[TYPE DE LOGEMENT]") + `<br>
        <strong>Surface sous-louée :</strong> ` + fieldOr(fields, "surface", "[SURFACE]") + ` m²<br>
        <strong>Pièces sous-louées :</strong> ` + fieldOr(fields, "subletRooms", "[PIÈCES CONCERNÉES]") + `
      </p>

      <h2>ARTICLE 3 - DURÉE</h2>
      <p>La présente sous-location est consentie pour une durée de <strong>` + strconv.Itoa(terms.DurationMonths) + ` mois</strong>,
      du <strong>` + FormatDate(terms.StartDate) + `</strong> au <strong>` + FormatDate(terms.EndDate) + `</strong>.</p>
      <p class="article-ref">La durée de la sous-location ne peut excéder celle du bail principal.</p>

      <h2>ARTICLE 4 - LOYER</h2>
      <p>Le loyer mensuel de la sous-location est fixé à :</p>
      <p>
        <strong>Loyer :</strong> ` + FormatCurrency(terms.Rent, model.EUR) + `<br>
        <strong>Charges :</strong> ` + FormatCurrency(terms.Charges, model.EUR) + `<br>
        <strong>Total :</strong> ` + FormatCurrency(totalRent, model.EUR) + `
      </p>
      <p class="article-ref">Le loyer de la sous-location ne peut être supérieur au loyer principal au prorata de la surface sous-louée.</p>

      <h2>ARTICLE 5 - DÉPÔT DE GARANTIE</h2>
      <p>Un dépôt de garantie de <strong>` + FormatCurrency(terms.Deposit, model.EUR) + `</strong> est versé par le sous-locataire.</p>

      <h2>ARTICLE 6 - OBLIGATIONS</h2>
      <p>Le sous-locataire s'engage à respecter toutes les clauses et conditions du bail principal,
      dont il reconnaît avoir pris connaissance.</p>
      <p>Le sous-bailleur reste responsable vis-à-vis du bailleur principal de toutes les obligations du bail principal.</p>

      <h2>ARTICLE 7 - FIN DE LA SOUS-LOCATION</h2>
      <p>La sous-location prendra fin automatiquement :</p>
      <ul>
        <li>À la date prévue ci-dessus</li>
        <li>En cas de résiliation du bail principal</li>
        <li>En cas de congé donné par l'une des parties selon les modalités légales</li>
      </ul>

      <div class="signatures">
        <div class="signature-block">
          <p>Le Sous-bailleur<br>
          Lu et approuvé</p>
          <div class="signature-line"></div>
          <p>` + escape(sublessor.FullName()) + `</p>
        </div>
        <div class="signature-block">
          <p>Le Sous-locataire<br>
          Lu et approuvé</p>
          <div class="signature-line"></div>
          <p>` + escape(subtenant.FullName()) + `</p>
        </div>
      </div>`

	return wrapDocument(content, t.title), nil
}
