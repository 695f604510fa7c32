package template

import "safesign/internal/model"

// Signer role identifiers shared by the built-in templates. The original
// documents used the French labels; the machine identifiers stay stable
// so Field.SignerID references survive relabeling.
const (
	RoleLessor    = "lessor"
	RoleTenant    = "tenant"
	RoleGuarantor = "guarantor"
	RoleSublessor = "sublessor"
	RoleSubtenant = "subtenant"
	RoleHost      = "host"
	RoleResident  = "resident"
)

func rentalContractConfig() *model.DocumentTypeConfig {
	return &model.DocumentTypeConfig{
		Type:        "rentalContract",
		Title:       "Contrat de Location Meublée",
		Description: "Contrat de location de logement meublé à usage d'habitation (France)",
		Options: []model.DocumentOption{
			{
				ID: "logementType", Label: "Type de logement", Type: "radio", Required: true,
				Options: []model.OptionChoice{
					{Value: "meuble", Label: "Logement meublé"},
					{Value: "non_meuble", Label: "Logement non meublé"},
				},
				DefaultValue: "meuble",
			},
			{
				ID: "bailleurQualite", Label: "Qualité du bailleur", Type: "radio", Required: true,
				Options: []model.OptionChoice{
					{Value: "physique", Label: "Personne physique"},
					{Value: "morale", Label: "Personne morale"},
				},
				DefaultValue: "physique",
			},
			{
				ID: "habitatType", Label: "Type d'habitat", Type: "checkbox", Required: true,
				Options: []model.OptionChoice{
					{Value: "collectif", Label: "Collectif"},
					{Value: "individuel", Label: "Individuel"},
				},
			},
			{
				ID: "habitatPropriete", Label: "Type de propriété", Type: "checkbox", Required: true,
				Options: []model.OptionChoice{
					{Value: "mono", Label: "Mono propriété"},
					{Value: "copro", Label: "Copropriété"},
				},
			},
			{
				ID: "constructionPeriode", Label: "Période de construction", Type: "radio", Required: true,
				Options: []model.OptionChoice{
					{Value: "<1949", Label: "Avant 1949"},
					{Value: "1949-1974", Label: "De 1949 à 1974"},
					{Value: "1975-1989", Label: "De 1975 à 1989"},
					{Value: "1989-2005", Label: "De 1989 à 2005"},
					{Value: ">2005", Label: "Depuis 2005"},
				},
			},
			{
				ID: "chauffageMode", Label: "Modalité de chauffage", Type: "radio", Required: true,
				Options: []model.OptionChoice{
					{Value: "individuel", Label: "Individuel"},
					{Value: "collectif", Label: "Collectif"},
				},
				DefaultValue: "individuel",
			},
			{
				ID: "eauChaudeMode", Label: "Modalité d'eau chaude sanitaire", Type: "radio", Required: true,
				Options: []model.OptionChoice{
					{Value: "individuel", Label: "Individuel"},
					{Value: "collectif", Label: "Collectif"},
				},
				DefaultValue: "individuel",
			},
			{
				ID: "destinationLocaux", Label: "Destination des locaux", Type: "radio", Required: true,
				Options: []model.OptionChoice{
					{Value: "habitation", Label: "Usage d'habitation"},
					{Value: "mixte", Label: "Usage mixte professionnel et d'habitation"},
				},
				DefaultValue: "habitation",
			},
		},
		FieldDefinitions: []model.FieldDefinition{
			{ID: "propertyAddress", Label: "Adresse du logement", Type: model.FieldAddress, Required: true, SignerID: RoleLessor},
			{ID: "fiscalId", Label: "Identifiant fiscal du logement", Type: model.FieldTaxID, Required: true, SignerID: RoleLessor},
			{ID: "surface", Label: "Surface habitable privative (m²)", Type: model.FieldNumber, Required: true, SignerID: RoleLessor, Min: f(0)},
			{ID: "sharedSurface", Label: "Surface habitable collective (m²)", Type: model.FieldNumber, Required: false, SignerID: RoleLessor, Min: f(0)},
			{ID: "rooms", Label: "Nombre de pièces principales", Type: model.FieldNumber, Required: true, SignerID: RoleLessor, Min: f(1)},
			{ID: "otherParts", Label: "Autres parties du logement", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "privateEquipment", Label: "Équipements de la partie privative", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "sharedEquipment", Label: "Équipements de la partie collective", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "privateAccessories", Label: "Équipements privatifs annexes", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "sharedAccessories", Label: "Équipements communs annexes", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "dpeClass", Label: "Classe DPE", Type: model.FieldText, Required: true, SignerID: RoleLessor, Validation: "^[A-G]$"},
			{ID: "rent", Label: "Montant du loyer mensuel (€)", Type: model.FieldAmount, Required: true, SignerID: RoleLessor, Min: f(0)},
			{ID: "charges", Label: "Charges mensuelles (€)", Type: model.FieldAmount, Required: false, SignerID: RoleLessor, Min: f(0)},
			{ID: "deposit", Label: "Dépôt de garantie (€)", Type: model.FieldAmount, Required: false, SignerID: RoleLessor, Min: f(0)},
			{ID: "startDate", Label: "Date de prise d'effet", Type: model.FieldDate, Required: true, SignerID: RoleLessor},
			{ID: "durationMonths", Label: "Durée du contrat (mois)", Type: model.FieldNumber, Required: true, SignerID: RoleLessor, Min: f(1)},
			{ID: "revisionDate", Label: "Date de révision", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "irlReference", Label: "Trimestre de référence de l'IRL", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "paymentDay", Label: "Jour de paiement", Type: model.FieldNumber, Required: false, SignerID: RoleLessor, Min: f(1), Max: f(28)},
			{ID: "paymentMethod", Label: "Lieu ou mode de paiement", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "recentWorks", Label: "Travaux d'amélioration récents", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "rentIncrease", Label: "Majoration du loyer liée à des travaux", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "city", Label: "Fait à (ville)", Type: model.FieldText, Required: true, SignerID: RoleLessor},
			{ID: "lessorSignature", Label: "Signature du bailleur", Type: model.FieldSignature, Required: true, SignerID: RoleLessor},
			{ID: "tenantSignature", Label: "Signature du locataire", Type: model.FieldSignature, Required: true, SignerID: RoleTenant},
		},
		DefaultSigners: []model.DefaultSigner{
			{ID: RoleLessor, Role: RoleLessor, Required: true, Order: 1},
			{ID: RoleTenant, Role: RoleTenant, Required: true, Order: 2},
		},
	}
}

func subleaseContractConfig() *model.DocumentTypeConfig {
	return &model.DocumentTypeConfig{
		Type:        "subleaseContract",
		Title:       "Contrat de Sous-location",
		Description: "Contrat de sous-location d'habitation",
		Options: []model.DocumentOption{
			{
				ID: "mainLeaseAuthorization", Label: "Autorisation écrite du bailleur principal", Type: "checkbox", Required: true,
				Options: []model.OptionChoice{{Value: "obtained", Label: "Obtenue et annexée"}},
			},
		},
		FieldDefinitions: []model.FieldDefinition{
			{ID: "city", Label: "Fait à (ville)", Type: model.FieldText, Required: true, SignerID: RoleSublessor},
			{ID: "landlordName", Label: "Nom du bailleur principal", Type: model.FieldText, Required: true, SignerID: RoleSublessor},
			{ID: "propertyAddress", Label: "Adresse du bien", Type: model.FieldAddress, Required: true, SignerID: RoleSublessor},
			{ID: "propertyType", Label: "Type de logement", Type: model.FieldText, Required: true, SignerID: RoleSublessor},
			{ID: "surface", Label: "Surface sous-louée (m²)", Type: model.FieldNumber, Required: true, SignerID: RoleSublessor, Min: f(0)},
			{ID: "subletRooms", Label: "Pièces sous-louées", Type: model.FieldText, Required: true, SignerID: RoleSublessor},
			{ID: "sublessorSignature", Label: "Signature du sous-bailleur", Type: model.FieldSignature, Required: true, SignerID: RoleSublessor},
			{ID: "subtenantSignature", Label: "Signature du sous-locataire", Type: model.FieldSignature, Required: true, SignerID: RoleSubtenant},
		},
		DefaultSigners: []model.DefaultSigner{
			{ID: RoleSublessor, Role: RoleSublessor, Required: true, Order: 1},
			{ID: RoleSubtenant, Role: RoleSubtenant, Required: true, Order: 2},
		},
	}
}

func guaranteeActConfig() *model.DocumentTypeConfig {
	return &model.DocumentTypeConfig{
		Type:        "guaranteeAct",
		Title:       "Acte de Cautionnement",
		Description: "Acte de cautionnement solidaire pour location (France)",
		Options: []model.DocumentOption{
			{
				ID: "engagementDuration", Label: "Durée de l'engagement", Type: "radio", Required: true,
				Options: []model.OptionChoice{
					{Value: "determinee", Label: "Durée déterminée"},
					{Value: "indeterminee", Label: "Durée indéterminée"},
				},
				DefaultValue: "determinee",
			},
		},
		FieldDefinitions: []model.FieldDefinition{
			{ID: "guarantorBirthDate", Label: "Date de naissance de la caution", Type: model.FieldText, Required: true, SignerID: RoleGuarantor},
			{ID: "guarantorBirthPlace", Label: "Lieu de naissance de la caution", Type: model.FieldText, Required: true, SignerID: RoleGuarantor},
			{ID: "propertyAddress", Label: "Adresse du logement loué", Type: model.FieldAddress, Required: true, SignerID: RoleLessor},
			{ID: "maxEngagement", Label: "Montant maximal de l'engagement (€)", Type: model.FieldAmount, Required: true, SignerID: RoleLessor, Min: f(0)},
			{ID: "rentStartDate", Label: "Date de révision annuelle", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "duration", Label: "Durée de l'engagement", Type: model.FieldText, Required: true, SignerID: RoleLessor},
			{ID: "guarantorSignature", Label: "Signature de la caution", Type: model.FieldSignature, Required: true, SignerID: RoleGuarantor},
		},
		DefaultSigners: []model.DefaultSigner{
			{ID: RoleGuarantor, Role: RoleGuarantor, Required: true, Order: 1},
			{ID: RoleTenant, Role: RoleTenant, Required: true, Order: 2},
			{ID: RoleLessor, Role: RoleLessor, Required: true, Order: 3},
		},
	}
}

func inventoryConfig() *model.DocumentTypeConfig {
	return &model.DocumentTypeConfig{
		Type:        "inventory",
		Title:       "État des Lieux",
		Description: "État des lieux d'entrée ou de sortie",
		Options: []model.DocumentOption{
			{
				ID: "inventoryType", Label: "Type d'état des lieux", Type: "radio", Required: true,
				Options: []model.OptionChoice{
					{Value: "entry", Label: "Entrée"},
					{Value: "exit", Label: "Sortie"},
				},
				DefaultValue: "entry",
			},
		},
		FieldDefinitions: []model.FieldDefinition{
			{ID: "inventoryType", Label: "Type d'état des lieux", Type: model.FieldText, Required: true, SignerID: RoleLessor},
			{ID: "city", Label: "Fait à (ville)", Type: model.FieldText, Required: true, SignerID: RoleLessor},
			{ID: "propertyAddress", Label: "Adresse du bien", Type: model.FieldAddress, Required: true, SignerID: RoleLessor},
			{ID: "propertyType", Label: "Type de logement", Type: model.FieldText, Required: true, SignerID: RoleLessor},
			{ID: "surface", Label: "Surface (m²)", Type: model.FieldNumber, Required: true, SignerID: RoleLessor, Min: f(0)},
			{ID: "electricityMeter", Label: "Relevé électricité (kWh)", Type: model.FieldNumber, Required: false, SignerID: RoleLessor},
			{ID: "gasMeter", Label: "Relevé gaz (m³)", Type: model.FieldNumber, Required: false, SignerID: RoleLessor},
			{ID: "waterMeter", Label: "Relevé eau (m³)", Type: model.FieldNumber, Required: false, SignerID: RoleLessor},
			{ID: "entranceKeys", Label: "Clés porte d'entrée", Type: model.FieldNumber, Required: false, SignerID: RoleLessor, Min: f(0)},
			{ID: "mailboxKeys", Label: "Clés boîte aux lettres", Type: model.FieldNumber, Required: false, SignerID: RoleLessor, Min: f(0)},
			{ID: "otherKeys", Label: "Clés cave/garage", Type: model.FieldNumber, Required: false, SignerID: RoleLessor, Min: f(0)},
			{ID: "otherKeysDesc", Label: "Autres clés", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "generalObservations", Label: "Observations générales", Type: model.FieldText, Required: false, SignerID: RoleTenant},
			{ID: "lessorSignature", Label: "Signature du bailleur", Type: model.FieldSignature, Required: true, SignerID: RoleLessor},
			{ID: "tenantSignature", Label: "Signature du locataire", Type: model.FieldSignature, Required: true, SignerID: RoleTenant},
		},
		DefaultSigners: []model.DefaultSigner{
			{ID: RoleLessor, Role: RoleLessor, Required: true, Order: 1},
			{ID: RoleTenant, Role: RoleTenant, Required: true, Order: 2},
		},
	}
}

func rentReceiptConfig() *model.DocumentTypeConfig {
	return &model.DocumentTypeConfig{
		Type:        "rentReceipt",
		Title:       "Quittance de Loyer",
		Description: "Quittance de loyer mensuelle (France)",
		FieldDefinitions: []model.FieldDefinition{
			{ID: "monthYear", Label: "Mois de la quittance", Type: model.FieldText, Required: true, SignerID: RoleLessor},
			{ID: "periodStart", Label: "Début de la période", Type: model.FieldText, Required: true, SignerID: RoleLessor},
			{ID: "periodEnd", Label: "Fin de la période", Type: model.FieldText, Required: true, SignerID: RoleLessor},
			{ID: "paymentDate", Label: "Date du paiement", Type: model.FieldText, Required: true, SignerID: RoleLessor},
			{ID: "rentAmount", Label: "Loyer (€)", Type: model.FieldAmount, Required: true, SignerID: RoleLessor, Min: f(0)},
			{ID: "chargesAmount", Label: "Provision pour charges (€)", Type: model.FieldAmount, Required: false, SignerID: RoleLessor, Min: f(0)},
			{ID: "lotNumber", Label: "Numéro de lot", Type: model.FieldText, Required: false, SignerID: RoleLessor},
			{ID: "propertyAddress", Label: "Adresse de la location", Type: model.FieldAddress, Required: true, SignerID: RoleLessor},
			{ID: "city", Label: "Fait à (ville)", Type: model.FieldText, Required: true, SignerID: RoleLessor},
			{ID: "lessorSignature", Label: "Signature du bailleur", Type: model.FieldSignature, Required: true, SignerID: RoleLessor},
		},
		DefaultSigners: []model.DefaultSigner{
			{ID: RoleLessor, Role: RoleLessor, Required: true, Order: 1},
			{ID: RoleTenant, Role: RoleTenant, Required: true, Order: 2},
		},
	}
}

func residenceCertificateConfig() *model.DocumentTypeConfig {
	return &model.DocumentTypeConfig{
		Type:        "residenceCertificate",
		Title:       "Attestation d'Hébergement",
		Description: "Justificatif de domicile / Attestation d'hébergement",
		Options: []model.DocumentOption{
			{
				ID: "certificateType", Label: "Type d'attestation", Type: "radio", Required: true,
				Options: []model.OptionChoice{
					{Value: "host", Label: "Attestation d'hébergement"},
					{Value: "landlord", Label: "Attestation de location"},
				},
				DefaultValue: "host",
			},
		},
		FieldDefinitions: []model.FieldDefinition{
			{ID: "certificateType", Label: "Type d'attestation", Type: model.FieldText, Required: true, SignerID: RoleHost},
			{ID: "hostBirthDate", Label: "Date de naissance de l'hébergeur", Type: model.FieldText, Required: true, SignerID: RoleHost},
			{ID: "hostBirthPlace", Label: "Lieu de naissance de l'hébergeur", Type: model.FieldText, Required: true, SignerID: RoleHost},
			{ID: "propertyAddress", Label: "Adresse du bien", Type: model.FieldAddress, Required: false, SignerID: RoleHost},
			{ID: "residentBirthDate", Label: "Date de naissance de l'hébergé", Type: model.FieldText, Required: false, SignerID: RoleResident},
			{ID: "residentBirthPlace", Label: "Lieu de naissance de l'hébergé", Type: model.FieldText, Required: false, SignerID: RoleResident},
			{ID: "leaseStartDate", Label: "Début du bail", Type: model.FieldDate, Required: false, SignerID: RoleHost},
			{ID: "leaseType", Label: "Type de bail", Type: model.FieldText, Required: false, SignerID: RoleHost},
			{ID: "accommodationStartDate", Label: "Hébergé depuis le", Type: model.FieldDate, Required: false, SignerID: RoleHost},
			{ID: "city", Label: "Fait à (ville)", Type: model.FieldText, Required: true, SignerID: RoleHost},
			{ID: "hostSignature", Label: "Signature de l'hébergeur", Type: model.FieldSignature, Required: true, SignerID: RoleHost},
		},
		DefaultSigners: []model.DefaultSigner{
			{ID: RoleHost, Role: RoleHost, Required: true, Order: 1},
			{ID: RoleResident, Role: RoleResident, Required: true, Order: 2},
		},
	}
}

func f(v float64) *float64 { return &v }
