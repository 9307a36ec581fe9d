package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaseRecord is the calculation row stored against a case. Field names are
// read by other components of the case-management application and must not
// change.
type CaseRecord struct {
	CaseID string `json:"case_id" yaml:"case_id" db:"case_id"`

	AgeAccident                   int             `json:"age_accident" yaml:"age_accident" db:"age_accident"`
	DFTTotal                      decimal.Decimal `json:"dft_total" yaml:"dft_total" db:"dft_total"`
	DFP                           decimal.Decimal `json:"dfp" yaml:"dfp" db:"dfp"`
	PretiumDoloris                decimal.Decimal `json:"pretium_doloris" yaml:"pretium_doloris" db:"pretium_doloris"`
	PrejudiceEsthetiqueMontant    decimal.Decimal `json:"prejudice_esthetique_montant" yaml:"prejudice_esthetique_montant" db:"prejudice_esthetique_montant"`
	PGPA                          decimal.Decimal `json:"pgpa" yaml:"pgpa" db:"pgpa"`
	PGPF                          decimal.Decimal `json:"pgpf" yaml:"pgpf" db:"pgpf"`
	IncidenceProfessionnelle      decimal.Decimal `json:"incidence_professionnelle" yaml:"incidence_professionnelle" db:"incidence_professionnelle"`
	TiercePersonneTemporaire      decimal.Decimal `json:"tierce_personne_temporaire" yaml:"tierce_personne_temporaire" db:"tierce_personne_temporaire"`
	TiercePersonnePermanente      decimal.Decimal `json:"tierce_personne_permanente" yaml:"tierce_personne_permanente" db:"tierce_personne_permanente"`
	FraisMedicauxActuels          decimal.Decimal `json:"frais_medicaux_actuels" yaml:"frais_medicaux_actuels" db:"frais_medicaux_actuels"`
	FraisFuturs                   decimal.Decimal `json:"frais_futurs" yaml:"frais_futurs" db:"frais_futurs"`
	PrejudiceAgrementMontant      decimal.Decimal `json:"prejudice_agrement_montant" yaml:"prejudice_agrement_montant" db:"prejudice_agrement_montant"`
	PrejudiceSexuelMontant        decimal.Decimal `json:"prejudice_sexuel_montant" yaml:"prejudice_sexuel_montant" db:"prejudice_sexuel_montant"`
	PrejudiceEtablissementMontant decimal.Decimal `json:"prejudice_etablissement_montant" yaml:"prejudice_etablissement_montant" db:"prejudice_etablissement_montant"`
	TotalPrejudice                decimal.Decimal `json:"total_prejudice" yaml:"total_prejudice" db:"total_prejudice"`
	TotalReclame                  decimal.Decimal `json:"total_reclame" yaml:"total_reclame" db:"total_reclame"`

	CalculatedAt time.Time `json:"calculated_at" yaml:"calculated_at" db:"calculated_at"`
}

// NewCaseRecord maps a calculation result onto the stored record shape.
// Scored heads are stored as the midpoint of their bracket; every other head
// is a point amount.
func NewCaseRecord(caseID string, result *CalculationResult, at time.Time) CaseRecord {
	amount := func(code HeadCode) decimal.Decimal {
		h, ok := result.Head(code)
		if !ok {
			return decimal.Zero
		}
		return h.Range().Average()
	}

	return CaseRecord{
		CaseID:                        caseID,
		AgeAccident:                   result.Age,
		DFTTotal:                      amount(HeadDFT),
		DFP:                           amount(HeadDFP),
		PretiumDoloris:                amount(HeadPainQuantum),
		PrejudiceEsthetiqueMontant:    amount(HeadAestheticPrejudice),
		PGPA:                          amount(HeadPGPA),
		PGPF:                          amount(HeadPGPF),
		IncidenceProfessionnelle:      amount(HeadCareerIncidence),
		TiercePersonneTemporaire:      amount(HeadTemporaryAssistance),
		TiercePersonnePermanente:      amount(HeadPermanentAssistance),
		FraisMedicauxActuels:          amount(HeadMedicalCosts),
		FraisFuturs:                   amount(HeadFutureMedicalCosts),
		PrejudiceAgrementMontant:      amount(HeadAmenityLoss),
		PrejudiceSexuelMontant:        amount(HeadSexualPrejudice),
		PrejudiceEtablissementMontant: amount(HeadEstablishmentPrejudice),
		TotalPrejudice:                result.TotalAvg,
		TotalReclame:                  result.TotalMax,
		CalculatedAt:                  at.UTC(),
	}
}

// Columns returns the stored amount columns in a fixed order, paired with
// their values. The store builds its statements from this list.
func (r *CaseRecord) Columns() ([]string, []any) {
	names := []string{
		"age_accident", "dft_total", "dfp", "pretium_doloris",
		"prejudice_esthetique_montant", "pgpa", "pgpf", "incidence_professionnelle",
		"tierce_personne_temporaire", "tierce_personne_permanente",
		"frais_medicaux_actuels", "frais_futurs", "prejudice_agrement_montant",
		"prejudice_sexuel_montant", "prejudice_etablissement_montant",
		"total_prejudice", "total_reclame",
	}
	values := []any{
		r.AgeAccident, r.DFTTotal, r.DFP, r.PretiumDoloris,
		r.PrejudiceEsthetiqueMontant, r.PGPA, r.PGPF, r.IncidenceProfessionnelle,
		r.TiercePersonneTemporaire, r.TiercePersonnePermanente,
		r.FraisMedicauxActuels, r.FraisFuturs, r.PrejudiceAgrementMontant,
		r.PrejudiceSexuelMontant, r.PrejudiceEtablissementMontant,
		r.TotalPrejudice, r.TotalReclame,
	}
	return names, values
}

// Targets returns scan destinations matching Columns.
func (r *CaseRecord) Targets() []any {
	return []any{
		&r.AgeAccident, &r.DFTTotal, &r.DFP, &r.PretiumDoloris,
		&r.PrejudiceEsthetiqueMontant, &r.PGPA, &r.PGPF, &r.IncidenceProfessionnelle,
		&r.TiercePersonneTemporaire, &r.TiercePersonnePermanente,
		&r.FraisMedicauxActuels, &r.FraisFuturs, &r.PrejudiceAgrementMontant,
		&r.PrejudiceSexuelMontant, &r.PrejudiceEtablissementMontant,
		&r.TotalPrejudice, &r.TotalReclame,
	}
}
