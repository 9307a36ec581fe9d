package domain

import (
	"github.com/shopspring/decimal"
)

// CalculationInput holds the medical and financial facts of one victim, as
// collected at medical consolidation. Every amount defaults to zero; only the
// age is mandatory.
type CalculationInput struct {
	Age int `yaml:"age" json:"age"` // Age at consolidation

	// Déficit fonctionnel temporaire
	DailyRate decimal.Decimal `yaml:"dft_journalier" json:"dft_journalier"` // €/day at 100%
	Days100   decimal.Decimal `yaml:"dft_jours_100" json:"dft_jours_100"`
	Days75    decimal.Decimal `yaml:"dft_jours_75" json:"dft_jours_75"`
	Days50    decimal.Decimal `yaml:"dft_jours_50" json:"dft_jours_50"`
	Days25    decimal.Decimal `yaml:"dft_jours_25" json:"dft_jours_25"`

	// Déficit fonctionnel permanent, 0-100
	DFPRate decimal.Decimal `yaml:"taux_dfp" json:"taux_dfp"`

	// Scored heads, 0 means not evaluated
	PainScore      int `yaml:"qd" json:"qd"`
	AestheticScore int `yaml:"pe" json:"pe"`

	// Professional losses
	PGPA            decimal.Decimal `yaml:"pgpa" json:"pgpa"`
	PGPFAnnual      decimal.Decimal `yaml:"pgpf_rente" json:"pgpf_rente"` // Annual loss, capitalized by age
	CareerIncidence decimal.Decimal `yaml:"incidence_professionnelle" json:"incidence_professionnelle"`

	// Tierce personne
	AssistanceTempHours decimal.Decimal `yaml:"tp_temp_heures_jour" json:"tp_temp_heures_jour"`
	AssistanceTempDays  decimal.Decimal `yaml:"tp_temp_jours" json:"tp_temp_jours"`
	AssistancePermHours decimal.Decimal `yaml:"tp_perm_heures_jour" json:"tp_perm_heures_jour"`
	HourlyRate          decimal.Decimal `yaml:"tp_taux_horaire" json:"tp_taux_horaire"`

	// Flat heads
	MedicalCosts           decimal.Decimal `yaml:"frais_medicaux_actuels" json:"frais_medicaux_actuels"`
	FutureMedicalCosts     decimal.Decimal `yaml:"frais_futurs" json:"frais_futurs"`
	AmenityLoss            decimal.Decimal `yaml:"prejudice_agrement" json:"prejudice_agrement"`
	SexualPrejudice        decimal.Decimal `yaml:"prejudice_sexuel" json:"prejudice_sexuel"`
	EstablishmentPrejudice decimal.Decimal `yaml:"prejudice_etablissement" json:"prejudice_etablissement"`

	// Insurer offer, nil when no offer has been received
	Offer *decimal.Decimal `yaml:"offre,omitempty" json:"offre,omitempty"`
}

// AmountField names one non-negative numeric field of the input.
type AmountField struct {
	Name  string
	Value decimal.Decimal
}

// Amounts lists every monetary, day and hour field in declaration order.
// Validation walks this list so the first offending field is reported
// deterministically.
func (in CalculationInput) Amounts() []AmountField {
	fields := []AmountField{
		{"dft_journalier", in.DailyRate},
		{"dft_jours_100", in.Days100},
		{"dft_jours_75", in.Days75},
		{"dft_jours_50", in.Days50},
		{"dft_jours_25", in.Days25},
		{"taux_dfp", in.DFPRate},
		{"pgpa", in.PGPA},
		{"pgpf_rente", in.PGPFAnnual},
		{"incidence_professionnelle", in.CareerIncidence},
		{"tp_temp_heures_jour", in.AssistanceTempHours},
		{"tp_temp_jours", in.AssistanceTempDays},
		{"tp_perm_heures_jour", in.AssistancePermHours},
		{"tp_taux_horaire", in.HourlyRate},
		{"frais_medicaux_actuels", in.MedicalCosts},
		{"frais_futurs", in.FutureMedicalCosts},
		{"prejudice_agrement", in.AmenityLoss},
		{"prejudice_sexuel", in.SexualPrejudice},
		{"prejudice_etablissement", in.EstablishmentPrejudice},
	}
	if in.Offer != nil {
		fields = append(fields, AmountField{"offre", *in.Offer})
	}
	return fields
}

// WithOffer returns a copy of the input carrying the given offer.
func (in CalculationInput) WithOffer(offer decimal.Decimal) CalculationInput {
	in.Offer = &offer
	return in
}

// Offer is one insurer proposal recorded on a case.
type Offer struct {
	Label  string          `yaml:"libelle" json:"libelle"`
	Amount decimal.Decimal `yaml:"montant" json:"montant"`
	Date   string          `yaml:"date,omitempty" json:"date,omitempty"` // YYYY-MM-DD
}

// CaseFile is the document loaded by the CLI and the TUI: the calculation
// input plus the case reference and the history of insurer offers.
type CaseFile struct {
	CaseID           string  `yaml:"dossier,omitempty" json:"dossier,omitempty"`
	Victim           string  `yaml:"victime,omitempty" json:"victime,omitempty"`
	CalculationInput `yaml:",inline"`
	Offers           []Offer `yaml:"offres,omitempty" json:"offres,omitempty"`
}
