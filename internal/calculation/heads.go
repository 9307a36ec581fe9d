package calculation

import (
	"fmt"

	"github.com/lexcalc/dintilhac/internal/bareme"
	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	rate75  = decimal.NewFromFloat(0.75)
	rate50  = decimal.NewFromFloat(0.5)
	rate25  = decimal.NewFromFloat(0.25)
	yearLen = decimal.NewFromInt(365)
)

// TemporaryDisability computes the DFT: days at each deficit level weighted
// by the daily rate.
func TemporaryDisability(in *domain.CalculationInput) decimal.Decimal {
	r := in.DailyRate
	return in.Days100.Mul(r).
		Add(in.Days75.Mul(r).Mul(rate75)).
		Add(in.Days50.Mul(r).Mul(rate50)).
		Add(in.Days25.Mul(r).Mul(rate25))
}

// PermanentDisability computes the DFP: the deficit percentage times the
// point value for the victim's age.
func PermanentDisability(in *domain.CalculationInput) decimal.Decimal {
	return in.DFPRate.Mul(bareme.DfpPointValue.Lookup(in.Age))
}

// PainQuantum returns the pretium doloris range for a validated score.
func PainQuantum(score int) domain.Range {
	r, _ := bareme.PainQuantum.Lookup(score)
	return r
}

// AestheticPrejudice returns the préjudice esthétique range for a validated score.
func AestheticPrejudice(score int) domain.Range {
	r, _ := bareme.AestheticPrejudice.Lookup(score)
	return r
}

// FutureProfessionalLoss capitalizes the annual loss of earnings (PGPF).
func FutureProfessionalLoss(in *domain.CalculationInput) decimal.Decimal {
	return in.PGPFAnnual.Mul(bareme.CapitalizationCoefficient.Lookup(in.Age))
}

// TemporaryAssistance is the cost of third-party help until consolidation.
func TemporaryAssistance(in *domain.CalculationInput) decimal.Decimal {
	return in.AssistanceTempHours.Mul(in.AssistanceTempDays).Mul(in.HourlyRate)
}

// PermanentAssistance is the capitalized cost of lifelong third-party help.
func PermanentAssistance(in *domain.CalculationInput) decimal.Decimal {
	return in.AssistancePermHours.Mul(yearLen).Mul(in.HourlyRate).
		Mul(bareme.CapitalizationCoefficient.Lookup(in.Age))
}

// head evaluates one entry of the nomenclature.
type head struct {
	code  domain.HeadCode
	label string
	eval  func(in *domain.CalculationInput) (domain.Range, string)
}

func point(v decimal.Decimal, explanation string) (domain.Range, string) {
	return domain.Point(v), explanation
}

func passthrough(field func(in *domain.CalculationInput) decimal.Decimal, explanation string) func(*domain.CalculationInput) (domain.Range, string) {
	return func(in *domain.CalculationInput) (domain.Range, string) {
		return point(field(in), explanation)
	}
}

// nomenclature lists the heads in the order they are displayed and stored.
var nomenclature = []head{
	{
		code:  domain.HeadDFT,
		label: "Déficit fonctionnel temporaire",
		eval: func(in *domain.CalculationInput) (domain.Range, string) {
			return point(TemporaryDisability(in), fmt.Sprintf(
				"%s €/j × (%s j à 100 %% + %s j à 75 %% + %s j à 50 %% + %s j à 25 %%)",
				in.DailyRate, in.Days100, in.Days75, in.Days50, in.Days25))
		},
	},
	{
		code:  domain.HeadDFP,
		label: "Déficit fonctionnel permanent",
		eval: func(in *domain.CalculationInput) (domain.Range, string) {
			return point(PermanentDisability(in), fmt.Sprintf(
				"%s %% × %s € le point (%d ans)",
				in.DFPRate, bareme.DfpPointValue.Lookup(in.Age), in.Age))
		},
	},
	{
		code:  domain.HeadPainQuantum,
		label: "Souffrances endurées",
		eval: func(in *domain.CalculationInput) (domain.Range, string) {
			return PainQuantum(in.PainScore), fmt.Sprintf("cotation %d/7", in.PainScore)
		},
	},
	{
		code:  domain.HeadAestheticPrejudice,
		label: "Préjudice esthétique",
		eval: func(in *domain.CalculationInput) (domain.Range, string) {
			return AestheticPrejudice(in.AestheticScore), fmt.Sprintf("cotation %d/7", in.AestheticScore)
		},
	},
	{
		code:  domain.HeadPGPA,
		label: "Pertes de gains professionnels actuels",
		eval:  passthrough(func(in *domain.CalculationInput) decimal.Decimal { return in.PGPA }, "montant déclaré"),
	},
	{
		code:  domain.HeadPGPF,
		label: "Pertes de gains professionnels futurs",
		eval: func(in *domain.CalculationInput) (domain.Range, string) {
			return point(FutureProfessionalLoss(in), fmt.Sprintf(
				"%s €/an × coefficient %s (%d ans)",
				in.PGPFAnnual, bareme.CapitalizationCoefficient.Lookup(in.Age), in.Age))
		},
	},
	{
		code:  domain.HeadCareerIncidence,
		label: "Incidence professionnelle",
		eval:  passthrough(func(in *domain.CalculationInput) decimal.Decimal { return in.CareerIncidence }, "montant déclaré"),
	},
	{
		code:  domain.HeadTemporaryAssistance,
		label: "Tierce personne temporaire",
		eval: func(in *domain.CalculationInput) (domain.Range, string) {
			return point(TemporaryAssistance(in), fmt.Sprintf(
				"%s h/j × %s j × %s €/h",
				in.AssistanceTempHours, in.AssistanceTempDays, in.HourlyRate))
		},
	},
	{
		code:  domain.HeadPermanentAssistance,
		label: "Tierce personne permanente",
		eval: func(in *domain.CalculationInput) (domain.Range, string) {
			return point(PermanentAssistance(in), fmt.Sprintf(
				"%s h/j × 365 j × %s €/h × coefficient %s (%d ans)",
				in.AssistancePermHours, in.HourlyRate, bareme.CapitalizationCoefficient.Lookup(in.Age), in.Age))
		},
	},
	{
		code:  domain.HeadMedicalCosts,
		label: "Dépenses de santé actuelles",
		eval:  passthrough(func(in *domain.CalculationInput) decimal.Decimal { return in.MedicalCosts }, "montant déclaré"),
	},
	{
		code:  domain.HeadFutureMedicalCosts,
		label: "Dépenses de santé futures",
		eval:  passthrough(func(in *domain.CalculationInput) decimal.Decimal { return in.FutureMedicalCosts }, "montant déclaré"),
	},
	{
		code:  domain.HeadAmenityLoss,
		label: "Préjudice d'agrément",
		eval:  passthrough(func(in *domain.CalculationInput) decimal.Decimal { return in.AmenityLoss }, "montant déclaré"),
	},
	{
		code:  domain.HeadSexualPrejudice,
		label: "Préjudice sexuel",
		eval:  passthrough(func(in *domain.CalculationInput) decimal.Decimal { return in.SexualPrejudice }, "montant déclaré"),
	},
	{
		code:  domain.HeadEstablishmentPrejudice,
		label: "Préjudice d'établissement",
		eval:  passthrough(func(in *domain.CalculationInput) decimal.Decimal { return in.EstablishmentPrejudice }, "montant déclaré"),
	},
}

// HeadLabel returns the display label of a head, or the code itself when unknown.
func HeadLabel(code domain.HeadCode) string {
	for _, h := range nomenclature {
		if h.code == code {
			return h.label
		}
	}
	return string(code)
}
