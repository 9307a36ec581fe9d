package domain

import (
	"github.com/shopspring/decimal"
)

// Range is a [Min, Max] euro amount. Point heads carry Min == Max.
type Range struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Point returns the degenerate range {v, v}.
func Point(v decimal.Decimal) Range {
	return Range{Min: v, Max: v}
}

// Average returns (Min+Max)/2.
func (r Range) Average() decimal.Decimal {
	return r.Min.Add(r.Max).Div(decimal.NewFromInt(2))
}

// IsZero reports whether the range contributes nothing worth displaying.
func (r Range) IsZero() bool {
	return r.Max.IsZero()
}

// Add sums two ranges bound by bound.
func (r Range) Add(o Range) Range {
	return Range{Min: r.Min.Add(o.Min), Max: r.Max.Add(o.Max)}
}

// HeadCode identifies a head of damage of the Dintilhac nomenclature.
type HeadCode string

const (
	HeadDFT                    HeadCode = "dft"
	HeadDFP                    HeadCode = "dfp"
	HeadPainQuantum            HeadCode = "pretium_doloris"
	HeadAestheticPrejudice     HeadCode = "prejudice_esthetique"
	HeadPGPA                   HeadCode = "pgpa"
	HeadPGPF                   HeadCode = "pgpf"
	HeadCareerIncidence        HeadCode = "incidence_professionnelle"
	HeadTemporaryAssistance    HeadCode = "tierce_personne_temporaire"
	HeadPermanentAssistance    HeadCode = "tierce_personne_permanente"
	HeadMedicalCosts           HeadCode = "frais_medicaux_actuels"
	HeadFutureMedicalCosts     HeadCode = "frais_futurs"
	HeadAmenityLoss            HeadCode = "prejudice_agrement"
	HeadSexualPrejudice        HeadCode = "prejudice_sexuel"
	HeadEstablishmentPrejudice HeadCode = "prejudice_etablissement"
)

// HeadBreakdown is the evaluation of one head of damage.
type HeadBreakdown struct {
	Code        HeadCode        `json:"code"`
	Label       string          `json:"label"`
	Min         decimal.Decimal `json:"min"`
	Max         decimal.Decimal `json:"max"`
	Explanation string          `json:"explanation"`
}

// Range returns the head amounts as a Range.
func (h HeadBreakdown) Range() Range {
	return Range{Min: h.Min, Max: h.Max}
}

// OfferComparison positions an insurer offer against the estimate.
type OfferComparison struct {
	Offer       decimal.Decimal `json:"offer"`
	GapAmount   decimal.Decimal `json:"gapAmount"`        // TotalAvg - Offer
	CoveragePct int64           `json:"offerCoveragePct"` // round(Offer/TotalAvg*100)
}

// CalculationResult is the full output of one calculation.
type CalculationResult struct {
	Age       int             `json:"age"`
	Heads     []HeadBreakdown `json:"-"`         // Every head, zeros included, in nomenclature order
	Breakdown []HeadBreakdown `json:"breakdown"` // Heads with Max > 0

	TotalMin decimal.Decimal `json:"totalMin"`
	TotalMax decimal.Decimal `json:"totalMax"`
	TotalAvg decimal.Decimal `json:"totalAvg"`

	Offer *OfferComparison `json:"offer,omitempty"` // Omitted without offer or when TotalAvg is 0
}

// Head returns the evaluation of the given head, including zero heads.
func (r *CalculationResult) Head(code HeadCode) (HeadBreakdown, bool) {
	for _, h := range r.Heads {
		if h.Code == code {
			return h, true
		}
	}
	return HeadBreakdown{}, false
}

// Total returns the aggregated range.
func (r *CalculationResult) Total() Range {
	return Range{Min: r.TotalMin, Max: r.TotalMax}
}
