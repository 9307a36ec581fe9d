package compare

import (
	"context"
	"fmt"

	"github.com/lexcalc/dintilhac/internal/calculation"
	"github.com/lexcalc/dintilhac/internal/domain"
)

// CompareEngine computes a case once and positions its offer history.
type CompareEngine struct {
	CalcEngine *calculation.CalculationEngine
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare evaluates the case and every offer of cf.Offers, in file order. A
// case without history but with a single offer amount is compared on that
// amount alone.
func (ce *CompareEngine) Compare(ctx context.Context, cf *domain.CaseFile) (*ComparisonSet, error) {
	offers := cf.Offers
	if len(offers) == 0 && cf.Offer != nil {
		offers = []domain.Offer{{Label: "Offre", Amount: *cf.Offer}}
	}
	if len(offers) == 0 {
		return nil, fmt.Errorf("case %q has no offer to compare", cf.CaseID)
	}

	// the estimate is offer independent
	in := cf.CalculationInput
	in.Offer = nil
	estimate, err := ce.CalcEngine.ComputeContext(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to compute estimate: %w", err)
	}

	set := &ComparisonSet{
		CaseID:   cf.CaseID,
		Estimate: estimate,
		Offers:   make([]OfferResult, 0, len(offers)),
	}
	for i, o := range offers {
		if o.Amount.IsNegative() {
			return nil, &domain.NegativeAmountError{Name: fmt.Sprintf("offres[%d].montant", i), Value: o.Amount}
		}
		res := OfferResult{
			Label:     o.Label,
			Date:      o.Date,
			Amount:    o.Amount,
			GapAmount: estimate.TotalAvg.Sub(o.Amount),
			Position:  domain.PositionOf(o.Amount, estimate.Total()),
		}
		if cmp := calculation.CompareOffer(estimate.TotalAvg, o.Amount); cmp != nil {
			res.CoveragePct = cmp.CoveragePct
		}
		if res.Label == "" {
			res.Label = fmt.Sprintf("Offre %d", i+1)
		}
		if i > 0 {
			delta := o.Amount.Sub(offers[i-1].Amount)
			res.DeltaFromPrevious = &delta
		}
		set.Offers = append(set.Offers, res)
	}

	set.Recommendations = GenerateRecommendations(set)
	return set, nil
}
