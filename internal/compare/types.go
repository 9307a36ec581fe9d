package compare

import (
	"fmt"

	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/shopspring/decimal"
)

// OfferResult positions one insurer offer against the estimate.
type OfferResult struct {
	Label  string          `json:"label"`
	Date   string          `json:"date,omitempty"`
	Amount decimal.Decimal `json:"amount"`

	GapAmount   decimal.Decimal      `json:"gapAmount"`        // TotalAvg - Amount
	CoveragePct int64                `json:"offerCoveragePct"` // Zero when TotalAvg is zero
	Position    domain.OfferPosition `json:"position"`

	// Change from the previous offer of the history; nil for the first one
	DeltaFromPrevious *decimal.Decimal `json:"deltaFromPrevious,omitempty"`
}

// ComparisonSet is the estimate and every offer of a case.
type ComparisonSet struct {
	CaseID          string                    `json:"dossier,omitempty"`
	Estimate        *domain.CalculationResult `json:"estimate"`
	Offers          []OfferResult             `json:"offers"`
	Recommendations []string                  `json:"recommendations"`
	SourcePath      string                    `json:"sourcePath,omitempty"`
}

// Best returns the highest offer, or nil without offers.
func (cs *ComparisonSet) Best() *OfferResult {
	var best *OfferResult
	for i := range cs.Offers {
		if best == nil || cs.Offers[i].Amount.GreaterThan(best.Amount) {
			best = &cs.Offers[i]
		}
	}
	return best
}

// GenerateRecommendations reads the offer history against the estimate.
func GenerateRecommendations(cs *ComparisonSet) []string {
	recommendations := []string{}
	if len(cs.Offers) == 0 {
		return recommendations
	}

	best := cs.Best()
	recommendations = append(recommendations,
		fmt.Sprintf("Meilleure offre : %s (%s €, %d %% de la moyenne)", best.Label, best.Amount.StringFixed(2), best.CoveragePct))

	reachesMin := false
	for _, o := range cs.Offers {
		if o.Position != domain.BelowMin {
			reachesMin = true
			break
		}
	}
	if !reachesMin {
		missing := cs.Estimate.TotalMin.Sub(best.Amount)
		recommendations = append(recommendations,
			fmt.Sprintf("Aucune offre n'atteint la fourchette basse : il manque %s € à la meilleure offre", missing.StringFixed(2)))
	}

	last := cs.Offers[len(cs.Offers)-1]
	if last.DeltaFromPrevious != nil && last.DeltaFromPrevious.IsNegative() {
		recommendations = append(recommendations,
			fmt.Sprintf("La dernière offre (%s) est en baisse de %s €", last.Label, last.DeltaFromPrevious.Abs().StringFixed(2)))
	}
	if last.Position == domain.WithinRange && last.GapAmount.IsPositive() {
		recommendations = append(recommendations,
			fmt.Sprintf("La dernière offre est dans la fourchette : %s € la séparent de la moyenne", last.GapAmount.StringFixed(2)))
	}
	return recommendations
}
