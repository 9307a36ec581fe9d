package calculation

import (
	"context"
	"fmt"

	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine evaluates every head of damage and aggregates them. It
// holds no calculation state and may be shared between goroutines.
type CalculationEngine struct {
	Logger Logger
	Debug  bool // Log every head evaluation
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// ComputeContext is Compute for callers holding a request context.
func (ce *CalculationEngine) ComputeContext(ctx context.Context, in domain.CalculationInput) (*domain.CalculationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ce.Compute(in)
}

// Compute validates the input and evaluates the full breakdown. On invalid
// input it returns a nil result and a domain validation error.
func (ce *CalculationEngine) Compute(in domain.CalculationInput) (*domain.CalculationResult, error) {
	if err := Validate(&in); err != nil {
		ce.logger().Warnf("rejected input: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	result := &domain.CalculationResult{
		Age:       in.Age,
		Heads:     make([]domain.HeadBreakdown, 0, len(nomenclature)),
		Breakdown: []domain.HeadBreakdown{},
	}

	total := domain.Range{Min: decimal.Zero, Max: decimal.Zero}
	for _, h := range nomenclature {
		r, explanation := h.eval(&in)
		hb := domain.HeadBreakdown{
			Code:        h.code,
			Label:       h.label,
			Min:         r.Min,
			Max:         r.Max,
			Explanation: explanation,
		}
		result.Heads = append(result.Heads, hb)
		if !r.IsZero() {
			result.Breakdown = append(result.Breakdown, hb)
		}
		total = total.Add(r)

		if ce.Debug {
			ce.logger().Debugf("%s: min=%s max=%s (%s)", h.code, r.Min.StringFixed(2), r.Max.StringFixed(2), explanation)
		}
	}

	result.TotalMin = total.Min
	result.TotalMax = total.Max
	result.TotalAvg = total.Average()

	if in.Offer != nil {
		result.Offer = CompareOffer(result.TotalAvg, *in.Offer)
	}

	ce.logger().Infof("computed %d heads: min=%s avg=%s max=%s",
		len(result.Breakdown), result.TotalMin.StringFixed(2), result.TotalAvg.StringFixed(2), result.TotalMax.StringFixed(2))
	return result, nil
}

// CompareOffer positions an offer against the average estimate. It returns
// nil when the average is zero, since coverage is undefined.
func CompareOffer(avg, offer decimal.Decimal) *domain.OfferComparison {
	if !avg.IsPositive() {
		return nil
	}
	return &domain.OfferComparison{
		Offer:       offer,
		GapAmount:   avg.Sub(offer),
		CoveragePct: offer.Div(avg).Mul(hundred).Round(0).IntPart(),
	}
}
