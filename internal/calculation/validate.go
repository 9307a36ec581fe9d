package calculation

import (
	"github.com/lexcalc/dintilhac/internal/bareme"
	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Validate checks the input once, before any head is evaluated. It returns the
// first violation found; every returned error matches domain.ErrValidation.
func Validate(in *domain.CalculationInput) error {
	if in.Age <= 0 {
		return &domain.InvalidAgeError{Age: in.Age}
	}
	if !bareme.ValidScore(in.PainScore) {
		return &domain.InvalidScoreError{Name: "qd", Score: in.PainScore}
	}
	if !bareme.ValidScore(in.AestheticScore) {
		return &domain.InvalidScoreError{Name: "pe", Score: in.AestheticScore}
	}
	for _, f := range in.Amounts() {
		if f.Value.IsNegative() {
			return &domain.NegativeAmountError{Name: f.Name, Value: f.Value}
		}
	}
	if in.DFPRate.GreaterThan(hundred) {
		return &domain.InvalidRateError{Name: "taux_dfp", Value: in.DFPRate}
	}
	return nil
}
