package output

import (
	"strings"
	"time"

	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/shopspring/decimal"
)

// Report is everything a formatter renders for one calculation.
type Report struct {
	CaseID      string
	Victim      string
	Input       domain.CalculationInput
	Result      *domain.CalculationResult
	GeneratedAt time.Time
}

// NewReport builds a report for a computed case file.
func NewReport(cf *domain.CaseFile, result *domain.CalculationResult, at time.Time) *Report {
	return &Report{
		CaseID:      cf.CaseID,
		Victim:      cf.Victim,
		Input:       cf.CalculationInput,
		Result:      result,
		GeneratedAt: at,
	}
}

// Position returns the offer position, or "" when no offer was compared.
func (r *Report) Position() domain.OfferPosition {
	if r.Result.Offer == nil {
		return ""
	}
	return domain.PositionOf(r.Result.Offer.Offer, r.Result.Total())
}

// Verdict is a one-line reading of the offer against the estimate.
func (r *Report) Verdict() string {
	switch r.Position() {
	case domain.BelowMin:
		return "Offre inférieure à la fourchette basse : à contester"
	case domain.WithinRange:
		if r.Result.Offer.GapAmount.IsPositive() {
			return "Offre dans la fourchette, sous la moyenne : négociable"
		}
		return "Offre dans la fourchette, au-dessus de la moyenne"
	case domain.AboveMax:
		return "Offre supérieure à la fourchette haute"
	}
	return ""
}

// FormatEuro formats an amount the French way: 124 030,00 €.
func FormatEuro(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	return sign + b.String() + "," + frac + " €"
}

// FormatPercentage formats an integer percentage.
func FormatPercentage(pct int64) string {
	return decimal.NewFromInt(pct).String() + " %"
}
