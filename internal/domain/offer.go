package domain

import "github.com/shopspring/decimal"

// OfferPosition places an offer relative to the estimated range.
type OfferPosition string

const (
	BelowMin    OfferPosition = "below_min"
	WithinRange OfferPosition = "within_range"
	AboveMax    OfferPosition = "above_max"
)

// PositionOf reports where offer falls against the [TotalMin, TotalMax] range.
// Both bounds belong to the range.
func PositionOf(offer decimal.Decimal, r Range) OfferPosition {
	switch {
	case offer.LessThan(r.Min):
		return BelowMin
	case offer.GreaterThan(r.Max):
		return AboveMax
	default:
		return WithinRange
	}
}
