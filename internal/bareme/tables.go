package bareme

import (
	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/shopspring/decimal"
)

// The values below reproduce the historical barème. Stored results were
// computed from them, so they must not be edited.

// DfpPointValue is the euro value of one point of permanent functional
// deficit, by age at consolidation.
var DfpPointValue = NewBracketTable(
	Bracket[decimal.Decimal]{20, decimal.NewFromInt(4500)},
	Bracket[decimal.Decimal]{25, decimal.NewFromInt(4200)},
	Bracket[decimal.Decimal]{30, decimal.NewFromInt(3900)},
	Bracket[decimal.Decimal]{35, decimal.NewFromInt(3600)},
	Bracket[decimal.Decimal]{40, decimal.NewFromInt(3300)},
	Bracket[decimal.Decimal]{45, decimal.NewFromInt(3000)},
	Bracket[decimal.Decimal]{50, decimal.NewFromInt(2700)},
	Bracket[decimal.Decimal]{55, decimal.NewFromInt(2400)},
	Bracket[decimal.Decimal]{60, decimal.NewFromInt(2100)},
	Bracket[decimal.Decimal]{65, decimal.NewFromInt(1800)},
	Bracket[decimal.Decimal]{70, decimal.NewFromInt(1500)},
	Bracket[decimal.Decimal]{75, decimal.NewFromInt(1200)},
	Bracket[decimal.Decimal]{80, decimal.NewFromInt(900)},
)

// CapitalizationCoefficient converts an annual amount into a lump sum, by age.
var CapitalizationCoefficient = NewBracketTable(
	Bracket[decimal.Decimal]{20, decimal.RequireFromString("53.94")},
	Bracket[decimal.Decimal]{25, decimal.RequireFromString("49.62")},
	Bracket[decimal.Decimal]{30, decimal.RequireFromString("45.26")},
	Bracket[decimal.Decimal]{35, decimal.RequireFromString("40.86")},
	Bracket[decimal.Decimal]{40, decimal.RequireFromString("36.42")},
	Bracket[decimal.Decimal]{45, decimal.RequireFromString("31.95")},
	Bracket[decimal.Decimal]{50, decimal.RequireFromString("27.47")},
	Bracket[decimal.Decimal]{55, decimal.RequireFromString("23.02")},
	Bracket[decimal.Decimal]{60, decimal.RequireFromString("18.66")},
	Bracket[decimal.Decimal]{65, decimal.RequireFromString("14.51")},
	Bracket[decimal.Decimal]{70, decimal.RequireFromString("10.73")},
	Bracket[decimal.Decimal]{75, decimal.RequireFromString("7.46")},
	Bracket[decimal.Decimal]{80, decimal.RequireFromString("4.82")},
)

func euros(min, max int64) domain.Range {
	return domain.Range{Min: decimal.NewFromInt(min), Max: decimal.NewFromInt(max)}
}

// PainQuantum is the pretium doloris scale.
var PainQuantum = NewRangeTable([MaxScore]domain.Range{
	euros(1000, 2000),
	euros(2000, 4000),
	euros(4000, 8000),
	euros(8000, 15000),
	euros(15000, 25000),
	euros(25000, 40000),
	euros(40000, 60000),
})

// AestheticPrejudice is the préjudice esthétique scale. It differs from the
// pain scale on scores 1 and 2 only.
var AestheticPrejudice = NewRangeTable([MaxScore]domain.Range{
	euros(500, 1500),
	euros(1500, 4000),
	euros(4000, 8000),
	euros(8000, 15000),
	euros(15000, 25000),
	euros(25000, 40000),
	euros(40000, 60000),
})
