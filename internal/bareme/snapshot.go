package bareme

import "github.com/shopspring/decimal"

// AgeRow is one row of the age-bracketed tables.
type AgeRow struct {
	FromAge                   int             `json:"fromAge"`
	DfpPointValue             decimal.Decimal `json:"dfpPointValue"`
	CapitalizationCoefficient decimal.Decimal `json:"capitalizationCoefficient"`
}

// ScoreRow is one row of the scored tables.
type ScoreRow struct {
	Score        int             `json:"score"`
	PainMin      decimal.Decimal `json:"painMin"`
	PainMax      decimal.Decimal `json:"painMax"`
	AestheticMin decimal.Decimal `json:"aestheticMin"`
	AestheticMax decimal.Decimal `json:"aestheticMax"`
}

// Snapshot is a display copy of every reference table.
type Snapshot struct {
	Ages   []AgeRow   `json:"ages"`
	Scores []ScoreRow `json:"scores"`
}

// TakeSnapshot copies the reference tables for display. Both age tables share
// their thresholds.
func TakeSnapshot() Snapshot {
	points := DfpPointValue.Brackets()
	coeffs := CapitalizationCoefficient.Brackets()
	snap := Snapshot{
		Ages:   make([]AgeRow, len(points)),
		Scores: make([]ScoreRow, MaxScore),
	}
	for i, p := range points {
		snap.Ages[i] = AgeRow{
			FromAge:                   p.Threshold,
			DfpPointValue:             p.Value,
			CapitalizationCoefficient: coeffs[i].Value,
		}
	}
	pain, aesthetic := PainQuantum.Ranges(), AestheticPrejudice.Ranges()
	for i := range snap.Scores {
		snap.Scores[i] = ScoreRow{
			Score:        i + 1,
			PainMin:      pain[i].Min,
			PainMax:      pain[i].Max,
			AestheticMin: aesthetic[i].Min,
			AestheticMax: aesthetic[i].Max,
		}
	}
	return snap
}
