package tui

import (
	"github.com/lexcalc/dintilhac/internal/bareme"
	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/shopspring/decimal"
)

// parameter is one input the user can adjust from the parameters scene.
type parameter struct {
	label string
	unit  string
	step  decimal.Decimal
	min   decimal.Decimal
	max   func(*domain.CaseFile) decimal.Decimal
	get   func(*domain.CaseFile) decimal.Decimal
	set   func(*domain.CaseFile, decimal.Decimal)
}

func fixed(v int64) func(*domain.CaseFile) decimal.Decimal {
	return func(*domain.CaseFile) decimal.Decimal { return decimal.NewFromInt(v) }
}

var parameters = []parameter{
	{
		label: "Âge à la consolidation",
		unit:  " ans",
		step:  decimal.NewFromInt(1),
		max:   fixed(100),
		get:   func(cf *domain.CaseFile) decimal.Decimal { return decimal.NewFromInt(int64(cf.Age)) },
		set:   func(cf *domain.CaseFile, v decimal.Decimal) { cf.Age = int(v.IntPart()) },
	},
	{
		label: "Taux de DFP",
		unit:  " %",
		step:  decimal.NewFromInt(1),
		max:   fixed(100),
		get:   func(cf *domain.CaseFile) decimal.Decimal { return cf.DFPRate },
		set:   func(cf *domain.CaseFile, v decimal.Decimal) { cf.DFPRate = v },
	},
	{
		label: "Quantum doloris",
		unit:  "/7",
		step:  decimal.NewFromInt(1),
		max:   fixed(bareme.MaxScore),
		get:   func(cf *domain.CaseFile) decimal.Decimal { return decimal.NewFromInt(int64(cf.PainScore)) },
		set:   func(cf *domain.CaseFile, v decimal.Decimal) { cf.PainScore = int(v.IntPart()) },
	},
	{
		label: "Préjudice esthétique",
		unit:  "/7",
		step:  decimal.NewFromInt(1),
		max:   fixed(bareme.MaxScore),
		get:   func(cf *domain.CaseFile) decimal.Decimal { return decimal.NewFromInt(int64(cf.AestheticScore)) },
		set:   func(cf *domain.CaseFile, v decimal.Decimal) { cf.AestheticScore = int(v.IntPart()) },
	},
	{
		label: "PGPF (rente annuelle)",
		unit:  " €",
		step:  decimal.NewFromInt(500),
		max:   fixed(100000),
		get:   func(cf *domain.CaseFile) decimal.Decimal { return cf.PGPFAnnual },
		set:   func(cf *domain.CaseFile, v decimal.Decimal) { cf.PGPFAnnual = v },
	},
	{
		label: "Offre de l'assureur",
		unit:  " €",
		step:  decimal.NewFromInt(1000),
		max:   fixed(1000000),
		get: func(cf *domain.CaseFile) decimal.Decimal {
			if cf.Offer == nil {
				return decimal.Zero
			}
			return *cf.Offer
		},
		set: func(cf *domain.CaseFile, v decimal.Decimal) { cf.Offer = &v },
	},
}

// adjust moves parameter p of cf by dir steps, clamped to the parameter
// bounds. It reports whether the value changed.
func adjust(cf *domain.CaseFile, p parameter, dir int64) bool {
	current := p.get(cf)
	next := current.Add(p.step.Mul(decimal.NewFromInt(dir)))
	if next.LessThan(p.min) {
		next = p.min
	}
	if upper := p.max(cf); next.GreaterThan(upper) {
		next = upper
	}
	if next.Equal(current) {
		return false
	}
	p.set(cf, next)
	return true
}
