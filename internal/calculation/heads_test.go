package calculation

import (
	"testing"

	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTemporaryDisability_WeightsEachLevel(t *testing.T) {
	in := &domain.CalculationInput{
		DailyRate: dec("28"),
		Days100:   dec("1"),
		Days75:    dec("1"),
		Days50:    dec("1"),
		Days25:    dec("1"),
	}
	// 28 + 21 + 14 + 7
	assertDecimal(t, "70", TemporaryDisability(in))
}

func TestPermanentDisability_UsesAgeBracket(t *testing.T) {
	tests := []struct {
		age      int
		expected string
	}{
		{17, "45000"}, // floor fallback to the age-20 row
		{35, "36000"},
		{49, "30000"},
		{50, "27000"},
		{88, "9000"},
	}
	for _, tt := range tests {
		in := &domain.CalculationInput{Age: tt.age, DFPRate: dec("10")}
		assertDecimal(t, tt.expected, PermanentDisability(in), tt.age)
	}
}

func TestScoredHeads(t *testing.T) {
	assert.True(t, PainQuantum(0).IsZero())
	assert.True(t, AestheticPrejudice(0).IsZero())

	r := PainQuantum(7)
	assertDecimal(t, "40000", r.Min)
	assertDecimal(t, "60000", r.Max)

	r = AestheticPrejudice(2)
	assertDecimal(t, "1500", r.Min)
	assertDecimal(t, "4000", r.Max)
}

func TestAssistance(t *testing.T) {
	in := &domain.CalculationInput{
		Age:                 72,
		AssistanceTempHours: dec("3"),
		AssistanceTempDays:  dec("10"),
		AssistancePermHours: dec("2"),
		HourlyRate:          dec("20"),
	}
	assertDecimal(t, "600", TemporaryAssistance(in))
	// 2 * 365 * 20 * 10.73
	assertDecimal(t, "156658", PermanentAssistance(in))
}

func TestFutureProfessionalLoss_ZeroRente(t *testing.T) {
	in := &domain.CalculationInput{Age: 30}
	assert.True(t, FutureProfessionalLoss(in).IsZero())
}

func TestHeadLabel(t *testing.T) {
	assert.Equal(t, "Déficit fonctionnel permanent", HeadLabel(domain.HeadDFP))
	assert.Equal(t, "unknown", HeadLabel(domain.HeadCode("unknown")))
}
