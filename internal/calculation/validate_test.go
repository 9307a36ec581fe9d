package calculation

import (
	"errors"
	"testing"

	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	negativeOffer := dec("-1")

	tests := []struct {
		name      string
		mutate    func(in *domain.CalculationInput)
		wantField string
		wantType  any
	}{
		{"valid input", func(in *domain.CalculationInput) {}, "", nil},
		{"missing age", func(in *domain.CalculationInput) { in.Age = 0 }, "age", &domain.InvalidAgeError{}},
		{"negative age", func(in *domain.CalculationInput) { in.Age = -3 }, "age", &domain.InvalidAgeError{}},
		{"pain score above scale", func(in *domain.CalculationInput) { in.PainScore = 8 }, "qd", &domain.InvalidScoreError{}},
		{"negative aesthetic score", func(in *domain.CalculationInput) { in.AestheticScore = -1 }, "pe", &domain.InvalidScoreError{}},
		{"negative day count", func(in *domain.CalculationInput) { in.Days50 = dec("-2") }, "dft_jours_50", &domain.NegativeAmountError{}},
		{"negative hourly rate", func(in *domain.CalculationInput) { in.HourlyRate = dec("-0.01") }, "tp_taux_horaire", &domain.NegativeAmountError{}},
		{"negative offer", func(in *domain.CalculationInput) { in.Offer = &negativeOffer }, "offre", &domain.NegativeAmountError{}},
		{"DFP rate above 100", func(in *domain.CalculationInput) { in.DFPRate = dec("100.5") }, "taux_dfp", &domain.InvalidRateError{}},
		{"DFP rate of exactly 100", func(in *domain.CalculationInput) { in.DFPRate = dec("100") }, "", nil},
		{"age above the expected domain is accepted", func(in *domain.CalculationInput) { in.Age = 97 }, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := scenarioE()
			tt.mutate(&input)

			err := Validate(&input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.IsType(t, tt.wantType, err)

			var fieldErr domain.FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.wantField, fieldErr.Field())
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidate_ReportsFirstFieldInOrder(t *testing.T) {
	input := scenarioE()
	input.PGPA = dec("-1")
	input.Days100 = dec("-1")

	err := Validate(&input)

	var negErr *domain.NegativeAmountError
	require.ErrorAs(t, err, &negErr)
	assert.Equal(t, "dft_jours_100", negErr.Field())
}

func TestInvalidAgeError_Message(t *testing.T) {
	assert.Equal(t, "age: required", (&domain.InvalidAgeError{}).Error())
	assert.Equal(t, "age: must be a positive integer, got -1", (&domain.InvalidAgeError{Age: -1}).Error())
}
