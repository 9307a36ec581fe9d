package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile_YAML(t *testing.T) {
	parser := NewInputParser()
	cf, err := parser.LoadFromFile("../../testdata/scenario_e.yaml")
	require.NoError(t, err)

	assert.Equal(t, "2026-0042", cf.CaseID)
	assert.Equal(t, "M. Durand", cf.Victim)
	assert.Equal(t, 35, cf.Age)
	assert.True(t, cf.DailyRate.Equal(decimal.NewFromInt(31)))
	assert.True(t, cf.Days100.Equal(decimal.NewFromInt(10)))
	assert.True(t, cf.DFPRate.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 3, cf.PainScore)
	assert.True(t, cf.PGPFAnnual.Equal(decimal.NewFromInt(2000)))
	require.NotNil(t, cf.Offer)
	assert.True(t, cf.Offer.Equal(decimal.NewFromInt(100000)))

	require.Len(t, cf.Offers, 2)
	assert.Equal(t, "Offre provisionnelle", cf.Offers[0].Label)
	assert.Equal(t, "2026-01-15", cf.Offers[0].Date)
	assert.True(t, cf.Offers[1].Amount.Equal(decimal.NewFromInt(100000)))
}

func TestLoadFromFile_JSON(t *testing.T) {
	cf, err := NewInputParser().LoadFromFile("../../testdata/full_case.json")
	require.NoError(t, err)

	assert.Equal(t, 52, cf.Age)
	assert.Equal(t, "3200.5", cf.MedicalCosts.String(), "string amounts keep their exact value")
	assert.Equal(t, 2, cf.AestheticScore)
	assert.Empty(t, cf.Offers)
}

func TestLoadFromFile_InvalidScore(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("../../testdata/invalid_score.yaml")
	require.Error(t, err)

	var scoreErr *domain.InvalidScoreError
	require.ErrorAs(t, err, &scoreErr)
	assert.Equal(t, "qd", scoreErr.Field())
	assert.Equal(t, 9, scoreErr.Score)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestLoadFromFile_UnknownField(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("../../testdata/unknown_field.yaml")
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "dft_journalie", schemaErr.Field())
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("../../testdata/does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_StructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"missing age", "qd: 2\n", "age"},
		{"age as text", "age: trente\n", "age"},
		{"fractional score", "age: 30\nqd: 2.5\n", "qd"},
		{"amount as words", "age: 30\npgpa: beaucoup\n", "pgpa"},
		{"offer without amount", "age: 30\noffres:\n  - libelle: x\n", "offres.0"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.doc))
			require.Error(t, err)

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.field, schemaErr.Field())
		})
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	_, err := NewInputParser().Parse([]byte(""))
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestParse_NegativeHistoricalOffer(t *testing.T) {
	doc := "age: 30\noffres:\n  - libelle: x\n    montant: -10\n"

	_, err := NewInputParser().Parse([]byte(doc))

	var negErr *domain.NegativeAmountError
	require.ErrorAs(t, err, &negErr)
	assert.Equal(t, "offres[0].montant", negErr.Field())
}

func TestParse_NegativeAge(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("age: -4\n"))

	var ageErr *domain.InvalidAgeError
	require.ErrorAs(t, err, &ageErr)
}

func TestLoadFromFile_WrittenCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte("age: 19\ntaux_dfp: 5\n"), 0o644))

	cf, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 19, cf.Age)
	assert.Nil(t, cf.Offer)
}

func TestParse_UnquotedOfferDates(t *testing.T) {
	doc := "age: 35\noffres:\n  - libelle: a\n    montant: 1000\n    date: 2026-01-15\n  - libelle: b\n    montant: 2000\n    date: \"2026-04-02\"\n"

	cf, err := NewInputParser().Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, cf.Offers, 2)
	assert.Equal(t, "2026-01-15", cf.Offers[0].Date)
	assert.Equal(t, "2026-04-02", cf.Offers[1].Date)
}

func TestParse_MalformedOfferDate(t *testing.T) {
	doc := "age: 35\noffres:\n  - libelle: a\n    montant: 1000\n    date: 15/01/2026\n"

	_, err := NewInputParser().Parse([]byte(doc))
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "offres.0.date", schemaErr.Field())
}

func TestSchemaError_MatchesErrValidation(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("age: 30\nqd: trois\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
