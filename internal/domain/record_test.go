package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *CalculationResult {
	heads := []HeadBreakdown{
		{Code: HeadDFT, Min: decimal.NewFromInt(310), Max: decimal.NewFromInt(310)},
		{Code: HeadDFP, Min: decimal.NewFromInt(36000), Max: decimal.NewFromInt(36000)},
		{Code: HeadPainQuantum, Min: decimal.NewFromInt(4000), Max: decimal.NewFromInt(8000)},
		{Code: HeadAestheticPrejudice, Min: decimal.Zero, Max: decimal.Zero},
		{Code: HeadPGPF, Min: decimal.NewFromInt(81720), Max: decimal.NewFromInt(81720)},
	}
	return &CalculationResult{
		Age:      35,
		Heads:    heads,
		TotalMin: decimal.NewFromInt(122030),
		TotalMax: decimal.NewFromInt(126030),
		TotalAvg: decimal.NewFromInt(124030),
	}
}

func TestNewCaseRecord(t *testing.T) {
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	rec := NewCaseRecord("2026-0042", sampleResult(), at)

	assert.Equal(t, "2026-0042", rec.CaseID)
	assert.Equal(t, 35, rec.AgeAccident)
	assert.True(t, rec.DFTTotal.Equal(decimal.NewFromInt(310)))
	assert.True(t, rec.DFP.Equal(decimal.NewFromInt(36000)))
	assert.True(t, rec.PretiumDoloris.Equal(decimal.NewFromInt(6000)), "pain is stored as the bracket midpoint")
	assert.True(t, rec.PrejudiceEsthetiqueMontant.IsZero())
	assert.True(t, rec.PGPF.Equal(decimal.NewFromInt(81720)))
	assert.True(t, rec.PGPA.IsZero(), "heads missing from the result map to zero")
	assert.True(t, rec.TotalPrejudice.Equal(decimal.NewFromInt(124030)))
	assert.True(t, rec.TotalReclame.Equal(decimal.NewFromInt(126030)))
	assert.Equal(t, time.UTC, rec.CalculatedAt.Location())
}

func TestCaseRecord_JSONFieldNames(t *testing.T) {
	rec := NewCaseRecord("c1", sampleResult(), time.Unix(0, 0))

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, name := range []string{
		"age_accident", "dft_total", "dfp", "pretium_doloris", "prejudice_esthetique_montant",
		"pgpa", "pgpf", "incidence_professionnelle", "tierce_personne_temporaire",
		"tierce_personne_permanente", "frais_medicaux_actuels", "frais_futurs",
		"prejudice_agrement_montant", "prejudice_sexuel_montant",
		"prejudice_etablissement_montant", "total_prejudice", "total_reclame",
	} {
		assert.Contains(t, fields, name)
	}
}

func TestCaseRecord_ColumnsMatchTargets(t *testing.T) {
	rec := NewCaseRecord("c1", sampleResult(), time.Now())

	names, values := rec.Columns()
	assert.Len(t, values, len(names))
	assert.Len(t, rec.Targets(), len(names))
}

func TestRange(t *testing.T) {
	r := Range{Min: decimal.NewFromInt(4000), Max: decimal.NewFromInt(8000)}

	assert.True(t, r.Average().Equal(decimal.NewFromInt(6000)))
	assert.False(t, r.IsZero())
	assert.True(t, Point(decimal.Zero).IsZero())

	sum := r.Add(Point(decimal.NewFromInt(310)))
	assert.True(t, sum.Min.Equal(decimal.NewFromInt(4310)))
	assert.True(t, sum.Max.Equal(decimal.NewFromInt(8310)))
}

func TestCalculationInput_Amounts(t *testing.T) {
	in := CalculationInput{Age: 30}
	assert.Len(t, in.Amounts(), 18)

	with := in.WithOffer(decimal.NewFromInt(1000))
	assert.Len(t, with.Amounts(), 19)
	assert.Nil(t, in.Offer, "WithOffer must not modify the receiver")
}
