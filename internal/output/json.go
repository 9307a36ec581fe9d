package output

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/lexcalc/dintilhac/internal/domain"
)

// JSONFormatter renders the result with the case identity.
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

type jsonReport struct {
	CaseID      string               `json:"dossier,omitempty"`
	Victim      string               `json:"victime,omitempty"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Position    domain.OfferPosition `json:"offerPosition,omitempty"`
	*domain.CalculationResult
}

func (j JSONFormatter) Format(r *Report) ([]byte, error) {
	doc := jsonReport{
		CaseID:            r.CaseID,
		Victim:            r.Victim,
		GeneratedAt:       r.GeneratedAt.UTC(),
		Position:          r.Position(),
		CalculationResult: r.Result,
	}
	if j.Pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
