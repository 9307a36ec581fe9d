package output

import (
	"github.com/goccy/go-json"
	"github.com/lexcalc/dintilhac/internal/domain"
)

// RecordFormatter renders the flat case record read by the case store.
type RecordFormatter struct{}

func (f RecordFormatter) Name() string { return "record" }

func (f RecordFormatter) Format(r *Report) ([]byte, error) {
	rec := domain.NewCaseRecord(r.CaseID, r.Result, r.GeneratedAt)
	return json.MarshalIndent(rec, "", "  ")
}
