package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes one row per evaluated head followed by the totals and
// the offer comparison.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"code", "poste", "min", "max", "detail"}); err != nil {
		return nil, err
	}
	res := r.Result
	for _, h := range res.Breakdown {
		if err := w.Write([]string{string(h.Code), h.Label, h.Min.StringFixed(2), h.Max.StringFixed(2), h.Explanation}); err != nil {
			return nil, err
		}
	}
	rows := [][]string{
		{"total", "Total", res.TotalMin.StringFixed(2), res.TotalMax.StringFixed(2), ""},
		{"moyenne", "Moyenne", res.TotalAvg.StringFixed(2), res.TotalAvg.StringFixed(2), ""},
	}
	if res.Offer != nil {
		rows = append(rows,
			[]string{"offre", "Offre", res.Offer.Offer.StringFixed(2), res.Offer.Offer.StringFixed(2), string(r.Position())},
			[]string{"ecart", "Écart", res.Offer.GapAmount.StringFixed(2), res.Offer.GapAmount.StringFixed(2), strconv.FormatInt(res.Offer.CoveragePct, 10) + "%"},
		)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
