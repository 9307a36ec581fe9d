package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats an offer history as CSV
type CSVFormatter struct{}

// Format writes one row per offer
func (cf *CSVFormatter) Format(cs *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Offer",
		"Date",
		"Amount",
		"Estimate Min",
		"Estimate Avg",
		"Estimate Max",
		"Gap",
		"Coverage %",
		"Position",
		"Delta From Previous",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, o := range cs.Offers {
		delta := ""
		if o.DeltaFromPrevious != nil {
			delta = o.DeltaFromPrevious.StringFixed(2)
		}
		row := []string{
			o.Label,
			o.Date,
			o.Amount.StringFixed(2),
			cs.Estimate.TotalMin.StringFixed(2),
			cs.Estimate.TotalAvg.StringFixed(2),
			cs.Estimate.TotalMax.StringFixed(2),
			o.GapAmount.StringFixed(2),
			strconv.FormatInt(o.CoveragePct, 10),
			string(o.Position),
			delta,
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
