package compare

import (
	"fmt"
	"strings"

	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/lexcalc/dintilhac/internal/output"
	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

// TableFormatter formats an offer history as a console table
type TableFormatter struct{}

const (
	labelWidth  = 24
	amountWidth = 14
	ruleWidth   = 84
)

// Format generates a table of every offer against the estimate
func (tf *TableFormatter) Format(cs *ComparisonSet) string {
	var sb strings.Builder
	est := cs.Estimate

	sb.WriteString("COMPARAISON DES OFFRES\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	if cs.CaseID != "" {
		sb.WriteString(fmt.Sprintf("Dossier : %s\n", cs.CaseID))
	}
	if cs.SourcePath != "" {
		sb.WriteString(fmt.Sprintf("Fichier : %s\n", cs.SourcePath))
	}
	sb.WriteString(fmt.Sprintf("Estimation : %s à %s (moyenne %s)\n\n",
		output.FormatEuro(est.TotalMin), output.FormatEuro(est.TotalMax), output.FormatEuro(est.TotalAvg)))

	sb.WriteString(fmt.Sprintf("%s %s %s %s %6s  %s\n",
		runewidth.FillRight("Offre", labelWidth),
		runewidth.FillRight("Date", 10),
		runewidth.FillLeft("Montant", amountWidth),
		runewidth.FillLeft("Écart", amountWidth),
		"Couv.",
		"Variation"))
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	for _, o := range cs.Offers {
		sb.WriteString(fmt.Sprintf("%s %s %s %s %6s  %s\n",
			runewidth.FillRight(runewidth.Truncate(o.Label, labelWidth, "..."), labelWidth),
			runewidth.FillRight(o.Date, 10),
			runewidth.FillLeft(output.FormatEuro(o.Amount), amountWidth),
			runewidth.FillLeft(output.FormatEuro(o.GapAmount), amountWidth),
			fmt.Sprintf("%d%%", o.CoveragePct),
			tf.delta(o.DeltaFromPrevious)))
		sb.WriteString(fmt.Sprintf("  %s\n", positionLabel(o.Position)))
	}
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	if len(cs.Recommendations) > 0 {
		sb.WriteString("\nRECOMMANDATIONS\n")
		sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		for _, rec := range cs.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
	}
	return sb.String()
}

func (tf *TableFormatter) delta(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	if d.IsPositive() {
		return "+" + output.FormatEuro(*d)
	}
	return output.FormatEuro(*d)
}

// FormatCompact creates a single-line summary of the history
func (tf *TableFormatter) FormatCompact(cs *ComparisonSet) string {
	parts := make([]string, len(cs.Offers))
	for i, o := range cs.Offers {
		parts[i] = fmt.Sprintf("%s: %d%%", o.Label, o.CoveragePct)
	}
	return fmt.Sprintf("Moyenne %s | %s", cs.Estimate.TotalAvg.StringFixed(0), strings.Join(parts, " | "))
}

func positionLabel(p domain.OfferPosition) string {
	switch p {
	case domain.BelowMin:
		return "sous la fourchette basse"
	case domain.AboveMax:
		return "au-dessus de la fourchette haute"
	}
	return "dans la fourchette"
}
