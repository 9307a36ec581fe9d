package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ConsoleFormatter prints an aligned breakdown table for terminals.
type ConsoleFormatter struct {
	HideExplanations bool
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	res := r.Result
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "ÉVALUATION DU PRÉJUDICE CORPOREL (barème Dintilhac)")
	fmt.Fprintln(buf, strings.Repeat("=", 60))
	if r.CaseID != "" {
		fmt.Fprintf(buf, "Dossier : %s\n", r.CaseID)
	}
	if r.Victim != "" {
		fmt.Fprintf(buf, "Victime : %s\n", r.Victim)
	}
	fmt.Fprintf(buf, "Âge à la consolidation : %d ans\n\n", res.Age)

	labelWidth := runewidth.StringWidth("Poste de préjudice")
	amountWidth := runewidth.StringWidth(FormatEuro(res.TotalMax))
	for _, h := range res.Breakdown {
		labelWidth = max(labelWidth, runewidth.StringWidth(h.Label))
	}
	amountWidth = max(amountWidth, runewidth.StringWidth("Minimum"))

	row := func(label, lo, hi string) {
		fmt.Fprintf(buf, "%s  %s  %s\n",
			runewidth.FillRight(label, labelWidth),
			runewidth.FillLeft(lo, amountWidth),
			runewidth.FillLeft(hi, amountWidth))
	}
	rule := strings.Repeat("-", labelWidth+2*amountWidth+4)

	row("Poste de préjudice", "Minimum", "Maximum")
	fmt.Fprintln(buf, rule)
	if len(res.Breakdown) == 0 {
		fmt.Fprintln(buf, "(aucun poste évalué)")
	}
	for _, h := range res.Breakdown {
		row(h.Label, FormatEuro(h.Min), FormatEuro(h.Max))
		if !c.HideExplanations && h.Explanation != "" {
			fmt.Fprintf(buf, "    %s\n", h.Explanation)
		}
	}
	fmt.Fprintln(buf, rule)
	row("TOTAL", FormatEuro(res.TotalMin), FormatEuro(res.TotalMax))
	fmt.Fprintf(buf, "%s  %s\n", runewidth.FillRight("Moyenne", labelWidth), runewidth.FillLeft(FormatEuro(res.TotalAvg), amountWidth))

	if res.Offer != nil {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "OFFRE DE L'ASSUREUR")
		fmt.Fprintf(buf, "  Montant :    %s\n", FormatEuro(res.Offer.Offer))
		fmt.Fprintf(buf, "  Écart :      %s\n", FormatEuro(res.Offer.GapAmount))
		fmt.Fprintf(buf, "  Couverture : %s\n", FormatPercentage(res.Offer.CoveragePct))
		fmt.Fprintf(buf, "  %s\n", r.Verdict())
	} else if r.Input.Offer != nil {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "Offre non comparée : estimation moyenne nulle.")
	}
	return buf.Bytes(), nil
}
