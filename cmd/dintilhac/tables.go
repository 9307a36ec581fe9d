package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/lexcalc/dintilhac/internal/bareme"
	"github.com/lexcalc/dintilhac/internal/output"
	"github.com/mattn/go-runewidth"
)

func writeTables(w io.Writer, asJSON bool) error {
	snap := bareme.TakeSnapshot()
	if asJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintln(w, "VALEUR DU POINT DFP ET COEFFICIENT DE CAPITALISATION")
	fmt.Fprintf(w, "%s %s %s\n",
		runewidth.FillRight("Âge", 10),
		runewidth.FillLeft("Point", 14),
		runewidth.FillLeft("Coefficient", 14))
	for _, row := range snap.Ages {
		fmt.Fprintf(w, "%s %s %s\n",
			runewidth.FillRight(fmt.Sprintf("%d+", row.FromAge), 10),
			runewidth.FillLeft(output.FormatEuro(row.DfpPointValue), 14),
			runewidth.FillLeft(row.CapitalizationCoefficient.String(), 14))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "QUANTUM DOLORIS ET PRÉJUDICE ESTHÉTIQUE (échelle 1 à 7)")
	for _, row := range snap.Scores {
		fmt.Fprintf(w, "%s %s %s\n",
			runewidth.FillRight(fmt.Sprintf("%d/7", row.Score), 6),
			runewidth.FillLeft(output.FormatEuro(row.PainMin)+" - "+output.FormatEuro(row.PainMax), 30),
			runewidth.FillLeft(output.FormatEuro(row.AestheticMin)+" - "+output.FormatEuro(row.AestheticMax), 30))
	}
	return nil
}
