package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFFormatter produces a one-page A4 report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pdfMargin       = 15.0
	pdfContentWidth = 210.0 - 2*pdfMargin
	pdfAmountWidth  = 38.0
)

func (p PDFFormatter) Format(r *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle("Evaluation du prejudice corporel", false)
	// core fonts are cp1252; é and € need translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 10, tr("Évaluation du préjudice corporel"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	if r.CaseID != "" {
		pdf.CellFormat(pdfContentWidth, 6, tr("Dossier : "+r.CaseID), "", 1, "L", false, 0, "")
	}
	if r.Victim != "" {
		pdf.CellFormat(pdfContentWidth, 6, tr("Victime : "+r.Victim), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(pdfContentWidth, 6, tr(fmt.Sprintf("Âge à la consolidation : %d ans", r.Result.Age)), "", 1, "L", false, 0, "")
	pdf.CellFormat(pdfContentWidth, 6, tr("Établi le "+r.GeneratedAt.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	labelWidth := pdfContentWidth - 2*pdfAmountWidth
	pdf.SetFillColor(240, 243, 247)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(labelWidth, 8, tr("Poste de préjudice"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfAmountWidth, 8, "Minimum", "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfAmountWidth, 8, "Maximum", "1", 1, "R", true, 0, "")

	pdf.SetTextColor(30, 30, 30)
	for _, h := range r.Result.Breakdown {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(labelWidth, 7, tr(h.Label), "LR", 0, "L", false, 0, "")
		pdf.CellFormat(pdfAmountWidth, 7, tr(FormatEuro(h.Min)), "LR", 0, "R", false, 0, "")
		pdf.CellFormat(pdfAmountWidth, 7, tr(FormatEuro(h.Max)), "LR", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(labelWidth, 5, tr(h.Explanation), "LRB", 0, "L", false, 0, "")
		pdf.CellFormat(pdfAmountWidth, 5, "", "LRB", 0, "", false, 0, "")
		pdf.CellFormat(pdfAmountWidth, 5, "", "LRB", 1, "", false, 0, "")
		pdf.SetTextColor(30, 30, 30)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelWidth, 8, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfAmountWidth, 8, tr(FormatEuro(r.Result.TotalMin)), "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfAmountWidth, 8, tr(FormatEuro(r.Result.TotalMax)), "1", 1, "R", true, 0, "")
	pdf.CellFormat(labelWidth, 8, "Moyenne", "1", 0, "L", true, 0, "")
	pdf.CellFormat(2*pdfAmountWidth, 8, tr(FormatEuro(r.Result.TotalAvg)), "1", 1, "R", true, 0, "")

	if o := r.Result.Offer; o != nil {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(0, 51, 102)
		pdf.CellFormat(pdfContentWidth, 7, tr("Offre de l'assureur : "+FormatEuro(o.Offer)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(30, 30, 30)
		pdf.CellFormat(pdfContentWidth, 6, tr("Écart avec la moyenne : "+FormatEuro(o.GapAmount)), "", 1, "L", false, 0, "")
		pdf.CellFormat(pdfContentWidth, 6, tr("Couverture : "+FormatPercentage(o.CoveragePct)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(pdfContentWidth, 6, tr(r.Verdict()), "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(90, 90, 90)
	for _, note := range DefaultNotes {
		pdf.MultiCell(pdfContentWidth, 4, tr("- "+note), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
