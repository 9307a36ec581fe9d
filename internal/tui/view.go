package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/lexcalc/dintilhac/internal/bareme"
	"github.com/lexcalc/dintilhac/internal/compare"
	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/lexcalc/dintilhac/internal/output"
	"github.com/lexcalc/dintilhac/internal/tui/components"
	"github.com/lexcalc/dintilhac/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return tuistyles.SubtitleStyle.Render(m.loadingMessage)
	}
	if m.result == nil && m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneResults:
		content = m.renderResults()
	case SceneParameters:
		content = m.renderParameters()
	case SceneOffers:
		content = m.renderOffers()
	case SceneTables:
		content = renderTables()
	case SceneHelp:
		content = m.renderHelp()
	}
	if m.err != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, tuistyles.ErrorStyle.Render(m.err.Error()), content)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.NewStyle().MaxHeight(max(m.height-4, 5)).Render(content),
		m.renderStatusBar(),
	)
}

func (m Model) renderError() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		tuistyles.ErrorStyle.Render("Erreur : "+m.err.Error()),
		tuistyles.StatusBarStyle.Render("q pour quitter"),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("Dintilhac · Évaluation du préjudice corporel")

	crumbs := []string{m.currentScene.String()}
	if m.caseFile != nil && m.caseFile.CaseID != "" {
		crumbs = append([]string{"Dossier " + m.caseFile.CaseID}, crumbs...)
	}
	if m.modified {
		crumbs = append(crumbs, "modifié")
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, tuistyles.SubtitleStyle.Render(strings.Join(crumbs, " / ")))
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	bindings := []key.Binding{m.keys.Results, m.keys.Parameters, m.keys.Offers, m.keys.Tables, m.keys.Help, m.keys.Quit}
	shortcuts := make([]string, len(bindings))
	for i, b := range bindings {
		shortcuts[i] = tuistyles.StatusKeyStyle.Render(b.Help().Key) + " " + b.Help().Desc
	}
	return tuistyles.StatusBarStyle.Render(strings.Join(shortcuts, " • "))
}

func newHeadsTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Poste", Width: 36},
			{Title: "Minimum", Width: 16},
			{Title: "Maximum", Width: 16},
			{Title: "Détail", Width: 36},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(tuistyles.ColorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(tuistyles.ColorAccent).Bold(true)
	t.SetStyles(s)
	return t
}

func headRows(res *domain.CalculationResult) []table.Row {
	rows := make([]table.Row, 0, len(res.Breakdown))
	for _, h := range res.Breakdown {
		rows = append(rows, table.Row{h.Label, output.FormatEuro(h.Min), output.FormatEuro(h.Max), h.Explanation})
	}
	return rows
}

func (m Model) summaryCards() string {
	res := m.result
	cards := []*components.MetricCard{
		components.NewMetricCard("Total minimum", output.FormatEuro(res.TotalMin)),
		components.NewMetricCard("Total maximum", output.FormatEuro(res.TotalMax)),
		components.NewMetricCard("Estimation moyenne", output.FormatEuro(res.TotalAvg)),
	}
	if res.Offer != nil {
		pos := domain.PositionOf(res.Offer.Offer, domain.Range{Min: res.TotalMin, Max: res.TotalMax})
		cards = append(cards, components.NewMetricCard("Offre", output.FormatEuro(res.Offer.Offer)).
			WithDescription(output.FormatPercentage(res.Offer.CoveragePct)+" de la moyenne").
			WithValueStyle(tuistyles.PositionStyle(pos)))
	}
	return components.MetricGrid(cards, 4)
}

func (m Model) renderResults() string {
	if len(m.result.Breakdown) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, m.summaryCards(), "", tuistyles.SubtitleStyle.Render("(aucun poste évalué)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.summaryCards(), "", m.heads.View())
}

func (m Model) renderParameters() string {
	lines := []string{tuistyles.SectionStyle.Render("Simulation"), ""}
	for i, p := range parameters {
		slider := &components.ParameterSlider{
			Label:     p.label,
			Value:     p.get(m.caseFile),
			Min:       p.min,
			Max:       p.max(m.caseFile),
			Unit:      p.unit,
			Width:     24,
			IsFocused: i == m.focusedParam,
		}
		lines = append(lines, slider.Render())
	}
	lines = append(lines, "",
		(&components.MetricCard{Label: "Estimation moyenne", Value: output.FormatEuro(m.result.TotalAvg)}).RenderCompact(),
		"",
		tuistyles.StatusBarStyle.Render(fmt.Sprintf("%s %s choisir • %s %s modifier • %s %s",
			m.keys.Up.Help().Key, m.keys.Down.Help().Key,
			m.keys.Decrease.Help().Key, m.keys.Increase.Help().Key,
			m.keys.Reset.Help().Key, m.keys.Reset.Help().Desc)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderOffers() string {
	if m.comparison == nil {
		return tuistyles.SubtitleStyle.Render("Aucune offre enregistrée pour ce dossier.")
	}

	lines := []string{tuistyles.SectionStyle.Render("Historique des offres"), ""}
	for _, o := range m.comparison.Offers {
		label := o.Label
		if o.Date != "" {
			label += " (" + o.Date + ")"
		}
		line := fmt.Sprintf("%-36s %16s %6s  %s",
			label,
			output.FormatEuro(o.Amount),
			output.FormatPercentage(o.CoveragePct),
			tuistyles.PositionStyle(o.Position).Render(positionLabel(o)),
		)
		lines = append(lines, line)
	}
	if len(m.comparison.Recommendations) > 0 {
		lines = append(lines, "", tuistyles.SectionStyle.Render("Recommandations"), "")
		for _, r := range m.comparison.Recommendations {
			lines = append(lines, "• "+r)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func positionLabel(o compare.OfferResult) string {
	switch o.Position {
	case domain.BelowMin:
		return "sous le minimum"
	case domain.AboveMax:
		return "au-dessus du maximum"
	}
	return "dans la fourchette"
}

func renderTables() string {
	snap := bareme.TakeSnapshot()
	lines := []string{tuistyles.SectionStyle.Render("Point DFP et coefficient de capitalisation"), ""}
	for _, row := range snap.Ages {
		lines = append(lines, fmt.Sprintf("  %3d ans et plus  %14s  %8s", row.FromAge, output.FormatEuro(row.DfpPointValue), row.CapitalizationCoefficient.String()))
	}
	lines = append(lines, "", tuistyles.SectionStyle.Render("Quantum doloris et préjudice esthétique"), "")
	for _, row := range snap.Scores {
		lines = append(lines, fmt.Sprintf("  %d/7  %14s - %-14s  %14s - %s", row.Score,
			output.FormatEuro(row.PainMin), output.FormatEuro(row.PainMax),
			output.FormatEuro(row.AestheticMin), output.FormatEuro(row.AestheticMax)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderHelp() string {
	bindings := []key.Binding{
		m.keys.Results, m.keys.Parameters, m.keys.Offers, m.keys.Tables,
		m.keys.Up, m.keys.Down, m.keys.Decrease, m.keys.Increase, m.keys.Reset,
		m.keys.Back, m.keys.Quit,
	}
	lines := []string{tuistyles.SectionStyle.Render("Raccourcis"), ""}
	for _, b := range bindings {
		lines = append(lines, tuistyles.HelpKeyStyle.Render(b.Help().Key)+tuistyles.HelpDescStyle.Render(b.Help().Desc))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
