// Package tuistyles holds the lipgloss palette shared by the TUI and its
// components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lexcalc/dintilhac/internal/domain"
)

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#5DA9E9"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#F2C14E"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(ColorPrimary)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle = lipgloss.NewStyle().Bold(true)

	SelectedItemStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	UnselectedItemStyle = lipgloss.NewStyle()

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDanger).
			Padding(1, 2)

	HelpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Width(10)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// PositionStyle colours an offer by where it falls against the estimate.
func PositionStyle(p domain.OfferPosition) lipgloss.Style {
	switch p {
	case domain.BelowMin:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
	case domain.AboveMax:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
}
