package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lexcalc/dintilhac/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// ParameterSlider displays one adjustable input with a gauge
type ParameterSlider struct {
	Label     string
	Value     decimal.Decimal
	Min       decimal.Decimal
	Max       decimal.Decimal
	Unit      string
	Width     int // Gauge width
	IsFocused bool
}

// Render returns the label, the gauge and the value on one line
func (p *ParameterSlider) Render() string {
	width := p.Width
	if width <= 0 {
		width = 20
	}

	filled := 0
	if span := p.Max.Sub(p.Min); span.IsPositive() {
		filled = int(p.Value.Sub(p.Min).Div(span).Mul(decimal.NewFromInt(int64(width))).IntPart())
	}
	filled = max(0, min(width, filled))
	gauge := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	labelStyle := tuistyles.UnselectedItemStyle
	cursor := "  "
	if p.IsFocused {
		labelStyle = tuistyles.SelectedItemStyle
		cursor = "▸ "
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cursor,
		labelStyle.Width(28).Render(p.Label),
		lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Render(gauge),
		" ",
		tuistyles.MetricValueStyle.Render(p.Value.String()+p.Unit),
	)
}
