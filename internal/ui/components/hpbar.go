package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmon/internal/ui/theme"
)

// HPBar displays a combatant's remaining health.
type HPBar struct {
	Label   string
	Percent float64 // 0-100
	Color   color.Color
	Width   int
}

// NewHPBar creates a health bar.
func NewHPBar(label string, percent float64, c color.Color, width int) HPBar {
	return HPBar{Label: label, Percent: percent, Color: c, Width: width}
}

// View renders the bar.
func (h HPBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Label)

	barWidth := h.Width - lipgloss.Width(label) - 8 // room for " 100%" and padding
	if barWidth < 4 {
		barWidth = 4
	}

	pct := h.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(float64(barWidth) * pct / 100)
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	bar := lipgloss.NewStyle().Background(h.Color).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))

	pctStr := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %3.0f%%", pct))

	return label + "  " + bar + pctStr
}
