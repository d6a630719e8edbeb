package battle

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	combat "github.com/abhisek/mathmon/internal/battle"
	"github.com/abhisek/mathmon/internal/ui/components"
	"github.com/abhisek/mathmon/internal/ui/theme"
)

// View renders the battle screen.
func (m Model) View(width, height int) string {
	if m.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nSomething went wrong: " + m.errMsg + "\n\nPress any key to exit.")
	}

	snap := m.enc.Snapshot()
	var b strings.Builder

	// Combatant header with HP bars.
	b.WriteString(components.NewHPBar(snap.MonsterName, snap.MonsterHPPercent, theme.MonsterHP, width-4).View())
	b.WriteString("\n")
	b.WriteString(components.NewHPBar(snap.HeroName, snap.HeroHPPercent, theme.HeroHP, width-4).View())
	b.WriteString("\n")

	info := fmt.Sprintf("Question %d   Streak %d   Difficulty %d", snap.Asked, snap.Streak, snap.Difficulty)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	if snap.State != combat.StateActive && !m.showingFeedback {
		b.WriteString(m.renderSummary(width, snap.State))
		return b.String()
	}

	b.WriteString(m.mc.View())
	b.WriteString("\n")

	if m.showingFeedback {
		if m.lastCorrect {
			b.WriteString(theme.Correct.Render(fmt.Sprintf("Hit! %s takes damage.", snap.MonsterName)))
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Ouch! %s strikes back.", snap.MonsterName)))
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press any key..."))
	} else {
		b.WriteString(theme.Hint.Render("↑↓ to pick, Enter to attack"))
	}

	return b.String()
}

// renderSummary shows the terminal outcome and the updated progression.
func (m Model) renderSummary(width int, state combat.State) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	p := m.enc.Profile()

	var b strings.Builder
	if state == combat.StateWon {
		b.WriteString(center.Render(theme.Correct.Render("VICTORY!")))
		b.WriteString("\n\n")
		if m.leveledUp {
			b.WriteString(center.Render(theme.Title.Render(fmt.Sprintf("%s evolved! Now level %d.", p.HeroName, p.Level))))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(center.Render(theme.Incorrect.Render("DEFEAT...")))
		b.WriteString("\n\n")
	}

	b.WriteString(center.Render(fmt.Sprintf("XP %d   Level %d   Difficulty %d", p.XP, p.Level, p.Difficulty)))
	b.WriteString("\n\n")
	b.WriteString(center.Render(theme.Hint.Render("Enter: battle again   Q: quit")))
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
