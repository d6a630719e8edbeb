package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmon/internal/progression"
	"github.com/abhisek/mathmon/internal/store"
	"github.com/abhisek/mathmon/internal/ui/theme"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show hero progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p, err := st.ProfileRepo().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if p == nil {
			fmt.Println("No save found. Run `mathmon play` to start.")
			return nil
		}

		fmt.Println(renderStats(p))
		return nil
	},
}

// renderStats formats the profile as a small card.
func renderStats(p *progression.Profile) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(12)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	row := func(k, v string) string {
		return label.Render(k) + value.Render(v)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(p.PlayerName+"'s hero") + "\n\n")
	b.WriteString(row("Hero", fmt.Sprintf("%s (%s)", p.HeroName, p.HeroType)) + "\n")
	b.WriteString(row("Grade", fmt.Sprintf("%d", p.PlayerGrade)) + "\n")
	b.WriteString(row("Level", fmt.Sprintf("%d / %d", p.Level, progression.MaxLevel)) + "\n")
	b.WriteString(row("XP", fmt.Sprintf("%d  (%s)", p.XP, xpProgress(p))) + "\n")
	b.WriteString(row("Difficulty", fmt.Sprintf("%d", p.Difficulty)) + "\n")
	b.WriteString(row("Attack", fmt.Sprintf("%d", p.Attack)) + "\n")
	b.WriteString(row("Health", fmt.Sprintf("%d", p.Health)) + "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(b.String())
}

// xpProgress describes how far into the current level the hero is.
func xpProgress(p *progression.Profile) string {
	if p.Level >= progression.MaxLevel {
		return "max level"
	}
	into := p.XP % progression.XPPerLevel
	return fmt.Sprintf("%d/%d to next level", into, progression.XPPerLevel)
}
