// Package setup collects the new-player details: name, grade, and hero line.
package setup

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmon/internal/progression"
	"github.com/abhisek/mathmon/internal/ui/components"
	"github.com/abhisek/mathmon/internal/ui/theme"
)

// DoneMsg carries the completed profile once setup finishes.
type DoneMsg struct {
	Profile *progression.Profile
}

type step int

const (
	stepName step = iota
	stepGrade
	stepHero
)

var heroChoices = []struct {
	Type  progression.HeroType
	Label string
}{
	{progression.HeroBlue, "Aqualing (water)"},
	{progression.HeroGreen, "Sproutling (plant)"},
}

// Model is the setup wizard.
type Model struct {
	step    step
	input   components.TextInput
	name    string
	grade   int
	heroIdx int
}

// New creates the setup wizard starting at the name prompt.
func New() Model {
	return Model{
		input: components.NewTextInput("Your name...", 20),
		grade: 2,
	}
}

// Init focuses the name input.
func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

// Update advances the wizard one step at a time.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch m.step {
	case stepName:
		if isKey && kmsg.String() == "enter" {
			name := strings.TrimSpace(m.input.Value())
			if name != "" {
				m.name = name
				m.step = stepGrade
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case stepGrade:
		if !isKey {
			return m, nil
		}
		switch kmsg.String() {
		case "2", "3":
			m.grade = int(kmsg.String()[0] - '0')
			m.step = stepHero
		case "left", "right", "up", "down":
			if m.grade == 2 {
				m.grade = 3
			} else {
				m.grade = 2
			}
		case "enter":
			m.step = stepHero
		}
		return m, nil

	case stepHero:
		if !isKey {
			return m, nil
		}
		switch kmsg.String() {
		case "up", "k", "down", "j":
			m.heroIdx = (m.heroIdx + 1) % len(heroChoices)
		case "enter":
			profile := progression.NewProfile(m.name, m.grade, heroChoices[m.heroIdx].Type, time.Now())
			return m, func() tea.Msg { return DoneMsg{Profile: profile} }
		}
		return m, nil
	}

	return m, nil
}

// View renders the current wizard step.
func (m Model) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Math Monsters"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("A new hero appears!"))
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch m.step {
	case stepName:
		b.WriteString(center.Render("What is your name?"))
		b.WriteString("\n\n")
		b.WriteString(center.Render(m.input.View()))
		b.WriteString("\n\n")
		b.WriteString(center.Render(theme.Hint.Render("Enter to continue")))

	case stepGrade:
		b.WriteString(center.Render(fmt.Sprintf("Hi %s! What grade are you in?", m.name)))
		b.WriteString("\n\n")
		line := ""
		for _, g := range []int{2, 3} {
			label := fmt.Sprintf("  Grade %d  ", g)
			if g == m.grade {
				line += theme.Selected.Render("▸" + label)
			} else {
				line += theme.Unselected.Render(" " + label)
			}
		}
		b.WriteString(center.Render(line))
		b.WriteString("\n\n")
		b.WriteString(center.Render(theme.Hint.Render("Press 2 or 3, Enter to continue")))

	case stepHero:
		b.WriteString(center.Render("Choose your hero:"))
		b.WriteString("\n\n")
		for i, h := range heroChoices {
			line := "  " + h.Label
			if i == m.heroIdx {
				line = theme.Selected.Render("▸ " + h.Label)
			} else {
				line = theme.Unselected.Render(line)
			}
			b.WriteString(center.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(center.Render(theme.Hint.Render("↑↓ to pick, Enter to start")))
	}

	return b.String()
}
