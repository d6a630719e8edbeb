// Package app hosts the root Bubble Tea model: it loads (or creates) the
// player profile and switches between the setup wizard and the battle screen.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	battlescreen "github.com/abhisek/mathmon/internal/screens/battle"
	"github.com/abhisek/mathmon/internal/screens/setup"

	"github.com/abhisek/mathmon/internal/difficulty"
	"github.com/abhisek/mathmon/internal/problemgen"
	"github.com/abhisek/mathmon/internal/progression"
	"github.com/abhisek/mathmon/internal/store"
	"github.com/abhisek/mathmon/internal/ui/theme"
)

// Options holds the injected dependencies for the app.
type Options struct {
	Profiles  store.ProfileRepo
	Generator problemgen.Generator
	Config    difficulty.Config
}

type phase int

const (
	phaseLoading phase = iota
	phaseSetup
	phaseBattle
)

// profileLoadedMsg is sent once the saved profile has been read.
type profileLoadedMsg struct {
	Profile *progression.Profile
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	width  int
	height int

	phase  phase
	setup  setup.Model
	battle battlescreen.Model

	errMsg string
}

func newAppModel(opts Options) AppModel {
	return AppModel{opts: opts, phase: phaseLoading}
}

func (m AppModel) Init() tea.Cmd {
	return func() tea.Msg {
		p, err := m.opts.Profiles.Load(context.Background())
		if err != nil {
			// Load is fail-soft by contract; treat any residue as a
			// missing save and run setup.
			p = nil
		}
		return profileLoadedMsg{Profile: p}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profileLoadedMsg:
		if msg.Profile == nil {
			m.phase = phaseSetup
			m.setup = setup.New()
			return m, m.setup.Init()
		}
		return m.enterBattle(msg.Profile)

	case setup.DoneMsg:
		if err := m.opts.Profiles.Save(context.Background(), msg.Profile); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m.enterBattle(msg.Profile)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.phase {
	case phaseSetup:
		var cmd tea.Cmd
		m.setup, cmd = m.setup.Update(msg)
		return m, cmd
	case phaseBattle:
		var cmd tea.Cmd
		m.battle, cmd = m.battle.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) enterBattle(p *progression.Profile) (tea.Model, tea.Cmd) {
	scr, err := battlescreen.New(p, m.opts.Generator, m.opts.Profiles, m.opts.Config)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.phase = phaseBattle
	m.battle = scr
	return m, m.battle.Init()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if m.errMsg != "" {
		v.SetContent(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nCould not continue: " + m.errMsg))
		return v
	}

	switch m.phase {
	case phaseSetup:
		v.SetContent(m.setup.View(m.width, m.height))
	case phaseBattle:
		v.SetContent(m.battle.View(m.width, m.height))
	default:
		v.SetContent(theme.Subtitle.Width(m.width).Render("\n\nLoading..."))
	}
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
