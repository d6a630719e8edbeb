// Package battle renders the encounter turn loop: question, answer choices,
// HP bars, and the win/lose summary. All game rules live in the encounter
// engine; this screen only presents its plain-data snapshots.
package battle

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	combat "github.com/abhisek/mathmon/internal/battle"
	"github.com/abhisek/mathmon/internal/difficulty"
	"github.com/abhisek/mathmon/internal/encounter"
	"github.com/abhisek/mathmon/internal/problemgen"
	"github.com/abhisek/mathmon/internal/progression"
	"github.com/abhisek/mathmon/internal/ui/components"
)

// Model is the battle screen.
type Model struct {
	profiles encounter.ProfileStore
	gen      problemgen.Generator
	cfg      difficulty.Config

	enc *encounter.Encounter
	mc  components.MultiChoice

	// next holds the follow-up question while feedback for the previous
	// answer is on screen. Input stays locked until it is installed.
	next *problemgen.Question

	showingFeedback bool
	lastCorrect     bool
	leveledUp       bool

	errMsg string
}

// New starts a fresh encounter for the profile.
func New(profile *progression.Profile, gen problemgen.Generator, profiles encounter.ProfileStore, cfg difficulty.Config) (Model, error) {
	m := Model{profiles: profiles, gen: gen, cfg: cfg}
	if err := m.startEncounter(profile); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) startEncounter(profile *progression.Profile) error {
	enc, err := encounter.New(profile, m.gen, m.profiles, m.cfg)
	if err != nil {
		return err
	}
	q, err := enc.Begin(time.Now())
	if err != nil {
		return err
	}
	m.enc = enc
	m.mc = components.NewMultiChoice(q.Prompt, q.Choices, q.CorrectIndex())
	m.next = nil
	m.showingFeedback = false
	m.leveledUp = false
	return nil
}

// Init is a no-op; the first question is installed synchronously.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles one input event.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	if m.errMsg != "" {
		return m, tea.Quit
	}

	snap := m.enc.Snapshot()

	// Terminal summary: replay or leave.
	if snap.State != combat.StateActive && !m.showingFeedback {
		switch kmsg.String() {
		case "enter":
			if err := m.startEncounter(m.enc.Profile()); err != nil {
				m.errMsg = err.Error()
			}
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	}

	// Feedback overlay: any key moves on.
	if m.showingFeedback {
		m.showingFeedback = false
		if m.next != nil {
			m.mc = components.NewMultiChoice(m.next.Prompt, m.next.Choices, m.next.CorrectIndex())
			m.next = nil
		}
		return m, nil
	}

	// Active question.
	var cmd tea.Cmd
	m.mc, cmd = m.mc.Update(msg)
	if m.mc.Submitted {
		m.submit()
	}
	return m, cmd
}

// submit scores the locked-in choice against the engine.
func (m *Model) submit() {
	res, err := m.enc.SubmitAnswer(context.Background(), m.mc.ChosenIndex, time.Now())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.lastCorrect = res.Correct
	m.leveledUp = res.LeveledUp
	m.next = res.Next
	m.showingFeedback = true
}
