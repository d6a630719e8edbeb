// Package encounter drives a single hero-versus-monster battle: it owns the
// turn loop that scores answers, feeds the adaptive difficulty controller,
// applies damage, and persists the profile when the battle ends.
package encounter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathmon/internal/battle"
	"github.com/abhisek/mathmon/internal/difficulty"
	"github.com/abhisek/mathmon/internal/problemgen"
	"github.com/abhisek/mathmon/internal/progression"
)

// ProfileStore persists the profile at encounter boundaries.
type ProfileStore interface {
	Save(ctx context.Context, p *progression.Profile) error
}

var (
	// ErrEnded is returned when an answer arrives after the battle reached
	// a terminal state.
	ErrEnded = errors.New("encounter already ended")

	// ErrNoQuestion is returned when an answer arrives while no question is
	// installed, which happens on duplicate submissions for the same turn.
	ErrNoQuestion = errors.New("no question pending")
)

// TurnResult reports the outcome of one answered question.
type TurnResult struct {
	Correct   bool
	State     battle.State
	LeveledUp bool

	// Next is the freshly installed question when the battle continues,
	// nil on a terminal turn.
	Next *problemgen.Question
}

// Snapshot is a plain-data view of the encounter for the presentation layer.
type Snapshot struct {
	ID               string
	HeroName         string
	HeroSprite       string
	MonsterName      string
	MonsterSprite    string
	HeroHPPercent    float64
	MonsterHPPercent float64
	Difficulty       int
	Streak           int
	Asked            int
	State            battle.State
}

// Encounter is one bounded battle between the hero and a monster.
type Encounter struct {
	// ID tags this battle in snapshots and persistence warnings.
	ID string

	profile  *progression.Profile
	ctrl     *difficulty.Controller
	battle   *battle.Battle
	gen      problemgen.Generator
	profiles ProfileStore

	question   *problemgen.Question
	questionAt time.Time
	asked      int
}

// New prepares an encounter: the hero's stats are re-derived from the level
// table and the monster enters mirroring that stat budget with zero damage.
func New(profile *progression.Profile, gen problemgen.Generator, profiles ProfileStore, cfg difficulty.Config) (*Encounter, error) {
	if err := progression.ApplyLevelDerivedStats(profile); err != nil {
		return nil, err
	}

	hero := battle.Combatant{
		Name:         profile.HeroName,
		Sprite:       profile.HeroSprite,
		AttackSprite: profile.AttackSprite,
		Attack:       profile.Attack,
		Health:       profile.Health,
	}
	monster := battle.MonsterFor(profile.Level, profile.Attack, profile.Health)

	return &Encounter{
		ID:       uuid.NewString(),
		profile:  profile,
		ctrl:     difficulty.NewController(cfg, profile.Difficulty),
		battle:   battle.New(hero, monster),
		gen:      gen,
		profiles: profiles,
	}, nil
}

// Begin generates and installs the first question.
func (e *Encounter) Begin(now time.Time) (*problemgen.Question, error) {
	if e.question != nil {
		return e.question, nil
	}
	return e.nextQuestion(now)
}

// Question returns the currently installed question, nil between turns.
func (e *Encounter) Question() *problemgen.Question {
	return e.question
}

// Profile returns the profile owned by this encounter.
func (e *Encounter) Profile() *progression.Profile {
	return e.profile
}

// SubmitAnswer scores the pending question against the chosen index and
// advances the battle one turn. The pending question is consumed before any
// other work, so a rapid duplicate submission cannot be scored twice: it
// fails with ErrNoQuestion until the next question is installed.
//
// On a terminal turn the profile mutation is applied and a save is issued
// before returning. A failed save is logged and the in-memory result stands.
func (e *Encounter) SubmitAnswer(ctx context.Context, choice int, now time.Time) (*TurnResult, error) {
	if e.battle.State != battle.StateActive {
		return nil, ErrEnded
	}
	q := e.question
	if q == nil {
		return nil, ErrNoQuestion
	}
	e.question = nil

	correct := q.Check(choice)
	e.ctrl.OnAnswer(correct, now.Sub(e.questionAt))
	e.profile.Difficulty = e.ctrl.Difficulty

	res := &TurnResult{Correct: correct, State: e.battle.ApplyAnswer(correct)}

	switch res.State {
	case battle.StateWon:
		leveledUp, err := progression.ApplyWin(e.profile)
		if err != nil {
			return nil, err
		}
		res.LeveledUp = leveledUp
		e.persist(ctx)

	case battle.StateLost:
		if err := progression.ApplyLoss(e.profile); err != nil {
			return nil, err
		}
		e.persist(ctx)

	default:
		next, err := e.nextQuestion(now)
		if err != nil {
			return nil, err
		}
		res.Next = next
	}

	return res, nil
}

// Snapshot returns the current plain-data view for rendering.
func (e *Encounter) Snapshot() Snapshot {
	return Snapshot{
		ID:               e.ID,
		HeroName:         e.battle.Hero.Name,
		HeroSprite:       e.battle.Hero.Sprite,
		MonsterName:      e.battle.Monster.Name,
		MonsterSprite:    e.battle.Monster.Sprite,
		HeroHPPercent:    e.battle.Hero.HPPercent(),
		MonsterHPPercent: e.battle.Monster.HPPercent(),
		Difficulty:       e.ctrl.Difficulty,
		Streak:           e.ctrl.Streak,
		Asked:            e.asked,
		State:            e.battle.State,
	}
}

func (e *Encounter) nextQuestion(now time.Time) (*problemgen.Question, error) {
	q, err := e.gen.Generate(e.profile.PlayerGrade, e.ctrl.Difficulty)
	if err != nil {
		return nil, err
	}
	e.question = q
	e.questionAt = now
	e.asked++
	return q, nil
}

func (e *Encounter) persist(ctx context.Context) {
	if e.profiles == nil {
		return
	}
	if err := e.profiles.Save(ctx, e.profile); err != nil {
		fmt.Fprintf(os.Stderr, "warning: encounter %s: failed to persist profile: %v\n", e.ID, err)
	}
}
