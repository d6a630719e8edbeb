package battle

// State is the battle lifecycle state. Won and Lost are terminal.
type State int

const (
	StateActive State = iota
	StateWon
	StateLost
)

// String returns the wire-friendly name of the state.
func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "active"
	}
}

// Combatant is one side's stat budget and accumulated damage for a single
// encounter. Damage counts up from zero; remaining HP is derived.
type Combatant struct {
	Name         string
	Sprite       string
	AttackSprite string
	Attack       int
	Health       int
	Damage       int
}

// HPPercent returns the combatant's remaining health as 0-100.
func (c *Combatant) HPPercent() float64 {
	return HealthPercent(c.Health, c.Damage)
}

// Defeated reports whether accumulated damage has met the health budget.
func (c *Combatant) Defeated() bool {
	return c.Damage >= c.Health
}

// Battle owns the HP/damage bookkeeping for one encounter.
type Battle struct {
	Hero    Combatant
	Monster Combatant
	State   State
	Turns   int
}

// New starts a fresh battle. Both sides enter with zero damage regardless of
// any stale counters on the inputs.
func New(hero, monster Combatant) *Battle {
	hero.Damage = 0
	monster.Damage = 0
	return &Battle{Hero: hero, Monster: monster, State: StateActive}
}

// ApplyAnswer applies one answered question: a correct answer damages the
// monster by the hero's attack, a wrong answer damages the hero by the
// monster's attack. Terminal conditions are checked monster-first, so a turn
// that fells both sides is a win. Calls after a terminal state are no-ops.
func (b *Battle) ApplyAnswer(correct bool) State {
	if b.State != StateActive {
		return b.State
	}

	b.Turns++
	if correct {
		b.Monster.Damage += b.Hero.Attack
	} else {
		b.Hero.Damage += b.Monster.Attack
	}

	switch {
	case b.Monster.Defeated():
		b.State = StateWon
	case b.Hero.Defeated():
		b.State = StateLost
	}
	return b.State
}

// HealthPercent converts a (health, damage) pair into a display percentage.
// Malformed inputs clamp: the result is always within [0, 100].
func HealthPercent(health, damage int) float64 {
	if health <= 0 {
		return 0
	}
	remaining := health - damage
	if remaining < 0 {
		remaining = 0
	}
	if remaining > health {
		remaining = health
	}
	return float64(remaining) / float64(health) * 100
}
