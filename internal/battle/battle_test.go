package battle

import "testing"

func newTestBattle(heroAttack, heroHealth, monsterAttack, monsterHealth int) *Battle {
	return New(
		Combatant{Name: "Hero", Attack: heroAttack, Health: heroHealth},
		Combatant{Name: "Monster", Attack: monsterAttack, Health: monsterHealth},
	)
}

func TestHealthPercent(t *testing.T) {
	tests := []struct {
		health int
		damage int
		want   float64
	}{
		{10, 0, 100},
		{10, 5, 50},
		{10, 10, 0},
		{10, 15, 0},  // damage past health never shows negative
		{10, -3, 100}, // negative damage never shows >100
		{0, 0, 0},
		{-5, 0, 0},
	}

	for _, tt := range tests {
		if got := HealthPercent(tt.health, tt.damage); got != tt.want {
			t.Errorf("HealthPercent(%d, %d) = %v, want %v", tt.health, tt.damage, got, tt.want)
		}
	}
}

func TestCorrectAnswerDamagesMonster(t *testing.T) {
	b := newTestBattle(3, 10, 2, 10)

	state := b.ApplyAnswer(true)
	if state != StateActive {
		t.Fatalf("state = %v, want active", state)
	}
	if b.Monster.Damage != 3 {
		t.Errorf("monster damage = %d, want hero attack 3", b.Monster.Damage)
	}
	if b.Hero.Damage != 0 {
		t.Errorf("hero damage = %d, want 0", b.Hero.Damage)
	}
}

func TestWrongAnswerDamagesHero(t *testing.T) {
	b := newTestBattle(3, 10, 2, 10)

	b.ApplyAnswer(false)
	if b.Hero.Damage != 2 {
		t.Errorf("hero damage = %d, want monster attack 2", b.Hero.Damage)
	}
	if b.Monster.Damage != 0 {
		t.Errorf("monster damage = %d, want 0", b.Monster.Damage)
	}
}

func TestBattleReachesWon(t *testing.T) {
	b := newTestBattle(5, 10, 5, 10)

	if state := b.ApplyAnswer(true); state != StateActive {
		t.Fatalf("state after 1 hit = %v, want active", state)
	}
	if state := b.ApplyAnswer(true); state != StateWon {
		t.Fatalf("state after 2 hits = %v, want won", state)
	}
	if b.Turns != 2 {
		t.Errorf("turns = %d, want 2", b.Turns)
	}
}

func TestBattleReachesLost(t *testing.T) {
	b := newTestBattle(5, 10, 5, 10)

	b.ApplyAnswer(false)
	if state := b.ApplyAnswer(false); state != StateLost {
		t.Fatalf("state = %v, want lost", state)
	}
}

func TestMonsterDeathCheckedFirst(t *testing.T) {
	// Both sides are one hit from defeat; a correct answer fells the
	// monster and the outcome must be a win.
	b := newTestBattle(5, 10, 5, 10)
	b.Hero.Damage = 9
	b.Monster.Damage = 9

	if state := b.ApplyAnswer(true); state != StateWon {
		t.Errorf("state = %v, want won (monster-death priority)", state)
	}
}

func TestTerminalStateIsSticky(t *testing.T) {
	b := newTestBattle(10, 10, 10, 10)

	if state := b.ApplyAnswer(true); state != StateWon {
		t.Fatalf("state = %v, want won", state)
	}
	// Further answers must not flip or extend the ended battle.
	if state := b.ApplyAnswer(false); state != StateWon {
		t.Errorf("state = %v after post-terminal answer, want won", state)
	}
	if b.Turns != 1 {
		t.Errorf("turns = %d, want 1", b.Turns)
	}
}

func TestNewResetsStaleDamage(t *testing.T) {
	b := New(
		Combatant{Name: "Hero", Attack: 2, Health: 10, Damage: 7},
		Combatant{Name: "Monster", Attack: 2, Health: 10, Damage: 9},
	)
	if b.Hero.Damage != 0 || b.Monster.Damage != 0 {
		t.Errorf("damage = %d/%d at battle start, want 0/0", b.Hero.Damage, b.Monster.Damage)
	}
}

func TestMonsterForMirrorsStats(t *testing.T) {
	m := MonsterFor(4, 5, 16)
	if m.Attack != 5 || m.Health != 16 {
		t.Errorf("monster stats = %d/%d, want mirrored 5/16", m.Attack, m.Health)
	}
	if m.Name == "" || m.Sprite == "" {
		t.Errorf("monster identity missing: %+v", m)
	}

	// Levels outside the roster clamp to its ends.
	low := MonsterFor(-2, 1, 1)
	if low.Name != MonsterFor(1, 1, 1).Name {
		t.Errorf("level below roster should clamp to first entry")
	}
	high := MonsterFor(99, 1, 1)
	if high.Name != MonsterFor(10, 1, 1).Name {
		t.Errorf("level above roster should clamp to last entry")
	}
}
