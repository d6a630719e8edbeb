package progression

import "time"

const (
	// XPPerLevel is the XP cost of each level boundary.
	XPPerLevel = 10

	// MaxLevel caps the hero level at the top of the progression table.
	MaxLevel = 10

	// DefaultGrade is used for profiles with no resolvable grade.
	DefaultGrade = 2
)

// Profile is the durable per-player save data. Level and the hero stat block
// are derived from XP and never authoritative on their own: every load
// re-derives them through ApplyLevelDerivedStats.
type Profile struct {
	SchemaVersion int       `json:"schemaVersion"`
	PlayerName    string    `json:"playerName"`
	PlayerGrade   int       `json:"playerGrade"`
	HeroType      HeroType  `json:"heroType"`
	XP            int       `json:"xp"`
	Level         int       `json:"level"`
	Difficulty    int       `json:"difficulty"`
	HeroName      string    `json:"heroName"`
	HeroSprite    string    `json:"heroSprite"`
	AttackSprite  string    `json:"attackSprite"`
	Attack        int       `json:"attack"`
	Health        int       `json:"health"`
	Damage        int       `json:"damage"`
	CreatedAt     time.Time `json:"createdAt"`
}

// LevelForXP computes the level for a cumulative XP total,
// clamped to [1, MaxLevel].
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	level := xp/XPPerLevel + 1
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}

// NewProfile creates a fresh profile for a new player. The grade snaps to a
// supported value and the hero line falls back to blue if unknown.
func NewProfile(name string, grade int, hero HeroType, now time.Time) *Profile {
	if !KnownHeroType(hero) {
		hero = HeroBlue
	}
	p := &Profile{
		SchemaVersion: SchemaVersion,
		PlayerName:    name,
		PlayerGrade:   clampGrade(grade),
		HeroType:      hero,
		XP:            0,
		Difficulty:    1,
		CreatedAt:     now,
	}
	// Table lookup cannot fail for a known hero at level 1.
	_ = ApplyLevelDerivedStats(p)
	return p
}

// Validate checks that a profile is structurally sound before persisting.
func (p *Profile) Validate() error {
	if p == nil {
		return &ErrInvalidProfile{Field: "profile", Reason: "is nil"}
	}
	if p.PlayerName == "" {
		return &ErrInvalidProfile{Field: "playerName", Reason: "is empty"}
	}
	if p.PlayerGrade != 2 && p.PlayerGrade != 3 {
		return &ErrInvalidProfile{Field: "playerGrade", Reason: "must be 2 or 3"}
	}
	if !KnownHeroType(p.HeroType) {
		return &ErrInvalidProfile{Field: "heroType", Reason: "is not a known hero"}
	}
	if p.XP < 0 {
		return &ErrInvalidProfile{Field: "xp", Reason: "must be >= 0"}
	}
	if p.Difficulty < 1 {
		return &ErrInvalidProfile{Field: "difficulty", Reason: "must be >= 1"}
	}
	return nil
}

// ApplyLevelDerivedStats recomputes the level from XP and overwrites the
// derived hero fields from the progression table. Battle-scoped damage is
// reset. Idempotent: applying twice yields identical output.
func ApplyLevelDerivedStats(p *Profile) error {
	level := LevelForXP(p.XP)
	stats, err := StatsFor(p.HeroType, level)
	if err != nil {
		return err
	}

	p.Level = level
	p.HeroName = stats.HeroName
	p.HeroSprite = stats.HeroSprite
	p.AttackSprite = stats.AttackSprite
	p.Attack = stats.Attack
	p.Health = stats.Health
	p.Damage = 0
	return nil
}

// ApplyWin records a battle victory: one XP gained, derived stats refreshed.
// Returns true when the new XP total crossed a level boundary, so the caller
// can surface the evolution moment.
func ApplyWin(p *Profile) (leveledUp bool, err error) {
	oldLevel := LevelForXP(p.XP)
	newLevel := LevelForXP(p.XP + 1)

	// Look up the table before mutating so a table bug leaves the profile
	// untouched.
	if _, err := StatsFor(p.HeroType, newLevel); err != nil {
		return false, err
	}

	p.XP++
	_ = ApplyLevelDerivedStats(p)
	return newLevel > oldLevel, nil
}

// ApplyLoss records a battle defeat: one XP lost (floored at zero) and one
// difficulty step lost (floored at one).
func ApplyLoss(p *Profile) error {
	newXP := p.XP - 1
	if newXP < 0 {
		newXP = 0
	}

	if _, err := StatsFor(p.HeroType, LevelForXP(newXP)); err != nil {
		return err
	}

	p.XP = newXP
	if p.Difficulty > 1 {
		p.Difficulty--
	}
	return ApplyLevelDerivedStats(p)
}

func clampGrade(grade int) int {
	if grade < 2 {
		return 2
	}
	if grade > 3 {
		return 3
	}
	return grade
}
