package progression

import (
	"encoding/json"
	"math"
	"time"
)

// SchemaVersion is the current canonical save format. Earlier builds of the
// game wrote three incompatible shapes into local storage:
//
//	v1: a flat profile object with ad-hoc fields
//	v2: {"progress": {"experience": {...}}} with settings alongside
//	v3-era prototype: {"skillState": {...}, "player": {"xp": ...}}
//
// Migrate folds any mix of those into one canonical Profile.
const SchemaVersion = 3

// xpPaths are the experience-like locations observed across legacy shapes,
// in priority order. Migration takes the MAXIMUM across all blobs and paths:
// each legacy source stored a cumulative total, so summing would double-count
// the same progress.
var xpPaths = [][]string{
	{"xp"},
	{"experience"},
	{"player", "xp"},
	{"player", "experience"},
	{"progress", "experience", "points"},
	{"progress", "experience", "xp"},
}

// intFieldRule resolves an integer field first-present-wins over an ordered
// path list, then clamps it.
type intFieldRule struct {
	paths [][]string
	def   int
	clamp func(int) int
}

var gradeRule = intFieldRule{
	paths: [][]string{
		{"playerGrade"},
		{"grade"},
		{"player", "grade"},
		{"progress", "experience", "grade"},
	},
	def:   DefaultGrade,
	clamp: clampGrade,
}

var difficultyRule = intFieldRule{
	paths: [][]string{
		{"difficulty"},
		{"skillState", "difficulty"},
		{"player", "difficulty"},
		{"progress", "difficulty"},
	},
	def: 1,
	clamp: func(d int) int {
		if d < 1 {
			return 1
		}
		return d
	},
}

// heroPaths resolve the hero/creature identity, first-present-wins.
var heroPaths = [][]string{
	{"heroType"},
	{"creatureId"},
	{"player", "creatureId"},
	{"hero"},
}

// namePaths resolve the player name, first-present-wins.
var namePaths = [][]string{
	{"playerName"},
	{"name"},
	{"player", "name"},
}

// DefaultPlayerName is used when no legacy source carries a name.
const DefaultPlayerName = "Player"

// Migrate produces one canonical Profile from zero or more raw storage blobs.
// It is safe on empty or garbage input (every field falls back to its
// default) and pure apart from stamping CreatedAt with now.
//
// A blob already at the current SchemaVersion wins outright. Otherwise XP is
// the maximum across sources and the remaining fields resolve
// first-present-wins over their path lists, path priority first.
func Migrate(blobs [][]byte, now time.Time) *Profile {
	decoded := make([]map[string]any, 0, len(blobs))
	raws := make([][]byte, 0, len(blobs))
	for _, raw := range blobs {
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil || m == nil {
			continue // parse errors are treated as absent
		}
		decoded = append(decoded, m)
		raws = append(raws, raw)
	}

	// Prefer an already-canonical blob when one is present and valid.
	for i, m := range decoded {
		v, ok := lookupNumber(m, []string{"schemaVersion"})
		if !ok || int(v) != SchemaVersion {
			continue
		}
		var p Profile
		if err := json.Unmarshal(raws[i], &p); err != nil {
			continue
		}
		if p.Validate() != nil {
			continue
		}
		if err := ApplyLevelDerivedStats(&p); err != nil {
			continue
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		return &p
	}

	p := &Profile{
		SchemaVersion: SchemaVersion,
		PlayerName:    resolveString(decoded, namePaths, DefaultPlayerName),
		PlayerGrade:   resolveInt(decoded, gradeRule),
		HeroType:      resolveHero(decoded),
		XP:            maxXP(decoded),
		Difficulty:    resolveInt(decoded, difficultyRule),
		CreatedAt:     now,
	}
	// The hero type is clamped to a known line, so this cannot fail.
	_ = ApplyLevelDerivedStats(p)
	return p
}

// maxXP scans every xp-like path in every blob and keeps the largest finite
// value, floored at zero.
func maxXP(decoded []map[string]any) int {
	best := 0.0
	for _, path := range xpPaths {
		for _, m := range decoded {
			if v, ok := lookupNumber(m, path); ok && v > best {
				best = v
			}
		}
	}
	return int(best)
}

func resolveInt(decoded []map[string]any, rule intFieldRule) int {
	for _, path := range rule.paths {
		for _, m := range decoded {
			if v, ok := lookupNumber(m, path); ok {
				return rule.clamp(int(v))
			}
		}
	}
	return rule.def
}

func resolveString(decoded []map[string]any, paths [][]string, def string) string {
	for _, path := range paths {
		for _, m := range decoded {
			if s, ok := lookupString(m, path); ok {
				return s
			}
		}
	}
	return def
}

func resolveHero(decoded []map[string]any) HeroType {
	for _, path := range heroPaths {
		for _, m := range decoded {
			if s, ok := lookupString(m, path); ok && KnownHeroType(HeroType(s)) {
				return HeroType(s)
			}
		}
	}
	return HeroBlue
}

// lookup walks a dotted path through nested JSON objects.
func lookup(m map[string]any, path []string) (any, bool) {
	var cur any = m
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// lookupNumber resolves a path to a finite number.
func lookupNumber(m map[string]any, path []string) (float64, bool) {
	v, ok := lookup(m, path)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// lookupString resolves a path to a non-empty string.
func lookupString(m map[string]any, path []string) (string, bool) {
	v, ok := lookup(m, path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
