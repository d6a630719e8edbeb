package progression

import "fmt"

// ErrInvalidProfile indicates a profile failed validation on save or load.
type ErrInvalidProfile struct {
	Field  string
	Reason string
}

func (e *ErrInvalidProfile) Error() string {
	return fmt.Sprintf("invalid profile: field %q %s", e.Field, e.Reason)
}

// ErrInvalidProgressionTable indicates a hero type/level combination has no
// table entry. This is a data bug, not a runtime condition: callers must fail
// rather than silently substitute a different hero.
type ErrInvalidProgressionTable struct {
	HeroType HeroType
	Level    int
}

func (e *ErrInvalidProgressionTable) Error() string {
	return fmt.Sprintf("no progression table entry for hero %q level %d", e.HeroType, e.Level)
}
