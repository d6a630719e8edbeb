package difficulty

import "time"

// Config controls the adaptive difficulty behavior.
//
// The ceiling and speed threshold varied across earlier builds of the game
// (ceiling 5 vs 10, threshold 3s vs 6s), so both are configuration rather
// than constants baked into the controller.
type Config struct {
	// MaxDifficulty is the inclusive upper bound for the difficulty scale.
	MaxDifficulty int

	// StreakThreshold is the number of consecutive correct answers needed
	// before a speed-qualified raise is considered.
	StreakThreshold int

	// SpeedThreshold is the maximum response time for an answer to count
	// toward a difficulty raise.
	SpeedThreshold time.Duration

	// MinSpan is the smallest operand range span at any difficulty, so the
	// easiest band is never degenerate.
	MinSpan int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		MaxDifficulty:   10,
		StreakThreshold: 3,
		SpeedThreshold:  6 * time.Second,
		MinSpan:         5,
	}
}
