package difficulty

import "time"

// Controller tracks the correct-answer streak and raises difficulty when the
// player is both accurate and fast. It never lowers difficulty; the loss
// penalty on a battle defeat is applied by the progression layer instead.
type Controller struct {
	cfg Config

	// Difficulty is the current difficulty, always in [1, cfg.MaxDifficulty].
	Difficulty int

	// Streak is the count of consecutive correct answers since the last
	// wrong answer or difficulty raise.
	Streak int
}

// NewController creates a controller starting at the given difficulty,
// clamped into range.
func NewController(cfg Config, current int) *Controller {
	return &Controller{
		cfg:        cfg,
		Difficulty: ClampDifficulty(current, cfg.MaxDifficulty),
	}
}

// OnAnswer records one answered question.
//
// A wrong answer resets the streak. A correct answer extends it, and once the
// streak reaches the threshold with the answer under the speed threshold the
// difficulty goes up one step. The streak resets on a raise even when the
// difficulty is already at the ceiling, so the player is not re-evaluated on
// every subsequent answer.
func (c *Controller) OnAnswer(correct bool, elapsed time.Duration) {
	if !correct {
		c.Streak = 0
		return
	}

	c.Streak++
	if c.Streak >= c.cfg.StreakThreshold && elapsed < c.cfg.SpeedThreshold {
		c.Difficulty = ClampDifficulty(c.Difficulty+1, c.cfg.MaxDifficulty)
		c.Streak = 0
	}
}
