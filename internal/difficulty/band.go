package difficulty

import "math"

// Band is an inclusive operand range for question generation.
type Band struct {
	Min int
	Max int
}

// Span returns the width of the band.
func (b Band) Span() int {
	return b.Max - b.Min
}

// Supported grades and their base operand bands. The full band is reached
// only at max difficulty; lower difficulties use a scaled-down slice of it.
var gradeBands = map[int]Band{
	2: {Min: 0, Max: 20},
	3: {Min: 0, Max: 50},
}

// DefaultGrade is used when a grade is missing or unsupported.
const DefaultGrade = 2

// ClampGrade snaps a grade to the nearest supported grade.
func ClampGrade(grade int) int {
	if _, ok := gradeBands[grade]; ok {
		return grade
	}
	if grade < 2 {
		return 2
	}
	return 3
}

// ClampDifficulty snaps a difficulty into [1, max].
func ClampDifficulty(d, max int) int {
	if d < 1 {
		return 1
	}
	if d > max {
		return max
	}
	return d
}

// RangeFor maps a (grade, difficulty) pair to an operand band.
// Inputs clamp silently; this never fails.
func RangeFor(grade, difficulty int, cfg Config) Band {
	base := gradeBands[ClampGrade(grade)]
	difficulty = ClampDifficulty(difficulty, cfg.MaxDifficulty)

	ratio := float64(difficulty) / float64(cfg.MaxDifficulty)
	span := int(math.Round(float64(base.Span()) * ratio))
	if span < cfg.MinSpan {
		span = cfg.MinSpan
	}

	return Band{Min: base.Min, Max: base.Min + span}
}
