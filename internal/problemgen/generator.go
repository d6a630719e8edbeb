package problemgen

import (
	"fmt"
	"math/rand"

	"github.com/abhisek/mathmon/internal/difficulty"
)

// Generator produces one question for a grade/difficulty pair.
// The battle engine works identically whether questions are synthesized
// procedurally or drawn from an imported operand bank.
type Generator interface {
	Generate(grade, diff int) (*Question, error)
}

// Procedural draws operands uniformly from the difficulty band.
type Procedural struct {
	cfg difficulty.Config
	rng *rand.Rand
}

// NewProcedural creates a procedural generator using the given random source.
func NewProcedural(cfg difficulty.Config, rng *rand.Rand) *Procedural {
	return &Procedural{cfg: cfg, rng: rng}
}

// Generate builds an addition question scaled to the grade/difficulty band.
func (g *Procedural) Generate(grade, diff int) (*Question, error) {
	band := difficulty.RangeFor(grade, diff, g.cfg)
	a := band.Min + g.rng.Intn(band.Span()+1)
	b := band.Min + g.rng.Intn(band.Span()+1)
	return newQuestion(a, b, g.rng), nil
}

// newQuestion assembles the prompt and choice set for an operand pair.
func newQuestion(a, b int, rng *rand.Rand) *Question {
	correct := a + b
	return &Question{
		Prompt:  fmt.Sprintf("%d + %d = ?", a, b),
		Correct: correct,
		Choices: synthesizeChoices(correct, rng),
	}
}
