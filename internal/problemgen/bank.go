package problemgen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/abhisek/mathmon/internal/difficulty"
)

// Pair is a precomputed operand pair from an imported question bank.
type Pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Bank holds operand pairs bucketed by grade and difficulty.
type Bank struct {
	buckets map[int]map[int][]Pair
}

// NewBank creates an empty bank.
func NewBank() *Bank {
	return &Bank{buckets: make(map[int]map[int][]Pair)}
}

// Add appends a pair to the (grade, difficulty) bucket.
func (b *Bank) Add(grade, diff int, p Pair) {
	if b.buckets[grade] == nil {
		b.buckets[grade] = make(map[int][]Pair)
	}
	b.buckets[grade][diff] = append(b.buckets[grade][diff], p)
}

// Len returns the total number of pairs across all buckets.
func (b *Bank) Len() int {
	n := 0
	for _, byDiff := range b.buckets {
		for _, pairs := range byDiff {
			n += len(pairs)
		}
	}
	return n
}

// ErrEmptyQuestionPool indicates no usable bucket exists for a grade.
type ErrEmptyQuestionPool struct {
	Grade      int
	Difficulty int
}

func (e *ErrEmptyQuestionPool) Error() string {
	return fmt.Sprintf("no questions banked for grade %d difficulty %d", e.Grade, e.Difficulty)
}

// bucketFor resolves the pairs to draw from. An empty bucket falls back to
// the next-lower non-empty difficulty; if nothing lower exists, the lowest
// banked bucket for the grade is used.
func (b *Bank) bucketFor(grade, diff int) ([]Pair, error) {
	byDiff := b.buckets[grade]
	if len(byDiff) == 0 {
		return nil, &ErrEmptyQuestionPool{Grade: grade, Difficulty: diff}
	}

	for d := diff; d >= 1; d-- {
		if pairs := byDiff[d]; len(pairs) > 0 {
			return pairs, nil
		}
	}

	// Nothing at or below the requested difficulty; take the lowest bucket.
	levels := make([]int, 0, len(byDiff))
	for d, pairs := range byDiff {
		if len(pairs) > 0 {
			levels = append(levels, d)
		}
	}
	if len(levels) == 0 {
		return nil, &ErrEmptyQuestionPool{Grade: grade, Difficulty: diff}
	}
	sort.Ints(levels)
	return byDiff[levels[0]], nil
}

// BankGenerator draws operand pairs from an imported bank and synthesizes
// distractors around their sum, exactly like the procedural path.
type BankGenerator struct {
	bank *Bank
	cfg  difficulty.Config
	rng  *rand.Rand
}

// NewBankGenerator creates a bank-backed generator.
func NewBankGenerator(bank *Bank, cfg difficulty.Config, rng *rand.Rand) *BankGenerator {
	return &BankGenerator{bank: bank, cfg: cfg, rng: rng}
}

// Generate draws a pair from the resolved bucket for (grade, diff).
func (g *BankGenerator) Generate(grade, diff int) (*Question, error) {
	grade = difficulty.ClampGrade(grade)
	diff = difficulty.ClampDifficulty(diff, g.cfg.MaxDifficulty)

	pairs, err := g.bank.bucketFor(grade, diff)
	if err != nil {
		return nil, err
	}

	p := pairs[g.rng.Intn(len(pairs))]
	return newQuestion(p.A, p.B, g.rng), nil
}
