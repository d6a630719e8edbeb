package problemgen

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/mathmon/internal/difficulty"
)

func TestBankGeneratorDrawsFromBucket(t *testing.T) {
	bank := NewBank()
	bank.Add(2, 3, Pair{A: 6, B: 9})

	g := NewBankGenerator(bank, difficulty.DefaultConfig(), rand.New(rand.NewSource(1)))
	q, err := g.Generate(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if q.Prompt != "6 + 9 = ?" {
		t.Errorf("Prompt = %q, want %q", q.Prompt, "6 + 9 = ?")
	}
	if q.Correct != 15 {
		t.Errorf("Correct = %d, want 15", q.Correct)
	}
	checkQuestion(t, q)
}

func TestBankGeneratorFallsBackToLowerBucket(t *testing.T) {
	bank := NewBank()
	bank.Add(2, 2, Pair{A: 1, B: 1})

	g := NewBankGenerator(bank, difficulty.DefaultConfig(), rand.New(rand.NewSource(1)))

	// Difficulty 5 is empty; 2 is the nearest lower non-empty bucket.
	q, err := g.Generate(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if q.Correct != 2 {
		t.Errorf("Correct = %d, want 2 (drawn from difficulty-2 bucket)", q.Correct)
	}
}

func TestBankGeneratorFallsBackToLowestBucket(t *testing.T) {
	bank := NewBank()
	bank.Add(2, 7, Pair{A: 10, B: 10})
	bank.Add(2, 9, Pair{A: 20, B: 20})

	g := NewBankGenerator(bank, difficulty.DefaultConfig(), rand.New(rand.NewSource(1)))

	// Nothing at or below difficulty 3: the lowest banked bucket (7) serves.
	q, err := g.Generate(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if q.Correct != 20 {
		t.Errorf("Correct = %d, want 20 (drawn from lowest bucket, difficulty 7)", q.Correct)
	}
}

func TestBankGeneratorEmptyPool(t *testing.T) {
	g := NewBankGenerator(NewBank(), difficulty.DefaultConfig(), rand.New(rand.NewSource(1)))

	_, err := g.Generate(2, 1)
	if err == nil {
		t.Fatal("expected ErrEmptyQuestionPool, got nil")
	}
	if _, ok := err.(*ErrEmptyQuestionPool); !ok {
		t.Fatalf("error type = %T, want *ErrEmptyQuestionPool", err)
	}
}

func TestLoadBankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	content := `{"version":1,"pairs":[{"grade":2,"difficulty":1,"a":3,"b":4},{"grade":3,"difficulty":2,"a":11,"b":12}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	bf, err := LoadBankFile(path)
	if err != nil {
		t.Fatalf("LoadBankFile: %v", err)
	}
	if len(bf.Pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(bf.Pairs))
	}

	bank := bf.Bank()
	if bank.Len() != 2 {
		t.Errorf("bank.Len() = %d, want 2", bank.Len())
	}
}

func TestLoadBankFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{{{`},
		{"missing version", `{"pairs":[]}`},
		{"grade out of range", `{"version":1,"pairs":[{"grade":9,"difficulty":1,"a":1,"b":1}]}`},
		{"negative operand", `{"version":1,"pairs":[{"grade":2,"difficulty":1,"a":-1,"b":1}]}`},
		{"extra field", `{"version":1,"pairs":[],"extra":true}`},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "bank.json")
		if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadBankFile(path); err == nil {
			t.Errorf("%s: expected validation error, got nil", tt.name)
		}
	}
}
