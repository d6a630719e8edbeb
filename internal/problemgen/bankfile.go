package problemgen

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// BankFile is the on-disk format for an imported question bank.
type BankFile struct {
	Version int        `json:"version"`
	Pairs   []BankPair `json:"pairs"`
}

// BankPair is one bucketed operand pair in a bank file.
type BankPair struct {
	Grade      int `json:"grade"`
	Difficulty int `json:"difficulty"`
	A          int `json:"a"`
	B          int `json:"b"`
}

// LoadBankFile reads and validates a bank file. Schema violations are
// reported before decoding so authoring mistakes fail with a precise error
// instead of silently producing empty buckets.
func LoadBankFile(path string) (*BankFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}

	if err := validateBankJSON(raw); err != nil {
		return nil, err
	}

	var bf BankFile
	if err := json.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("decode bank file: %w", err)
	}
	return &bf, nil
}

// Bank converts the file contents into a lookup-ready Bank.
func (bf *BankFile) Bank() *Bank {
	b := NewBank()
	for _, p := range bf.Pairs {
		b.Add(p.Grade, p.Difficulty, Pair{A: p.A, B: p.B})
	}
	return b
}

// validateBankJSON checks raw bytes against BankSchema.
func validateBankJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledBankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("bank file failed schema validation: %w", err)
	}
	return nil
}

// compiledBankSchema compiles BankSchema once per call site need.
// The jsonschema library expects a parsed JSON value, not raw bytes, so the
// definition is round-tripped through encoding/json first.
func compiledBankSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(BankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://question-bank.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
