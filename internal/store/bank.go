package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhisek/mathmon/internal/problemgen"
)

// BankRepo manages the imported question bank.
type BankRepo interface {
	// Replace swaps the entire bank for the given pairs atomically.
	Replace(ctx context.Context, pairs []problemgen.BankPair) error

	// Load reads all banked pairs into a lookup-ready Bank.
	Load(ctx context.Context) (*problemgen.Bank, error)

	// Count returns the number of banked pairs.
	Count(ctx context.Context) (int, error)
}

type bankRepo struct {
	db *sql.DB
}

func (r *bankRepo) Replace(ctx context.Context, pairs []problemgen.BankPair) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bank replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bank_pairs`); err != nil {
		return fmt.Errorf("clear bank: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO bank_pairs (grade, difficulty, a, b) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare bank insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pairs {
		if _, err := stmt.ExecContext(ctx, p.Grade, p.Difficulty, p.A, p.B); err != nil {
			return fmt.Errorf("insert bank pair: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bank replace: %w", err)
	}
	return nil
}

func (r *bankRepo) Load(ctx context.Context) (*problemgen.Bank, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT grade, difficulty, a, b FROM bank_pairs`)
	if err != nil {
		return nil, fmt.Errorf("query bank: %w", err)
	}
	defer rows.Close()

	bank := problemgen.NewBank()
	for rows.Next() {
		var grade, diff, a, b int
		if err := rows.Scan(&grade, &diff, &a, &b); err != nil {
			return nil, fmt.Errorf("scan bank pair: %w", err)
		}
		bank.Add(grade, diff, problemgen.Pair{A: a, B: b})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank: %w", err)
	}
	return bank, nil
}

func (r *bankRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bank_pairs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bank: %w", err)
	}
	return n, nil
}
