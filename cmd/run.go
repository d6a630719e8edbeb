package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/abhisek/mathmon/internal/app"
	"github.com/abhisek/mathmon/internal/difficulty"
	"github.com/abhisek/mathmon/internal/problemgen"
	"github.com/abhisek/mathmon/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg := difficulty.DefaultConfig()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Prefer an imported question bank when one is present; otherwise
	// generate questions procedurally.
	var gen problemgen.Generator = problemgen.NewProcedural(cfg, rng)
	if n, err := st.BankRepo().Count(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not read question bank:", err)
	} else if n > 0 {
		bank, err := st.BankRepo().Load(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: could not load question bank:", err)
		} else {
			gen = problemgen.NewBankGenerator(bank, cfg, rng)
		}
	}

	return app.Run(app.Options{
		Profiles:  st.ProfileRepo(),
		Generator: gen,
		Config:    cfg,
	})
}
