package cmd

import (
	"fmt"

	"github.com/abhisek/mathmon/internal/problemgen"
	"github.com/abhisek/mathmon/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <bank.json>",
	Short: "Import a question bank file",
	Long:  "Validates a JSON question bank and replaces the stored one. The game draws from the bank instead of generating questions procedurally.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bf, err := problemgen.LoadBankFile(args[0])
		if err != nil {
			return fmt.Errorf("load bank file: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.BankRepo().Replace(cmd.Context(), bf.Pairs); err != nil {
			return fmt.Errorf("store bank: %w", err)
		}
		fmt.Printf("Imported %d question pairs.\n", len(bf.Pairs))
		return nil
	},
}
