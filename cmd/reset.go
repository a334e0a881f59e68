package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes all recorded attempts. Re-run with --force to confirm.")
			return nil
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

		if err := st.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset store: %w", err)
		}
		fmt.Println("Quiz history cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip confirmation")
}
