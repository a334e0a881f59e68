package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/api"
	"github.com/abhisek/adaptiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "adaptiq",
	Short: "Adaptive quiz in your terminal",
	Long:  "Adaptiq — terminal client for the adaptive quiz service, with BKT and LLM tutoring modes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Quiz service URL (overrides ADAPTIQ_SERVER env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADAPTIQ_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveServerURL returns the quiz service URL using --server (highest
// priority), then the ADAPTIQ_SERVER env var, then the default local address.
func resolveServerURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("server"); u != "" {
		return u
	}
	if u := os.Getenv("ADAPTIQ_SERVER"); u != "" {
		return u
	}
	return api.DefaultConfig().BaseURL
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ADAPTIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
