package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/api"
	"github.com/abhisek/adaptiq/internal/app"
	"github.com/abhisek/adaptiq/internal/store"
)

// runApp opens the store, builds the service client, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg := api.DefaultConfig()
	cfg.BaseURL = resolveServerURL(cmd)
	client := api.NewClient(cfg)

	return app.Run(app.Options{
		Client: client,
		Store:  st,
	})
}
