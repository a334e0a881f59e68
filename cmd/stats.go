package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/store"
)

const recentAttemptsShown = 10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz history and per-mode accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		stats, err := st.StatsByMode(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No quiz attempts recorded yet. Run `adaptiq play` to start.")
			return nil
		}

		fmt.Println("Per-mode totals")
		fmt.Printf("  %-6s %-9s %-10s %-9s %s\n", "mode", "attempts", "completed", "answered", "accuracy")
		for _, m := range stats {
			fmt.Printf("  %-6s %-9d %-10d %-9d %.0f%%\n",
				m.Mode, m.Attempts, m.Completed, m.Answered, m.Accuracy()*100)
		}

		attempts, err := st.RecentAttempts(ctx, recentAttemptsShown)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}

		fmt.Println()
		fmt.Println("Recent attempts")
		for _, a := range attempts {
			var extras []string
			if a.CompletedAt == nil {
				extras = append(extras, "abandoned")
			}
			if a.FinalKnowledge != nil {
				extras = append(extras, fmt.Sprintf("knowledge %.0f%%", *a.FinalKnowledge*100))
			}
			suffix := ""
			if len(extras) > 0 {
				suffix = "  (" + strings.Join(extras, ", ") + ")"
			}
			fmt.Printf("  %s  %-4s %d/%d%s\n",
				a.StartedAt.Local().Format("2006-01-02 15:04"), a.Mode, a.Correct, a.Answered, suffix)
		}

		return nil
	},
}
