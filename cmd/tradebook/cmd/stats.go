package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/analytics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute performance statistics over the matched trades",
	Long: `Compute the analytics snapshot: win rate, profit factor,
day-win percentage, streaks, drawdown, recovery factor and the
composite score, plus daily P&L.

Filters narrow the working set before anything is computed; combining
filters is a logical AND.

Examples:
  tradebook stats
  tradebook stats --from 2024-01-01 --to 2024-03-31
  tradebook stats --tag earnings --result loss`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsFrom   string
	statsTo     string
	statsTags   []string
	statsResult string
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsFrom, "from", "", "start date YYYY-MM-DD (inclusive)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "end date YYYY-MM-DD (inclusive)")
	statsCmd.Flags().StringSliceVar(&statsTags, "tag", nil, "only trades carrying one of these tags")
	statsCmd.Flags().StringVar(&statsResult, "result", "all", "win, loss, breakeven or all")
}

func runStats(cmd *cobra.Command, args []string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	criteria, err := buildCriteria(loc)
	if err != nil {
		return err
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	filtered := analytics.Filter(trades, criteria)
	snapshot := analytics.Compute(filtered, loc)

	analytics.PrintSnapshot(os.Stdout, snapshot)
	return nil
}

func buildCriteria(loc *time.Location) (analytics.Criteria, error) {
	c := analytics.Criteria{Tags: statsTags, Result: statsResult}

	if statsFrom != "" {
		t, err := time.ParseInLocation("2006-01-02", statsFrom, loc)
		if err != nil {
			return c, fmt.Errorf("bad --from: %w", err)
		}
		c.From = t
	}
	if statsTo != "" {
		t, err := time.ParseInLocation("2006-01-02", statsTo, loc)
		if err != nil {
			return c, fmt.Errorf("bad --to: %w", err)
		}
		// Inclusive through the end of the day.
		c.To = t.Add(24*time.Hour - time.Nanosecond)
	}

	switch c.Result {
	case analytics.ResultAll, analytics.ResultWin, analytics.ResultLoss, analytics.ResultBreakeven:
	default:
		return c, fmt.Errorf("bad --result %q", c.Result)
	}

	return c, nil
}
