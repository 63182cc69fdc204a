package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/match"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Re-run matching over all stored executions",
	Long: `Rebuild the round-trip trade set from scratch.

The matcher always recomputes from the full execution list; there is no
incremental patching, which keeps the trade set consistent after any
edit or delete. Stored tags and notes on trades are reset.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

func runRebuild(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	trades, open, err := rebuild(j)
	if err != nil {
		return err
	}

	fmt.Printf("Rebuilt %d trades, %d open lots\n", trades, open)
	return nil
}

// rebuild re-derives trades and open lots from the stored executions
// and replaces the persisted results. Returns the new counts.
func rebuild(j *journal.SQLite) (int, int, error) {
	start := time.Now()

	execs, err := j.ListExecutions()
	if err != nil {
		return 0, 0, fmt.Errorf("list executions: %w", err)
	}

	res := match.Match(execs)

	if err := j.ReplaceResults(res.Trades, res.OpenLots); err != nil {
		return 0, 0, fmt.Errorf("replace results: %w", err)
	}

	log.Debug("rebuild",
		zap.Int("executions", len(execs)),
		zap.Int("trades", len(res.Trades)),
		zap.Int("open_lots", len(res.OpenLots)),
		zap.Duration("took", time.Since(start)),
	)

	return len(res.Trades), len(res.OpenLots), nil
}
