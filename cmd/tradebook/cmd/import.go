package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradebook/execution"
	"github.com/rustyeddy/tradebook/journal"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import broker executions from a CSV export",
	Long: `Import executions from a broker CSV export into the journal.

The file needs Symbol, Side, Filled (quantity), Price and Filled Time
columns; Commission and Fees are optional. Common header aliases are
recognized, and .gz/.xz compressed exports are read directly.

Rejected rows are reported and skipped; a bad row never aborts the
import. Matching is re-run over the full execution set afterwards.

Example:
  tradebook import webull-2024.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	raws, err := journal.ReadExecutionsCSV(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	execs, rejected := execution.NormalizeAll(raws)
	for _, ve := range rejected {
		log.Warn("rejected row",
			zap.Int("row", ve.Row),
			zap.String("reason", ve.Reason),
			zap.String("value", ve.Value),
		)
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	for _, ex := range execs {
		if err := j.RecordExecution(ex); err != nil {
			return fmt.Errorf("record execution: %w", err)
		}
	}

	trades, open, err := rebuild(j)
	if err != nil {
		return err
	}

	log.Info("import complete",
		zap.String("file", path),
		zap.Int("imported", len(execs)),
		zap.Int("rejected", len(rejected)),
		zap.Int("trades", trades),
		zap.Int("open_lots", open),
	)

	fmt.Printf("Imported %d executions (%d rejected), %d trades, %d open lots\n",
		len(execs), len(rejected), trades, open)
	return nil
}
