package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "List open positions (unmatched lots)",
	Long: `List exposure that no later execution has closed.

Open lots carry no realized P&L and are excluded from analytics; they
are what the matcher left queued after the last execution.`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	lots, err := j.ListOpenLots()
	if err != nil {
		return fmt.Errorf("list open lots: %w", err)
	}

	if len(lots) == 0 {
		fmt.Println("No open positions")
		return nil
	}

	fmt.Printf("%-10s %-6s %12s %12s  %s\n", "SYMBOL", "DIR", "QTY", "PRICE", "OPENED")
	for _, l := range lots {
		fmt.Printf("%-10s %-6s %12.4f %12.5f  %s\n",
			l.Symbol, l.Direction, l.Quantity, l.Price,
			l.OpenTime.Format(time.RFC3339))
	}
	return nil
}
