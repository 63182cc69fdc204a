package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List and export round-trip trades",
	Long: `Query matched trades from the journal.

Subcommands:
  show   - Show a specific trade by ID
  today  - List trades closed today
  day    - List trades closed on a specific day
  export - Write all trades to a CSV file

Examples:
  tradebook trades show 01J3QZ...
  tradebook trades today
  tradebook trades day 2024-01-15
  tradebook trades export -o trades.csv`,
}

var tradesShowCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show a specific trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradesShow,
}

var tradesTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List trades closed today",
	Args:  cobra.NoArgs,
	RunE:  runTradesToday,
}

var tradesDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades closed on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradesDay,
}

var tradesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all trades to a CSV file",
	Args:  cobra.NoArgs,
	RunE:  runTradesExport,
}

var tradesExportOutput string

func init() {
	rootCmd.AddCommand(tradesCmd)
	tradesCmd.AddCommand(tradesShowCmd)
	tradesCmd.AddCommand(tradesTodayCmd)
	tradesCmd.AddCommand(tradesDayCmd)
	tradesCmd.AddCommand(tradesExportCmd)

	tradesExportCmd.Flags().StringVarP(&tradesExportOutput, "output", "o", "", "output CSV path (default from config)")
}

func runTradesShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Println(journal.FormatTradeOrg(rec))
	return nil
}

func runTradesToday(cmd *cobra.Command, args []string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	return listDay(time.Now().In(loc).Format("2006-01-02"))
}

func runTradesDay(cmd *cobra.Command, args []string) error {
	return listDay(args[0])
}

func listDay(day string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	start, end, err := dayBounds(loc, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListTradesClosedBetween(start, end)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	fmt.Println(journal.FormatTradesOrg(recs))
	return nil
}

func runTradesExport(cmd *cobra.Command, args []string) error {
	out := tradesExportOutput
	if out == "" {
		out = cfg.Journal.TradesFile
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

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := journal.WriteTradesCSV(f, trades); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	fmt.Printf("Wrote %d trades to %s\n", len(trades), out)
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
