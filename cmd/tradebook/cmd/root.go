package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/internal/logger"
	"github.com/rustyeddy/tradebook/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A personal trading journal with execution matching and analytics",
	Long: `Tradebook turns raw brokerage executions into closed round-trip
trades and the statistics behind them.

It provides tools for:
  - Importing broker execution exports (CSV, gzip/xz compressed)
  - FIFO matching of partial fills into round-trip trades
  - Win rate, profit factor, drawdown, streak and score analytics
  - Daily P&L and score series for the journal
  - Org-mode trade summaries for daily review`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgPath string
	dbPath  string

	cfg *config.Config
	log *zap.Logger
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default is ./tradebook.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite journal DB (overrides config)")
}

func initConfig() {
	if cfgPath == "" {
		if _, err := os.Stat("./tradebook.yaml"); err == nil {
			cfgPath = "./tradebook.yaml"
		}
	}

	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if dbPath != "" {
		cfg.Journal.DBPath = dbPath
	}

	l, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	log = l
}

func openJournal() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db %s: %w", cfg.Journal.DBPath, err)
	}
	return j, nil
}
