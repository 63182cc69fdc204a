package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or inspect configuration files",
	Long: `Manage tradebook configuration files.

Subcommands:
  init - Generate a default configuration file
  show - Print the effective configuration

Examples:
  tradebook config init -o tradebook.yaml
  tradebook config show`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var configInitOutput string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "tradebook.yaml", "output config file path")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	c := config.Default()
	if err := c.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("Created default configuration: %s\n", configInitOutput)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	fmt.Printf("Journal DB:     %s\n", cfg.Journal.DBPath)
	fmt.Printf("Trades export:  %s\n", cfg.Journal.TradesFile)
	fmt.Printf("Timezone:       %s\n", cfg.Analytics.Timezone)
	fmt.Printf("Log level:      %s\n", cfg.Logging.Level)
	fmt.Printf("Log format:     %s\n", cfg.Logging.Format)
	return nil
}
