package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Value screener - stock screening and undervaluation scoring",
	Long: `Value screener CLI

Stores stock and sector reference data, applies configurable valuation
filters, and ranks stocks by a heuristic undervaluation score.

Examples:
  go run ./cmd/screener api
  go run ./cmd/screener seed --count 50
  go run ./cmd/screener screen
  go run ./cmd/screener stats`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
