package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference sectors and example stocks into the database",
	Long: `Populate the database with the ten reference sectors and a set of
example stocks. Seeding is idempotent: existing sectors and tickers are
skipped.

Example:
  go run ./cmd/screener seed
  go run ./cmd/screener seed --count 30`,
	RunE: runSeed,
}

var seedStockCount int

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&seedStockCount, "count", 50, "number of example stocks to create")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := buildDeps(ctx, false, 0)
	if err != nil {
		return err
	}
	defer d.close()

	if err := d.seeder.Run(ctx, seedStockCount); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}

	fmt.Println("Seed data loaded")
	return nil
}
