package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print metric coverage statistics for active stocks",
	RunE:  runStats,
}

var statsInMemory bool

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsInMemory, "in-memory", false, "run against a seeded in-memory store instead of Postgres")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := buildDeps(ctx, statsInMemory, 0)
	if err != nil {
		return err
	}
	defer d.close()

	stats, err := d.engine.Statistics(ctx)
	if err != nil {
		return fmt.Errorf("compute statistics: %w", err)
	}

	fmt.Printf("Active stocks:       %d\n", stats.TotalActive)
	fmt.Printf("With P/E ratio:      %d\n", stats.WithPERatio)
	fmt.Printf("With P/B ratio:      %d\n", stats.WithPBRatio)
	fmt.Printf("With dividend yield: %d\n", stats.WithDividendYield)
	return nil
}
