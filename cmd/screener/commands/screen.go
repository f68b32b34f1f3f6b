package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run the undervaluation screen and print ranked results",
	Long: `Evaluate every active stock against the valuation criteria and
print the stocks with a positive score, highest score first.

Flags per stock: undervalued P/E (vs sector average), undervalued P/B
(below threshold), high dividend (at or above threshold).

Example:
  go run ./cmd/screener screen
  go run ./cmd/screener screen --in-memory --top 10`,
	RunE: runScreen,
}

var (
	screenInMemory bool
	screenTop      int
)

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().BoolVar(&screenInMemory, "in-memory", false, "run against a seeded in-memory store instead of Postgres")
	screenCmd.Flags().IntVar(&screenTop, "top", 0, "print only the top N results (0 = all)")
}

func runScreen(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := buildDeps(ctx, screenInMemory, 0)
	if err != nil {
		return err
	}
	defer d.close()

	results, err := d.engine.Screen(ctx)
	if err != nil {
		return fmt.Errorf("run screen: %w", err)
	}

	if screenTop > 0 && len(results) > screenTop {
		results = results[:screenTop]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tTICKER\tCOMPANY\tSECTOR\tP/E\tP/B\tDIV%\tFLAGS\tSCORE")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			i+1, r.Ticker, r.CompanyName, r.SectorName,
			fmtDec(r.PERatio), fmtDec(r.PBRatio), fmtDec(r.DividendYield),
			flagString(r.IsUndervaluedPE, r.IsUndervaluedPB, r.HasHighDividend),
			r.OverallScore,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d stock(s) with a positive undervaluation score\n", len(results))
	return nil
}

func fmtDec(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.StringFixed(1)
}

// flagString renders the three signals as a compact PE/PB/DIV triple.
func flagString(pe, pb, div bool) string {
	mark := func(b bool) byte {
		if b {
			return 'Y'
		}
		return '.'
	}
	return string([]byte{mark(pe), mark(pb), mark(div)})
}
