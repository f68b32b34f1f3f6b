package screening

import (
	"github.com/shopspring/decimal"

	"github.com/valuehound/screener/internal/domain"
)

// Criteria holds the valuation thresholds and signal weights used by the
// screen. The three signals are independent binary evidence toward a
// "value" classification: P/E and P/B are the primary signals, dividend
// yield a secondary, confirmatory one.
type Criteria struct {
	// MaxPBRatio: a known P/B strictly below this marks the stock
	// undervalued on book value.
	MaxPBRatio decimal.Decimal

	// MinDividendYield: a known yield at or above this marks the stock as
	// a high-dividend payer.
	MinDividendYield decimal.Decimal

	// Score weights. Defaults sum to 100.
	WeightPE       int
	WeightPB       int
	WeightDividend int
}

// DefaultCriteria returns the stock screen defaults: P/B below 1.5,
// dividend at or above 3.0%, weighted 40/40/20.
func DefaultCriteria() Criteria {
	return Criteria{
		MaxPBRatio:       decimal.NewFromFloat(1.5),
		MinDividendYield: decimal.NewFromFloat(3.0),
		WeightPE:         40,
		WeightPB:         40,
		WeightDividend:   20,
	}
}

// Evaluate computes the three valuation flags and the aggregate score for
// one stock. All three rules are checked independently; a missing input
// makes its flag false, never an error.
//
// The P/E rule is sector-relative: it needs the stock's P/E, an assigned
// sector, and that sector's average P/E. sector may be nil.
func (c Criteria) Evaluate(stock domain.Stock, sector *domain.Sector) domain.ScreenResult {
	result := domain.ScreenResult{
		StockID:       stock.ID,
		Ticker:        stock.Ticker,
		CompanyName:   stock.CompanyName,
		Industry:      stock.Industry,
		PERatio:       stock.PERatio,
		PBRatio:       stock.PBRatio,
		DividendYield: stock.DividendYield,
		MarketCap:     stock.MarketCap,
		CurrentPrice:  stock.CurrentPrice,
		LastUpdated:   stock.LastUpdated,
	}

	if sector != nil {
		result.SectorName = sector.Name
		if stock.PERatio != nil && sector.AveragePERatio != nil {
			result.IsUndervaluedPE = stock.PERatio.LessThan(*sector.AveragePERatio)
		}
	}

	if stock.PBRatio != nil {
		result.IsUndervaluedPB = stock.PBRatio.LessThan(c.MaxPBRatio)
	}

	if stock.DividendYield != nil {
		result.HasHighDividend = stock.DividendYield.GreaterThanOrEqual(c.MinDividendYield)
	}

	if result.IsUndervaluedPE {
		result.OverallScore += c.WeightPE
	}
	if result.IsUndervaluedPB {
		result.OverallScore += c.WeightPB
	}
	if result.HasHighDividend {
		result.OverallScore += c.WeightDividend
	}

	return result
}
