package domain

import "github.com/shopspring/decimal"

// Market cap breakpoints in currency units, evaluated top-down.
var (
	largeCapMin = decimal.New(10_000_000_000, 0)
	midCapMin   = decimal.New(2_000_000_000, 0)
	smallCapMin = decimal.New(300_000_000, 0)
)

// CategorizeMarketCap maps a market capitalization to its category.
// First matching breakpoint wins; an unknown market cap has no category.
//
//	>= 10B  -> Large Cap
//	>= 2B   -> Mid Cap
//	>= 300M -> Small Cap
//	< 300M  -> Micro Cap
func CategorizeMarketCap(marketCap *decimal.Decimal) MarketCapCategory {
	if marketCap == nil {
		return ""
	}
	switch {
	case marketCap.GreaterThanOrEqual(largeCapMin):
		return LargeCap
	case marketCap.GreaterThanOrEqual(midCapMin):
		return MidCap
	case marketCap.GreaterThanOrEqual(smallCapMin):
		return SmallCap
	default:
		return MicroCap
	}
}
