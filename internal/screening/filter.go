package screening

import (
	"strings"

	"github.com/valuehound/screener/internal/domain"
)

// matchesFilter applies the optional predicates in a fixed order,
// short-circuiting on the first failure. The order only affects how much
// work is done per stock, not the result set.
//
// Unknown-metric rules: max-P/E and max-P/B pass stocks with an unknown
// metric; min-dividend-yield and min-market-cap fail them; max-market-cap
// passes them. The active-flag predicate is applied by the caller's scan.
func matchesFilter(s domain.Stock, f domain.StockFilter) bool {
	if f.TickerSearch != "" && !strings.Contains(s.Ticker, strings.ToUpper(strings.TrimSpace(f.TickerSearch))) {
		return false
	}

	if f.CompanySearch != "" && !strings.Contains(strings.ToLower(s.CompanyName), strings.ToLower(f.CompanySearch)) {
		return false
	}

	if f.SectorID != nil && (s.SectorID == nil || *s.SectorID != *f.SectorID) {
		return false
	}

	if f.MarketCapCategory != "" && s.MarketCapCategory != f.MarketCapCategory {
		return false
	}

	// Unknown P/E passes: an absent ratio is not evidence of overvaluation.
	if f.MaxPERatio != nil && s.PERatio != nil && s.PERatio.GreaterThan(*f.MaxPERatio) {
		return false
	}

	if f.MaxPBRatio != nil && s.PBRatio != nil && s.PBRatio.GreaterThan(*f.MaxPBRatio) {
		return false
	}

	// Unknown dividend yield fails: a minimum-yield screen must not return
	// stocks that may pay nothing.
	if f.MinDividendYield != nil && (s.DividendYield == nil || s.DividendYield.LessThan(*f.MinDividendYield)) {
		return false
	}

	if f.MinMarketCap != nil && (s.MarketCap == nil || s.MarketCap.LessThan(*f.MinMarketCap)) {
		return false
	}

	if f.MaxMarketCap != nil && s.MarketCap != nil && s.MarketCap.GreaterThan(*f.MaxMarketCap) {
		return false
	}

	return true
}
