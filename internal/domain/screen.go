package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScreenResult is a read-only projection of a stock's valuation at
// evaluation time. Results are recomputed on demand from current stock and
// sector data and are never persisted as authoritative state.
type ScreenResult struct {
	StockID     int64  `json:"stock_id"`
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`
	SectorName  string `json:"sector_name,omitempty"`
	Industry    string `json:"industry"`

	PERatio       *decimal.Decimal `json:"pe_ratio,omitempty"`
	PBRatio       *decimal.Decimal `json:"pb_ratio,omitempty"`
	DividendYield *decimal.Decimal `json:"dividend_yield,omitempty"`
	MarketCap     *decimal.Decimal `json:"market_cap,omitempty"`
	CurrentPrice  *decimal.Decimal `json:"current_price,omitempty"`

	IsUndervaluedPE bool `json:"is_undervalued_pe"`
	IsUndervaluedPB bool `json:"is_undervalued_pb"`
	HasHighDividend bool `json:"has_high_dividend"`

	// OverallScore is 40*pe + 40*pb + 20*dividend, one of {20,40,60,80,100}
	// in returned results; zero-score stocks are dropped.
	OverallScore int `json:"overall_score"`

	LastUpdated time.Time `json:"last_updated"`
}

// Statistics are simple coverage counts over the active stock scan.
type Statistics struct {
	TotalActive       int `json:"total_active"`
	WithPERatio       int `json:"with_pe_ratio"`
	WithPBRatio       int `json:"with_pb_ratio"`
	WithDividendYield int `json:"with_dividend_yield"`
}
