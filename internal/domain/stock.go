package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MarketCapCategory buckets a stock by market capitalization.
// The empty string means the market cap was unknown at creation time.
type MarketCapCategory string

const (
	LargeCap MarketCapCategory = "Large Cap"
	MidCap   MarketCapCategory = "Mid Cap"
	SmallCap MarketCapCategory = "Small Cap"
	MicroCap MarketCapCategory = "Micro Cap"
)

// Stock is the main stock record with financial metrics.
// Every metric is a *decimal.Decimal: nil means unknown, never zero.
// A dividend yield of 0 and an unknown dividend yield are different facts.
type Stock struct {
	ID          int64  `json:"id"`
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`
	SectorID    *int64 `json:"sector_id,omitempty"`
	Industry    string `json:"industry"`

	// Valuation metrics
	PERatio       *decimal.Decimal `json:"pe_ratio,omitempty"`
	PBRatio       *decimal.Decimal `json:"pb_ratio,omitempty"`
	DividendYield *decimal.Decimal `json:"dividend_yield,omitempty"`

	// Size
	MarketCap *decimal.Decimal `json:"market_cap,omitempty"`
	// MarketCapCategory is assigned once at creation from MarketCap and is
	// deliberately not recomputed on update. A stock whose market cap drifts
	// across a breakpoint keeps its creation-time category.
	MarketCapCategory MarketCapCategory `json:"market_cap_category,omitempty"`

	// Price data
	CurrentPrice    *decimal.Decimal `json:"current_price,omitempty"`
	Price52WeekHigh *decimal.Decimal `json:"price_52week_high,omitempty"`
	Price52WeekLow  *decimal.Decimal `json:"price_52week_low,omitempty"`

	// Additional metrics
	DebtToEquity   *decimal.Decimal `json:"debt_to_equity,omitempty"`
	ReturnOnEquity *decimal.Decimal `json:"return_on_equity,omitempty"`
	RevenueGrowth  *decimal.Decimal `json:"revenue_growth,omitempty"`

	IsActive    bool      `json:"is_active"`
	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
}

// StockCreate is the validated input for creating a stock.
type StockCreate struct {
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`
	SectorID    *int64 `json:"sector_id,omitempty"`
	Industry    string `json:"industry"`

	PERatio       *decimal.Decimal `json:"pe_ratio,omitempty"`
	PBRatio       *decimal.Decimal `json:"pb_ratio,omitempty"`
	DividendYield *decimal.Decimal `json:"dividend_yield,omitempty"`
	MarketCap     *decimal.Decimal `json:"market_cap,omitempty"`
	CurrentPrice  *decimal.Decimal `json:"current_price,omitempty"`
}

const maxTickerLength = 10

// Validate checks required fields and length limits.
func (c StockCreate) Validate() error {
	ticker := strings.TrimSpace(c.Ticker)
	if ticker == "" {
		return fmt.Errorf("ticker is required")
	}
	if len(ticker) > maxTickerLength {
		return fmt.Errorf("ticker %q exceeds %d characters", ticker, maxTickerLength)
	}
	if strings.TrimSpace(c.CompanyName) == "" {
		return fmt.Errorf("company_name is required")
	}
	return nil
}

// NormalizedTicker returns the ticker trimmed and uppercased.
// Tickers are stored and compared in this form.
func (c StockCreate) NormalizedTicker() string {
	return NormalizeTicker(c.Ticker)
}

// NormalizeTicker uppercases and trims a ticker symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// StockUpdate is a partial update; nil fields are left untouched.
// Updating MarketCap does not recompute MarketCapCategory.
type StockUpdate struct {
	CompanyName *string `json:"company_name,omitempty"`
	SectorID    *int64  `json:"sector_id,omitempty"`
	Industry    *string `json:"industry,omitempty"`

	PERatio       *decimal.Decimal `json:"pe_ratio,omitempty"`
	PBRatio       *decimal.Decimal `json:"pb_ratio,omitempty"`
	DividendYield *decimal.Decimal `json:"dividend_yield,omitempty"`
	MarketCap     *decimal.Decimal `json:"market_cap,omitempty"`
	CurrentPrice  *decimal.Decimal `json:"current_price,omitempty"`

	Price52WeekHigh *decimal.Decimal `json:"price_52week_high,omitempty"`
	Price52WeekLow  *decimal.Decimal `json:"price_52week_low,omitempty"`
	DebtToEquity    *decimal.Decimal `json:"debt_to_equity,omitempty"`
	ReturnOnEquity  *decimal.Decimal `json:"return_on_equity,omitempty"`
	RevenueGrowth   *decimal.Decimal `json:"revenue_growth,omitempty"`

	IsActive *bool `json:"is_active,omitempty"`
}
