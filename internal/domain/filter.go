package domain

import "github.com/shopspring/decimal"

// StockFilter holds the optional filter predicates for a stock search.
// Zero values (nil pointers, empty strings) mean "no constraint".
//
// Unknown-metric semantics differ per predicate: the max-P/E and max-P/B
// filters let stocks with an unknown metric pass, while the min-dividend
// and min-market-cap filters exclude them. A fund hunting for yield does
// not want stocks that might pay nothing.
type StockFilter struct {
	SectorID          *int64            `json:"sector_id,omitempty"`
	MarketCapCategory MarketCapCategory `json:"market_cap_category,omitempty"`

	MaxPERatio       *decimal.Decimal `json:"max_pe_ratio,omitempty"`
	MaxPBRatio       *decimal.Decimal `json:"max_pb_ratio,omitempty"`
	MinDividendYield *decimal.Decimal `json:"min_dividend_yield,omitempty"`
	MinMarketCap     *decimal.Decimal `json:"min_market_cap,omitempty"`
	MaxMarketCap     *decimal.Decimal `json:"max_market_cap,omitempty"`

	// Case-insensitive substring matches.
	TickerSearch  string `json:"ticker_search,omitempty"`
	CompanySearch string `json:"company_search,omitempty"`

	// IsActive nil defaults to "active only".
	IsActive *bool `json:"is_active,omitempty"`
}

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortField names a sortable stock attribute. The screening engine keeps
// an explicit registry of accessors; unknown fields fail fast with
// ErrInvalidSortField instead of silently returning unsorted results.
type SortField string

const (
	SortByTicker        SortField = "ticker"
	SortByCompanyName   SortField = "company_name"
	SortByPERatio       SortField = "pe_ratio"
	SortByPBRatio       SortField = "pb_ratio"
	SortByDividendYield SortField = "dividend_yield"
	SortByMarketCap     SortField = "market_cap"
	SortByCurrentPrice  SortField = "current_price"
	SortByLastUpdated   SortField = "last_updated"
)

// StockSort is a sort specification: field plus direction.
type StockSort struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}
