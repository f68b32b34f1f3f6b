package screening

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/valuehound/screener/internal/domain"
)

type sortKind int

const (
	sortNumeric sortKind = iota
	sortString
	sortTime
)

// sortAccessor maps a sort field to the stock attribute it reads.
// Exactly one of the accessor funcs is set, per kind.
type sortAccessor struct {
	kind sortKind
	str  func(domain.Stock) string
	num  func(domain.Stock) *decimal.Decimal
	ts   func(domain.Stock) time.Time
}

// sortFields is the explicit registry of sortable attributes. Fields
// outside this map are rejected with ErrInvalidSortField.
var sortFields = map[domain.SortField]sortAccessor{
	domain.SortByTicker: {
		kind: sortString,
		str:  func(s domain.Stock) string { return s.Ticker },
	},
	domain.SortByCompanyName: {
		kind: sortString,
		str:  func(s domain.Stock) string { return s.CompanyName },
	},
	domain.SortByPERatio: {
		kind: sortNumeric,
		num:  func(s domain.Stock) *decimal.Decimal { return s.PERatio },
	},
	domain.SortByPBRatio: {
		kind: sortNumeric,
		num:  func(s domain.Stock) *decimal.Decimal { return s.PBRatio },
	},
	domain.SortByDividendYield: {
		kind: sortNumeric,
		num:  func(s domain.Stock) *decimal.Decimal { return s.DividendYield },
	},
	domain.SortByMarketCap: {
		kind: sortNumeric,
		num:  func(s domain.Stock) *decimal.Decimal { return s.MarketCap },
	},
	domain.SortByCurrentPrice: {
		kind: sortNumeric,
		num:  func(s domain.Stock) *decimal.Decimal { return s.CurrentPrice },
	},
	domain.SortByLastUpdated: {
		kind: sortTime,
		ts:   func(s domain.Stock) time.Time { return s.LastUpdated },
	},
}

// SortableFields returns the sorted list of valid sort field names.
func SortableFields() []domain.SortField {
	fields := make([]domain.SortField, 0, len(sortFields))
	for f := range sortFields {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// sortStocks sorts in place, stably, by the named field. Numeric fields are
// compared as float64; an unknown value maps to +Inf ascending and -Inf
// descending so that missing values always sort last.
func sortStocks(stocks []domain.Stock, spec domain.StockSort) error {
	acc, ok := sortFields[spec.Field]
	if !ok {
		return fmt.Errorf("%w: %q (valid: %v)", domain.ErrInvalidSortField, spec.Field, SortableFields())
	}

	desc := spec.Direction == domain.SortDesc

	switch acc.kind {
	case sortString:
		sort.SliceStable(stocks, func(i, j int) bool {
			a, b := acc.str(stocks[i]), acc.str(stocks[j])
			if desc {
				return a > b
			}
			return a < b
		})

	case sortTime:
		sort.SliceStable(stocks, func(i, j int) bool {
			a, b := acc.ts(stocks[i]), acc.ts(stocks[j])
			if desc {
				return b.Before(a)
			}
			return a.Before(b)
		})

	default:
		missing := math.Inf(1)
		if desc {
			missing = math.Inf(-1)
		}
		keyOf := func(s domain.Stock) float64 {
			v := acc.num(s)
			if v == nil {
				return missing
			}
			f, _ := v.Float64()
			return f
		}
		sort.SliceStable(stocks, func(i, j int) bool {
			a, b := keyOf(stocks[i]), keyOf(stocks[j])
			if desc {
				return a > b
			}
			return a < b
		})
	}

	return nil
}
