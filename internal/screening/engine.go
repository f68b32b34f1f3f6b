package screening

import (
	"context"
	"fmt"
	"sort"

	"github.com/valuehound/screener/internal/domain"
	"github.com/valuehound/screener/pkg/logger"
)

// DefaultLimit is the page size used when a caller passes limit <= 0.
const DefaultLimit = 100

// Engine is the screening core: filtering, sorting, valuation scoring and
// coverage statistics over the stock and sector stores. It holds explicit
// store handles and is constructed once, then shared by callers.
type Engine struct {
	stocks   domain.StockStore
	sectors  domain.SectorStore
	criteria Criteria
	logger   *logger.Logger
}

// NewEngine creates a screening engine.
func NewEngine(stocks domain.StockStore, sectors domain.SectorStore, criteria Criteria, log *logger.Logger) *Engine {
	return &Engine{
		stocks:   stocks,
		sectors:  sectors,
		criteria: criteria,
		logger:   log,
	}
}

// Search filters, sorts and paginates the stock scan. It returns the page
// and the total match count before pagination. An offset past the end
// yields an empty page with the correct total. Equal sort keys keep their
// original scan order.
func (e *Engine) Search(ctx context.Context, filter domain.StockFilter, sortSpec *domain.StockSort, limit, offset int) ([]domain.Stock, int, error) {
	stocks, err := e.scanForFilter(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("scan stocks: %w", err)
	}

	filtered := make([]domain.Stock, 0, len(stocks))
	for _, s := range stocks {
		if matchesFilter(s, filter) {
			filtered = append(filtered, s)
		}
	}

	if sortSpec != nil && sortSpec.Field != "" {
		if err := sortStocks(filtered, *sortSpec); err != nil {
			return nil, 0, err
		}
	}

	total := len(filtered)

	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []domain.Stock{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	e.logger.WithFields(map[string]interface{}{
		"scanned": len(stocks),
		"matched": total,
		"offset":  offset,
		"limit":   limit,
	}).Debug("Stock search completed")

	return filtered[offset:end], total, nil
}

// scanForFilter picks the scan matching the active-flag predicate.
// A nil IsActive defaults to active stocks only.
func (e *Engine) scanForFilter(ctx context.Context, filter domain.StockFilter) ([]domain.Stock, error) {
	if filter.IsActive == nil || *filter.IsActive {
		return e.stocks.ListActive(ctx)
	}

	all, err := e.stocks.List(ctx)
	if err != nil {
		return nil, err
	}
	inactive := make([]domain.Stock, 0, len(all))
	for _, s := range all {
		if !s.IsActive {
			inactive = append(inactive, s)
		}
	}
	return inactive, nil
}

// Screen evaluates the valuation rules for every active stock and returns
// the stocks with a positive score, highest score first. Ties keep their
// scan order.
func (e *Engine) Screen(ctx context.Context) ([]domain.ScreenResult, error) {
	stocks, err := e.stocks.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan stocks: %w", err)
	}

	sectors, err := e.sectors.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	sectorsByID := make(map[int64]domain.Sector, len(sectors))
	for _, s := range sectors {
		sectorsByID[s.ID] = s
	}

	results := make([]domain.ScreenResult, 0)
	for _, stock := range stocks {
		var sector *domain.Sector
		if stock.SectorID != nil {
			if s, ok := sectorsByID[*stock.SectorID]; ok {
				sector = &s
			}
		}

		result := e.criteria.Evaluate(stock, sector)
		if result.OverallScore > 0 {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})

	e.logger.WithFields(map[string]interface{}{
		"scanned": len(stocks),
		"matched": len(results),
	}).Info("Valuation screen completed")

	return results, nil
}

// Statistics counts how many active stocks have each metric populated.
// An empty store yields all zeros.
func (e *Engine) Statistics(ctx context.Context) (domain.Statistics, error) {
	stocks, err := e.stocks.ListActive(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("scan stocks: %w", err)
	}

	var stats domain.Statistics
	stats.TotalActive = len(stocks)
	for _, s := range stocks {
		if s.PERatio != nil {
			stats.WithPERatio++
		}
		if s.PBRatio != nil {
			stats.WithPBRatio++
		}
		if s.DividendYield != nil {
			stats.WithDividendYield++
		}
	}
	return stats, nil
}

// Industries returns the sorted distinct industry labels of active stocks.
func (e *Engine) Industries(ctx context.Context) ([]string, error) {
	stocks, err := e.stocks.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan stocks: %w", err)
	}

	seen := make(map[string]struct{})
	industries := make([]string, 0)
	for _, s := range stocks {
		if s.Industry == "" {
			continue
		}
		if _, ok := seen[s.Industry]; ok {
			continue
		}
		seen[s.Industry] = struct{}{}
		industries = append(industries, s.Industry)
	}
	sort.Strings(industries)
	return industries, nil
}
