package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valuehound/screener/internal/domain"
)

// StockRepository is the Postgres-backed stock store.
type StockRepository struct {
	pool *pgxpool.Pool
}

// NewStockRepository creates a stock repository on the given pool.
func NewStockRepository(pool *pgxpool.Pool) *StockRepository {
	return &StockRepository{pool: pool}
}

const stockColumns = `
	id, ticker, company_name, sector_id, industry,
	pe_ratio, pb_ratio, dividend_yield,
	market_cap, market_cap_category,
	current_price, price_52week_high, price_52week_low,
	debt_to_equity, return_on_equity, revenue_growth,
	is_active, last_updated, created_at`

const uniqueViolation = "23505"

// Create inserts a new stock, assigning the market-cap category from the
// creation-time market cap.
func (r *StockRepository) Create(ctx context.Context, in domain.StockCreate) (*domain.Stock, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ticker := in.NormalizedTicker()
	category := domain.CategorizeMarketCap(in.MarketCap)

	query := `
		INSERT INTO stocks (
			ticker, company_name, sector_id, industry,
			pe_ratio, pb_ratio, dividend_yield,
			market_cap, market_cap_category, current_price
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + stockColumns

	row := r.pool.QueryRow(ctx, query,
		ticker, in.CompanyName, in.SectorID, in.Industry,
		in.PERatio, in.PBRatio, in.DividendYield,
		in.MarketCap, categoryParam(category), in.CurrentPrice,
	)

	stock, err := scanStock(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("stock %s: %w", ticker, domain.ErrDuplicateTicker)
		}
		return nil, fmt.Errorf("insert stock %s: %w", ticker, err)
	}

	return stock, nil
}

// GetByTicker looks up a stock case-insensitively.
func (r *StockRepository) GetByTicker(ctx context.Context, ticker string) (*domain.Stock, error) {
	normalized := domain.NormalizeTicker(ticker)

	query := `SELECT ` + stockColumns + ` FROM stocks WHERE ticker = $1`

	stock, err := scanStock(r.pool.QueryRow(ctx, query, normalized))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("stock %s: %w", normalized, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get stock %s: %w", normalized, err)
	}

	return stock, nil
}

// Update applies the non-nil fields of in and bumps last_updated.
// market_cap_category is never part of the SET list: it keeps its
// creation-time value even when market_cap changes.
func (r *StockRepository) Update(ctx context.Context, ticker string, in domain.StockUpdate) (*domain.Stock, error) {
	normalized := domain.NormalizeTicker(ticker)

	sets := []string{"last_updated = NOW()"}
	args := []interface{}{}
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.CompanyName != nil {
		set("company_name", *in.CompanyName)
	}
	if in.SectorID != nil {
		set("sector_id", *in.SectorID)
	}
	if in.Industry != nil {
		set("industry", *in.Industry)
	}
	if in.PERatio != nil {
		set("pe_ratio", in.PERatio)
	}
	if in.PBRatio != nil {
		set("pb_ratio", in.PBRatio)
	}
	if in.DividendYield != nil {
		set("dividend_yield", in.DividendYield)
	}
	if in.MarketCap != nil {
		set("market_cap", in.MarketCap)
	}
	if in.CurrentPrice != nil {
		set("current_price", in.CurrentPrice)
	}
	if in.Price52WeekHigh != nil {
		set("price_52week_high", in.Price52WeekHigh)
	}
	if in.Price52WeekLow != nil {
		set("price_52week_low", in.Price52WeekLow)
	}
	if in.DebtToEquity != nil {
		set("debt_to_equity", in.DebtToEquity)
	}
	if in.ReturnOnEquity != nil {
		set("return_on_equity", in.ReturnOnEquity)
	}
	if in.RevenueGrowth != nil {
		set("revenue_growth", in.RevenueGrowth)
	}
	if in.IsActive != nil {
		set("is_active", *in.IsActive)
	}

	args = append(args, normalized)
	query := fmt.Sprintf(
		"UPDATE stocks SET %s WHERE ticker = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), stockColumns,
	)

	stock, err := scanStock(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("stock %s: %w", normalized, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update stock %s: %w", normalized, err)
	}

	return stock, nil
}

// ListActive returns active stocks in insertion order.
func (r *StockRepository) ListActive(ctx context.Context) ([]domain.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE is_active ORDER BY id`
	return r.list(ctx, query)
}

// List returns all stocks, active and inactive, in insertion order.
func (r *StockRepository) List(ctx context.Context) ([]domain.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks ORDER BY id`
	return r.list(ctx, query)
}

func (r *StockRepository) list(ctx context.Context, query string) ([]domain.Stock, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query stocks: %w", err)
	}
	defer rows.Close()

	stocks := make([]domain.Stock, 0)
	for rows.Next() {
		stock, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, *stock)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stocks: %w", err)
	}

	return stocks, nil
}

// scanStock reads one stock row in stockColumns order.
func scanStock(row pgx.Row) (*domain.Stock, error) {
	var s domain.Stock
	var category *string

	err := row.Scan(
		&s.ID, &s.Ticker, &s.CompanyName, &s.SectorID, &s.Industry,
		&s.PERatio, &s.PBRatio, &s.DividendYield,
		&s.MarketCap, &category,
		&s.CurrentPrice, &s.Price52WeekHigh, &s.Price52WeekLow,
		&s.DebtToEquity, &s.ReturnOnEquity, &s.RevenueGrowth,
		&s.IsActive, &s.LastUpdated, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if category != nil {
		s.MarketCapCategory = domain.MarketCapCategory(*category)
	}
	return &s, nil
}

// categoryParam maps the empty category to SQL NULL.
func categoryParam(c domain.MarketCapCategory) interface{} {
	if c == "" {
		return nil
	}
	return string(c)
}
