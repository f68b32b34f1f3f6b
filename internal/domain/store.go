package domain

import "context"

// StockStore is the stock repository boundary. Implementations assign the
// market-cap category once at Create time from the creation-time market cap.
type StockStore interface {
	// Create validates nothing beyond what it needs structurally; callers
	// run StockCreate.Validate first. Returns ErrDuplicateTicker when the
	// normalized ticker already exists.
	Create(ctx context.Context, in StockCreate) (*Stock, error)

	// GetByTicker looks up a stock by its (case-insensitive) ticker.
	// Returns ErrNotFound on a miss.
	GetByTicker(ctx context.Context, ticker string) (*Stock, error)

	// Update applies the non-nil fields of in and bumps LastUpdated.
	// It does not recompute the market-cap category.
	Update(ctx context.Context, ticker string, in StockUpdate) (*Stock, error)

	// ListActive returns all active stocks in insertion order.
	ListActive(ctx context.Context) ([]Stock, error)

	// List returns all stocks, active and inactive, in insertion order.
	List(ctx context.Context) ([]Stock, error)
}

// SectorStore is the sector directory boundary.
type SectorStore interface {
	// Create returns ErrDuplicateSector when the name already exists.
	Create(ctx context.Context, in SectorCreate) (*Sector, error)

	// GetByID returns ErrNotFound on a miss.
	GetByID(ctx context.Context, id int64) (*Sector, error)

	// GetByName returns ErrNotFound on a miss.
	GetByName(ctx context.Context, name string) (*Sector, error)

	// ListAll returns every sector ordered by name.
	ListAll(ctx context.Context) ([]Sector, error)
}
