// Package memory provides insertion-ordered in-memory implementations of
// the stock and sector stores, used for tests and for running the API
// without Postgres.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/valuehound/screener/internal/domain"
)

// Store implements domain.StockStore and domain.SectorStore.
type Store struct {
	mu sync.RWMutex

	stocks       []domain.Stock
	stockIdx     map[string]int // normalized ticker -> index into stocks
	nextStockID  int64
	sectors      []domain.Sector
	sectorIdx    map[string]int // name -> index into sectors
	nextSectorID int64
}

// New creates an empty store.
func New() *Store {
	return &Store{
		stockIdx:     make(map[string]int),
		nextStockID:  1,
		sectorIdx:    make(map[string]int),
		nextSectorID: 1,
	}
}

// Create inserts a new stock. The ticker is normalized to uppercase and the
// market-cap category is assigned from the creation-time market cap.
func (s *Store) Create(ctx context.Context, in domain.StockCreate) (*domain.Stock, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticker := in.NormalizedTicker()
	if _, exists := s.stockIdx[ticker]; exists {
		return nil, fmt.Errorf("stock %s: %w", ticker, domain.ErrDuplicateTicker)
	}

	now := time.Now().UTC()
	stock := domain.Stock{
		ID:                s.nextStockID,
		Ticker:            ticker,
		CompanyName:       in.CompanyName,
		SectorID:          in.SectorID,
		Industry:          in.Industry,
		PERatio:           in.PERatio,
		PBRatio:           in.PBRatio,
		DividendYield:     in.DividendYield,
		MarketCap:         in.MarketCap,
		MarketCapCategory: domain.CategorizeMarketCap(in.MarketCap),
		CurrentPrice:      in.CurrentPrice,
		IsActive:          true,
		LastUpdated:       now,
		CreatedAt:         now,
	}

	s.nextStockID++
	s.stockIdx[ticker] = len(s.stocks)
	s.stocks = append(s.stocks, stock)

	return &stock, nil
}

// GetByTicker looks up a stock case-insensitively.
func (s *Store) GetByTicker(ctx context.Context, ticker string) (*domain.Stock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.stockIdx[domain.NormalizeTicker(ticker)]
	if !ok {
		return nil, fmt.Errorf("stock %s: %w", ticker, domain.ErrNotFound)
	}
	stock := s.stocks[idx]
	return &stock, nil
}

// Update applies the non-nil fields of in. The market-cap category keeps
// its creation-time value even when the market cap itself changes.
func (s *Store) Update(ctx context.Context, ticker string, in domain.StockUpdate) (*domain.Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.stockIdx[domain.NormalizeTicker(ticker)]
	if !ok {
		return nil, fmt.Errorf("stock %s: %w", ticker, domain.ErrNotFound)
	}

	stock := &s.stocks[idx]
	if in.CompanyName != nil {
		stock.CompanyName = *in.CompanyName
	}
	if in.SectorID != nil {
		stock.SectorID = in.SectorID
	}
	if in.Industry != nil {
		stock.Industry = *in.Industry
	}
	if in.PERatio != nil {
		stock.PERatio = in.PERatio
	}
	if in.PBRatio != nil {
		stock.PBRatio = in.PBRatio
	}
	if in.DividendYield != nil {
		stock.DividendYield = in.DividendYield
	}
	if in.MarketCap != nil {
		stock.MarketCap = in.MarketCap
	}
	if in.CurrentPrice != nil {
		stock.CurrentPrice = in.CurrentPrice
	}
	if in.Price52WeekHigh != nil {
		stock.Price52WeekHigh = in.Price52WeekHigh
	}
	if in.Price52WeekLow != nil {
		stock.Price52WeekLow = in.Price52WeekLow
	}
	if in.DebtToEquity != nil {
		stock.DebtToEquity = in.DebtToEquity
	}
	if in.ReturnOnEquity != nil {
		stock.ReturnOnEquity = in.ReturnOnEquity
	}
	if in.RevenueGrowth != nil {
		stock.RevenueGrowth = in.RevenueGrowth
	}
	if in.IsActive != nil {
		stock.IsActive = *in.IsActive
	}
	stock.LastUpdated = time.Now().UTC()

	updated := *stock
	return &updated, nil
}

// ListActive returns active stocks in insertion order.
func (s *Store) ListActive(ctx context.Context) ([]domain.Stock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]domain.Stock, 0, len(s.stocks))
	for _, stock := range s.stocks {
		if stock.IsActive {
			active = append(active, stock)
		}
	}
	return active, nil
}

// List returns all stocks in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.Stock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Stock, len(s.stocks))
	copy(all, s.stocks)
	return all, nil
}

// CreateSector inserts a new sector via the SectorStore interface.
func (s *Store) CreateSector(ctx context.Context, in domain.SectorCreate) (*domain.Sector, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sectorIdx[in.Name]; exists {
		return nil, fmt.Errorf("sector %q: %w", in.Name, domain.ErrDuplicateSector)
	}

	now := time.Now().UTC()
	sector := domain.Sector{
		ID:                   s.nextSectorID,
		Name:                 in.Name,
		Description:          in.Description,
		AveragePERatio:       in.AveragePERatio,
		AveragePBRatio:       in.AveragePBRatio,
		AverageDividendYield: in.AverageDividendYield,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	s.nextSectorID++
	s.sectorIdx[in.Name] = len(s.sectors)
	s.sectors = append(s.sectors, sector)

	return &sector, nil
}

// GetSectorByID looks up a sector by id.
func (s *Store) GetSectorByID(ctx context.Context, id int64) (*domain.Sector, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sector := range s.sectors {
		if sector.ID == id {
			found := sector
			return &found, nil
		}
	}
	return nil, fmt.Errorf("sector %d: %w", id, domain.ErrNotFound)
}

// GetSectorByName looks up a sector by exact name.
func (s *Store) GetSectorByName(ctx context.Context, name string) (*domain.Sector, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.sectorIdx[name]
	if !ok {
		return nil, fmt.Errorf("sector %q: %w", name, domain.ErrNotFound)
	}
	sector := s.sectors[idx]
	return &sector, nil
}

// ListSectors returns every sector ordered by name.
func (s *Store) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Sector, len(s.sectors))
	copy(all, s.sectors)
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// Sectors adapts the store to the domain.SectorStore interface.
func (s *Store) Sectors() domain.SectorStore {
	return sectorView{s}
}

type sectorView struct{ s *Store }

func (v sectorView) Create(ctx context.Context, in domain.SectorCreate) (*domain.Sector, error) {
	return v.s.CreateSector(ctx, in)
}

func (v sectorView) GetByID(ctx context.Context, id int64) (*domain.Sector, error) {
	return v.s.GetSectorByID(ctx, id)
}

func (v sectorView) GetByName(ctx context.Context, name string) (*domain.Sector, error) {
	return v.s.GetSectorByName(ctx, name)
}

func (v sectorView) ListAll(ctx context.Context) ([]domain.Sector, error) {
	return v.s.ListSectors(ctx)
}
