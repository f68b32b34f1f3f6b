// Package seed populates the stores with the reference sectors and a
// realistic set of example stocks for demos and local development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/valuehound/screener/internal/domain"
	"github.com/valuehound/screener/pkg/logger"
)

// DefaultStockCount is the number of stocks Run seeds when the caller
// passes count <= 0.
const DefaultStockCount = 50

// Seeder loads reference and example data into the stores. Seeding is
// idempotent: existing sectors and tickers are skipped, never overwritten.
type Seeder struct {
	stocks  domain.StockStore
	sectors domain.SectorStore
	logger  *logger.Logger
	rng     *rand.Rand
}

// New creates a seeder over the given stores.
func New(stocks domain.StockStore, sectors domain.SectorStore, log *logger.Logger) *Seeder {
	return &Seeder{
		stocks:  stocks,
		sectors: sectors,
		logger:  log,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run ensures the reference sectors exist and seeds up to count stocks.
func (s *Seeder) Run(ctx context.Context, count int) error {
	if count <= 0 {
		count = DefaultStockCount
	}

	sectors, err := s.EnsureSectors(ctx)
	if err != nil {
		return fmt.Errorf("ensure sectors: %w", err)
	}

	created, err := s.SeedStocks(ctx, count)
	if err != nil {
		return fmt.Errorf("seed stocks: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"sectors":        len(sectors),
		"stocks_created": created,
	}).Info("Seed data loaded")

	return nil
}

// EnsureSectors creates any missing reference sector and returns the full
// directory.
func (s *Seeder) EnsureSectors(ctx context.Context) ([]domain.Sector, error) {
	for _, in := range DefaultSectors() {
		_, err := s.sectors.GetByName(ctx, in.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("lookup sector %q: %w", in.Name, err)
		}

		if _, err := s.sectors.Create(ctx, in); err != nil {
			return nil, fmt.Errorf("create sector %q: %w", in.Name, err)
		}
	}

	return s.sectors.ListAll(ctx)
}

// SeedStocks inserts up to count example stocks, skipping tickers that
// already exist. It returns the number actually created.
func (s *Seeder) SeedStocks(ctx context.Context, count int) (int, error) {
	sectors, err := s.sectors.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list sectors: %w", err)
	}
	sectorIDs := make(map[string]int64, len(sectors))
	sectorNames := make([]string, 0, len(sectors))
	for _, sec := range sectors {
		sectorIDs[sec.Name] = sec.ID
		sectorNames = append(sectorNames, sec.Name)
	}

	companies := sampleCompanies
	if len(companies) < count {
		companies = append(companies, s.generateFillers(sectorNames, count-len(companies))...)
	}
	if len(companies) > count {
		companies = companies[:count]
	}

	created := 0
	for _, c := range companies {
		in := domain.StockCreate{
			Ticker:        c.ticker,
			CompanyName:   c.name,
			Industry:      c.industry,
			PERatio:       optFloat(c.pe),
			PBRatio:       optFloat(c.pb),
			DividendYield: optFloat(c.div),
			MarketCap:     optInt(c.mcap),
			CurrentPrice:  optFloat(c.price),
		}
		if id, ok := sectorIDs[c.sector]; ok {
			in.SectorID = &id
		}

		_, err := s.stocks.Create(ctx, in)
		if errors.Is(err, domain.ErrDuplicateTicker) {
			continue
		}
		if err != nil {
			s.logger.WithError(err).WithField("ticker", c.ticker).Warn("Failed to seed stock")
			continue
		}
		created++
	}

	return created, nil
}

// generateFillers builds n extra records with low P/E, low P/B and a
// decent dividend so the screen has plenty to rank.
func (s *Seeder) generateFillers(sectorNames []string, n int) []company {
	fillers := make([]company, 0, n)
	for i := 0; i < n && i < len(fillerTickers); i++ {
		sectorName := ""
		if len(sectorNames) > 0 {
			sectorName = sectorNames[s.rng.Intn(len(sectorNames))]
		}

		fillers = append(fillers, company{
			ticker:   fillerTickers[i],
			name:     fmt.Sprintf("Undervalued Corp %d", i+1),
			sector:   sectorName,
			industry: fmt.Sprintf("%s Services", sectorName),
			pe:       round1(5.0 + s.rng.Float64()*10.0),
			pb:       round1(0.5 + s.rng.Float64()*0.9),
			div:      round1(2.0 + s.rng.Float64()*4.0),
			mcap:     1_000_000_000 + s.rng.Int63n(49_000_000_000),
			price:    round2(15.0 + s.rng.Float64()*135.0),
		})
	}
	return fillers
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

// optFloat maps zero to unknown; the curated data uses zero as "no value".
func optFloat(f float64) *decimal.Decimal {
	if f == 0 {
		return nil
	}
	d := decimal.NewFromFloat(f)
	return &d
}

func optInt(n int64) *decimal.Decimal {
	if n == 0 {
		return nil
	}
	d := decimal.NewFromInt(n)
	return &d
}
