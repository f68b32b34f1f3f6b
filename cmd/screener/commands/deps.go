package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/valuehound/screener/internal/domain"
	"github.com/valuehound/screener/internal/screening"
	"github.com/valuehound/screener/internal/seed"
	"github.com/valuehound/screener/internal/store/memory"
	"github.com/valuehound/screener/internal/store/postgres"
	"github.com/valuehound/screener/pkg/config"
	"github.com/valuehound/screener/pkg/database"
	"github.com/valuehound/screener/pkg/logger"
)

// deps bundles the wired application components a command needs.
type deps struct {
	cfg     *config.Config
	log     *logger.Logger
	db      *database.DB // nil when running on the in-memory store
	stocks  domain.StockStore
	sectors domain.SectorStore
	engine  *screening.Engine
	seeder  *seed.Seeder
}

// buildDeps loads config, connects the stores and constructs the screening
// engine. With inMemory set, everything runs against a fresh in-memory
// store seeded with example data.
func buildDeps(ctx context.Context, inMemory bool, seedCount int) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	d := &deps{cfg: cfg, log: log}

	if inMemory {
		store := memory.New()
		d.stocks = store
		d.sectors = store.Sectors()
	} else {
		db, err := database.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := postgres.Migrate(ctx, db.Pool); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
		d.db = db
		d.stocks = postgres.NewStockRepository(db.Pool)
		d.sectors = postgres.NewSectorRepository(db.Pool)
	}

	d.engine = screening.NewEngine(d.stocks, d.sectors, criteriaFromConfig(cfg), log)
	d.seeder = seed.New(d.stocks, d.sectors, log)

	if inMemory {
		if err := d.seeder.Run(ctx, seedCount); err != nil {
			return nil, fmt.Errorf("seed in-memory store: %w", err)
		}
	}

	return d, nil
}

func (d *deps) close() {
	if d.db != nil {
		d.db.Close()
	}
}

// criteriaFromConfig overlays the configured thresholds on the default
// 40/40/20 weighting.
func criteriaFromConfig(cfg *config.Config) screening.Criteria {
	criteria := screening.DefaultCriteria()
	criteria.MaxPBRatio = decimal.NewFromFloat(cfg.Screening.MaxPBRatio)
	criteria.MinDividendYield = decimal.NewFromFloat(cfg.Screening.MinDividendYield)
	return criteria
}
