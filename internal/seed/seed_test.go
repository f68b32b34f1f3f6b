package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valuehound/screener/internal/domain"
	"github.com/valuehound/screener/internal/store/memory"
	"github.com/valuehound/screener/pkg/config"
	"github.com/valuehound/screener/pkg/logger"
)

func newSeeder(t *testing.T) (*Seeder, *memory.Store) {
	t.Helper()
	store := memory.New()
	log := logger.New(&config.Config{Env: "test", LogLevel: "error", LogFormat: "json"})
	return New(store, store.Sectors(), log), store
}

func TestEnsureSectors(t *testing.T) {
	seeder, store := newSeeder(t)
	ctx := context.Background()

	sectors, err := seeder.EnsureSectors(ctx)
	require.NoError(t, err)
	assert.Len(t, sectors, 10)

	tech, err := store.GetSectorByName(ctx, "Technology")
	require.NoError(t, err)
	require.NotNil(t, tech.AveragePERatio)
	assert.Equal(t, "28.5", tech.AveragePERatio.String())

	// A second run leaves the directory unchanged.
	sectors, err = seeder.EnsureSectors(ctx)
	require.NoError(t, err)
	assert.Len(t, sectors, 10)
}

func TestSeedStocks_CountCapping(t *testing.T) {
	seeder, _ := newSeeder(t)
	ctx := context.Background()

	_, err := seeder.EnsureSectors(ctx)
	require.NoError(t, err)

	created, err := seeder.SeedStocks(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, created)
}

func TestSeedStocks_SkipsExistingTickers(t *testing.T) {
	seeder, store := newSeeder(t)
	ctx := context.Background()

	_, err := seeder.EnsureSectors(ctx)
	require.NoError(t, err)

	_, err = store.Create(ctx, domain.StockCreate{Ticker: "AAPL", CompanyName: "Pre-existing Apple"})
	require.NoError(t, err)

	created, err := seeder.SeedStocks(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 4, created, "the pre-existing ticker is skipped, not overwritten")

	stock, err := store.GetByTicker(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Pre-existing Apple", stock.CompanyName)
}

func TestRun_FillsBeyondCuratedList(t *testing.T) {
	seeder, store := newSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx, 40))

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 40)

	// The curated entries carry real sectors and metrics.
	aapl, err := store.GetByTicker(ctx, "AAPL")
	require.NoError(t, err)
	assert.NotNil(t, aapl.SectorID)
	assert.NotNil(t, aapl.PERatio)
	assert.Equal(t, domain.LargeCap, aapl.MarketCapCategory)
}

func TestDefaultSectors(t *testing.T) {
	sectors := DefaultSectors()
	require.Len(t, sectors, 10)

	names := make(map[string]bool, len(sectors))
	for _, s := range sectors {
		assert.NoError(t, s.Validate())
		assert.NotNil(t, s.AveragePERatio)
		assert.NotNil(t, s.AveragePBRatio)
		assert.NotNil(t, s.AverageDividendYield)
		names[s.Name] = true
	}
	assert.True(t, names["Technology"])
	assert.True(t, names["Real Estate"])
}
