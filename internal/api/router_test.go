package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valuehound/screener/internal/api/handlers"
	"github.com/valuehound/screener/internal/domain"
	"github.com/valuehound/screener/internal/screening"
	"github.com/valuehound/screener/internal/seed"
	"github.com/valuehound/screener/internal/store/memory"
	"github.com/valuehound/screener/pkg/config"
	"github.com/valuehound/screener/pkg/logger"
)

func dec(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func newTestRouter(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()

	store := memory.New()
	log := logger.New(&config.Config{Env: "test", LogLevel: "error", LogFormat: "json"})
	engine := screening.NewEngine(store, store.Sectors(), screening.DefaultCriteria(), log)
	seeder := seed.New(store, store.Sectors(), log)

	router := NewRouter(
		handlers.NewStockHandler(engine, store, log),
		handlers.NewScreenHandler(engine, log),
		handlers.NewSectorHandler(store.Sectors(), log),
		handlers.NewSeedHandler(seeder, log),
		log,
	)
	return router, store
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestCreateAndGetStock(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/stocks", domain.StockCreate{
		Ticker: "aapl", CompanyName: "Apple Inc.", PERatio: dec(28.5),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/stocks/AAPL", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	stock := body["stock"].(map[string]interface{})
	assert.Equal(t, "AAPL", stock["ticker"], "ticker is stored uppercase")

	rec = doRequest(t, router, http.MethodGet, "/api/stocks/MSFT", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateStock_Conflicts(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := domain.StockCreate{Ticker: "AAPL", CompanyName: "Apple Inc."}

	rec := doRequest(t, router, http.MethodPost, "/api/stocks", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/stocks", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateStock_ValidationError(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/stocks", domain.StockCreate{Ticker: "AAPL"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStock(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	_, err := store.Create(ctx, domain.StockCreate{
		Ticker: "GROW", CompanyName: "Grow Corp", MarketCap: dec(500_000_000),
	})
	require.NoError(t, err)

	newName := "Grown Corp"
	rec := doRequest(t, router, http.MethodPatch, "/api/stocks/grow", domain.StockUpdate{
		CompanyName: &newName,
		MarketCap:   dec(50_000_000_000),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	stock := decodeBody(t, rec)["stock"].(map[string]interface{})
	assert.Equal(t, "Grown Corp", stock["company_name"])
	assert.Equal(t, string(domain.SmallCap), stock["market_cap_category"],
		"category keeps its creation-time value")
}

func TestSearchStocks(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	for _, in := range []domain.StockCreate{
		{Ticker: "CHEAP", CompanyName: "Cheap Corp", PERatio: dec(8)},
		{Ticker: "DEAR", CompanyName: "Dear Corp", PERatio: dec(40)},
		{Ticker: "MYST", CompanyName: "Mystery Corp"},
	} {
		_, err := store.Create(ctx, in)
		require.NoError(t, err)
	}

	rec := doRequest(t, router, http.MethodGet, "/api/stocks?max_pe=10&sort_by=pe_ratio", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["total"], "unknown P/E passes a max-P/E filter")

	stocks := body["stocks"].([]interface{})
	require.Len(t, stocks, 2)
	first := stocks[0].(map[string]interface{})
	assert.Equal(t, "CHEAP", first["ticker"])
}

func TestSearchStocks_InvalidSortField(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/stocks?sort_by=shoe_size", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchStocks_InvalidSectorID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/stocks?sector_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScreenAndStatsEndpoints(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	sector, err := store.CreateSector(ctx, domain.SectorCreate{
		Name: "Technology", AveragePERatio: dec(28.5),
	})
	require.NoError(t, err)

	_, err = store.Create(ctx, domain.StockCreate{
		Ticker: "UNDERVAL", CompanyName: "Underval Corp", SectorID: &sector.ID,
		PERatio: dec(8.5), PBRatio: dec(1.2), DividendYield: dec(4.5),
	})
	require.NoError(t, err)
	_, err = store.Create(ctx, domain.StockCreate{
		Ticker: "MYST", CompanyName: "Mystery Corp",
	})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodGet, "/api/screen", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
	results := body["results"].([]interface{})
	top := results[0].(map[string]interface{})
	assert.Equal(t, "UNDERVAL", top["ticker"])
	assert.Equal(t, float64(100), top["overall_score"])

	rec = doRequest(t, router, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody(t, rec)["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["total_active"])
	assert.Equal(t, float64(1), stats["with_pe_ratio"])
}

func TestSectorEndpoints(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	created, err := store.CreateSector(ctx, domain.SectorCreate{Name: "Energy"})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodGet, "/api/sectors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sectors := decodeBody(t, rec)["sectors"].([]interface{})
	assert.Len(t, sectors, 1)

	rec = doRequest(t, router, http.MethodGet, "/api/sectors/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sector := decodeBody(t, rec)["sector"].(map[string]interface{})
	assert.Equal(t, "Energy", sector["name"])
	assert.Equal(t, float64(created.ID), sector["id"])

	rec = doRequest(t, router, http.MethodGet, "/api/sectors/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/sectors/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeedEndpoint(t *testing.T) {
	router, store := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/seed?count=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	all, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 5)

	sectors, err := store.ListSectors(context.Background())
	require.NoError(t, err)
	assert.Len(t, sectors, 10)
}
