package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/valuehound/screener/internal/domain"
	"github.com/valuehound/screener/internal/screening"
	"github.com/valuehound/screener/pkg/logger"
)

// StockHandler handles the stock search and CRUD endpoints.
type StockHandler struct {
	engine *screening.Engine
	stocks domain.StockStore
	logger *logger.Logger
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(engine *screening.Engine, stocks domain.StockStore, log *logger.Logger) *StockHandler {
	return &StockHandler{
		engine: engine,
		stocks: stocks,
		logger: log,
	}
}

// Search filters, sorts and paginates stocks.
// GET /api/stocks?ticker=&company=&sector_id=&market_cap_category=&max_pe=&max_pb=&min_dividend=&min_market_cap=&max_market_cap=&is_active=&sort_by=&direction=&limit=&offset=
func (h *StockHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter, err := parseFilter(q)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var sortSpec *domain.StockSort
	if field := q.Get("sort_by"); field != "" {
		direction := domain.SortAsc
		if q.Get("direction") == string(domain.SortDesc) {
			direction = domain.SortDesc
		}
		sortSpec = &domain.StockSort{Field: domain.SortField(field), Direction: direction}
	}

	limit := intParam(q.Get("limit"), screening.DefaultLimit)
	offset := intParam(q.Get("offset"), 0)

	stocks, total, err := h.engine.Search(ctx, filter, sortSpec, limit, offset)
	if err != nil {
		h.logger.WithError(err).Error("Stock search failed")
		respondDomainError(w, err, "Failed to search stocks")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"total":   total,
		"stocks":  stocks,
	})
}

// Create inserts a new stock.
// POST /api/stocks
func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in domain.StockCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	stock, err := h.stocks.Create(ctx, in)
	if err != nil {
		h.logger.WithError(err).WithField("ticker", in.Ticker).Error("Stock create failed")
		respondDomainError(w, err, "Failed to create stock")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"stock":   stock,
	})
}

// GetByTicker looks up one stock.
// GET /api/stocks/{ticker}
func (h *StockHandler) GetByTicker(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ticker := mux.Vars(r)["ticker"]

	stock, err := h.stocks.GetByTicker(ctx, ticker)
	if err != nil {
		respondDomainError(w, err, "Failed to retrieve stock")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stock":   stock,
	})
}

// Update applies a partial update. The market-cap category is never
// recomputed here; it reflects the creation-time market cap.
// PATCH /api/stocks/{ticker}
func (h *StockHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ticker := mux.Vars(r)["ticker"]

	var in domain.StockUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stock, err := h.stocks.Update(ctx, ticker, in)
	if err != nil {
		h.logger.WithError(err).WithField("ticker", ticker).Error("Stock update failed")
		respondDomainError(w, err, "Failed to update stock")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stock":   stock,
	})
}

// parseFilter builds a StockFilter from query parameters.
func parseFilter(q map[string][]string) (domain.StockFilter, error) {
	get := func(key string) string {
		if vs := q[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	filter := domain.StockFilter{
		TickerSearch:      get("ticker"),
		CompanySearch:     get("company"),
		MarketCapCategory: domain.MarketCapCategory(get("market_cap_category")),
	}

	if v := get("sector_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid sector_id %q", v)
		}
		filter.SectorID = &id
	}

	if v := get("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return filter, fmt.Errorf("invalid is_active %q", v)
		}
		filter.IsActive = &active
	}

	decimals := []struct {
		key    string
		target **decimal.Decimal
	}{
		{"max_pe", &filter.MaxPERatio},
		{"max_pb", &filter.MaxPBRatio},
		{"min_dividend", &filter.MinDividendYield},
		{"min_market_cap", &filter.MinMarketCap},
		{"max_market_cap", &filter.MaxMarketCap},
	}
	for _, p := range decimals {
		v := get(p.key)
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filter, fmt.Errorf("invalid %s %q", p.key, v)
		}
		*p.target = &d
	}

	return filter, nil
}

func intParam(v string, defaultValue int) int {
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}
