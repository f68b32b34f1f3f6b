package handlers

import (
	"net/http"

	"github.com/valuehound/screener/internal/screening"
	"github.com/valuehound/screener/pkg/logger"
)

// ScreenHandler handles the valuation screen and statistics endpoints.
type ScreenHandler struct {
	engine *screening.Engine
	logger *logger.Logger
}

// NewScreenHandler creates a new screen handler.
func NewScreenHandler(engine *screening.Engine, log *logger.Logger) *ScreenHandler {
	return &ScreenHandler{
		engine: engine,
		logger: log,
	}
}

// Screen returns the ranked undervaluation results, highest score first.
// GET /api/screen
func (h *ScreenHandler) Screen(w http.ResponseWriter, r *http.Request) {
	results, err := h.engine.Screen(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Valuation screen failed")
		respondDomainError(w, err, "Failed to run screen")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"total":   len(results),
		"results": results,
	})
}

// Statistics returns metric coverage counts over active stocks.
// GET /api/stats
func (h *ScreenHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.engine.Statistics(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Statistics failed")
		respondDomainError(w, err, "Failed to compute statistics")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats":   stats,
	})
}

// Industries returns the distinct industries of active stocks.
// GET /api/industries
func (h *ScreenHandler) Industries(w http.ResponseWriter, r *http.Request) {
	industries, err := h.engine.Industries(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Industries listing failed")
		respondDomainError(w, err, "Failed to list industries")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"industries": industries,
	})
}
