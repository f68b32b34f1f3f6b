package handlers

import (
	"net/http"
	"strconv"

	"github.com/valuehound/screener/internal/seed"
	"github.com/valuehound/screener/pkg/logger"
)

// SeedHandler triggers mock data loading.
type SeedHandler struct {
	seeder *seed.Seeder
	logger *logger.Logger
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seeder *seed.Seeder, log *logger.Logger) *SeedHandler {
	return &SeedHandler{
		seeder: seeder,
		logger: log,
	}
}

// Seed populates the store with reference sectors and example stocks.
// POST /api/seed?count=50
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	count := seed.DefaultStockCount
	if v := r.URL.Query().Get("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			count = n
		}
	}

	if err := h.seeder.Run(r.Context(), count); err != nil {
		h.logger.WithError(err).Error("Seeding failed")
		respondError(w, http.StatusInternalServerError, "Failed to seed data")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   count,
	})
}
