package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/valuehound/screener/internal/domain"
	"github.com/valuehound/screener/pkg/logger"
)

// SectorHandler handles the sector directory endpoints.
type SectorHandler struct {
	sectors domain.SectorStore
	logger  *logger.Logger
}

// NewSectorHandler creates a new sector handler.
func NewSectorHandler(sectors domain.SectorStore, log *logger.Logger) *SectorHandler {
	return &SectorHandler{
		sectors: sectors,
		logger:  log,
	}
}

// List returns all sectors ordered by name.
// GET /api/sectors
func (h *SectorHandler) List(w http.ResponseWriter, r *http.Request) {
	sectors, err := h.sectors.ListAll(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Sector listing failed")
		respondDomainError(w, err, "Failed to list sectors")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"sectors": sectors,
	})
}

// GetByID returns one sector.
// GET /api/sectors/{id}
func (h *SectorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid sector id")
		return
	}

	sector, err := h.sectors.GetByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to retrieve sector")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"sector":  sector,
	})
}
