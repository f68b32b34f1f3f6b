package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/valuehound/screener/internal/api/handlers"
	"github.com/valuehound/screener/pkg/logger"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	stockHandler *handlers.StockHandler,
	screenHandler *handlers.ScreenHandler,
	sectorHandler *handlers.SectorHandler,
	seedHandler *handlers.SeedHandler,
	log *logger.Logger,
) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Stocks
	api.HandleFunc("/stocks", stockHandler.Search).Methods("GET")
	api.HandleFunc("/stocks", stockHandler.Create).Methods("POST")
	api.HandleFunc("/stocks/{ticker}", stockHandler.GetByTicker).Methods("GET")
	api.HandleFunc("/stocks/{ticker}", stockHandler.Update).Methods("PATCH")

	// Screening
	api.HandleFunc("/screen", screenHandler.Screen).Methods("GET")
	api.HandleFunc("/stats", screenHandler.Statistics).Methods("GET")
	api.HandleFunc("/industries", screenHandler.Industries).Methods("GET")

	// Reference data
	api.HandleFunc("/sectors", sectorHandler.List).Methods("GET")
	api.HandleFunc("/sectors/{id}", sectorHandler.GetByID).Methods("GET")

	// Mock data
	if seedHandler != nil {
		api.HandleFunc("/seed", seedHandler.Seed).Methods("POST")
	}

	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status.
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "screener-api",
	})
}

// loggingMiddleware logs HTTP requests.
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics.
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
