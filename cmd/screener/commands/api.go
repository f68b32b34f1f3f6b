package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/valuehound/screener/internal/api"
	"github.com/valuehound/screener/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the REST API server",
	Long: `Start the screener REST API server.

Endpoints:
  GET   /health                - Health check
  GET   /api/stocks            - Search stocks (filter/sort/paginate)
  POST  /api/stocks            - Create a stock
  GET   /api/stocks/{ticker}   - Look up a stock
  PATCH /api/stocks/{ticker}   - Update a stock
  GET   /api/screen            - Undervaluation screen
  GET   /api/stats             - Coverage statistics
  GET   /api/sectors           - Sector directory
  GET   /api/industries        - Distinct industries
  POST  /api/seed              - Load example data

Example:
  go run ./cmd/screener api
  go run ./cmd/screener api --port 8080
  go run ./cmd/screener api --in-memory`,
	RunE: runAPIServer,
}

var (
	apiPort      string
	apiInMemory  bool
	apiSeedCount int
)

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
	apiCmd.Flags().BoolVar(&apiInMemory, "in-memory", false, "run against a seeded in-memory store instead of Postgres")
	apiCmd.Flags().IntVar(&apiSeedCount, "seed-count", 50, "number of example stocks to seed in in-memory mode")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := buildDeps(ctx, apiInMemory, apiSeedCount)
	if err != nil {
		return err
	}
	defer d.close()

	if apiPort != "" {
		d.cfg.Port = apiPort
	}

	stockHandler := handlers.NewStockHandler(d.engine, d.stocks, d.log)
	screenHandler := handlers.NewScreenHandler(d.engine, d.log)
	sectorHandler := handlers.NewSectorHandler(d.sectors, d.log)
	seedHandler := handlers.NewSeedHandler(d.seeder, d.log)

	router := api.NewRouter(stockHandler, screenHandler, sectorHandler, seedHandler, d.log)
	server := api.New(d.cfg, d.log, router)

	go func() {
		if err := server.Start(); err != nil {
			d.log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s\n", d.cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	d.log.Info("Server stopped")
	return nil
}
