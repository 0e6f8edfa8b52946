package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/businessfin/bfp_backend/internal/core/ports/services"
	"github.com/businessfin/bfp_backend/internal/core/services"
	"github.com/businessfin/bfp_backend/internal/handlers"
	"github.com/businessfin/bfp_backend/internal/middleware"
	"github.com/businessfin/bfp_backend/internal/platform/config"
	"github.com/businessfin/bfp_backend/internal/repositories/memory"
)

// @title BusinessFin Pro Backend API
// @version 1.0
// @description Multi-company double-entry bookkeeping backend.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seeds := make([]memory.CompanySeed, len(cfg.Companies))
	for i, c := range cfg.Companies {
		seeds[i] = memory.CompanySeed{ID: c.ID, Name: c.Name}
	}
	registry, err := memory.NewCompanyRegistry(seeds)
	if err != nil {
		logger.Error("Failed to initialize company registry", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Company registry initialized", slog.Int("company_count", len(seeds)))

	svcs := &portssvc.ServiceContainer{
		Ledger:    services.NewLedgerService(registry),
		Reporting: services.NewReportingService(registry),
		Company:   services.NewCompanyService(registry),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, svcs)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
