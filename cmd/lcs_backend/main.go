package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	_ "github.com/SscSPs/landed_cost_service/cmd/docs"
	"github.com/SscSPs/landed_cost_service/internal/adapters/fxapi"
	"github.com/SscSPs/landed_cost_service/internal/adapters/localization"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/internal/core/services"
	"github.com/SscSPs/landed_cost_service/internal/handlers"
	"github.com/SscSPs/landed_cost_service/internal/middleware"
	"github.com/SscSPs/landed_cost_service/internal/platform/config"
	"github.com/SscSPs/landed_cost_service/internal/repositories/database/pgsql"
	"github.com/SscSPs/landed_cost_service/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Landed Cost Service API
// @version 1.0
// @description Countries, products and currency pairs, and the landed cost calculator built on them.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	liveRates := fxapi.NewClient(cfg.FXAPIHost, cfg.FXAPIKey, cfg.FXHTTPTimeout)

	var remoteRates portssvc.RateLookup
	if cfg.RateLookupMode == config.RateLookupRemote {
		remoteRates = localization.NewClient(cfg.LocalizationEndpoint, cfg.FXHTTPTimeout)
		logger.Info("Landed cost rates resolved remotely", slog.String("endpoint", cfg.LocalizationEndpoint))
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, liveRates, remoteRates)

	if cfg.SeedStaticData {
		if err := serviceContainer.StaticData.InitializeStaticData(ctx); err != nil {
			logger.Error("Failed to seed static data", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	limiterInstance, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)

	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		metrics.Middleware(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(limiterInstance),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies every pending up migration through a short-lived database/sql handle.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
