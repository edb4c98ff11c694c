package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adloom/internal/adapter/amqp"
	"adloom/internal/adapter/gemini"
	httpadapter "adloom/internal/adapter/http"
	"adloom/internal/adapter/notify"
	"adloom/internal/adapter/postgres"
	"adloom/internal/adapter/usecase"
	"adloom/internal/config"
	"adloom/internal/core/lifecycle"
	"adloom/internal/db"
	"adloom/internal/scheduler"
	"adloom/internal/sessionstore"
)

// main is the entry point of the adloom service. It loads configuration,
// optionally migrates and seeds the database, wires the generation,
// simulation, billing and content usecases, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server
// and the campaign scheduler.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool, cfg.DemoUserID); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	ledgerRepo := postgres.NewLedgerRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)

	gen, err := gemini.New(ctx, cfg.Gemini)
	if err != nil {
		logger.Error("gemini client error", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, generation runs in fallback mode")
	}

	hub := httpadapter.NewSSEHub(logger)
	publishers := scheduler.Fanout{hub}
	if cfg.AMQP.URL != "" {
		broker, err := amqp.New(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			logger.Error("amqp connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer broker.Close()
		publishers = append(publishers, broker)
		logger.Info("publishing lifecycle events", slog.String("exchange", cfg.AMQP.Exchange))
	}

	store := sessionstore.New()
	engine := lifecycle.New(cfg.Sim.ReviewPeriod)
	sched := scheduler.New(engine, store, campaignRepo, publishers, logger, cfg.Sim.TickInterval)
	defer sched.Stop()

	adgenUC := usecase.NewAdGenUseCase(gen, logger)
	simUC := usecase.NewSimulationUseCase(ledgerRepo, campaignRepo, store, sched, engine, logger, cfg.DemoUserID)
	billingUC := usecase.NewBillingUseCase(ledgerRepo, notify.NewLogNotifier(logger), logger, cfg.DemoUserID)
	dashboardUC := usecase.NewDashboardUseCase(ledgerRepo, store, logger, cfg.DemoUserID)
	contentUC := usecase.NewContentUseCase(gen, articleRepo)

	handler := httpadapter.NewHandler(adgenUC, simUC, billingUC, dashboardUC, contentUC, hub, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
