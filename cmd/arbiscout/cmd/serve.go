package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/arbiscout/arbiscout/internal/api/handlers"
	"github.com/arbiscout/arbiscout/internal/api/middleware"
	"github.com/arbiscout/arbiscout/internal/catalog"
	"github.com/arbiscout/arbiscout/internal/config"
	"github.com/arbiscout/arbiscout/internal/engine"
	"github.com/arbiscout/arbiscout/internal/notify"
	"github.com/arbiscout/arbiscout/internal/ratetable"
	"github.com/arbiscout/arbiscout/internal/store"
	"github.com/arbiscout/arbiscout/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and rescore scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	table, err := ratetable.Load(cfg.RateTable.Path)
	if err != nil {
		return fmt.Errorf("loading rate table: %w", err)
	}
	if err := ratetable.Validate(table); err != nil {
		return fmt.Errorf("validating rate table: %w", err)
	}
	log.Info("rate table loaded", "version", table.Version, "path", cfg.RateTable.Path)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	evaluator := engine.NewEvaluator(table, engine.WithEvaluatorLogger(log))
	svcOpts := []engine.ServiceOption{
		engine.WithLogger(log),
		engine.WithRescoreBatchSize(cfg.Rescore.BatchSize),
	}
	if cfg.Catalog.BaseURL != "" {
		svcOpts = append(svcOpts, engine.WithCatalog(catalog.NewHTTPClient(
			cfg.Catalog.BaseURL,
			catalog.WithAPIKey(cfg.Catalog.APIKey),
			catalog.WithHTTPClient(&http.Client{Timeout: cfg.Catalog.Timeout}),
			catalog.WithRateLimit(cfg.Catalog.RateLimit.PerSecond, cfg.Catalog.RateLimit.Burst),
		)))
		log.Info("catalog enrichment enabled", "base_url", cfg.Catalog.BaseURL)
	}
	if cfg.Notify.DiscordWebhookURL != "" {
		notifier := notify.NewDiscordNotifier(cfg.Notify.DiscordWebhookURL)
		svcOpts = append(svcOpts, engine.WithNotifier(notifier, cfg.Notify.MinScore))
		log.Info("opportunity alerts enabled", "min_score", cfg.Notify.MinScore)
	}
	svc := engine.NewService(st, evaluator, svcOpts...)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	healthH := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthH.Healthz)
	e.GET("/readyz", healthH.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("arbiscout", Version))
	handlers.RegisterEvaluateRoutes(api, handlers.NewEvaluateHandler(svc))
	handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, st))
	handlers.RegisterRescoreRoutes(api, handlers.NewRescoreHandler(svc))
	handlers.RegisterRateTableRoutes(api, handlers.NewRateTableHandler(svc))

	var sched *engine.Scheduler
	if cfg.Rescore.Enabled {
		sched, err = engine.NewScheduler(svc, cfg.Rescore.Interval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
		log.Info("rescore scheduler started", "interval", cfg.Rescore.Interval)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	if sched != nil {
		<-sched.Stop().Done()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
