package main

import (
	"alcyxob/exercise-catalog/internal/api"
	"alcyxob/exercise-catalog/internal/bootstrap"
	"alcyxob/exercise-catalog/internal/cache"
	"alcyxob/exercise-catalog/internal/catalog"
	"alcyxob/exercise-catalog/internal/config"
	"alcyxob/exercise-catalog/internal/logging"
	"alcyxob/exercise-catalog/internal/metrics"
	"alcyxob/exercise-catalog/internal/service"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

// @title Exercise Catalog API
// @version 1.0
// @description Searchable exercise library with facets, catalog reloads and video uploads.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	logging.Setup(logging.Params{
		Level:      cfg.Log.Level,
		FormatJSON: cfg.Log.FormatJSON,
		FileName:   cfg.Log.File,
		ToStdout:   cfg.Log.ToStdout,
	})
	log.Info("starting exercise catalog server...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Remote repository and object storage ---
	deps, err := bootstrap.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("could not initialize dependencies: %s", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			log.Errorf("failed to close dependencies: %s", err)
		}
	}()

	// --- Metrics ---
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector())
	metricsManager := metrics.NewManager("catalog", "server", promRegistry)

	// --- Catalog ---
	store := catalog.NewStore(deps.Loader(cfg.Catalog))
	exerciseService := service.NewExerciseService(
		store,
		deps.Repo,
		deps.FileStorage,
		cache.NewSearchCache(cfg.Cache.SizeMB, cfg.Cache.TTL),
		metricsManager,
		cfg.Catalog.SnapshotKey,
	)

	// A failed first load leaves the server up with an empty catalog; reloads may fix it later.
	loadCtx, loadCancel := context.WithTimeout(ctx, cfg.Catalog.LoadTimeout)
	if _, err := store.Load(loadCtx); err != nil {
		log.Errorf("initial catalog load failed, serving empty results: %s", err)
	}
	loadCancel()

	go store.RunRefresh(ctx, cfg.Catalog.RefreshInterval)

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, cfg.JWT.Secret, exerciseService, metricsManager, promRegistry)
	if cfg.JWT.Secret == "" {
		log.Warn("jwt.secret is empty, admin endpoints are disabled")
	}

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %s", err)
	}

	log.Info("server exiting")
}
