package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"go-jobportal-api/config"
	_ "go-jobportal-api/docs" // Important for Swagger
	"go-jobportal-api/internal/authz"
	v1 "go-jobportal-api/internal/delivery/http/v1"
	"go-jobportal-api/internal/repository/postgres"
	"go-jobportal-api/internal/storage"
	"go-jobportal-api/internal/usecase"
	"go-jobportal-api/pkg/database"
	"go-jobportal-api/pkg/logger"
)

// @title           Job Application Intake API
// @version         1.0
// @description     Job application submission, resume storage and status workflow.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Blob Store (constructed once, injected everywhere)
	blobStore, err := storage.NewMinIO(cfg)
	if err != nil {
		logger.Log.Error("Failed to connect to object storage", "error", err)
		os.Exit(1)
	}

	// 5. Setup Repositories
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)

	// 6. Setup UseCases
	gate := authz.NewGate()
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, blobStore, gate)

	// 7. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ApplicationUC: applicationUC,
		Config:        cfg,
		Registry:      registry,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
