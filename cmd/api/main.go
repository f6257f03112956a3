package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"realestate-form-intake/config"
	_ "realestate-form-intake/docs" // Important for Swagger
	v1 "realestate-form-intake/internal/delivery/http/v1"
	"realestate-form-intake/internal/usecase"
	"realestate-form-intake/pkg/logger"
	"realestate-form-intake/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Listing Inquiry Intake API
// @version         1.0
// @description     Accepts property inquiries, stores them and notifies the listing agent.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Log.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	logger.Log.Info("Starting form intake", "port", cfg.Port, "store", cfg.RecordStoreDriver, "mail", cfg.MailDriver)

	loc, err := time.LoadLocation(cfg.NotifyTimezone)
	if err != nil {
		logger.Log.Error("Unknown NOTIFY_TIMEZONE", "timezone", cfg.NotifyTimezone, "error", err)
		os.Exit(1)
	}

	// 3. Setup Record Store
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	repo, closeStore, err := newContactRepository(startupCtx, cfg)
	cancelStartup()
	if err != nil {
		logger.Log.Error("Failed to set up record store", "driver", cfg.RecordStoreDriver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// 4. Setup Mail Transport
	sender := newMailSender(cfg)

	// 5. Setup UseCases
	validate := validation.NewValidator()
	metrics := usecase.NewContactMetrics(prometheus.DefaultRegisterer)
	notifier := usecase.NewContactNotifier(sender, cfg.MailFrom(), cfg.ContactEmailTo, loc)
	contactUC := usecase.NewContactUsecase(validate, repo, notifier, metrics)
	healthUC := usecase.NewHealthUsecase(repo, cfg.RecordStoreDriver)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Gatherer:  prometheus.DefaultGatherer,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
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
