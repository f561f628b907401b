package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pcof-site-backend/internal/client"
	"pcof-site-backend/internal/config"
	"pcof-site-backend/internal/content"
	"pcof-site-backend/internal/logging"
	"pcof-site-backend/internal/server"
	"pcof-site-backend/internal/service"
	"pcof-site-backend/internal/store"
	"pcof-site-backend/internal/store/gormstore"
	"pcof-site-backend/internal/store/jsonfile"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	ctx := context.Background()

	contentRepo := content.NewRepository(cfg.DataDir)

	var recordStore store.RecordStore
	if cfg.DatabaseURL != "" {
		gs, err := gormstore.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Error(ctx, "open database", "error", err)
			os.Exit(1)
		}
		recordStore = gs
	} else {
		recordStore = jsonfile.New(cfg.DataDir)
	}

	// Absent Stripe credentials are allowed: donation endpoints degrade to
	// "feature unavailable" instead of the process refusing to start.
	payments := client.NewStripeClient(&cfg.Stripe)
	if !payments.Configured() {
		logger.Warn(ctx, "stripe secret key not set, checkout disabled")
	}

	donationService := service.NewDonationService(payments, recordStore, cfg.BaseURL, logger)
	rsvpService := service.NewRSVPService(contentRepo, recordStore, logger)
	contentService := service.NewContentService(contentRepo)
	intakeService := service.NewIntakeService(recordStore, logger)
	adminService := service.NewAdminService(&cfg.Admin, contentRepo, recordStore)

	srv := server.NewServer(
		logger,
		cfg.Admin.JWTSecret,
		donationService,
		rsvpService,
		contentService,
		intakeService,
		adminService,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	logger.Info(ctx, "starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info(ctx, "signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "HTTP server shutdown error", "error", err)
		os.Exit(1)
	}
}
