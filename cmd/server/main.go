package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/api"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/config"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/service"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/source"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create the document source and services
	exportClient := source.NewExportClient(cfg.Source.BaseURL, cfg.Source.FetchTimeout)
	snapshotService := service.NewSnapshotService(exportClient)
	systemService := service.NewSystemService(snapshotService)

	// Initial ingestion pass. A failure here is not fatal: the server
	// starts anyway and answers 503 until a refresh succeeds.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Source.FetchTimeout)
	if _, err := snapshotService.Refresh(ctx); err != nil {
		log.Printf("Initial snapshot refresh failed: %v", err)
	}
	cancel()

	// Scheduled refreshes
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Source.RefreshSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Source.FetchTimeout)
		defer cancel()
		if _, err := snapshotService.Refresh(ctx); err != nil {
			log.Printf("Scheduled snapshot refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Invalid refresh schedule %q: %v", cfg.Source.RefreshSpec, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(systemService, snapshotService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
