package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/api"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/config"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/db"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/logger"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/repository/sqlite"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Progression Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("submit_retry_limit=%d", cfg.SubmitRetryLimit)
	log.Debug("leaderboard_size=%d", cfg.LeaderboardSize)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize storage and services
	store := sqlite.NewStore(database)
	progressionService := services.NewProgressionService(store, cfg.SubmitRetryLimit)
	progressService := services.NewProgressService(store)

	srv := &api.Server{
		DB:                 database,
		ProgressionService: progressionService,
		ProgressService:    progressService,
		LeaderboardSize:    cfg.LeaderboardSize,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Progression Server Stopped")
	log.Info("===========================================")
}
