package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmercado/uicguessr/internal/api"
	"github.com/jmercado/uicguessr/internal/config"
	"github.com/jmercado/uicguessr/internal/db"
	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/repository/sqlite"
	"github.com/jmercado/uicguessr/internal/services"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("UICguessr Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("time_per_question=%d", cfg.TimePerQuestion)
	log.Debug("hint_delay_seconds=%d", cfg.HintDelaySeconds)
	log.Debug("session_ttl_minutes=%d", cfg.SessionTTLMinutes)
	log.Debug("sweep_interval_secs=%d", cfg.SweepIntervalSecs)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	settingsRepo := sqlite.NewSettingsRepository(database.DB)
	profileRepo := sqlite.NewProfileRepository(database.DB)
	achievementRepo := sqlite.NewAchievementRepository(database.DB)
	learningRepo := sqlite.NewLearningRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)

	sessionService := services.NewSessionService(
		settingsRepo, profileRepo, achievementRepo, learningRepo,
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
		time.Duration(cfg.SweepIntervalSecs)*time.Second,
		services.WithQuestionTiming(cfg.TimePerQuestion, time.Duration(cfg.HintDelaySeconds)*time.Second),
	)

	srv := &api.Server{
		Sessions: sessionService,
		Settings: services.NewSettingsService(settingsRepo),
		Profile:  services.NewProfileService(statsRepo, learningRepo, achievementRepo),
		Campus:   services.NewCampusService(),
		DB:       database.DB,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

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

	log.Debug("stopping session registry")
	sessionService.Shutdown()

	log.Info("===========================================")
	log.Info("UICguessr Server Stopped")
	log.Info("===========================================")
}
