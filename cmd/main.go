package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/league-signups/config"
	"github.com/Dosada05/league-signups/db"
	"github.com/Dosada05/league-signups/handlers"
	"github.com/Dosada05/league-signups/live"
	"github.com/Dosada05/league-signups/repositories"
	"github.com/Dosada05/league-signups/roster"
	api "github.com/Dosada05/league-signups/routes"
	"github.com/Dosada05/league-signups/services"
	"github.com/go-chi/chi/v5"
)

const sweepInterval = 30 * time.Second // How often abandoned intake sessions are purged

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("database", cfg.DatabasePath))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabasePath, 5*time.Second)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()

	// Схема создаётся идемпотентно, повторный запуск поверх существующего файла безопасен.
	if err := db.Migrate(context.Background(), dbConn); err != nil {
		logger.Error("failed to migrate database schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database ready")

	// Инициализация WebSocket Hub
	wsHub := live.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	// Инициализация репозиториев
	signupRepo := repositories.NewSQLiteSignupRepository(dbConn)
	claimRepo := repositories.NewSQLiteClaimEventRepository(dbConn)
	logger.Info("Repositories initialized")

	// Инициализация координатора и сервисов
	coordinator := roster.NewCoordinator()
	signupService := services.NewSignupService(signupRepo, coordinator, logger)
	rosterService := services.NewRosterService(coordinator, signupRepo, claimRepo, wsHub, logger)
	sessionService := services.NewSessionService(signupService, cfg.ModalTimeout, logger)
	logger.Info("Services initialized")

	// Восстановление состояния ростеров из журнала заявок
	if err := rosterService.RebuildRosters(context.Background()); err != nil {
		logger.Error("failed to rebuild rosters from storage", slog.Any("error", err))
		os.Exit(1)
	}

	// Запуск уборщика просроченных сессий ввода
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		logger.Info("Intake session sweeper started", slog.Duration("interval", sweepInterval))

		for range ticker.C {
			sessionService.SweepExpired()
		}
	}()

	// Инициализация обработчиков HTTP
	signupHandler := handlers.NewSignupHandler(signupService, rosterService)
	sessionHandler := handlers.NewSessionHandler(sessionService, signupHandler)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, signupHandler, sessionHandler, rosterHandler, webSocketHandler)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
