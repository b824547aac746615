package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"miniflux-connector/config"
	"miniflux-connector/driver"
	"miniflux-connector/handler"
	"miniflux-connector/repository"
	"miniflux-connector/service"
)

func main() {
	// Parse command line flags
	healthCheck := flag.Bool("health-check", false, "Perform health check and exit")
	flag.Parse()

	// Setup structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if *healthCheck {
		fmt.Println("OK")
		return
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	settingsRepo := newSettingsRepository(cfg, logger)
	settings, err := settingsRepo.Load(context.Background())
	if err != nil {
		logger.Error("Failed to load connection settings",
			"source", settingsRepo.SourceDescription(),
			"error", err)
		os.Exit(1)
	}

	// Wire the connector: driver, services, host-facing handler
	client := driver.NewMinifluxClient(&settings.Credentials, logger)
	if cfg.HTTP.Timeout > 0 {
		client.SetTimeout(cfg.HTTP.Timeout)
	}

	mapper := service.NewEntryMapper(settings.Options.EffectiveActionMode(), logger)
	verifier := service.NewVerificationService(client, &settings.Credentials, logger)
	loader := service.NewLoadService(client, &settings.Credentials, &settings.Options, mapper, logger)
	dispatcher := service.NewActionService(client, mapper, logger)
	connector := handler.NewConnectorHandler(verifier, loader, dispatcher, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	handler.NewHTTPHandler(connector).RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Bridge server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("Miniflux connector bridge started",
		"service", cfg.ServiceName,
		"port", cfg.Server.Port,
		"settings_source", settingsRepo.SourceDescription(),
		"action_mode", string(settings.Options.EffectiveActionMode()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Bridge server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Miniflux connector bridge stopped")
}

// newSettingsRepository selects the configured settings source
func newSettingsRepository(cfg *config.Config, logger *slog.Logger) repository.SettingsRepository {
	if cfg.Settings.Source == config.SettingsSourceFile {
		return repository.NewFileSettingsRepository(cfg.Settings.FilePath, logger)
	}
	return repository.NewEnvSettingsRepository(logger)
}
