package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/payledger/internal/domain/usecase/mirror"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateMirror(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Component:  "mirror",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Mirror exited with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := cfg.Mirror.Database
	dbManager := database.NewManager(&dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		return err
	}

	mirrorService := mirror.NewService(dbManager.TransactionManager(), tp, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Mirror.Server.AllowedOrigins)
	routes.SetupMirrorRoutes(router, handler.NewMirrorHandler(mirrorService, dbManager.Ping, appLogger))

	sc := cfg.Mirror.Server
	server := &http.Server{
		Addr:              sc.Addr(),
		Handler:           router,
		ReadTimeout:       sc.ReadTimeout,
		WriteTimeout:      sc.WriteTimeout,
		ReadHeaderTimeout: sc.ReadHeaderTimeout,
		IdleTimeout:       sc.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("Starting mirror server", map[string]any{
			"addr": sc.Addr(),
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down mirror server...", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), sc.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	appLogger.Info("Mirror server exited gracefully", nil)
	return nil
}
