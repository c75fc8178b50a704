package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	remoteport "github.com/amirhossein-jamali/payledger/internal/domain/port/remote"
	"github.com/amirhossein-jamali/payledger/internal/domain/usecase/balance"
	"github.com/amirhossein-jamali/payledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/payledger/internal/domain/usecase/syncengine"
	"github.com/amirhossein-jamali/payledger/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/events"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/kvstore"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/remote"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateWallet(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Component:  "wallet",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Wallet exited with error", map[string]any{
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

	store, err := kvstore.Open(ctx, cfg.Store.KV())
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Warn("Failed to close local store", map[string]any{"error": err.Error()})
		}
	}()
	appLogger.Info("Local store opened", map[string]any{
		"driver": cfg.Store.Driver,
		"path":   cfg.Store.Path,
	})

	bus := events.NewBus(appLogger)

	ledgerStore, err := ledger.Open(ctx, store, bus, tp, appLogger)
	if err != nil {
		return err
	}
	register, err := balance.Open(ctx, store, bus, tp, appLogger, cfg.Wallet.SeedBalance)
	if err != nil {
		return err
	}

	var mirror remoteport.Mirror
	if cfg.Sync.MirrorURL != "" {
		mirror = remote.NewHTTPMirror(cfg.Sync.MirrorURL, cfg.Sync.Timeout, appLogger)
	} else {
		appLogger.Warn("No mirror URL configured, using the in-process echo mirror", nil)
		mirror = remote.NewEchoMirror(tp, cfg.Sync.EchoLatency)
	}

	engine := syncengine.NewEngine(ledgerStore, register, store, mirror, bus, tp, appLogger, syncengine.Config{
		Timeout:  cfg.Sync.Timeout,
		Debounce: cfg.Sync.Debounce,
	})
	if err := engine.Start(ctx); err != nil {
		return err
	}
	defer engine.Stop()

	jobs := scheduler.New(appLogger)
	if cfg.Sync.Schedule != "" {
		if err := jobs.AddJob(cfg.Sync.Schedule, engine); err != nil {
			return err
		}
	}
	jobs.Start()
	defer jobs.Stop()

	// Initial reconciliation; failures are recorded in the engine status
	var initial sync.WaitGroup
	initial.Add(1)
	go func() {
		defer initial.Done()
		_ = jobs.RunNow(engine)
	}()
	defer initial.Wait()

	walletService := wallet.NewService(ledgerStore, register, engine, appLogger, wallet.BankAccount{
		Name:    cfg.Wallet.BankName,
		Address: cfg.Wallet.BankAddress,
	})

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupWalletRoutes(router, handler.NewWalletHandler(walletService, appLogger))

	return serve(ctx, cfg.Server, router, appLogger, cfg.Environment)
}

func serve(ctx context.Context, sc config.ServerConfig, h http.Handler, appLogger coreport.Logger, env string) error {
	server := &http.Server{
		Addr:              sc.Addr(),
		Handler:           h,
		ReadTimeout:       sc.ReadTimeout,
		WriteTimeout:      sc.WriteTimeout,
		ReadHeaderTimeout: sc.ReadHeaderTimeout,
		IdleTimeout:       sc.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": sc.Addr(),
			"env":  env,
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

	appLogger.Info("Shutting down server...", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), sc.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
