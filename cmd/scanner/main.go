package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IykeSol/Token-safety-scanner/internal/chainstate"
	"github.com/IykeSol/Token-safety-scanner/internal/config"
	"github.com/IykeSol/Token-safety-scanner/internal/explorer"
	"github.com/IykeSol/Token-safety-scanner/internal/market"
	"github.com/IykeSol/Token-safety-scanner/internal/scan"
	"github.com/IykeSol/Token-safety-scanner/internal/security"
	"github.com/IykeSol/Token-safety-scanner/internal/server"
)

func main() {
	cfg := config.Load()

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	if cfg.EtherscanAPIKey == "" {
		logger.Error("ETHERSCAN_API_KEY not set")
		os.Exit(1)
	}

	scanner := scan.NewScanner(
		explorer.New(cfg.EtherscanAPIKey, cfg.ExplorerTimeout, logger),
		security.New(cfg.SecurityTimeout, logger),
		market.New(cfg.MarketTimeout),
		chainstate.New(cfg.SolanaRPCURL, cfg.ChainStateTimeout),
		logger,
	)

	srv := server.New(scanner, cfg.RateLimit, cfg.RateBurst, cfg.ResultCacheTTL, logger)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
