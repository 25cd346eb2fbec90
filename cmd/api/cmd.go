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

	"github.com/GregMSThompson/transaction-insights/internal/bootstrap"
	seedclient "github.com/GregMSThompson/transaction-insights/internal/client/seed"
	"github.com/GregMSThompson/transaction-insights/internal/config"
	"github.com/GregMSThompson/transaction-insights/internal/handlers"
	"github.com/GregMSThompson/transaction-insights/internal/response"
	"github.com/GregMSThompson/transaction-insights/internal/router"
	"github.com/GregMSThompson/transaction-insights/internal/services"
)

const shutdownTimeout = 15 * time.Second

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(ctx, cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close(context.Background())

	// stores
	tstore := bs.TransactionStore()

	// clients
	seeder := seedclient.NewAdapter(cfg.SeedURL, cfg.SeedTimeout)

	// services
	seedserv := services.NewSeedService(seeder, tstore)
	txserv := services.NewTransactionService(tstore)

	// response handler
	rh := response.New(bs.Log)

	// dependencies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.SeedSvc = seedserv
	deps.TransactionSvc = txserv

	// router
	r := router.NewRouter(deps, router.Options{
		PathPrefix:  cfg.PathPrefix,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		bs.Log.Info("server listening", "addr", srv.Addr, "prefix", cfg.PathPrefix, "store", cfg.StoreDriver)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			exitOnError("server start failed", err, bs.Log)
		}
	case <-ctx.Done():
		bs.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			bs.Log.Error("graceful shutdown failed", "error", err)
		}
	}
}
