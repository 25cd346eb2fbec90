package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/GregMSThompson/transaction-insights/internal/bootstrap"
	seedclient "github.com/GregMSThompson/transaction-insights/internal/client/seed"
	"github.com/GregMSThompson/transaction-insights/internal/config"
	"github.com/GregMSThompson/transaction-insights/internal/services"
	"github.com/GregMSThompson/transaction-insights/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger, cleanup func()) {
	if err != nil {
		log.Error(message, "error", err)
		cleanup()
		os.Exit(1)
	}
}

// seed loads the upstream dataset once and exits. Like GET /init it appends,
// so running it twice duplicates the records.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(ctx, cfg)
	exitOnError("bootstrap failed", err, bs.Log, stop)
	closeAll := func() {
		stop()
		if err := bs.Close(context.Background()); err != nil {
			bs.Log.Error("close failed", "error", err)
		}
	}

	// services
	seeder := seedclient.NewAdapter(cfg.SeedURL, cfg.SeedTimeout)
	seedserv := services.NewSeedService(seeder, bs.TransactionStore())

	ctx = logger.ToContext(ctx, bs.Log.With("command", "seed", "source", cfg.SeedURL))
	result, err := seedserv.Initialize(ctx)
	exitOnError("seed failed", err, bs.Log, closeAll)

	bs.Log.Info(result.Message, "records", result.RecordsInserted)
	closeAll()
}
