package helpers

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/transaction-insights/pkg/logger"
)

// TestCtx returns a context carrying a discarding logger.
func TestCtx() context.Context {
	log := slog.New(logger.NewTestHandler(slog.LevelDebug))
	return logger.ToContext(context.Background(), log)
}
