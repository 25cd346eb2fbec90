package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/transaction-insights/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	SeedSvc         seedService
	TransactionSvc  transactionService
}
