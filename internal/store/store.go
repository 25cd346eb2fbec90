package store

import (
	"context"

	"github.com/GregMSThompson/transaction-insights/internal/dto"
	"github.com/GregMSThompson/transaction-insights/internal/models"
)

const (
	transactionsCollection = "products"
	maxPagePrealloc        = 100
)

// TransactionStore is implemented by every backend the service can run on.
type TransactionStore interface {
	InsertMany(ctx context.Context, txs []models.Transaction) (int, error)
	Count(ctx context.Context, f dto.TransactionFilter) (int64, error)
	Find(ctx context.Context, f dto.TransactionFilter, page dto.Page) ([]models.Transaction, error)
	SumPrice(ctx context.Context, f dto.TransactionFilter) (float64, error)
	CountByCategory(ctx context.Context, f dto.TransactionFilter) ([]dto.CategoryCount, error)
}

var (
	_ TransactionStore = (*mongoTransactionStore)(nil)
	_ TransactionStore = (*firestoreTransactionStore)(nil)
)

// pageBuffer sizes the result slice for a page without trusting the
// requested limit.
func pageBuffer(page dto.Page) []models.Transaction {
	return make([]models.Transaction, 0, max(0, min(page.Limit, maxPagePrealloc)))
}
