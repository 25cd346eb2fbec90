package services

import (
	"context"
	"fmt"

	"github.com/GregMSThompson/transaction-insights/internal/dto"
	"github.com/GregMSThompson/transaction-insights/internal/errs"
	"github.com/GregMSThompson/transaction-insights/internal/models"
	"github.com/GregMSThompson/transaction-insights/pkg/logger"
)

type seedFetcher interface {
	FetchTransactions(ctx context.Context) ([]models.Transaction, error)
}

type seedStore interface {
	InsertMany(ctx context.Context, txs []models.Transaction) (int, error)
}

type seedService struct {
	fetcher seedFetcher
	txs     seedStore
}

func NewSeedService(fetcher seedFetcher, txs seedStore) *seedService {
	return &seedService{fetcher: fetcher, txs: txs}
}

// Initialize loads the whole upstream dataset into the store. It appends on
// every call; running it twice duplicates the records.
func (s *seedService) Initialize(ctx context.Context) (dto.SeedResult, error) {
	log := logger.FromContext(ctx)

	txs, err := s.fetcher.FetchTransactions(ctx)
	if err != nil {
		return dto.SeedResult{}, err
	}
	if err := validateSeed(txs); err != nil {
		return dto.SeedResult{}, err
	}

	n, err := s.txs.InsertMany(ctx, txs)
	if err != nil {
		return dto.SeedResult{}, err
	}

	log.Info("database initialized", "records", n)
	return dto.SeedResult{
		Message:         "Database initialized successfully",
		RecordsInserted: n,
	}, nil
}

func validateSeed(txs []models.Transaction) error {
	for i, tx := range txs {
		if tx.DateOfSale.IsZero() {
			return errs.NewBulkInsertError(fmt.Sprintf("record %d (id %d) has no dateOfSale", i, tx.SourceID), nil)
		}
		if tx.Price < 0 {
			return errs.NewBulkInsertError(fmt.Sprintf("record %d (id %d) has negative price", i, tx.SourceID), nil)
		}
	}
	return nil
}
