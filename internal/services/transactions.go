package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/transaction-insights/internal/dto"
	"github.com/GregMSThompson/transaction-insights/internal/errs"
	"github.com/GregMSThompson/transaction-insights/internal/models"
	"github.com/GregMSThompson/transaction-insights/pkg/helpers"
	"github.com/GregMSThompson/transaction-insights/pkg/logger"
)

type transactionQueryStore interface {
	Count(ctx context.Context, f dto.TransactionFilter) (int64, error)
	Find(ctx context.Context, f dto.TransactionFilter, page dto.Page) ([]models.Transaction, error)
	SumPrice(ctx context.Context, f dto.TransactionFilter) (float64, error)
	CountByCategory(ctx context.Context, f dto.TransactionFilter) ([]dto.CategoryCount, error)
}

type transactionService struct {
	txs transactionQueryStore
}

func NewTransactionService(txs transactionQueryStore) *transactionService {
	return &transactionService{txs: txs}
}

func (s *transactionService) ListProducts(ctx context.Context, args dto.ListProductsArgs) (dto.ProductPage, error) {
	result := dto.ProductPage{CurrentPage: args.Page, PerPage: args.PerPage}
	if args.Page < 1 {
		return result, errs.NewValidationError("page must be a positive integer")
	}
	if args.PerPage < 1 {
		return result, errs.NewValidationError("perPage must be a positive integer")
	}

	filter := dto.TransactionFilter{Month: args.Month, Search: args.Search}

	total, err := s.txs.Count(ctx, filter)
	if err != nil {
		return result, err
	}

	perPage := int64(args.PerPage)
	result.TotalCount = total
	result.TotalPages = total / perPage
	if total%perPage != 0 {
		result.TotalPages++
	}
	result.Products = []models.Transaction{}

	// Past the last page nothing is fetched, so Skip stays below total.
	if int64(args.Page-1) >= result.TotalPages {
		return result, nil
	}

	products, err := s.txs.Find(ctx, filter, dto.Page{
		Skip:  int64(args.Page-1) * perPage,
		Limit: perPage,
	})
	if err != nil {
		return result, err
	}
	if products != nil {
		result.Products = products
	}
	return result, nil
}

func (s *transactionService) Statistics(ctx context.Context, month int) (dto.StatisticsResult, error) {
	var result dto.StatisticsResult
	if err := validateMonth(month); err != nil {
		return result, err
	}

	sold := dto.TransactionFilter{Month: month, Sold: helpers.Ptr(true)}
	unsold := dto.TransactionFilter{Month: month, Sold: helpers.Ptr(false)}

	soldCount, err := s.txs.Count(ctx, sold)
	if err != nil {
		return result, err
	}
	unsoldCount, err := s.txs.Count(ctx, unsold)
	if err != nil {
		return result, err
	}

	result.TotalSoldItems = soldCount
	result.TotalUnsoldItems = unsoldCount
	if soldCount == 0 {
		return result, nil
	}

	total, err := s.txs.SumPrice(ctx, sold)
	if err != nil {
		return result, err
	}
	result.TotalSaleAmount = dto.NewSaleAmount(total)
	return result, nil
}

// BarChart counts each price bucket with its own query, in ascending order.
func (s *transactionService) BarChart(ctx context.Context, month int) ([]dto.BarChartItem, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	buckets := dto.PriceBuckets()
	items := make([]dto.BarChartItem, 0, len(buckets))
	for _, b := range buckets {
		n, err := s.txs.Count(ctx, dto.TransactionFilter{
			Month:    month,
			PriceMin: helpers.Ptr(b.Min),
			PriceMax: b.Max,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, dto.BarChartItem{Range: b.Label(), Count: n})
	}
	return items, nil
}

func (s *transactionService) PieChart(ctx context.Context, month int) ([]dto.CategoryCount, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	items, err := s.txs.CountByCategory(ctx, dto.TransactionFilter{Month: month})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []dto.CategoryCount{}
	}
	return items, nil
}

// CombinedData runs statistics, bar chart and pie chart concurrently for the
// same month. The first failure cancels the others and nothing partial is
// returned.
func (s *transactionService) CombinedData(ctx context.Context, month int) (dto.CombinedDataResult, error) {
	var result dto.CombinedDataResult
	if err := validateMonth(month); err != nil {
		return result, err
	}

	var (
		stats dto.StatisticsResult
		bars  []dto.BarChartItem
		pies  []dto.CategoryCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.Statistics(gctx, month)
		return err
	})
	g.Go(func() error {
		var err error
		bars, err = s.BarChart(gctx, month)
		return err
	})
	g.Go(func() error {
		var err error
		pies, err = s.PieChart(gctx, month)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Error("combined query failed", "month", month, "error", err)
		return result, errs.NewCombinedQueryError(err)
	}

	result.CombinedData = []any{stats, bars, pies}
	return result, nil
}

// validateMonth only rejects months above 12; lower values reach the store
// and simply match nothing.
func validateMonth(month int) error {
	if month > 12 {
		return errs.NewInvalidMonthError(month)
	}
	return nil
}
