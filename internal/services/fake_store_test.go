package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/GregMSThompson/transaction-insights/internal/dto"
	"github.com/GregMSThompson/transaction-insights/internal/models"
)

// fakeTransactionStore evaluates filters in memory the way the real stores
// evaluate them server-side.
type fakeTransactionStore struct {
	mu      sync.Mutex
	txs     []models.Transaction
	err     error
	calls   int
	filters []dto.TransactionFilter
}

func (f *fakeTransactionStore) record(filter dto.TransactionFilter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.filters = append(f.filters, filter)
	return f.err
}

func (f *fakeTransactionStore) match(filter dto.TransactionFilter) []models.Transaction {
	var out []models.Transaction
	for _, tx := range f.txs {
		if tx.Month() != filter.Month {
			continue
		}
		if filter.Sold != nil && tx.Sold != *filter.Sold {
			continue
		}
		if filter.PriceMin != nil && tx.Price < *filter.PriceMin {
			continue
		}
		if filter.PriceMax != nil && tx.Price > *filter.PriceMax {
			continue
		}
		if search := strings.ToLower(filter.SearchText()); search != "" {
			price, ok := filter.SearchPrice()
			if !strings.Contains(strings.ToLower(tx.Title), search) &&
				!strings.Contains(strings.ToLower(tx.Description), search) &&
				!(ok && tx.Price == price) {
				continue
			}
		}
		out = append(out, tx)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateOfSale.After(out[j].DateOfSale) })
	return out
}

func (f *fakeTransactionStore) Count(_ context.Context, filter dto.TransactionFilter) (int64, error) {
	if err := f.record(filter); err != nil {
		return 0, err
	}
	return int64(len(f.match(filter))), nil
}

func (f *fakeTransactionStore) Find(_ context.Context, filter dto.TransactionFilter, page dto.Page) ([]models.Transaction, error) {
	if err := f.record(filter); err != nil {
		return nil, err
	}
	all := f.match(filter)
	if page.Skip >= int64(len(all)) {
		return nil, nil
	}
	end := page.Skip + page.Limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[page.Skip:end], nil
}

func (f *fakeTransactionStore) SumPrice(_ context.Context, filter dto.TransactionFilter) (float64, error) {
	if err := f.record(filter); err != nil {
		return 0, err
	}
	var total float64
	for _, tx := range f.match(filter) {
		total += tx.Price
	}
	return total, nil
}

func (f *fakeTransactionStore) CountByCategory(_ context.Context, filter dto.TransactionFilter) ([]dto.CategoryCount, error) {
	if err := f.record(filter); err != nil {
		return nil, err
	}
	counts := map[string]int64{}
	for _, tx := range f.match(filter) {
		counts[tx.Category]++
	}
	var out []dto.CategoryCount
	for k, v := range counts {
		out = append(out, dto.CategoryCount{Category: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}
