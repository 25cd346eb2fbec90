package store

import (
	"context"
	"testing"
	"time"

	"github.com/GregMSThompson/transaction-insights/internal/dto"
	"github.com/GregMSThompson/transaction-insights/internal/models"
	"github.com/GregMSThompson/transaction-insights/pkg/helpers"
)

func seedFixture() []models.Transaction {
	march := func(day int) time.Time { return time.Date(2022, time.March, day, 10, 0, 0, 0, time.UTC) }
	return []models.Transaction{
		{SourceID: 1, Title: "Backpack", Description: "Fits 15 inch laptops", Price: 50, Category: "bags", Sold: true, DateOfSale: march(1)},
		{SourceID: 2, Title: "Cotton Jacket", Description: "Great outerwear", Price: 150, Category: "men's clothing", Sold: false, DateOfSale: march(2)},
		{SourceID: 3, Title: "Gold Ring", Description: "Solid gold", Price: 950, Category: "jewelery", Sold: true, DateOfSale: march(3)},
		{SourceID: 4, Title: "Hard Drive", Description: "External storage", Price: 64, Category: "electronics", Sold: true, DateOfSale: time.Date(2022, time.April, 4, 10, 0, 0, 0, time.UTC)},
	}
}

// exerciseStore runs the same assertions against any backend.
func exerciseStore(t *testing.T, s TransactionStore) {
	t.Helper()
	ctx := context.Background()

	n, err := s.InsertMany(ctx, seedFixture())
	if err != nil {
		t.Fatalf("InsertMany error: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 inserted, got %d", n)
	}

	march := dto.TransactionFilter{Month: 3}

	total, err := s.Count(ctx, march)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 march records, got %d", total)
	}

	sold := march
	sold.Sold = helpers.Ptr(true)
	sum, err := s.SumPrice(ctx, sold)
	if err != nil {
		t.Fatalf("SumPrice error: %v", err)
	}
	if sum != 1000 {
		t.Fatalf("expected sold total 1000, got %v", sum)
	}

	page, err := s.Find(ctx, march, dto.Page{Skip: 1, Limit: 1})
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(page) != 1 || page[0].SourceID != 2 {
		t.Fatalf("expected second newest record, got %+v", page)
	}
	if page[0].ID == "" {
		t.Fatal("expected store-assigned id")
	}

	search := march
	search.Search = helpers.Ptr("GOLD")
	found, err := s.Find(ctx, search, dto.Page{Limit: 10})
	if err != nil {
		t.Fatalf("Find with search error: %v", err)
	}
	if len(found) != 1 || found[0].SourceID != 3 {
		t.Fatalf("search mismatch: %+v", found)
	}

	search.Search = helpers.Ptr("150")
	n64, err := s.Count(ctx, search)
	if err != nil {
		t.Fatalf("Count with price search error: %v", err)
	}
	if n64 != 1 {
		t.Fatalf("expected price search to match 1, got %d", n64)
	}

	bucket := march
	bucket.PriceMin = helpers.Ptr(901.0)
	top, err := s.Count(ctx, bucket)
	if err != nil {
		t.Fatalf("Count bucket error: %v", err)
	}
	if top != 1 {
		t.Fatalf("expected 1 record above 901, got %d", top)
	}

	cats, err := s.CountByCategory(ctx, march)
	if err != nil {
		t.Fatalf("CountByCategory error: %v", err)
	}
	if len(cats) != 3 || cats[0].Category != "bags" || cats[0].Count != 1 {
		t.Fatalf("category breakdown mismatch: %+v", cats)
	}
}
