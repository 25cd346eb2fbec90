package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/transaction-insights/internal/dto"
	"github.com/GregMSThompson/transaction-insights/internal/errs"
	"github.com/GregMSThompson/transaction-insights/internal/models"
)

// firestoreTransactionStore keeps transactions in a top-level collection.
// Firestore has neither date functions nor substring matching, so the sale
// month is stored as saleMonth at write time and search runs in-process over
// the month's documents.
type firestoreTransactionStore struct {
	client *firestore.Client
}

func NewFirestoreTransactionStore(client *firestore.Client) *firestoreTransactionStore {
	return &firestoreTransactionStore{client: client}
}

func (s *firestoreTransactionStore) collection() *firestore.CollectionRef {
	return s.client.Collection(transactionsCollection)
}

func (s *firestoreTransactionStore) InsertMany(ctx context.Context, txs []models.Transaction) (int, error) {
	if len(txs) == 0 {
		return 0, nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(txs))
	coll := s.collection()

	for _, t := range txs {
		t.SaleMonth = t.Month()
		job, err := bw.Create(coll.NewDoc(), t)
		if err != nil {
			bw.End()
			return 0, errs.NewBulkInsertError("failed to schedule transaction insert", err)
		}
		jobs = append(jobs, job)
	}

	// Flush and close the writer, then wait on each job for errors.
	bw.End()
	inserted := 0
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return inserted, errs.NewBulkInsertError("failed to insert transactions", err)
		}
		inserted++
	}
	return inserted, nil
}

func (s *firestoreTransactionStore) Count(ctx context.Context, f dto.TransactionFilter) (int64, error) {
	if f.SearchText() != "" {
		var n int64
		err := s.scan(ctx, f, func(*models.Transaction) error {
			n++
			return nil
		})
		return n, err
	}

	q := s.query(f)
	res, err := q.NewAggregationQuery().WithCount("count").Get(ctx)
	if err != nil {
		return 0, queryError("count", "failed to count transactions", err)
	}
	v, err := aggregateValue(res, "count")
	if err != nil {
		return 0, err
	}
	return v.GetIntegerValue(), nil
}

func (s *firestoreTransactionStore) Find(ctx context.Context, f dto.TransactionFilter, page dto.Page) ([]models.Transaction, error) {
	out := pageBuffer(page)

	if f.SearchText() != "" {
		var seen int64
		err := s.scan(ctx, f, func(tx *models.Transaction) error {
			if seen >= page.Skip && int64(len(out)) < page.Limit {
				out = append(out, *tx)
			}
			seen++
			if int64(len(out)) == page.Limit {
				return errStopScan
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopScan) {
			return nil, err
		}
		return out, nil
	}

	q := s.query(f).
		OrderBy("dateOfSale", firestore.Desc).
		Offset(int(page.Skip)).
		Limit(int(page.Limit))
	err := s.each(ctx, q, func(tx *models.Transaction) error {
		out = append(out, *tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *firestoreTransactionStore) SumPrice(ctx context.Context, f dto.TransactionFilter) (float64, error) {
	q := s.query(f)
	res, err := q.NewAggregationQuery().WithSum("price", "total").Get(ctx)
	if err != nil {
		return 0, queryError("aggregate", "failed to sum transaction prices", err)
	}
	v, err := aggregateValue(res, "total")
	if err != nil {
		return 0, err
	}
	switch n := v.GetValueType().(type) {
	case *firestorepb.Value_IntegerValue:
		return float64(n.IntegerValue), nil
	case *firestorepb.Value_DoubleValue:
		return n.DoubleValue, nil
	default:
		return 0, nil
	}
}

func (s *firestoreTransactionStore) CountByCategory(ctx context.Context, f dto.TransactionFilter) ([]dto.CategoryCount, error) {
	counts := map[string]int64{}
	err := s.each(ctx, s.query(f).Select("category"), func(tx *models.Transaction) error {
		counts[tx.Category]++
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.CategoryCount, 0, len(counts))
	for category, n := range counts {
		out = append(out, dto.CategoryCount{Category: category, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// query applies every indexed predicate; search is left to scan.
func (s *firestoreTransactionStore) query(f dto.TransactionFilter) firestore.Query {
	q := s.collection().Query
	for _, p := range buildPredicates(f) {
		q = q.WhereEntity(p)
	}
	return q
}

var errStopScan = errors.New("stop scan")

// scan streams the month's documents newest first and hands over the ones
// matching the search term.
func (s *firestoreTransactionStore) scan(ctx context.Context, f dto.TransactionFilter, handle func(*models.Transaction) error) error {
	q := s.query(f).OrderBy("dateOfSale", firestore.Desc)
	return s.each(ctx, q, func(tx *models.Transaction) error {
		if !matchesSearch(tx, f) {
			return nil
		}
		return handle(tx)
	})
}

func (s *firestoreTransactionStore) each(ctx context.Context, q firestore.Query, handle func(*models.Transaction) error) error {
	iter := q.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return queryError("read", "failed to list transactions", err)
		}
		var tx models.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		tx.ID = doc.Ref.ID
		if err := handle(&tx); err != nil {
			return err
		}
	}
}

func buildPredicates(f dto.TransactionFilter) []firestore.EntityFilter {
	preds := []firestore.EntityFilter{
		firestore.PropertyFilter{Path: "saleMonth", Operator: "==", Value: f.Month},
	}
	if f.Sold != nil {
		preds = append(preds, firestore.PropertyFilter{Path: "sold", Operator: "==", Value: *f.Sold})
	}
	if f.PriceMin != nil {
		preds = append(preds, firestore.PropertyFilter{Path: "price", Operator: ">=", Value: *f.PriceMin})
	}
	if f.PriceMax != nil {
		preds = append(preds, firestore.PropertyFilter{Path: "price", Operator: "<=", Value: *f.PriceMax})
	}
	return preds
}

func matchesSearch(tx *models.Transaction, f dto.TransactionFilter) bool {
	search := strings.ToLower(f.SearchText())
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(tx.Title), search) ||
		strings.Contains(strings.ToLower(tx.Description), search) {
		return true
	}
	price, ok := f.SearchPrice()
	return ok && tx.Price == price
}

func aggregateValue(res firestore.AggregationResult, alias string) (*firestorepb.Value, error) {
	v, ok := res[alias].(*firestorepb.Value)
	if !ok {
		return nil, errs.NewDatabaseError("aggregate", fmt.Sprintf("aggregation result %q missing", alias), nil)
	}
	return v, nil
}

// queryError flags missing composite indexes, which Firestore reports as
// FailedPrecondition, so the log says which index to create.
func queryError(op, message string, err error) error {
	if status.Code(err) == codes.FailedPrecondition {
		message += " (missing composite index)"
	}
	return errs.NewDatabaseError(op, message, err)
}
