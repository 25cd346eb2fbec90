package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/GregMSThompson/transaction-insights/internal/dto"
	"github.com/GregMSThompson/transaction-insights/internal/errs"
	"github.com/GregMSThompson/transaction-insights/internal/models"
	"github.com/GregMSThompson/transaction-insights/pkg/logger"
)

type mongoTransactionStore struct {
	collection *mongo.Collection
}

func NewMongoTransactionStore(db *mongo.Database) *mongoTransactionStore {
	return &mongoTransactionStore{collection: db.Collection(transactionsCollection)}
}

func (s *mongoTransactionStore) InsertMany(ctx context.Context, txs []models.Transaction) (int, error) {
	if len(txs) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(txs))
	for _, t := range txs {
		t.ID = ""
		docs = append(docs, t)
	}

	res, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, errs.NewBulkInsertError("failed to insert transactions", err)
	}
	return len(res.InsertedIDs), nil
}

func (s *mongoTransactionStore) Count(ctx context.Context, f dto.TransactionFilter) (int64, error) {
	filter := buildFilter(f)
	debugFilter(ctx, "count", filter)

	n, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, errs.NewDatabaseError("count", "failed to count transactions", err)
	}
	return n, nil
}

func (s *mongoTransactionStore) Find(ctx context.Context, f dto.TransactionFilter, page dto.Page) ([]models.Transaction, error) {
	filter := buildFilter(f)
	debugFilter(ctx, "find", filter)

	opts := options.Find().
		SetSort(bson.D{{Key: "dateOfSale", Value: -1}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit)

	cur, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list transactions", err)
	}
	defer cur.Close(ctx)

	out := pageBuffer(page)
	if err := cur.All(ctx, &out); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
	}
	return out, nil
}

func (s *mongoTransactionStore) SumPrice(ctx context.Context, f dto.TransactionFilter) (float64, error) {
	cur, err := s.collection.Aggregate(ctx, sumPricePipeline(f))
	if err != nil {
		return 0, errs.NewDatabaseError("aggregate", "failed to sum transaction prices", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, errs.NewDatabaseError("aggregate", "failed to parse price total", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func (s *mongoTransactionStore) CountByCategory(ctx context.Context, f dto.TransactionFilter) ([]dto.CategoryCount, error) {
	cur, err := s.collection.Aggregate(ctx, categoryPipeline(f))
	if err != nil {
		return nil, errs.NewDatabaseError("aggregate", "failed to group transactions by category", err)
	}
	defer cur.Close(ctx)

	out := make([]dto.CategoryCount, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, errs.NewDatabaseError("aggregate", "failed to parse category counts", err)
	}
	return out, nil
}

func debugFilter(ctx context.Context, op string, filter bson.M) {
	if !logger.IsDebugEnabled(ctx) {
		return
	}
	raw, err := bson.MarshalExtJSON(filter, false, false)
	if err != nil {
		return
	}
	logger.FromContext(ctx).Debug("mongo filter", "operation", op, "filter", string(raw))
}
