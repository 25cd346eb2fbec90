package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"cloud.google.com/go/firestore"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/GregMSThompson/transaction-insights/internal/config"
	"github.com/GregMSThompson/transaction-insights/internal/store"
	"github.com/GregMSThompson/transaction-insights/pkg/logger"
)

type Bootstrap struct {
	Log       *slog.Logger
	Mongo     *mongo.Database
	Firestore *firestore.Client

	driver  config.StoreDriver
	closers []func(ctx context.Context) error
}

// Run builds the logger and the one store client selected by cfg.StoreDriver.
// The returned Bootstrap always carries a usable logger, even on error.
func Run(ctx context.Context, cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := &Bootstrap{driver: cfg.StoreDriver}

	bs.Log = logger.New(cfg.LogLevel, logger.NewJSONHandler)
	slog.SetDefault(bs.Log)

	switch cfg.StoreDriver {
	case config.StoreFirestore:
		bs.Firestore, err = InitFirestore(ctx, cfg.ProjectID)
		if err != nil {
			return bs, err
		}
		bs.closers = append(bs.closers, func(context.Context) error { return bs.Firestore.Close() })
		bs.Log.Info("firestore connected", "project", cfg.ProjectID)
	default:
		var client *mongo.Client
		client, err = InitMongo(ctx, cfg.MongoURI)
		if err != nil {
			return bs, err
		}
		bs.Mongo = client.Database(cfg.MongoDatabase)
		bs.closers = append(bs.closers, client.Disconnect)
		bs.Log.Info("mongodb connected", "database", cfg.MongoDatabase)
	}

	return bs, nil
}

// TransactionStore returns the store backed by whichever client Run opened.
func (bs *Bootstrap) TransactionStore() store.TransactionStore {
	if bs.driver == config.StoreFirestore {
		return store.NewFirestoreTransactionStore(bs.Firestore)
	}
	return store.NewMongoTransactionStore(bs.Mongo)
}

func (bs *Bootstrap) Close(ctx context.Context) error {
	var errs []error
	for i := len(bs.closers) - 1; i >= 0; i-- {
		if err := bs.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
