// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	deliverystore "github.com/foodfindapp/foodfind/internal/app/store/deliveries"
	donationstore "github.com/foodfindapp/foodfind/internal/app/store/donations"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and verifies it with a
// ping before handing the deps to the rest of startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("ping MongoDB: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes both record collections rely on.
// Lists and streams always read newest-first on created_at.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	byNewest := mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	}

	for _, coll := range []string{donationstore.Collection, deliverystore.Collection} {
		if _, err := deps.MongoDatabase.Collection(coll).Indexes().CreateOne(ctx, byNewest); err != nil {
			return fmt.Errorf("create created_at index on %s: %w", coll, err)
		}
	}

	logger.Info("schema ensured",
		zap.Strings("collections", []string{donationstore.Collection, deliverystore.Collection}))
	return nil
}
