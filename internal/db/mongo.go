package db

import (
	"context"
	"fmt"

	"github.com/yigit/airport/internal/config"
	"github.com/yigit/airport/internal/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoClient connects to the configured MongoDB deployment and pings the primary
func NewMongoClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(cfg.GetMongoURI())
	if cfg.Database.MaxOpenConns > 0 {
		opts.SetMaxPoolSize(uint64(cfg.Database.MaxOpenConns))
	}
	if lifetime := cfg.ConnMaxLifetime(); lifetime > 0 {
		opts.SetMaxConnIdleTime(lifetime)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("error creating mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}

	logger.Info().
		Str("database", cfg.Database.DBName).
		Msg("Connected to MongoDB")

	return client, nil
}
