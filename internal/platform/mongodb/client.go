// Package mongodb implements the store interfaces on top of the
// official MongoDB driver. The database handle is owned explicitly:
// connect and ping at startup, disconnect at shutdown.
package mongodb

import (
	"context"
	"fmt"

	"github.com/mealmasterhq/meal-master-api/internal/config"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DB wraps the long-lived client and the application database handle.
// It is opened once at process start and shared by all stores.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client for the configured URI and verifies the
// connection with a ping before returning. The caller owns the handle
// and must Close it on shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		// Best effort teardown of the half-open client.
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo deployment: %w", err)
	}

	return &DB{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

// Collection returns a handle to the named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Close disconnects the underlying client.
func (d *DB) Close(ctx context.Context) error {
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo client: %w", err)
	}
	return nil
}
