// Package mongo implements the persistence ports on top of the official
// MongoDB driver. Ids are numeric, allocated from a counters collection,
// and every repository maps driver errors to the domain sentinels.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds individual repository operations. The connect and
// startup-ping timeout comes from config (MONGO_TIMEOUT) and falls back to
// this value when unset.
const defaultTimeout = 10 * time.Second

// Config carries the connection settings, normally sourced from
// config.MongoConfig. Kept as a local struct so this package does not
// import the config loader.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials MongoDB and pings it, so a bad URI or an unreachable server
// fails at startup rather than on the first query. The client is torn down
// again when the ping fails.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
