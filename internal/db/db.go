package db

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/BruksfildServices01/table-reservations/internal/config"
)

// DB is the single store connection of the process. It is created once at
// start and handed to whoever needs a collection.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	cfg      config.MongoOptions
}

func Connect(ctx context.Context, cfg config.MongoOptions) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(10).
		SetMinPoolSize(1)

	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "ping mongodb")
	}

	return &DB{
		client:   client,
		database: client.Database(cfg.Database),
		cfg:      cfg,
	}, nil
}

func (d *DB) Reservations() *mongo.Collection {
	return d.database.Collection(d.cfg.Collection)
}

func (d *DB) AuditLogs() *mongo.Collection {
	return d.database.Collection(d.cfg.AuditCollection)
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
