package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"consultsite/internal/config"
)

const serverSelectionTimeout = 5 * time.Second

type mongoBackend struct {
	client *mongo.Client
	db     *mongo.Database
}

func openMongo(ctx context.Context, cfg *config.DatabaseConfig) (*mongoBackend, error) {
	name := cfg.DatabaseName()
	if name == "" {
		return nil, fmt.Errorf("DATABASE_NAME must be set for MongoDB")
	}

	opts := options.Client().
		ApplyURI(cfg.URL).
		SetServerSelectionTimeout(serverSelectionTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	b := &mongoBackend{client: client, db: client.Database(name)}
	if err := b.ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}
	return b, nil
}

func (b *mongoBackend) kind() string {
	return "mongo"
}

func (b *mongoBackend) insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := b.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return formatID(res.InsertedID), nil
}

func (b *mongoBackend) collections(ctx context.Context, limit int) ([]string, error) {
	names, err := b.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (b *mongoBackend) ping(ctx context.Context) error {
	return b.client.Ping(ctx, readpref.Primary())
}

func (b *mongoBackend) close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}

func formatID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
