package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"consultsite/internal/config"
	"consultsite/internal/metrics"
	apperrors "consultsite/pkg/errors"
)

const (
	connectTimeout = 10 * time.Second
	pingTimeout    = 5 * time.Second
	maxErrorLength = 120
)

// ErrStorageUnavailable is returned by every operation on a client that has no
// live backend, typically because DATABASE_URL is unset or the connection failed.
var ErrStorageUnavailable = apperrors.New(apperrors.ErrCodeStorageUnavailable, "document store not connected")

// ErrStorageWriteFailed matches (via errors.Is) any failed write.
var ErrStorageWriteFailed = apperrors.New(apperrors.ErrCodeStorageWriteFailed, "document write failed")

// backend is a concrete document database
type backend interface {
	kind() string
	insert(ctx context.Context, collection string, doc any) (string, error)
	collections(ctx context.Context, limit int) ([]string, error)
	ping(ctx context.Context) error
	close(ctx context.Context) error
}

// Client is the process-wide document store handle. A Client without a
// backend is valid and reports ErrStorageUnavailable on use.
type Client struct {
	backend backend
	name    string
}

// Connect opens the document store described by cfg. It always returns a
// usable Client; when the error is non-nil the client is disconnected.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*Client, error) {
	client := &Client{name: cfg.DatabaseName()}
	if !cfg.Configured() {
		metrics.SetStoreConnected(false)
		return client, fmt.Errorf("DATABASE_URL not set: %w", ErrStorageUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	var (
		b   backend
		err error
	)
	switch {
	case cfg.IsMongo():
		log.Println("[DB] Connecting to MongoDB...")
		b, err = openMongo(ctx, cfg)
	case cfg.IsPostgres(), cfg.IsSQLite():
		b, err = openSQL(ctx, cfg)
	default:
		err = fmt.Errorf("unsupported DATABASE_URL scheme")
	}
	if err != nil {
		metrics.SetStoreConnected(false)
		return client, fmt.Errorf("failed to connect to document store: %w", err)
	}

	client.backend = b
	metrics.SetStoreConnected(true)
	log.Printf("[DB] Document store connected: backend=%s, database=%s", b.kind(), client.name)
	return client, nil
}

// Connected reports whether the client has a live backend
func (c *Client) Connected() bool {
	return c != nil && c.backend != nil
}

// Name returns the configured database name
func (c *Client) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Backend returns the backend kind ("mongo", "postgres", "sqlite") or "" when disconnected
func (c *Client) Backend() string {
	if !c.Connected() {
		return ""
	}
	return c.backend.kind()
}

// Insert writes doc into the named collection and returns the identifier the
// store assigned to it. Failures are not retried.
func (c *Client) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if !c.Connected() {
		return "", ErrStorageUnavailable
	}
	if strings.TrimSpace(collection) == "" {
		return "", apperrors.New(apperrors.ErrCodeStorageWriteFailed, "collection name is required")
	}

	start := time.Now()
	id, err := c.backend.insert(ctx, collection, doc)
	metrics.RecordDBQuery("insert", time.Since(start), err)
	if err != nil {
		return "", writeFailed(err)
	}
	return id, nil
}

// Collections returns up to limit collection names
func (c *Client) Collections(ctx context.Context, limit int) ([]string, error) {
	if !c.Connected() {
		return nil, ErrStorageUnavailable
	}
	start := time.Now()
	names, err := c.backend.collections(ctx, limit)
	metrics.RecordDBQuery("list_collections", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Ping checks connectivity to the backend
func (c *Client) Ping(ctx context.Context) error {
	if !c.Connected() {
		return ErrStorageUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := c.backend.ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Close releases the backend connection
func (c *Client) Close(ctx context.Context) error {
	if !c.Connected() {
		return nil
	}
	metrics.SetStoreConnected(false)
	return c.backend.close(ctx)
}

func writeFailed(err error) error {
	msg := apperrors.Truncate(err.Error(), maxErrorLength)
	if errors.Is(err, context.DeadlineExceeded) {
		msg = "write timed out"
	}
	return apperrors.Wrap(apperrors.ErrCodeStorageWriteFailed, msg, err)
}
