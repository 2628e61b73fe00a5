package repository

import (
	"context"

	"lightningcath-stock-api/internal/model"
)

// StockRepository is the persistence adapter for the stock collection. The
// whole collection is written as one versioned snapshot under a single
// well-known key; readers treat the store as the source of truth and their
// in-memory copy as a cache.
type StockRepository interface {
	// Load reads the snapshot. ok is false when no snapshot exists, when the
	// embedded schema version does not match, or when the stored data is
	// corrupt (logged, never an error to the caller).
	Load(ctx context.Context) (items []model.StockItem, ok bool, err error)

	// Save writes the full collection plus version tag and timestamp.
	Save(ctx context.Context, items []model.StockItem) error

	// Clear removes the snapshot unconditionally.
	Clear(ctx context.Context) error

	// Exists is a cheap presence check driving the "live data" indicator.
	Exists(ctx context.Context) (bool, error)

	// Close closes the underlying store connection.
	Close() error
}
