package repository

import (
	"context"
	"sync"
	"time"

	"lightningcath-stock-api/internal/model"

	"go.uber.org/zap"
)

// MemoryStockRepository implements StockRepository in memory. Used in tests
// and for ephemeral deployments; it still goes through the snapshot codec so
// version and corruption handling behave like the durable backends.
type MemoryStockRepository struct {
	mu   sync.RWMutex
	blob []byte
	log  *zap.Logger

	// FailSaves forces Save to fail, for exercising storage-failure paths.
	FailSaves bool
}

// NewMemoryStockRepository creates an empty in-memory repository.
func NewMemoryStockRepository(log *zap.Logger) *MemoryStockRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &MemoryStockRepository{log: log}
}

// SeedBlob injects a raw stored blob, bypassing the codec. Tests use it to
// simulate corrupt or stale-version data left behind by another writer.
func (r *MemoryStockRepository) SeedBlob(blob []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blob = blob
}

// Load decodes the held blob, if any.
func (r *MemoryStockRepository) Load(ctx context.Context) ([]model.StockItem, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.blob == nil {
		return nil, false, nil
	}
	items, ok := decodeSnapshot(r.blob, r.log)
	return items, ok, nil
}

// Save encodes and holds the snapshot.
func (r *MemoryStockRepository) Save(ctx context.Context, items []model.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailSaves {
		return errSaveRejected
	}
	data, err := encodeSnapshot(items, time.Now())
	if err != nil {
		return err
	}
	r.blob = data
	return nil
}

// Clear drops the snapshot.
func (r *MemoryStockRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blob = nil
	return nil
}

// Exists checks snapshot presence.
func (r *MemoryStockRepository) Exists(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.blob != nil, nil
}

// Close is a no-op.
func (r *MemoryStockRepository) Close() error { return nil }

type memoryError string

func (e memoryError) Error() string { return string(e) }

const errSaveRejected memoryError = "store rejected the write"

var _ StockRepository = (*MemoryStockRepository)(nil)
