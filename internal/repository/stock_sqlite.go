package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"lightningcath-stock-api/internal/model"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// SQLiteStockRepository implements StockRepository on a local SQLite file.
// The snapshot is one row in a key-value table.
type SQLiteStockRepository struct {
	db  *sql.DB
	log *zap.Logger
	mu  sync.RWMutex
}

// NewSQLiteStockRepository opens (and if needed creates) the database file.
func NewSQLiteStockRepository(dbPath string, log *zap.Logger) (*SQLiteStockRepository, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite only supports 1 writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS stock_snapshots (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);`); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Info("sqlite stock repository initialized", zap.String("path", dbPath))
	return &SQLiteStockRepository{db: db, log: log}, nil
}

// Load reads and decodes the snapshot row.
func (r *SQLiteStockRepository) Load(ctx context.Context) ([]model.StockItem, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM stock_snapshots WHERE key = ?`, SnapshotKey).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load stock snapshot: %w", err)
	}

	items, ok := decodeSnapshot([]byte(data), r.log)
	return items, ok, nil
}

// Save writes the full collection as one snapshot row.
func (r *SQLiteStockRepository) Save(ctx context.Context, items []model.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := encodeSnapshot(items, time.Now())
	if err != nil {
		return fmt.Errorf("failed to encode stock snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO stock_snapshots (key, data, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			updated_at = datetime('now')`,
		SnapshotKey, string(data))
	if err != nil {
		return fmt.Errorf("failed to save stock snapshot: %w", err)
	}
	return nil
}

// Clear removes the snapshot row.
func (r *SQLiteStockRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM stock_snapshots WHERE key = ?`, SnapshotKey); err != nil {
		return fmt.Errorf("failed to clear stock snapshot: %w", err)
	}
	return nil
}

// Exists checks snapshot presence without decoding it.
func (r *SQLiteStockRepository) Exists(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stock_snapshots WHERE key = ?`, SnapshotKey).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check stock snapshot: %w", err)
	}
	return n > 0, nil
}

// Close closes the database connection.
func (r *SQLiteStockRepository) Close() error {
	return r.db.Close()
}

// Ensure SQLiteStockRepository implements StockRepository
var _ StockRepository = (*SQLiteStockRepository)(nil)
