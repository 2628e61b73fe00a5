package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lightningcath-stock-api/internal/model"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// MySQLStockRepository implements StockRepository on a shared MySQL database,
// for deployments where several portal instances read the same snapshot.
// Writes are last-write-wins with no conflict detection.
type MySQLStockRepository struct {
	db  *sql.DB
	log *zap.Logger
}

// NewMySQLStockRepository connects and provisions the snapshot table.
func NewMySQLStockRepository(dsn string, log *zap.Logger) (*MySQLStockRepository, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS stock_snapshots (
		snapshot_key VARCHAR(128) PRIMARY KEY,
		data MEDIUMTEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Info("mysql stock repository initialized")
	return &MySQLStockRepository{db: db, log: log}, nil
}

// Load reads and decodes the snapshot row.
func (r *MySQLStockRepository) Load(ctx context.Context) ([]model.StockItem, bool, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM stock_snapshots WHERE snapshot_key = ?`, SnapshotKey).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load stock snapshot: %w", err)
	}

	items, ok := decodeSnapshot([]byte(data), r.log)
	return items, ok, nil
}

// Save upserts the snapshot row.
func (r *MySQLStockRepository) Save(ctx context.Context, items []model.StockItem) error {
	data, err := encodeSnapshot(items, time.Now())
	if err != nil {
		return fmt.Errorf("failed to encode stock snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO stock_snapshots (snapshot_key, data, updated_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE data = VALUES(data), updated_at = NOW()`,
		SnapshotKey, string(data))
	if err != nil {
		return fmt.Errorf("failed to save stock snapshot: %w", err)
	}
	return nil
}

// Clear removes the snapshot row.
func (r *MySQLStockRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM stock_snapshots WHERE snapshot_key = ?`, SnapshotKey); err != nil {
		return fmt.Errorf("failed to clear stock snapshot: %w", err)
	}
	return nil
}

// Exists checks snapshot presence without decoding it.
func (r *MySQLStockRepository) Exists(ctx context.Context) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stock_snapshots WHERE snapshot_key = ?`, SnapshotKey).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check stock snapshot: %w", err)
	}
	return n > 0, nil
}

// Close closes the database connection.
func (r *MySQLStockRepository) Close() error {
	return r.db.Close()
}

var _ StockRepository = (*MySQLStockRepository)(nil)
