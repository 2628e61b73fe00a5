package repository

import (
	"context"
	"fmt"
	"time"

	"lightningcath-stock-api/internal/model"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStockRepository implements StockRepository on a single Redis key,
// mirroring the client-local key-value store the portal originally used.
type RedisStockRepository struct {
	client *redis.Client
	key    string
	log    *zap.Logger
}

// NewRedisStockRepository connects and pings the Redis server.
func NewRedisStockRepository(addr, password string, db int, log *zap.Logger) (*RedisStockRepository, error) {
	if log == nil {
		log = zap.NewNop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info("redis stock repository initialized", zap.String("addr", addr))
	return &RedisStockRepository{
		client: client,
		key:    "lightningcath:" + SnapshotKey,
		log:    log,
	}, nil
}

// Load reads and decodes the snapshot key.
func (r *RedisStockRepository) Load(ctx context.Context) ([]model.StockItem, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load stock snapshot: %w", err)
	}

	items, ok := decodeSnapshot(data, r.log)
	return items, ok, nil
}

// Save writes the snapshot key with no expiry.
func (r *RedisStockRepository) Save(ctx context.Context, items []model.StockItem) error {
	data, err := encodeSnapshot(items, time.Now())
	if err != nil {
		return fmt.Errorf("failed to encode stock snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save stock snapshot: %w", err)
	}
	return nil
}

// Clear removes the snapshot key.
func (r *RedisStockRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to clear stock snapshot: %w", err)
	}
	return nil
}

// Exists checks key presence.
func (r *RedisStockRepository) Exists(ctx context.Context) (bool, error) {
	n, err := r.client.Exists(ctx, r.key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check stock snapshot: %w", err)
	}
	return n > 0, nil
}

// Close closes the Redis client.
func (r *RedisStockRepository) Close() error {
	return r.client.Close()
}

var _ StockRepository = (*RedisStockRepository)(nil)
