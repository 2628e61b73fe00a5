package cache

import (
	"context"
	"sync"
	"time"
)

// sweepInterval is how often the background sweeper drops expired entries.
// Between sweeps, reads treat an expired entry as a miss, so the interval
// only bounds memory held by dead view/session entries.
const sweepInterval = time.Minute

// memoryEntry is one cached value with its expiry deadline.
type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e *memoryEntry) expired() bool {
	return time.Now().After(e.expiresAt)
}

// MemoryCache implements Cache in process memory. It backs the stock view
// and admin sessions in development, tests and single-instance deployments;
// multi-instance deployments use RedisCache instead.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry

	stopSweep chan struct{}
}

// NewMemoryCache creates the cache and starts its background sweeper.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		entries:   make(map[string]*memoryEntry),
		stopSweep: make(chan struct{}),
	}

	go c.sweep()

	return c
}

// Get returns a copy of the value for key, or ErrCacheMiss if the key is
// unknown or past its deadline.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || entry.expired() {
		return nil, ErrCacheMiss
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

// Set stores a copy of value under key with the given TTL.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &memoryEntry{
		value:     stored,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes key. Deleting an unknown key is a no-op.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// Exists reports whether key holds an unexpired value.
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	return ok && !entry.expired(), nil
}

// GetOrSet returns the cached value for key, or fills it from fn on a miss.
func (c *MemoryCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fn func() ([]byte, error)) ([]byte, error) {
	if value, err := c.Get(ctx, key); err == nil {
		return value, nil
	}

	value, err := fn()
	if err != nil {
		return nil, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		return nil, err
	}

	return value, nil
}

// Clear drops every entry.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*memoryEntry)
	return nil
}

// Close stops the background sweeper.
func (c *MemoryCache) Close() error {
	close(c.stopSweep)
	return nil
}

func (c *MemoryCache) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweepExpired()
		case <-c.stopSweep:
			return
		}
	}
}

// sweepExpired drops every entry past its deadline.
func (c *MemoryCache) sweepExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if entry.expired() {
			delete(c.entries, key)
		}
	}
}
