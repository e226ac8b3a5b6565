package seolens

import (
	"context"
	"sync"
	"time"

	"github.com/eringen/seolens/history"
)

type historyLister interface {
	List(ctx context.Context) ([]history.Item, error)
}

// HistoryCache is an in-memory copy of the recent history list with TTL.
// The recorder invalidates it after every successful write.
type HistoryCache struct {
	mu      sync.RWMutex
	items   []history.Item
	fetched time.Time
	ttl     time.Duration
	store   historyLister
}

// NewHistoryCache creates a HistoryCache backed by store.
func NewHistoryCache(store historyLister, ttl time.Duration) *HistoryCache {
	return &HistoryCache{store: store, ttl: ttl}
}

func (c *HistoryCache) valid() bool {
	return c.items != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *HistoryCache) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// List returns the most recent history items, newest first. The returned
// slice is shared and must not be modified.
func (c *HistoryCache) List(ctx context.Context) ([]history.Item, error) {
	c.mu.RLock()
	if c.valid() {
		items := c.items
		c.mu.RUnlock()
		return items, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.items, nil
	}
	items, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []history.Item{}
	}
	c.items = items
	c.fetched = time.Now()
	return items, nil
}
