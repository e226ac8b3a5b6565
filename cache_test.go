package seolens

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHistoryCacheServesFromMemory(t *testing.T) {
	store := &fakeStore{}
	store.Append(context.Background(), "https://a.example", nil)
	cache := NewHistoryCache(store, time.Minute)

	for i := 0; i < 3; i++ {
		items, err := cache.List(context.Background())
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("List count = %d, want 1", len(items))
		}
	}
	if store.lists != 1 {
		t.Errorf("store listed %d times, want 1", store.lists)
	}
}

func TestHistoryCacheInvalidate(t *testing.T) {
	store := &fakeStore{}
	cache := NewHistoryCache(store, time.Minute)

	items, err := cache.List(context.Background())
	if err != nil || items == nil || len(items) != 0 {
		t.Fatalf("List = %#v, %v; want empty non-nil", items, err)
	}

	store.Append(context.Background(), "https://a.example", nil)
	cache.Invalidate()
	items, _ = cache.List(context.Background())
	if len(items) != 1 {
		t.Errorf("List count after Invalidate = %d, want 1", len(items))
	}
}

func TestHistoryCacheExpires(t *testing.T) {
	store := &fakeStore{}
	cache := NewHistoryCache(store, 50*time.Millisecond)

	cache.List(context.Background())
	time.Sleep(80 * time.Millisecond)
	cache.List(context.Background())
	if store.lists != 2 {
		t.Errorf("store listed %d times, want 2", store.lists)
	}
}

func TestHistoryCacheDoesNotCacheErrors(t *testing.T) {
	store := &fakeStore{listErr: errors.New("db down")}
	cache := NewHistoryCache(store, time.Minute)

	if _, err := cache.List(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	store.mu.Lock()
	store.listErr = nil
	store.mu.Unlock()
	if _, err := cache.List(context.Background()); err != nil {
		t.Errorf("List after recovery failed: %v", err)
	}
}
