package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "history.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func title(s string) *string { return &s }

func TestOpen(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
	if s.Driver() != "sqlite" {
		t.Errorf("Driver = %q, want sqlite", s.Driver())
	}
}

func TestResolveDSN(t *testing.T) {
	tests := []struct {
		dsn        string
		wantDriver string
		wantSource string
	}{
		{"data/seolens.db", "sqlite", "data/seolens.db"},
		{"sqlite://data/x.db", "sqlite", "data/x.db"},
		{":memory:", "sqlite", ":memory:"},
		{"postgres://u:p@localhost/db?sslmode=disable", "postgres", "postgres://u:p@localhost/db?sslmode=disable"},
		{"postgresql://localhost/db", "postgres", "postgresql://localhost/db"},
	}
	for _, tt := range tests {
		driver, source := resolveDSN(tt.dsn)
		if driver != tt.wantDriver || source != tt.wantSource {
			t.Errorf("resolveDSN(%q) = %q, %q; want %q, %q", tt.dsn, driver, source, tt.wantDriver, tt.wantSource)
		}
	}
}

func TestAppendAndList(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	item, err := s.Append(ctx, "https://example.com", title("Example"))
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if item.ID == 0 {
		t.Error("ID should be assigned")
	}
	if item.CreatedAt.Before(before) {
		t.Errorf("CreatedAt = %v, want around now", item.CreatedAt)
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("List count = %d, want 1", len(items))
	}
	got := items[0]
	if got.ID != item.ID || got.URL != "https://example.com" {
		t.Errorf("got %+v, want %+v", got, item)
	}
	if got.Title == nil || *got.Title != "Example" {
		t.Errorf("Title = %v, want Example", got.Title)
	}
	if !got.CreatedAt.Equal(item.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, item.CreatedAt)
	}
}

func TestAppendNullTitle(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if _, err := s.Append(ctx, "https://untitled.example", nil); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 1 || items[0].Title != nil {
		t.Errorf("items = %+v, want one item with nil title", items)
	}
}

func TestListNewestFirstAndCapped(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < Limit+5; i++ {
		if _, err := s.Append(ctx, fmt.Sprintf("https://example.com/%d", i), nil); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != Limit {
		t.Fatalf("List count = %d, want %d", len(items), Limit)
	}
	if items[0].URL != fmt.Sprintf("https://example.com/%d", Limit+4) {
		t.Errorf("first item = %s, want the latest", items[0].URL)
	}
	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt.After(items[i-1].CreatedAt) || items[i].ID > items[i-1].ID {
			t.Errorf("items[%d] is newer than items[%d]", i, i-1)
		}
	}
}

func TestListEmpty(t *testing.T) {
	s := setupTestStore(t)

	items, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("items = %#v, want empty non-nil slice", items)
	}
}

func TestClear(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, u := range []string{"https://a.example", "https://b.example"} {
		if _, err := s.Append(ctx, u, nil); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("List count = %d after Clear, want 0", len(items))
	}

	// Clearing an empty store is not an error.
	if err := s.Clear(ctx); err != nil {
		t.Errorf("Clear on empty store failed: %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := s.Append(context.Background(), "https://persist.example", nil); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()
	items, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("List count = %d after reopen, want 1", len(items))
	}
}

func TestMemoryStore(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()
	if _, err := s.Append(context.Background(), "https://mem.example", nil); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	items, err := s.List(context.Background())
	if err != nil || len(items) != 1 {
		t.Errorf("List = %v, %v; want one item", items, err)
	}
}
