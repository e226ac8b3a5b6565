package seolens

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/eringen/seolens/history"
)

type fakeFetcher struct {
	pages map[string]string
	err   error
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	html, ok := f.pages[url]
	if !ok {
		return "", errors.New("Failed to fetch URL: Not Found")
	}
	return html, nil
}

type fakeStore struct {
	mu      sync.Mutex
	items   []history.Item
	nextID  int64
	lists   int
	listErr error
}

func (s *fakeStore) Append(ctx context.Context, url string, title *string) (history.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	it := history.Item{ID: s.nextID, URL: url, Title: title, CreatedAt: time.Now()}
	s.items = append([]history.Item{it}, s.items...)
	return it, nil
}

func (s *fakeStore) List(ctx context.Context) ([]history.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]history.Item, 0, len(s.items))
	for i, it := range s.items {
		if i == history.Limit {
			break
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *fakeStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}

func (s *fakeStore) snapshot() []history.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]history.Item(nil), s.items...)
}

const goodPage = `<!DOCTYPE html><html><head>
<title>An example page about something useful</title>
<meta name="description" content="A short description.">
<meta property="og:title" content="Example OG">
</head><body></body></html>`

func newTestApp(t *testing.T, cfg Config, f Fetcher, s HistoryStore) *App {
	t.Helper()
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "test-secret-test-secret-test-secret"
	}
	app := New(cfg, WithFetcher(f), WithHistoryStore(s))
	if err := app.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func do(app *App, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func postJSON(app *App, target, body string) *httptest.ResponseRecorder {
	return do(app, http.MethodPost, target, body, map[string]string{"Content-Type": "application/json"})
}
