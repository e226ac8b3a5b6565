// Package history persists a log of past analyses.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	_ "modernc.org/sqlite"
)

// Limit is the maximum number of items List returns.
const Limit = 20

const pingTimeout = 5 * time.Second

// Item is one recorded analysis.
type Item struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type row struct {
	ID        int64          `db:"id"`
	URL       string         `db:"url"`
	Title     sql.NullString `db:"title"`
	CreatedAt int64          `db:"created_at"`
}

func (r row) item() Item {
	it := Item{ID: r.ID, URL: r.URL, CreatedAt: time.UnixMilli(r.CreatedAt).UTC()}
	if r.Title.Valid {
		title := r.Title.String
		it.Title = &title
	}
	return it
}

// Store is the analysis history backed by SQLite or PostgreSQL.
type Store struct {
	db     *sqlx.DB
	driver string
}

// Open connects to the database described by dsn and ensures the schema
// exists. A postgres:// or postgresql:// URL selects PostgreSQL; anything
// else is treated as a SQLite file path, whose directory is created.
func Open(dsn string) (*Store, error) {
	driver, source := resolveDSN(dsn)

	if driver == "sqlite" && source != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(source), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sqlx.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	switch {
	case driver == "postgres":
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	case source == ":memory:":
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	default:
		// WAL lets the recorder write while handlers read; busy_timeout makes
		// writers wait instead of failing with SQLITE_BUSY.
		if _, err := db.Exec(`
			PRAGMA journal_mode=WAL;
			PRAGMA busy_timeout=5000;
			PRAGMA synchronous=NORMAL;
		`); err != nil {
			db.Close()
			return nil, fmt.Errorf("configure sqlite: %w", err)
		}
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(4)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	s := &Store{db: db, driver: driver}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func resolveDSN(dsn string) (driver, source string) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "postgres", dsn
	case strings.HasPrefix(dsn, "sqlite://"):
		return "sqlite", strings.TrimPrefix(dsn, "sqlite://")
	}
	return "sqlite", dsn
}

// Driver returns the database/sql driver name in use.
func (s *Store) Driver() string {
	return s.driver
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS analysis_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    title TEXT,
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analysis_history_created_at ON analysis_history(created_at);
`
	if s.driver == "postgres" {
		schema = `
CREATE TABLE IF NOT EXISTS analysis_history (
    id BIGSERIAL PRIMARY KEY,
    url TEXT NOT NULL,
    title TEXT,
    created_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analysis_history_created_at ON analysis_history(created_at);
`
	}
	_, err := s.db.Exec(schema)
	return err
}

// Append records an analysis of url. createdAt is set to the current time.
func (s *Store) Append(ctx context.Context, url string, title *string) (Item, error) {
	createdAt := time.Now().UTC().UnixMilli()
	query := s.db.Rebind(`INSERT INTO analysis_history (url, title, created_at) VALUES (?, ?, ?) RETURNING id`)

	var id int64
	if err := s.db.QueryRowxContext(ctx, query, url, title, createdAt).Scan(&id); err != nil {
		return Item{}, fmt.Errorf("insert history: %w", err)
	}
	return row{ID: id, URL: url, Title: nullString(title), CreatedAt: createdAt}.item(), nil
}

// List returns the most recent items, newest first, at most Limit of them.
func (s *Store) List(ctx context.Context) ([]Item, error) {
	query := s.db.Rebind(`SELECT id, url, title, created_at FROM analysis_history ORDER BY created_at DESC, id DESC LIMIT ?`)

	var rows []row
	if err := s.db.SelectContext(ctx, &rows, query, Limit); err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.item())
	}
	return items, nil
}

// Clear removes every item.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM analysis_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
