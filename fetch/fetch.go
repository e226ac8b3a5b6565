// Package fetch downloads the HTML of a single page.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

const (
	// DefaultUserAgent identifies seolens to the sites it audits.
	DefaultUserAgent = "Mozilla/5.0 (compatible; SEOLens/1.0; +https://github.com/eringen/seolens)"
	DefaultTimeout   = 15 * time.Second
	DefaultMaxBytes  = 5 << 20 // 5MB

	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
)

// Error describes a page that could not be fetched. StatusCode is zero when
// the request never produced a response.
type Error struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Failed to fetch URL: %s", e.Status)
	}
	return fmt.Sprintf("Failed to fetch URL: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Timeout reports whether the fetch failed because it ran out of time.
func (e *Error) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(e.Err, &te) && te.Timeout()
}

// Config configures a Client.
type Config struct {
	Timeout   time.Duration // per request (default 15s)
	UserAgent string        // default DefaultUserAgent
	MaxBytes  int64         // response bodies are truncated beyond this (default 5MB)
}

func (c *Config) setDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxBytes <= 0 {
		c.MaxBytes = DefaultMaxBytes
	}
}

// Client fetches pages over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

// New returns a Client using cfg.
func New(cfg Config) *Client {
	cfg.setDefaults()
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Fetch downloads url and returns its body decoded to UTF-8. Any non-2xx
// response is an *Error carrying the status.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", &Error{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, c.cfg.MaxBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &Error{URL: url, Err: fmt.Errorf("decode body: %w", err)}
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", &Error{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	return string(b), nil
}
