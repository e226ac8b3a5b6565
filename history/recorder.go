package history

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Appender is the write side of the history store.
type Appender interface {
	Append(ctx context.Context, url string, title *string) (Item, error)
}

// Logger is satisfied by echo.Logger.
type Logger interface {
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type entry struct {
	url   string
	title *string
}

// Recorder writes history entries on a background worker so that callers
// never wait for the database. Failed writes are logged and dropped.
type Recorder struct {
	store    Appender
	log      Logger
	queue    chan entry
	timeout  time.Duration
	onAppend func(Item)
	onError  func(error)

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithQueueSize sets how many writes may be pending (default 64).
func WithQueueSize(n int) RecorderOption {
	return func(r *Recorder) {
		if n > 0 {
			r.queue = make(chan entry, n)
		}
	}
}

// WithWriteTimeout bounds each write (default 5s).
func WithWriteTimeout(d time.Duration) RecorderOption {
	return func(r *Recorder) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// OnAppend registers a callback run after every successful write.
func OnAppend(fn func(Item)) RecorderOption {
	return func(r *Recorder) { r.onAppend = fn }
}

// OnError registers a callback run after every failed or dropped write.
func OnError(fn func(error)) RecorderOption {
	return func(r *Recorder) { r.onError = fn }
}

// NewRecorder starts a Recorder writing to store.
func NewRecorder(store Appender, log Logger, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		store:   store,
		log:     log,
		queue:   make(chan entry, 64),
		timeout: 5 * time.Second,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	go r.run()
	return r
}

// ErrQueueFull is reported to OnError when an entry is dropped.
var ErrQueueFull = errors.New("history queue full")

// Record queues an entry and returns immediately. It reports false when
// the entry was dropped because the queue is full or the Recorder closed.
func (r *Recorder) Record(url string, title *string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return false
	}
	select {
	case r.queue <- entry{url: url, title: title}:
		return true
	default:
		r.log.Warnf("history: queue full, dropping %s", url)
		if r.onError != nil {
			r.onError(ErrQueueFull)
		}
		return false
	}
}

func (r *Recorder) run() {
	defer close(r.done)
	for e := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		item, err := r.store.Append(ctx, e.url, e.title)
		cancel()
		if err != nil {
			r.log.Errorf("Failed to save history: %v", err)
			if r.onError != nil {
				r.onError(err)
			}
			continue
		}
		if r.onAppend != nil {
			r.onAppend(item)
		}
	}
}

// Close stops accepting entries and waits for queued writes to finish.
func (r *Recorder) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()
	<-r.done
}
