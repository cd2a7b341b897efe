// Package poll provides fixed-interval polling of a query function with
// last-response-wins result caching. There are no push updates in this
// system; consumers read the latest cached result and the schedule stops
// when its context is cancelled.
package poll

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Func is the query a poller repeats.
type Func[T any] func(ctx context.Context) (T, error)

// Poller repeats a query at a fixed interval and retains the most
// recent successful result. A failed poll keeps the previous result.
type Poller[T any] struct {
	key      string
	interval time.Duration
	fn       Func[T]
	logger   *slog.Logger

	mu     sync.RWMutex
	latest T
	ok     bool
}

// New creates a poller identified by key for logging.
func New[T any](key string, interval time.Duration, logger *slog.Logger, fn Func[T]) *Poller[T] {
	return &Poller[T]{
		key:      key,
		interval: interval,
		fn:       fn,
		logger:   logger.With("poller", key),
	}
}

// Run polls immediately, then on every tick until ctx is cancelled.
// It blocks; callers run it in a goroutine.
func (p *Poller[T]) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// Latest returns the most recent successful result. The second result
// is false until the first successful poll completes.
func (p *Poller[T]) Latest() (T, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest, p.ok
}

func (p *Poller[T]) poll(ctx context.Context) {
	result, err := p.fn(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Warn("poll failed", "error", err)
		}
		return
	}

	p.mu.Lock()
	p.latest = result
	p.ok = true
	p.mu.Unlock()
}
