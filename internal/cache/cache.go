package cache

import (
	"context"
	"sync"
	"time"

	"github.com/enerlens-hq/enerlens-pipeline/internal/domain"
	"github.com/enerlens-hq/enerlens-pipeline/internal/logger"
)

// Producer computes a fresh article set. The pipeline satisfies this.
type Producer interface {
	Produce(ctx context.Context) ([]domain.Article, error)
}

// ProducerFunc adapts a function to the Producer interface.
type ProducerFunc func(ctx context.Context) ([]domain.Article, error)

func (f ProducerFunc) Produce(ctx context.Context) ([]domain.Article, error) { return f(ctx) }

// ResultCache memoizes one article set for a fixed TTL. The stored
// slice is replaced wholesale on recompute and never mutated in place,
// so callers may hold a reference to a previous result safely.
//
// Concurrency choice: Get holds the mutex across a recompute, so
// concurrent Gets during an in-flight refresh block until it finishes
// and then observe the fresh result (single flight, no thundering
// herd).
type ResultCache struct {
	mu       sync.Mutex
	producer Producer
	ttl      time.Duration
	now      func() time.Time
	log      logger.Logger

	articles   []domain.Article
	producedAt time.Time
	valid      bool
}

// New builds a cache around the producer with the given TTL.
func New(producer Producer, ttl time.Duration, log logger.Logger) *ResultCache {
	return &ResultCache{
		producer: producer,
		ttl:      ttl,
		now:      time.Now,
		log:      logger.Ensure(log),
	}
}

// Get returns the current article set, recomputing it only when no
// prior result exists or the prior result is older than the TTL. Within
// the TTL window every call returns the identical slice.
func (c *ResultCache) Get(ctx context.Context) ([]domain.Article, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.now().Sub(c.producedAt) <= c.ttl {
		return c.articles, nil
	}
	return c.refreshLocked(ctx)
}

// Refresh discards any stored result and recomputes immediately.
func (c *ResultCache) Refresh(ctx context.Context) ([]domain.Article, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	return c.refreshLocked(ctx)
}

// Invalidate clears the stored result; the next Get recomputes.
func (c *ResultCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.articles = nil
	c.mu.Unlock()
	c.log.InfoObj("result cache invalidated", "cache_event", "invalidate")
}

func (c *ResultCache) refreshLocked(ctx context.Context) ([]domain.Article, error) {
	started := c.now()
	articles, err := c.producer.Produce(ctx)
	if err != nil {
		// Recompute failed outright (cancellation); keep nothing.
		return nil, err
	}

	c.articles = articles
	c.producedAt = c.now()
	c.valid = true

	c.log.InfoObj("result cache refreshed", "cache_refresh", map[string]any{
		"articles":   len(articles),
		"elapsed_ms": c.now().Sub(started).Milliseconds(),
		"ttl":        c.ttl.String(),
	})
	return c.articles, nil
}

// Age reports how old the stored result is, and whether one exists.
func (c *ResultCache) Age() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return 0, false
	}
	return c.now().Sub(c.producedAt), true
}
