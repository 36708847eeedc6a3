// Package memory is an in-process stand-in for the redis cache, used when no
// REDIS_ADDR is configured. Values are stored as JSON so callers see the same
// copy semantics as with redis.
package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"saly_tourisme/internal/adapters/observability"
)

type entry struct {
	b       []byte
	expires time.Time // zero = no expiry
}

type Cache struct {
	mu  sync.Mutex
	m   map[string]entry
	now func() time.Time
}

func New() *Cache { return &Cache{m: map[string]entry{}, now: time.Now} }

// NewWithClock is New with an injectable clock for tests.
func NewWithClock(now func() time.Time) *Cache {
	c := New()
	c.now = now
	return c
}

func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	e, ok := c.m[key]
	if ok && !e.expires.IsZero() && !c.now().Before(e.expires) {
		delete(c.m, key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(e.b, dst)
}

func (c *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e := entry{b: b}
	if ttlSec > 0 {
		e.expires = c.now().Add(time.Duration(ttlSec) * time.Second)
	}
	c.mu.Lock()
	c.m[key] = e
	c.mu.Unlock()
	observability.ObserveCache("memory", "set")
	return nil
}

func (c *Cache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()
	observability.ObserveCache("memory", "del")
	return nil
}

// Sweep drops expired entries. The API runs it periodically.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	now := c.now()
	for k, e := range c.m {
		if !e.expires.IsZero() && !now.Before(e.expires) {
			delete(c.m, k)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (c *Cache) RunSweeper(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.Sweep()
		}
	}
}
