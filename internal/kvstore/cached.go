package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Backend is the store a Cached decorates
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type atomicBackend interface {
	SetIfAbsent(ctx context.Context, key string, value []byte) ([]byte, bool, error)
}

type prunableBackend interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ErrPruneNotSupported is returned by Cached.PruneBefore when the backend
// cannot prune
var ErrPruneNotSupported = errors.New(ErrMsgPruneNotSupported)

// cachedEntry wraps a payload with version metadata for cache invalidation
type cachedEntry struct {
	Version  string
	Payload  []byte
	CachedAt time.Time
}

// Cached is a read-through, write-through LRU in front of a slower backend.
// Daily results never change once written, so entries only leave the cache
// by TTL, size pressure or a schema version bump.
type Cached struct {
	backend Backend
	lru     *expirable.LRU[string, *cachedEntry]
}

// NewCached creates a cache of the given size and TTL in front of backend
func NewCached(backend Backend, size int, ttl time.Duration) *Cached {
	return &Cached{
		backend: backend,
		lru:     expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

// Get serves from the cache and falls back to the backend on a miss
func (c *Cached) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if entry, ok := c.lru.Get(key); ok {
		if entry.Version == CacheSchemaVersion {
			return clone(entry.Payload), true, nil
		}
		c.lru.Remove(key)
	}

	value, found, err := c.backend.Get(ctx, key)
	if err != nil || !found {
		return value, found, err
	}
	c.add(key, value)
	return value, true, nil
}

// Set writes through to the backend and caches on success
func (c *Cached) Set(ctx context.Context, key string, value []byte) error {
	if err := c.backend.Set(ctx, key, value); err != nil {
		return err
	}
	c.add(key, value)
	return nil
}

// SetIfAbsent delegates to the backend when it is atomic. Otherwise it
// degrades to a read followed by a write.
func (c *Cached) SetIfAbsent(ctx context.Context, key string, value []byte) ([]byte, bool, error) {
	if ab, ok := c.backend.(atomicBackend); ok {
		stored, written, err := ab.SetIfAbsent(ctx, key, value)
		if err != nil {
			return nil, false, err
		}
		c.add(key, stored)
		return stored, written, nil
	}

	existing, found, err := c.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if found {
		return existing, false, nil
	}
	if err := c.Set(ctx, key, value); err != nil {
		return nil, false, err
	}
	return clone(value), true, nil
}

// PruneBefore prunes the backend. Cached copies of pruned rows age out by TTL.
func (c *Cached) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	pb, ok := c.backend.(prunableBackend)
	if !ok {
		return 0, ErrPruneNotSupported
	}
	n, err := pb.PruneBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgPruneFailed, err)
	}
	return n, nil
}

// Invalidate drops a key from the cache only
func (c *Cached) Invalidate(key string) {
	c.lru.Remove(key)
}

// Len returns the number of cached entries
func (c *Cached) Len() int {
	return c.lru.Len()
}

func (c *Cached) add(key string, value []byte) {
	c.lru.Add(key, &cachedEntry{
		Version:  CacheSchemaVersion,
		Payload:  clone(value),
		CachedAt: time.Now(),
	})
}
