package idle

import (
	"context"
	"time"
)

// Store is the key-value medium daily results are persisted to
type Store interface {
	// Get returns the value for key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// AtomicStore is a Store that can make the first write for a key win
type AtomicStore interface {
	Store
	// SetIfAbsent writes value only when key is absent. It returns the value
	// now stored under key and whether this call wrote it.
	SetIfAbsent(ctx context.Context, key string, value []byte) (stored []byte, written bool, err error)
}

// Pruner deletes daily results created before cutoff
type Pruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
