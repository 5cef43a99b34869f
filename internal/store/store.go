// Package store is the persisted key-value layer. Records are opaque JSON
// values under deterministic string keys (see keys.go); callers validate
// before writing.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrConflict is returned by Update when the transaction kept losing
// optimistic races after maxTxAttempts.
var ErrConflict = errors.New("store: transaction conflict")

const maxTxAttempts = 3

// Store is implemented by the redis, badger and sql backends.
type Store interface {
	// Get decodes the record at key into dst. found is false on a miss.
	Get(ctx context.Context, key string, dst any) (found bool, err error)
	// Set writes value through immediately.
	Set(ctx context.Context, key string, value any) error
	// Remove deletes keys; missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error
	// Update runs fn in a transaction over keys. Writes made through tx
	// commit together or not at all. keys must list every record fn reads
	// to decide what to write: redis watches them and sql locks them.
	Update(ctx context.Context, keys []string, fn func(tx Tx) error) error
	Ping(ctx context.Context) error
	Close() error
}

// Tx is the view of the store inside Update.
type Tx interface {
	Get(key string, dst any) (bool, error)
	Set(key string, value any) error
	Remove(keys ...string) error
}

func encode(key string, value any) ([]byte, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	return b, nil
}

func decode(key string, data []byte, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
