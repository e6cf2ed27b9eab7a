// Package storage defines the keyed-store contract the engine runs against
// and the staging overlay that gives every operation all-or-nothing commit
// semantics on top of plain get/set/remove.
package storage

import "context"

// Store is the external keyed-store adapter. Implementations only need
// point lookups and writes; atomicity across keys is layered on by Tx.
type Store interface {
	// Get returns the value for key and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes the key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// BatchWriter is an optional Store upgrade that applies a set of writes and
// removals as one unit. Tx prefers it over individual calls on commit.
type BatchWriter interface {
	ApplyBatch(ctx context.Context, writes map[string][]byte, removes []string) error
}
