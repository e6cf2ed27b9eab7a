package storage

import "context"

// Tx is a staging overlay over a base store. Reads fall through to the base
// unless shadowed; writes and removals are buffered until Commit. Discarding
// a Tx (by dropping it) leaves the base untouched, which is how operations
// guarantee that no partial mutation survives a failed validation.
type Tx struct {
	base    Store
	writes  map[string][]byte
	removed map[string]struct{}
}

// NewTx starts a staging overlay on top of base.
func NewTx(base Store) *Tx {
	return &Tx{
		base:    base,
		writes:  make(map[string][]byte),
		removed: make(map[string]struct{}),
	}
}

// Get returns the staged value if present, otherwise reads through.
func (t *Tx) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if _, ok := t.removed[key]; ok {
		return nil, false, nil
	}

	if value, ok := t.writes[key]; ok {
		return value, true, nil
	}

	return t.base.Get(ctx, key)
}

// Set buffers the write.
func (t *Tx) Set(_ context.Context, key string, value []byte) error {
	delete(t.removed, key)
	t.writes[key] = value

	return nil
}

// Remove buffers the removal.
func (t *Tx) Remove(_ context.Context, key string) error {
	delete(t.writes, key)
	t.removed[key] = struct{}{}

	return nil
}

// Commit flushes the staged mutations to the base store. It prefers the
// base's batch path when available.
func (t *Tx) Commit(ctx context.Context) error {
	removes := make([]string, 0, len(t.removed))
	for key := range t.removed {
		removes = append(removes, key)
	}

	if batcher, ok := t.base.(BatchWriter); ok {
		return batcher.ApplyBatch(ctx, t.writes, removes)
	}

	for key, value := range t.writes {
		if err := t.base.Set(ctx, key, value); err != nil {
			return err
		}
	}

	for _, key := range removes {
		if err := t.base.Remove(ctx, key); err != nil {
			return err
		}
	}

	return nil
}

// Pending returns the number of staged mutations.
func (t *Tx) Pending() int {
	return len(t.writes) + len(t.removed)
}
