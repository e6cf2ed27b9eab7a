package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	badger "github.com/dgraph-io/badger/v2"
	"go.uber.org/zap"
)

const (
	commitInitialInterval = 10 * time.Millisecond
	commitMaxInterval     = 250 * time.Millisecond
	commitMaxRetries      = 5
)

// BadgerStore is a persistent Store backed by a badger key-value database.
type BadgerStore struct {
	db     *badger.DB
	logger *zap.Logger
}

// OpenBadger opens (or creates) a badger database at dir.
func OpenBadger(dir string, logger *zap.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}

	return &BadgerStore{
		db:     db,
		logger: logger.Named("badger_store"),
	}, nil
}

// Close releases the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// Get returns the value for key and whether the key exists.
func (s *BadgerStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	return value, true, nil
}

// Set stores the value under key.
func (s *BadgerStore) Set(ctx context.Context, key string, value []byte) error {
	return s.ApplyBatch(ctx, map[string][]byte{key: value}, nil)
}

// Remove deletes the key.
func (s *BadgerStore) Remove(ctx context.Context, key string) error {
	return s.ApplyBatch(ctx, nil, []string{key})
}

// ApplyBatch applies all writes and removals in one badger transaction,
// retrying with backoff when the transaction hits a commit conflict.
func (s *BadgerStore) ApplyBatch(ctx context.Context, writes map[string][]byte, removes []string) error {
	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(commitInitialInterval),
		backoff.WithMaxInterval(commitMaxInterval),
	), commitMaxRetries)

	err := backoff.Retry(func() error {
		err := s.db.Update(func(txn *badger.Txn) error {
			for key, value := range writes {
				if err := txn.Set([]byte(key), value); err != nil {
					return err
				}
			}

			for _, key := range removes {
				if err := txn.Delete([]byte(key)); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			if errors.Is(err, badger.ErrConflict) {
				s.logger.Debug("Retrying conflicting badger commit", zap.Error(err))
				return err
			}

			return backoff.Permanent(err)
		}

		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return fmt.Errorf("failed to commit badger batch: %w", err)
	}

	return nil
}
