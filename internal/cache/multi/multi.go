package multi

import (
	"context"
	"errors"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"go-pray-cache/internal/cache"
	"go-pray-cache/internal/interfaces"
)

// Ensure MultiStore implements interfaces.ListingStore
var _ interfaces.ListingStore = (*MultiStore)(nil)

// MultiStore implements a tiered store over an ordered list of stores.
// Reads stop at the first tier holding the key; writes and deletes go to every tier.
type MultiStore struct {
	stores []interfaces.Store
	logger *zap.Logger
}

// NewMultiStore creates a new MultiStore instance with provided store tiers
func NewMultiStore(stores []interfaces.Store, logger *zap.Logger) *MultiStore {
	return &MultiStore{
		stores: stores,
		logger: logger,
	}
}

// Get returns the value from the first tier that has the key.
// A tier error is only surfaced when no later tier hits.
func (ms *MultiStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if len(ms.stores) == 0 {
		ms.logger.Warn("No stores available for get operation", zap.String("key", key))
		return nil, false, nil
	}

	var firstErr error
	for i, store := range ms.stores {
		val, found, err := store.Get(ctx, key)
		if err != nil {
			ms.logger.Warn("Store tier get failed", zap.Int("tier", i), zap.String("key", key), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if found {
			return val, true, nil
		}
	}
	return nil, false, firstErr
}

// Set stores value in every tier
func (ms *MultiStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if len(ms.stores) == 0 {
		ms.logger.Warn("No stores available for set operation", zap.String("key", key))
		return nil
	}

	var errs error
	for _, store := range ms.stores {
		errs = multierr.Append(errs, store.Set(ctx, key, val, ttl))
	}
	return errs
}

// Delete removes entry from every tier
func (ms *MultiStore) Delete(ctx context.Context, key string) error {
	if len(ms.stores) == 0 {
		ms.logger.Warn("No stores available for delete operation", zap.String("key", key))
		return nil
	}

	var errs error
	for _, store := range ms.stores {
		errs = multierr.Append(errs, store.Delete(ctx, key))
	}
	return errs
}

// ListKeys returns the union of keys from every tier able to list them
func (ms *MultiStore) ListKeys(ctx context.Context) ([]string, error) {
	var (
		keys    []string
		listers int
	)
	seen := make(map[string]struct{})

	for _, store := range ms.stores {
		lister, ok := store.(interfaces.KeyLister)
		if !ok {
			continue
		}

		tierKeys, err := lister.ListKeys(ctx)
		if errors.Is(err, cache.ErrUnsupportedCapability) {
			continue
		}
		if err != nil {
			return nil, err
		}
		listers++

		for _, key := range tierKeys {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	if listers == 0 {
		return nil, cache.ErrUnsupportedCapability
	}
	return keys, nil
}

// GetStoreCount returns the number of tiers
func (ms *MultiStore) GetStoreCount() int {
	return len(ms.stores)
}
