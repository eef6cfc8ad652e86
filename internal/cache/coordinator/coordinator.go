package coordinator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"go-pray-cache/internal/cache"
	"go-pray-cache/internal/interfaces"
	"go-pray-cache/internal/metrics"
	"go-pray-cache/internal/models"
)

const defaultSweepConcurrency = 16

// Ensure Coordinator implements interfaces.Invalidator
var _ interfaces.Invalidator = (*Coordinator)(nil)

// Loader computes the value for a key on a cache miss
type Loader[T any] func(ctx context.Context) (T, error)

// Coordinator layers read-through and invalidation over a Store.
// It keeps no per-request state and is safe for concurrent use.
type Coordinator struct {
	store            interfaces.Store
	keyBuilder       interfaces.KeyBuilder
	logger           *zap.Logger
	sweepConcurrency int

	// nil unless WithSingleFlight is set
	flights *singleflight.Group
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithSingleFlight coalesces concurrent misses on the same key into one loader call.
// The shared call runs with the context of the caller that started it.
func WithSingleFlight() Option {
	return func(c *Coordinator) {
		c.flights = &singleflight.Group{}
	}
}

// WithSweepConcurrency bounds the number of deletes a prefix sweep runs at once
func WithSweepConcurrency(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.sweepConcurrency = n
		}
	}
}

// New creates a Coordinator over store
func New(store interfaces.Store, keyBuilder interfaces.KeyBuilder, logger *zap.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:            store,
		keyBuilder:       keyBuilder,
		logger:           logger,
		sweepConcurrency: defaultSweepConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key builds the cache key for prefix and parts
func (c *Coordinator) Key(prefix models.Prefix, parts ...string) (string, error) {
	return c.keyBuilder.Build(prefix, parts...)
}

// GetOrSet returns the cached value for key, or calls loader, caches its result for ttl
// and returns it. Cached zero values are hits; a cached JSON null is a miss.
// Loader and store errors are returned and nothing is cached.
func GetOrSet[T any](ctx context.Context, c *Coordinator, key string, loader Loader[T], ttl models.TTL) (T, error) {
	defer metrics.TimeCacheOperation("get_or_set")()

	prefix := prefixLabel(key)
	metrics.RecordCacheRequest(prefix)

	var zero T
	value, found, err := lookup[T](ctx, c, key)
	if err != nil {
		return zero, err
	}
	if found {
		metrics.RecordCacheHit(prefix)
		return value, nil
	}
	metrics.RecordCacheMiss(prefix)

	if c.flights == nil {
		return loadAndStore(ctx, c, key, loader, ttl)
	}

	shared, err, coalesced := c.flights.Do(flightKey[T](key), func() (interface{}, error) {
		return loadAndStore(ctx, c, key, loader, ttl)
	})
	if coalesced {
		c.logger.Debug("Coalesced concurrent cache miss", zap.String("key", key))
	}
	if err != nil {
		return zero, err
	}

	value, ok := shared.(T)
	if !ok && shared != nil {
		c.logger.Warn("Coalesced result has unexpected type, loading directly",
			zap.String("key", key),
			zap.String("type", fmt.Sprintf("%T", shared)))
		return loadAndStore(ctx, c, key, loader, ttl)
	}
	return value, nil
}

// flightKey separates flights for the same cache key read as different types
func flightKey[T any](key string) string {
	return key + "\x00" + reflect.TypeOf((*T)(nil)).Elem().String()
}

// GetOrSetEntity builds the key from prefix and parts and reads through it
func GetOrSetEntity[T any](ctx context.Context, c *Coordinator, prefix models.Prefix, parts []string, loader Loader[T], ttl models.TTL) (T, error) {
	key, err := c.Key(prefix, parts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return GetOrSet(ctx, c, key, loader, ttl)
}

func lookup[T any](ctx context.Context, c *Coordinator, key string) (T, bool, error) {
	var zero T

	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Cache lookup failed", zap.String("key", key), zap.Error(err))
		return zero, false, err
	}
	if !found || isAbsent(raw) {
		return zero, false, nil
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		c.logger.Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("coordinator", "decode")
		if delErr := c.store.Delete(ctx, key); delErr != nil {
			c.logger.Warn("Failed to delete undecodable cache entry", zap.String("key", key), zap.Error(delErr))
		}
		return zero, false, nil
	}
	return value, true, nil
}

func loadAndStore[T any](ctx context.Context, c *Coordinator, key string, loader Loader[T], ttl models.TTL) (T, error) {
	var zero T

	value, err := loader(ctx)
	if err != nil {
		metrics.RecordLoaderError(prefixLabel(key))
		return zero, &cache.LoaderError{Key: key, Err: err}
	}

	data, err := json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("failed to encode cache value for %q: %w", key, err)
	}

	if err := c.store.Set(ctx, key, data, ttl.Duration()); err != nil {
		c.logger.Warn("Failed to store loaded value", zap.String("key", key), zap.Error(err))
		return zero, err
	}
	return value, nil
}

// Invalidate deletes the key built from prefix and parts
func (c *Coordinator) Invalidate(ctx context.Context, prefix models.Prefix, parts ...string) error {
	key, err := c.keyBuilder.Build(prefix, parts...)
	if err != nil {
		return err
	}

	if err := c.store.Delete(ctx, key); err != nil {
		c.logger.Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
		return err
	}

	metrics.RecordInvalidation(string(prefix))
	c.logger.Debug("Invalidated cache key", zap.String("key", key))
	return nil
}

// InvalidateGroup evicts the cached group
func (c *Coordinator) InvalidateGroup(ctx context.Context, groupID string) error {
	return c.Invalidate(ctx, models.PrefixGroup, groupID)
}

// InvalidateUser evicts the cached user
func (c *Coordinator) InvalidateUser(ctx context.Context, userID string) error {
	return c.Invalidate(ctx, models.PrefixUser, userID)
}

// InvalidateMembership evicts the cached membership of userID in groupID
func (c *Coordinator) InvalidateMembership(ctx context.Context, userID, groupID string) error {
	return c.Invalidate(ctx, models.PrefixMembership, userID, groupID)
}

// InvalidatePrayerStats evicts the cached prayer statistics of a group
func (c *Coordinator) InvalidatePrayerStats(ctx context.Context, groupID string) error {
	return c.Invalidate(ctx, models.PrefixPrayerStats, groupID)
}

// InvalidateByPrefix deletes every key under prefix and returns how many were deleted.
// It is best-effort: when the store cannot list keys it logs and does nothing.
// All deletes run to completion; their failures are returned together.
func (c *Coordinator) InvalidateByPrefix(ctx context.Context, prefix models.Prefix) (int, error) {
	defer metrics.TimeCacheOperation("invalidate_by_prefix")()

	if !prefix.Valid() {
		return 0, fmt.Errorf("%w: unknown prefix %q", cache.ErrInvalidKey, string(prefix))
	}

	lister, ok := c.store.(interfaces.KeyLister)
	if !ok {
		c.skipSweep(prefix)
		return 0, nil
	}

	keys, err := lister.ListKeys(ctx)
	if errors.Is(err, cache.ErrUnsupportedCapability) {
		c.skipSweep(prefix)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to list keys for prefix %q: %w", string(prefix), err)
	}

	match := string(prefix) + models.KeySeparator
	targets := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.HasPrefix(key, match) {
			targets = append(targets, key)
		}
	}
	if len(targets) == 0 {
		return 0, nil
	}

	var (
		mu      sync.Mutex
		errs    error
		deleted int
	)

	// Plain group: one failed delete must not cancel the others
	var g errgroup.Group
	g.SetLimit(c.sweepConcurrency)
	for _, key := range targets {
		key := key
		g.Go(func() error {
			err := c.store.Delete(ctx, key)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("failed to delete %q: %w", key, err))
				return nil
			}
			deleted++
			return nil
		})
	}
	_ = g.Wait()

	metrics.RecordSweep(string(prefix), deleted)
	c.logger.Info("Prefix sweep finished",
		zap.String("prefix", string(prefix)),
		zap.Int("matched", len(targets)),
		zap.Int("deleted", deleted),
		zap.Error(errs))

	return deleted, errs
}

func (c *Coordinator) skipSweep(prefix models.Prefix) {
	metrics.RecordSweepUnsupported()
	c.logger.Warn("Store cannot list keys, prefix sweep skipped", zap.String("prefix", string(prefix)))
}

// isAbsent treats an empty or JSON null payload as a stored "nothing"
func isAbsent(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func prefixLabel(key string) string {
	if prefix, ok := cache.PrefixOf(key); ok {
		return string(prefix)
	}
	return "other"
}
