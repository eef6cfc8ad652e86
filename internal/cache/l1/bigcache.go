package l1

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"go-pray-cache/internal/cache"
	"go-pray-cache/internal/config"
	"go-pray-cache/internal/interfaces"
	"go-pray-cache/internal/metrics"
	"go-pray-cache/internal/models"
	"go-pray-cache/internal/scheduler"
)

const level = "l1"

// Ensure BigCache implements interfaces.ListingStore
var _ interfaces.ListingStore = (*BigCache)(nil)

// BigCache implements the L1 store using BigCache.
// Entries are wrapped in a models.CacheEntry so each key keeps its own expiry;
// LifeWindow still bounds how long any entry can live.
type BigCache struct {
	// writeMu orders Set against removal of expired or corrupt entries
	writeMu          sync.Mutex
	cache            *bigcache.BigCache
	logger           *zap.Logger
	now              func() time.Time
	metricsScheduler *scheduler.Scheduler
}

// NewBigCache creates a new BigCache instance
func NewBigCache(bigcacheCfg *config.BigCacheConfig, logger *zap.Logger) (*BigCache, error) {
	cfg := bigcache.DefaultConfig(bigcacheCfg.LifeWindow)
	cfg.Shards = bigcacheCfg.Shards
	cfg.CleanWindow = bigcacheCfg.CleanWindow
	cfg.HardMaxCacheSize = bigcacheCfg.Size // Size in MB
	cfg.MaxEntrySize = bigcacheCfg.MaxEntrySize
	cfg.Verbose = false

	bc, err := bigcache.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	return &BigCache{
		cache:  bc,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Get retrieves a live value from the cache
func (bc *BigCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := bc.cache.Get(key)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return nil, false, nil
		}
		metrics.RecordCacheError(level, "upstream")
		return nil, false, &cache.BackendError{Level: level, Op: "get", Key: key, Err: err}
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		bc.logger.Warn("Failed to unmarshal L1 cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(level, "decode")
		bc.removeStale(key, bc.now())
		return nil, false, nil
	}

	if now := bc.now(); entry.IsExpiredAt(now) {
		bc.removeStale(key, now)
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores value in cache with TTL
func (bc *BigCache) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	data, err := json.Marshal(models.NewCacheEntry(val, bc.now(), ttl))
	if err != nil {
		metrics.RecordCacheError(level, "encode")
		return &cache.BackendError{Level: level, Op: "set", Key: key, Err: err}
	}

	bc.writeMu.Lock()
	defer bc.writeMu.Unlock()

	if err := bc.cache.Set(key, data); err != nil {
		bc.logger.Error("Failed to set cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(level, "upstream")
		return &cache.BackendError{Level: level, Op: "set", Key: key, Err: err}
	}
	return nil
}

// removeStale deletes key only if the entry held now is still expired or undecodable,
// so a value written since the read survives
func (bc *BigCache) removeStale(key string, now time.Time) {
	bc.writeMu.Lock()
	defer bc.writeMu.Unlock()

	data, err := bc.cache.Get(key)
	if err != nil {
		return
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(data, &entry); err == nil && !entry.IsExpiredAt(now) {
		return
	}
	_ = bc.cache.Delete(key)
}

// Delete removes entry from cache
func (bc *BigCache) Delete(_ context.Context, key string) error {
	err := bc.cache.Delete(key)
	if err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		metrics.RecordCacheError(level, "upstream")
		return &cache.BackendError{Level: level, Op: "delete", Key: key, Err: err}
	}
	return nil
}

// ListKeys walks every shard and returns the stored keys
func (bc *BigCache) ListKeys(_ context.Context) ([]string, error) {
	keys := make([]string, 0, bc.cache.Len())

	it := bc.cache.Iterator()
	for it.SetNext() {
		info, err := it.Value()
		if err != nil {
			// The entry went away while iterating
			continue
		}
		keys = append(keys, info.Key())
	}
	return keys, nil
}

// Close closes the cache
func (bc *BigCache) Close() error {
	bc.stopMetricsCollection()

	return bc.cache.Close()
}

// GetStats returns cache statistics for metrics
func (bc *BigCache) GetStats() (capacity, used int64) {
	capacity = int64(bc.cache.Capacity())
	used = int64(bc.cache.Len())
	return capacity, used
}

// StartMetricsCollection starts periodic metrics collection
func (bc *BigCache) StartMetricsCollection(interval time.Duration) {
	if bc.metricsScheduler != nil {
		return
	}
	bc.metricsScheduler = scheduler.New(interval, bc.updateMetrics)
	bc.metricsScheduler.Start()

	// Initial collection
	bc.updateMetrics()

	bc.logger.Debug("Started L1 cache metrics collection")
}

// stopMetricsCollection stops periodic metrics collection
func (bc *BigCache) stopMetricsCollection() {
	if bc.metricsScheduler != nil {
		bc.metricsScheduler.Stop()
		bc.logger.Debug("Stopped L1 cache metrics collection")
	}
}

// updateMetrics updates cache metrics
func (bc *BigCache) updateMetrics() {
	capacity, used := bc.GetStats()
	metrics.UpdateL1CacheCapacity(capacity, used)
	metrics.UpdateCacheKeys(level, int64(bc.cache.Len()))
}
