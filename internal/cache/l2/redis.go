package l2

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"go-pray-cache/internal/cache"
	"go-pray-cache/internal/config"
	"go-pray-cache/internal/interfaces"
	"go-pray-cache/internal/metrics"
)

const level = "l2"

// Ensure RedisStore implements interfaces.ListingStore
var _ interfaces.ListingStore = (*RedisStore)(nil)

// RedisStore implements the L2 store using Redis/KeyDB.
// Expiry is delegated to Redis; TTLs are sent with millisecond precision.
type RedisStore struct {
	client interfaces.RedisClient
	config *config.RedisConfig
	logger *zap.Logger
}

// NewRedisStore creates a new RedisStore instance with provided client
func NewRedisStore(cfg *config.RedisConfig, client interfaces.RedisClient, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		config: cfg,
		logger: logger,
	}
}

// Get retrieves value from Redis; redis.Nil is a miss
func (rs *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, rs.config.GetReadTimeout())
	defer cancel()

	data, err := rs.client.Get(ctx, rs.namespaced(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		rs.logger.Error("L2 cache get error", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(level, "upstream")
		return nil, false, &cache.BackendError{Level: level, Op: "get", Key: key, Err: err}
	}

	return data, true, nil
}

// Set stores value in Redis; ttl == 0 keeps the key until deleted
func (rs *RedisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, rs.config.GetSendTimeout())
	defer cancel()

	if err := rs.client.Set(ctx, rs.namespaced(key), val, ttl).Err(); err != nil {
		rs.logger.Error("Failed to set L2 cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(level, "upstream")
		return &cache.BackendError{Level: level, Op: "set", Key: key, Err: err}
	}
	return nil
}

// Delete removes entry from Redis
func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, rs.config.GetSendTimeout())
	defer cancel()

	if err := rs.client.Del(ctx, rs.namespaced(key)).Err(); err != nil {
		rs.logger.Error("Failed to delete L2 cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(level, "upstream")
		return &cache.BackendError{Level: level, Op: "delete", Key: key, Err: err}
	}
	return nil
}

// ListKeys walks the namespace with SCAN and returns keys without the namespace.
// SCAN may return a key more than once; duplicates are dropped.
func (rs *RedisStore) ListKeys(ctx context.Context) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	seen := make(map[string]struct{})

	for {
		batch, next, err := rs.client.Scan(ctx, cursor, escapeGlob(rs.config.Namespace)+"*", rs.config.ScanCount).Result()
		if err != nil {
			rs.logger.Error("L2 cache scan error", zap.Uint64("cursor", cursor), zap.Error(err))
			metrics.RecordCacheError(level, "upstream")
			return nil, &cache.BackendError{Level: level, Op: "scan", Err: err}
		}

		for _, key := range batch {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, strings.TrimPrefix(key, rs.config.Namespace))
		}

		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

// Ping checks that Redis is reachable
func (rs *RedisStore) Ping(ctx context.Context) error {
	if err := rs.client.Ping(ctx).Err(); err != nil {
		return &cache.BackendError{Level: level, Op: "ping", Err: err}
	}
	return nil
}

// Close closes the Redis connection
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

func (rs *RedisStore) namespaced(key string) string {
	return rs.config.Namespace + key
}

// escapeGlob quotes the characters SCAN MATCH treats as pattern syntax
func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}

var globEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`, "[", `\[`, "]", `\]`)
