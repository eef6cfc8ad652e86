package l2

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"go-pray-cache/internal/config"
	"go-pray-cache/internal/interfaces"
)

// Ensure GoRedisClient implements interfaces.RedisClient
var _ interfaces.RedisClient = (*GoRedisClient)(nil)

// GoRedisClient wraps redis.Client to implement the RedisClient interface
type GoRedisClient struct {
	client *redis.Client
	logger *zap.Logger
}

// ParseRedisURL turns a redis:// URL into client options using the configured timeouts
func ParseRedisURL(redisCfg *config.RedisConfig, redisURL string) (*redis.Options, error) {
	parsedURL, err := url.Parse(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	if parsedURL.Scheme != "redis" && parsedURL.Scheme != "rediss" {
		return nil, fmt.Errorf("unsupported Redis URL scheme %q", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	port := parsedURL.Port()
	if port == "" {
		port = "6379" // Default Redis port
	}

	opts := &redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		DialTimeout:  redisCfg.Connection.ConnectTimeout,
		ReadTimeout:  redisCfg.Connection.ReadTimeout,
		WriteTimeout: redisCfg.Connection.SendTimeout,
		PoolSize:     redisCfg.Keepalive.PoolSize,
		IdleTimeout:  redisCfg.Keepalive.MaxIdleTimeout,
	}

	if parsedURL.User != nil {
		opts.Username = parsedURL.User.Username()
		if password, ok := parsedURL.User.Password(); ok {
			opts.Password = password
		}
	}

	// Database number from the URL path
	if len(parsedURL.Path) > 1 {
		db, err := strconv.Atoi(parsedURL.Path[1:])
		if err != nil {
			return nil, fmt.Errorf("invalid Redis database %q: %w", parsedURL.Path[1:], err)
		}
		opts.DB = db
	}

	return opts, nil
}

// NewGoRedisClient connects to Redis and verifies the connection with PING
func NewGoRedisClient(redisCfg *config.RedisConfig, redisURL string, logger *zap.Logger) (*GoRedisClient, error) {
	opts, err := ParseRedisURL(redisCfg, redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisCfg.Connection.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	logger.Info("Connected to Redis",
		zap.String("address", opts.Addr),
		zap.Int("db", opts.DB),
		zap.Duration("connect_timeout", redisCfg.Connection.ConnectTimeout),
		zap.Int("pool_size", redisCfg.Keepalive.PoolSize))

	return &GoRedisClient{
		client: client,
		logger: logger,
	}, nil
}

// Get retrieves a value by key
func (r *GoRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return r.client.Get(ctx, key)
}

// Set stores a value with expiration
func (r *GoRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	return r.client.Set(ctx, key, value, expiration)
}

// Del deletes one or more keys
func (r *GoRedisClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return r.client.Del(ctx, keys...)
}

// Scan iterates the keyspace
func (r *GoRedisClient) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	return r.client.Scan(ctx, cursor, match, count)
}

// Ping tests connectivity
func (r *GoRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	return r.client.Ping(ctx)
}

// Close closes the client connection
func (r *GoRedisClient) Close() error {
	return r.client.Close()
}
