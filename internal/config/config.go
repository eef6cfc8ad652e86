package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config represents the main configuration structure
type Config struct {
	Memory      MemoryConfig      `yaml:"memory"`
	BigCache    BigCacheConfig    `yaml:"bigcache"`
	Redis       RedisConfig       `yaml:"redis"`
	Coordinator CoordinatorConfig `yaml:"coordinator"`
}

// MemoryConfig configures the in-process LRU store
type MemoryConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxEntries int  `yaml:"max_entries" validate:"omitempty,min=1"`
}

// BigCacheConfig configures the BigCache L1 store
type BigCacheConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Size         int           `yaml:"size" validate:"omitempty,min=1"` // MB
	Shards       int           `yaml:"shards" validate:"omitempty,min=1"`
	LifeWindow   time.Duration `yaml:"life_window"`
	CleanWindow  time.Duration `yaml:"clean_window"`
	MaxEntrySize int           `yaml:"max_entry_size" validate:"omitempty,min=1"` // bytes
}

// RedisConfig configures the Redis/KeyDB L2 store
type RedisConfig struct {
	Enabled    bool             `yaml:"enabled"`
	Namespace  string           `yaml:"namespace"`
	ScanCount  int64            `yaml:"scan_count" validate:"omitempty,min=1"`
	Connection ConnectionConfig `yaml:"connection"`
	Keepalive  KeepaliveConfig  `yaml:"keepalive"`
}

// ConnectionConfig holds Redis timeouts
type ConnectionConfig struct {
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	SendTimeout    time.Duration `yaml:"send_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
}

// KeepaliveConfig holds Redis pool settings
type KeepaliveConfig struct {
	PoolSize       int           `yaml:"pool_size" validate:"omitempty,min=1"`
	MaxIdleTimeout time.Duration `yaml:"max_idle_timeout"`
}

// CoordinatorConfig tunes the cache coordinator
type CoordinatorConfig struct {
	SingleFlight     bool `yaml:"single_flight"`
	SweepConcurrency int  `yaml:"sweep_concurrency" validate:"omitempty,min=1,max=1024"`
}

// LoadConfig loads configuration from file path
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	// Apply defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// Default returns a configuration with only the in-memory store enabled
func Default() *Config {
	config := &Config{Memory: MemoryConfig{Enabled: true}}
	config.applyDefaults()
	return config
}

// Validate checks field constraints
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	c.Memory.applyDefaults()
	c.BigCache.applyDefaults()
	c.Redis.applyDefaults()
	c.Coordinator.applyDefaults()
}

func (m *MemoryConfig) applyDefaults() {
	if m.MaxEntries == 0 {
		m.MaxEntries = 10000
	}
}

func (b *BigCacheConfig) applyDefaults() {
	if b.Size == 0 {
		b.Size = 64
	}
	if b.Shards == 0 {
		b.Shards = 1024
	}
	if b.LifeWindow == 0 {
		b.LifeWindow = time.Hour
	}
	if b.CleanWindow == 0 {
		b.CleanWindow = 5 * time.Minute
	}
	if b.MaxEntrySize == 0 {
		b.MaxEntrySize = 1024 * 1024
	}
}

// DefaultRedisNamespace keeps the cache's keys apart from other users of a shared Redis
const DefaultRedisNamespace = "pray:"

func (r *RedisConfig) applyDefaults() {
	if r.Namespace == "" {
		r.Namespace = DefaultRedisNamespace
	}
	if r.ScanCount == 0 {
		r.ScanCount = 100
	}
	if r.Connection.ConnectTimeout == 0 {
		r.Connection.ConnectTimeout = time.Second
	}
	if r.Connection.SendTimeout == 0 {
		r.Connection.SendTimeout = time.Second
	}
	if r.Connection.ReadTimeout == 0 {
		r.Connection.ReadTimeout = time.Second
	}
	if r.Keepalive.PoolSize == 0 {
		r.Keepalive.PoolSize = 10
	}
	if r.Keepalive.MaxIdleTimeout == 0 {
		r.Keepalive.MaxIdleTimeout = 10 * time.Second
	}
}

func (c *CoordinatorConfig) applyDefaults() {
	if c.SweepConcurrency == 0 {
		c.SweepConcurrency = 16
	}
}

// GetReadTimeout returns the Redis read timeout
func (r *RedisConfig) GetReadTimeout() time.Duration {
	return r.Connection.ReadTimeout
}

// GetSendTimeout returns the Redis write timeout
func (r *RedisConfig) GetSendTimeout() time.Duration {
	return r.Connection.SendTimeout
}
