package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"go-pray-cache/internal/cache"
	"go-pray-cache/internal/cache/coordinator"
	"go-pray-cache/internal/cache/l1"
	"go-pray-cache/internal/cache/l2"
	"go-pray-cache/internal/cache/memory"
	"go-pray-cache/internal/cache/multi"
	"go-pray-cache/internal/cache/noop"
	"go-pray-cache/internal/config"
	"go-pray-cache/internal/httpserver"
	"go-pray-cache/internal/interfaces"
	"go-pray-cache/internal/prayer"
	"go-pray-cache/internal/scheduler"
	"go-pray-cache/internal/ttlpolicy"
)

const metricsInterval = 30 * time.Second

// CompositionRoot holds all application dependencies and wires them in one place
type CompositionRoot struct {
	Config *config.Config
	Logger *zap.Logger
	TTLs   *ttlpolicy.Table

	// Store tiers, fastest first
	Memory   *memory.MemoryStore
	BigCache *l1.BigCache
	Redis    *l2.RedisStore
	Store    interfaces.Store

	KeyBuilder  interfaces.KeyBuilder
	Coordinator *coordinator.Coordinator
	HTTPServer  *httpserver.Server

	metricsScheduler *scheduler.Scheduler
}

// Repositories are the persistence boundaries the prayer services read through
type Repositories struct {
	Groups      interfaces.GroupRepository
	Users       interfaces.UserRepository
	Memberships interfaces.MembershipRepository
	Prayers     interfaces.PrayerRepository
}

// Services are the cached domain services
type Services struct {
	Groups      *prayer.GroupService
	Users       *prayer.UserService
	Memberships *prayer.MembershipService
	PrayerStats *prayer.PrayerStatsService
}

// NewCompositionRoot creates and initializes all application dependencies.
//
// Initialization order:
// 1. Logger
// 2. Configuration and TTL policies
// 3. Store tiers
// 4. Coordinator
// 5. HTTP server
func NewCompositionRoot() (*CompositionRoot, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return newCompositionRoot(cfg, logger)
}

// newCompositionRoot wires everything below configuration
func newCompositionRoot(cfg *config.Config, logger *zap.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{Config: cfg, Logger: logger}

	if err := root.loadTTLPolicies(); err != nil {
		return nil, fmt.Errorf("failed to load ttl policies: %w", err)
	}

	if err := root.initStores(); err != nil {
		_ = root.Cleanup()
		return nil, fmt.Errorf("failed to initialize cache stores: %w", err)
	}

	root.initCoordinator()
	root.initHTTPServer()

	return root, nil
}

// loadConfig reads the config file, falling back to defaults when it does not exist
func loadConfig(logger *zap.Logger) (*config.Config, error) {
	configPath := envOr("CACHE_CONFIG_FILE", "/app/cache_config.yaml")

	cfg, err := config.LoadConfig(configPath, logger)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Config file not found, using defaults", zap.String("path", configPath))
		return config.Default(), nil
	}
	return cfg, err
}

// loadTTLPolicies applies overrides from CACHE_TTL_POLICIES_FILE when set
func (r *CompositionRoot) loadTTLPolicies() error {
	path := os.Getenv("CACHE_TTL_POLICIES_FILE")
	if path == "" {
		r.TTLs = ttlpolicy.Default(r.Logger)
		return nil
	}

	table, err := ttlpolicy.LoadTable(path, r.Logger)
	if err != nil {
		return err
	}
	r.TTLs = table
	return nil
}

// initStores builds the enabled tiers and stacks them behind one Store
func (r *CompositionRoot) initStores() error {
	var tiers []interfaces.Store

	if r.Config.Memory.Enabled {
		store, err := memory.NewMemoryStore(r.Config.Memory.MaxEntries, r.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize memory store: %w", err)
		}
		r.Memory = store
		tiers = append(tiers, store)
		r.Logger.Info("Memory store initialized", zap.Int("max_entries", r.Config.Memory.MaxEntries))
	}

	if r.Config.BigCache.Enabled {
		store, err := l1.NewBigCache(&r.Config.BigCache, r.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize L1 cache: %w", err)
		}
		store.StartMetricsCollection(metricsInterval)
		r.BigCache = store
		tiers = append(tiers, store)
		r.Logger.Info("BigCache (L1) initialized", zap.Int("size_mb", r.Config.BigCache.Size))
	}

	if r.Config.Redis.Enabled {
		redisURL := GetRedisURL(r.Logger)
		client, err := l2.NewGoRedisClient(&r.Config.Redis, redisURL, r.Logger)
		if err != nil {
			r.Logger.Warn("Failed to connect to Redis, continuing without L2",
				zap.String("redis_url", redisURL),
				zap.Error(err))
		} else {
			r.Redis = l2.NewRedisStore(&r.Config.Redis, client, r.Logger)
			tiers = append(tiers, r.Redis)
			r.Logger.Info("Redis (L2) initialized", zap.String("namespace", r.Config.Redis.Namespace))
		}
	}

	switch len(tiers) {
	case 0:
		r.Logger.Warn("No cache tier enabled, every read goes to the loader")
		r.Store = noop.NewNoOpStore()
	case 1:
		r.Store = tiers[0]
	default:
		r.Store = multi.NewMultiStore(tiers, r.Logger)
	}

	if r.Memory != nil {
		r.metricsScheduler = scheduler.New(metricsInterval, r.Memory.UpdateMetrics)
		r.metricsScheduler.Start()
	}

	return nil
}

// initCoordinator builds the coordinator over the stacked store
func (r *CompositionRoot) initCoordinator() {
	r.KeyBuilder = cache.NewKeyBuilder()

	opts := []coordinator.Option{
		coordinator.WithSweepConcurrency(r.Config.Coordinator.SweepConcurrency),
	}
	if r.Config.Coordinator.SingleFlight {
		opts = append(opts, coordinator.WithSingleFlight())
	}

	r.Coordinator = coordinator.New(r.Store, r.KeyBuilder, r.Logger, opts...)
}

// initHTTPServer builds the ops server
func (r *CompositionRoot) initHTTPServer() {
	r.HTTPServer = httpserver.NewServer(r.Coordinator, r.Logger)
	if r.Redis != nil {
		r.HTTPServer.AddHealthCheck("redis", r.Redis.Ping)
	}
}

// NewServices builds the cached prayer services over repos
func (r *CompositionRoot) NewServices(repos Repositories) *Services {
	return &Services{
		Groups:      prayer.NewGroupService(repos.Groups, r.Coordinator, r.TTLs, r.Logger),
		Users:       prayer.NewUserService(repos.Users, r.Coordinator, r.TTLs, r.Logger),
		Memberships: prayer.NewMembershipService(repos.Memberships, repos.Groups, r.Coordinator, r.TTLs, r.Logger),
		PrayerStats: prayer.NewPrayerStatsService(repos.Prayers, r.Coordinator, r.TTLs, r.Logger),
	}
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	var errs error

	if r.metricsScheduler != nil {
		r.metricsScheduler.Stop()
	}

	if r.Memory != nil {
		errs = multierr.Append(errs, r.Memory.Close())
	}

	if r.BigCache != nil {
		if err := r.BigCache.Close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to close L1 cache: %w", err))
		}
	}

	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to close L2 cache: %w", err))
		}
	}

	if r.Logger != nil {
		// Sync fails on stdout/stderr on some platforms; nothing to act on
		_ = r.Logger.Sync()
	}

	return errs
}

// GetSocketPath returns the Unix socket path for the server
func (r *CompositionRoot) GetSocketPath() string {
	return envOr("CACHE_SOCKET_PATH", "/tmp/pray-cache.sock")
}
