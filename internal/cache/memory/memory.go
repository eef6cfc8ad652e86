package memory

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"go-pray-cache/internal/interfaces"
	"go-pray-cache/internal/metrics"
	"go-pray-cache/internal/models"
)

const level = "memory"

// Ensure MemoryStore implements interfaces.ListingStore
var _ interfaces.ListingStore = (*MemoryStore)(nil)

// MemoryStore is a bounded in-memory LRU store with per-entry expiry.
// Expired entries are dropped lazily on read and hidden from ListKeys.
type MemoryStore struct {
	// writeMu orders Set against expired-entry removal
	writeMu sync.Mutex
	lru     *lru.Cache[string, models.CacheEntry]
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures a MemoryStore
type Option func(*MemoryStore)

// WithClock overrides the time source used for expiry
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates a new in-memory store holding at most maxEntries keys
func NewMemoryStore(maxEntries int, logger *zap.Logger, opts ...Option) (*MemoryStore, error) {
	if maxEntries <= 0 {
		maxEntries = 10000
	}

	s := &MemoryStore{
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	cache, err := lru.NewWithEvict[string, models.CacheEntry](maxEntries, func(key string, _ models.CacheEntry) {
		metrics.RecordEviction(level)
	})
	if err != nil {
		return nil, err
	}
	s.lru = cache

	return s, nil
}

// Get returns the stored value if present and not expired
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	entry, ok := s.lru.Get(key)
	if !ok {
		return nil, false, nil
	}

	if now := s.now(); entry.IsExpiredAt(now) {
		s.removeExpired(key, now)
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores val; ttl == 0 keeps it until evicted or deleted
func (s *MemoryStore) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	data := make([]byte, len(val))
	copy(data, val)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.lru.Add(key, models.NewCacheEntry(data, s.now(), ttl))
	return nil
}

// removeExpired drops key only if the entry held now is still expired,
// so a value written since the read survives
func (s *MemoryStore) removeExpired(key string, now time.Time) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if entry, ok := s.lru.Peek(key); ok && entry.IsExpiredAt(now) {
		s.lru.Remove(key)
	}
}

// Delete removes key
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.lru.Remove(key)
	return nil
}

// ListKeys returns every live key, oldest first
func (s *MemoryStore) ListKeys(_ context.Context) ([]string, error) {
	now := s.now()
	keys := s.lru.Keys()

	live := keys[:0]
	for _, key := range keys {
		entry, ok := s.lru.Peek(key)
		if !ok || entry.IsExpiredAt(now) {
			continue
		}
		live = append(live, key)
	}
	return live, nil
}

// Len returns the number of entries held, expired or not
func (s *MemoryStore) Len() int {
	return s.lru.Len()
}

// ExpiresAt reports the expiry recorded for key, zero time if none
func (s *MemoryStore) ExpiresAt(key string) (time.Time, bool) {
	entry, ok := s.lru.Peek(key)
	if !ok {
		return time.Time{}, false
	}
	if entry.ExpiresAt == 0 {
		return time.Time{}, true
	}
	return time.UnixMilli(entry.ExpiresAt), true
}

// UpdateMetrics publishes the current key count
func (s *MemoryStore) UpdateMetrics() {
	metrics.UpdateCacheKeys(level, int64(s.lru.Len()))
}

// Close releases the entries held
func (s *MemoryStore) Close() error {
	s.lru.Purge()
	s.logger.Debug("Memory store purged")
	return nil
}
