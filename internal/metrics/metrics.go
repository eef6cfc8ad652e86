package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Read-through counters, labelled by key prefix
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pray_cache_requests_total",
			Help: "Total number of read-through requests",
		},
		[]string{"prefix"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pray_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"prefix"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pray_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"prefix"},
	)

	LoaderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pray_cache_loader_errors_total",
			Help: "Total number of failed loader calls on a miss",
		},
		[]string{"prefix"},
	)

	// Invalidation counters
	Invalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pray_cache_invalidations_total",
			Help: "Total number of single-key invalidations",
		},
		[]string{"prefix"},
	)

	SweepDeletedKeys = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pray_cache_sweep_deleted_keys_total",
			Help: "Total number of keys removed by prefix sweeps",
		},
		[]string{"prefix"},
	)

	SweepUnsupported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pray_cache_sweep_unsupported_total",
			Help: "Prefix sweeps skipped because the store cannot list keys",
		},
	)

	// Store level errors
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pray_cache_errors_total",
			Help: "Total number of store errors",
		},
		[]string{"level", "kind"},
	)

	CacheOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pray_cache_operation_duration_seconds",
			Help:    "Duration of coordinator operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// L1 capacity metrics only (if L1 is in-memory)
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pray_cache_capacity_bytes",
			Help: "L1 cache capacity in bytes",
		},
		[]string{"level"},
	)

	CacheUsed = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pray_cache_used_bytes",
			Help: "L1 cache used space in bytes",
		},
		[]string{"level"},
	)

	CacheKeys = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pray_cache_keys",
			Help: "Number of keys held per level",
		},
		[]string{"level"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pray_cache_evictions_total",
			Help: "Entries evicted to make room",
		},
		[]string{"level"},
	)
)

// RecordCacheRequest records a read-through request
func RecordCacheRequest(prefix string) {
	CacheRequests.WithLabelValues(prefix).Inc()
}

// RecordCacheHit records a cache hit
func RecordCacheHit(prefix string) {
	CacheHits.WithLabelValues(prefix).Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss(prefix string) {
	CacheMisses.WithLabelValues(prefix).Inc()
}

// RecordLoaderError records a failed loader call
func RecordLoaderError(prefix string) {
	LoaderErrors.WithLabelValues(prefix).Inc()
}

// RecordInvalidation records a single-key invalidation
func RecordInvalidation(prefix string) {
	Invalidations.WithLabelValues(prefix).Inc()
}

// RecordSweep records keys removed by a prefix sweep
func RecordSweep(prefix string, deleted int) {
	SweepDeletedKeys.WithLabelValues(prefix).Add(float64(deleted))
}

// RecordSweepUnsupported records a sweep that could not enumerate keys
func RecordSweepUnsupported() {
	SweepUnsupported.Inc()
}

// RecordCacheError records a store error with level and kind
func RecordCacheError(level, kind string) {
	CacheErrors.WithLabelValues(level, kind).Inc()
}

// RecordEviction records an entry evicted from a bounded level
func RecordEviction(level string) {
	CacheEvictions.WithLabelValues(level).Inc()
}

// UpdateL1CacheCapacity updates L1 cache capacity metrics only
func UpdateL1CacheCapacity(capacity, used int64) {
	CacheCapacity.WithLabelValues("l1").Set(float64(capacity))
	CacheUsed.WithLabelValues("l1").Set(float64(used))
}

// UpdateCacheKeys updates the number of keys in a level
func UpdateCacheKeys(level string, count int64) {
	CacheKeys.WithLabelValues(level).Set(float64(count))
}

// TimeCacheOperation returns a timer function for measuring a coordinator operation
func TimeCacheOperation(operation string) func() {
	timer := prometheus.NewTimer(CacheOperationDuration.WithLabelValues(operation))
	return func() {
		timer.ObserveDuration()
	}
}
