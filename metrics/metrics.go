package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adt_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adt_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "adt_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adt_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// ScoresSubmitted counts recorded rounds by scoring family
	ScoresSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adt_scores_submitted_total",
			Help: "Total number of scored rounds recorded",
		},
		[]string{"family"},
	)

	// RecordsSuperseded counts record-chain supersessions
	RecordsSuperseded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adt_records_superseded_total",
			Help: "Total number of discipline records superseded",
		},
	)

	// BroadcastsDelivered counts live-score messages written to subscribers
	BroadcastsDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adt_broadcasts_delivered_total",
			Help: "Total number of live score updates delivered to websocket clients",
		},
	)

	// BroadcastsDropped counts live-score messages lost to dead connections
	BroadcastsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adt_broadcasts_dropped_total",
			Help: "Total number of live score updates dropped on write failure",
		},
	)

	// RankingCacheHits counts annual ranking responses served from redis
	RankingCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adt_ranking_cache_hits_total",
			Help: "Total number of ranking queries served from cache",
		},
	)

	// RankingCacheMisses counts annual ranking responses recomputed from the database
	RankingCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adt_ranking_cache_misses_total",
			Help: "Total number of ranking queries recomputed from the database",
		},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adt_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "adt_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "adt_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// SystemCPUUsage tracks CPU usage percentage
	SystemCPUUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "adt_system_cpu_usage_percent",
			Help: "CPU usage percentage by core",
		},
		[]string{"core"},
	)

	// SystemLoadAverage tracks system load averages
	SystemLoadAverage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "adt_system_load_average",
			Help: "System load average",
		},
		[]string{"period"}, // "1min", "5min", "15min"
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
