package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "reddit_browser"

var (
	upstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Number of Reddit API requests by operation and HTTP status (0 = transport error)",
	}, []string{"operation", "status"})

	upstreamLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Latency of Reddit API requests, retries included",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Subreddit metadata cache lookups by result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(upstreamRequests, upstreamLatency, cacheLookups)
}

// ObserveUpstream records one finished upstream call.
func ObserveUpstream(operation string, status int, took time.Duration) {
	upstreamRequests.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	upstreamLatency.WithLabelValues(operation).Observe(took.Seconds())
}

func CacheHit() {
	cacheLookups.WithLabelValues("hit").Inc()
}

func CacheMiss() {
	cacheLookups.WithLabelValues("miss").Inc()
}
