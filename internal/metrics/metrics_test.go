package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveUpstream(t *testing.T) {
	before := testutil.ToFloat64(upstreamRequests.WithLabelValues("vote", "200"))
	ObserveUpstream("vote", 200, 15*time.Millisecond)
	ObserveUpstream("vote", 200, 20*time.Millisecond)
	assert.Equal(t, before+2, testutil.ToFloat64(upstreamRequests.WithLabelValues("vote", "200")))
}

func TestCacheCounters(t *testing.T) {
	hits := testutil.ToFloat64(cacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(cacheLookups.WithLabelValues("miss"))
	CacheHit()
	CacheMiss()
	CacheMiss()
	assert.Equal(t, hits+1, testutil.ToFloat64(cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(cacheLookups.WithLabelValues("miss")))
}
