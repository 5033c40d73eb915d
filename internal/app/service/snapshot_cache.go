package service

import (
	"context"
	"sync"
	"time"

	"facilitator_balances/internal/app/port"
	"facilitator_balances/internal/domain/entity"
	"facilitator_balances/internal/pkg/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SnapshotCacheImpl implements port.SnapshotSource. It memoizes the single
// aggregation result: the balance set has no request parameters, so one slot
// with a TTL is the whole cache. Concurrent refreshes of an expired slot are
// coalesced into one upstream aggregation run.
type SnapshotCacheImpl struct {
	aggregator port.BalanceAggregator
	ttl        time.Duration
	logger     *zap.Logger
	metrics    *metrics.Metrics
	now        func() time.Time

	group singleflight.Group

	mu       sync.RWMutex
	snapshot entity.Snapshot
	filled   bool
}

// NewSnapshotCache creates a SnapshotCacheImpl refreshing through the given
// aggregator. ttlSeconds controls how long one snapshot is served before a
// new run is triggered.
func NewSnapshotCache(aggregator port.BalanceAggregator, ttlSeconds int, m *metrics.Metrics, logger *zap.Logger) *SnapshotCacheImpl {
	return &SnapshotCacheImpl{
		aggregator: aggregator,
		ttl:        time.Duration(ttlSeconds) * time.Second,
		logger:     logger.Named("SnapshotCache"),
		metrics:    m,
		now:        time.Now,
	}
}

// WithClock overrides the cache's notion of time. Tests use it to step
// through TTL expiry without sleeping.
func (c *SnapshotCacheImpl) WithClock(now func() time.Time) *SnapshotCacheImpl {
	c.now = now
	return c
}

// TTLSeconds returns the freshness window advertised to clients.
func (c *SnapshotCacheImpl) TTLSeconds() int {
	return int(c.ttl / time.Second)
}

// Get returns the cached snapshot when it is still fresh, otherwise runs one
// aggregation and caches its result. A failed refresh caches nothing, so the
// next caller retries.
func (c *SnapshotCacheImpl) Get(ctx context.Context) (entity.Snapshot, error) {
	if snapshot, ok := c.fresh(); ok {
		c.metrics.IncCacheHit()
		return snapshot, nil
	}
	c.metrics.IncCacheMiss()

	v, err, shared := c.group.Do("snapshot", func() (any, error) {
		// Another waiter may have refreshed the slot while this call was
		// queued behind the flight.
		if snapshot, ok := c.fresh(); ok {
			return snapshot, nil
		}

		c.logger.Debug("Cache expired, refreshing snapshot")
		snapshot, err := c.aggregator.AggregateAll(ctx)
		if err != nil {
			return entity.Snapshot{}, err
		}

		c.mu.Lock()
		c.snapshot = snapshot
		c.filled = true
		c.mu.Unlock()
		return snapshot, nil
	})
	if err != nil {
		return entity.Snapshot{}, err
	}
	if shared {
		c.logger.Debug("Refresh coalesced with an in-flight run")
	}
	return v.(entity.Snapshot), nil
}

func (c *SnapshotCacheImpl) fresh() (entity.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.filled {
		return entity.Snapshot{}, false
	}
	if c.now().Sub(c.snapshot.ProducedAt) >= c.ttl {
		return entity.Snapshot{}, false
	}
	return c.snapshot, true
}
