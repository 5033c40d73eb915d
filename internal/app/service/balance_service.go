package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"facilitator_balances/internal/app/port"
	"facilitator_balances/internal/domain/entity"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BalanceServiceImpl implements port.BalanceAggregator. One call fans out a
// balance fetch for every registered network under a bounded degree of
// parallelism and collects the results into a single snapshot.
type BalanceServiceImpl struct {
	registry    port.NetworkRegistry
	resolver    port.EndpointResolver
	fetcher     port.NetworkFetcher
	logger      *zap.Logger
	maxInFlight int
	deadline    time.Duration
}

// NewBalanceService creates a new BalanceServiceImpl. maxInFlight bounds the
// number of networks fetched concurrently; deadline bounds one whole
// aggregation run.
func NewBalanceService(
	registry port.NetworkRegistry,
	resolver port.EndpointResolver,
	fetcher port.NetworkFetcher,
	logger *zap.Logger,
	maxInFlight int,
	deadline time.Duration,
) port.BalanceAggregator {
	if maxInFlight <= 0 {
		maxInFlight = 1
	}
	return &BalanceServiceImpl{
		registry:    registry,
		resolver:    resolver,
		fetcher:     fetcher,
		logger:      logger.Named("BalanceService"),
		maxInFlight: maxInFlight,
		deadline:    deadline,
	}
}

// AggregateAll fetches the native balance of every registered network. The
// returned snapshot always carries an entry per network: a formatted balance
// string on success, nil when that network could not be served. Per-network
// failures never fail the run; only a fatal dispatch error or an expired run
// deadline does.
func (s *BalanceServiceImpl) AggregateAll(ctx context.Context) (entity.Snapshot, error) {
	if s.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.deadline)
		defer cancel()
	}

	networks := s.registry.AllNetworks()
	s.logger.Debug("Starting aggregation run", zap.Int("networks", len(networks)))
	start := time.Now()

	results := make(map[string]entity.BalanceResult, len(networks))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxInFlight)

	for _, desc := range networks {
		g.Go(func() error {
			endpoints := s.resolver.ResolveEndpoints(gctx, desc)

			balance, err := s.fetcher.FetchBalance(gctx, desc, endpoints)

			result := entity.BalanceResult{NetworkID: desc.ID}
			if err != nil {
				var fetchErr *entity.FetchError
				if errors.As(err, &fetchErr) && fetchErr.Kind == entity.FetchFatal {
					return err
				}
				s.logger.Warn("Network unavailable for this run",
					zap.String("network", desc.ID), zap.Error(err))
			} else {
				result.Balance = &balance
			}

			mu.Lock()
			results[desc.ID] = result
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("Aggregation run aborted", zap.Error(err))
		return entity.Snapshot{}, err
	}

	// Networks skipped by a run-deadline expiry still get their null entry.
	for _, desc := range networks {
		if _, ok := results[desc.ID]; !ok {
			results[desc.ID] = entity.BalanceResult{NetworkID: desc.ID}
		}
	}

	snapshot := entity.Snapshot{Results: results, ProducedAt: time.Now()}
	s.logger.Info("Aggregation run finished",
		zap.Int("networks", len(networks)),
		zap.Int("unavailable", countUnavailable(results)),
		zap.Duration("elapsed", time.Since(start)))
	return snapshot, nil
}

func countUnavailable(results map[string]entity.BalanceResult) int {
	n := 0
	for _, r := range results {
		if r.Balance == nil {
			n++
		}
	}
	return n
}
