package port

import (
	"context"

	"facilitator_balances/internal/domain/entity"
)

// BalanceAggregator runs one full aggregation: every configured network is
// fetched concurrently and assembled into a single snapshot. Individual
// network failures are normal and recorded as nil balances; a returned error
// means the run itself failed and no snapshot was produced.
type BalanceAggregator interface {
	AggregateAll(ctx context.Context) (entity.Snapshot, error)
}

// SnapshotSource serves the freshest available snapshot, refreshing through
// the aggregator when the cached one has expired.
type SnapshotSource interface {
	Get(ctx context.Context) (entity.Snapshot, error)
	TTLSeconds() int
}
