package version

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// PruneResult summarizes a PruneAll run.
type PruneResult struct {
	Modules int
	Evicted int64
}

// Prune applies the configured retention limit to one module without a
// save. Per-save MaxVersions overrides are not remembered, so a history
// grown under a larger override is cut back to the configured limit.
func (s *Service) Prune(ctx context.Context, moduleID int64) (evicted int64, err error) {
	defer func(start time.Time) { s.metrics.ObserveOperation("prune", start, err) }(time.Now())

	if err := validateModuleID(moduleID); err != nil {
		return 0, err
	}
	return s.evict(ctx, moduleID, s.policy)
}

// PruneAll applies the configured retention limit to every module over it.
// Modules are pruned concurrently, bounded by the configured concurrency.
// The first failure cancels the remaining work.
func (s *Service) PruneAll(ctx context.Context) (result PruneResult, err error) {
	defer func(start time.Time) { s.metrics.ObserveOperation("prune_all", start, err) }(time.Now())

	ids, err := s.versions.ListModulesOverLimit(ctx, s.policy.Limit())
	if err != nil {
		return PruneResult{}, fmt.Errorf("list modules over limit: %w", err)
	}

	var evicted atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			n, err := s.evict(gctx, id, s.policy)
			if err != nil {
				return fmt.Errorf("prune module %d: %w", id, err)
			}
			evicted.Add(n)
			return nil
		})
	}

	err = g.Wait()
	result = PruneResult{Modules: len(ids), Evicted: evicted.Load()}
	if err != nil {
		return result, err
	}

	s.eventLog(ctx).InfoContext(ctx, "prune finished",
		slog.Int("modules", result.Modules),
		slog.Int64("evicted", result.Evicted),
		slog.Int("limit", s.policy.Limit()),
	)

	return result, nil
}
