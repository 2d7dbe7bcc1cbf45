package version

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/moduleversion/internal/domain"
)

// SaveResult reports what a save did to the history.
type SaveResult struct {
	// Version is the snapshot written, nil when the save changed nothing.
	Version *domain.ModuleVersion
	// ChangedFields lists the tracked fields that differ from the previous
	// newest version. Empty for a first snapshot.
	ChangedFields []string
	// Evicted is the number of old versions removed by retention.
	Evicted int64
}

// Created reports whether the save produced a new version.
func (r SaveResult) Created() bool {
	return r.Version != nil
}

// OnSaved records a module save. A new module, or one without history, always
// gets its first snapshot. Otherwise a snapshot is taken only when a tracked
// field changed, after which the oldest versions beyond the retention limit
// are evicted.
func (s *Service) OnSaved(ctx context.Context, input SavedInput) (result SaveResult, err error) {
	defer func(start time.Time) { s.metrics.ObserveOperation("on_saved", start, err) }(time.Now())

	if err := input.Validate(); err != nil {
		return SaveResult{}, err
	}

	mod := input.Module
	log := s.eventLog(ctx).With(slog.Int64("module_id", mod.ID))

	existing, err := s.listVersions(ctx, mod.ID)
	if err != nil {
		return SaveResult{}, fmt.Errorf("list versions: %w", err)
	}

	if !input.IsNew && len(existing) > 0 {
		if !domain.HasChanged(mod, existing[0]) {
			s.metrics.SaveSkipped()
			log.DebugContext(ctx, "module saved without tracked changes")
			return result, nil
		}
		result.ChangedFields = mod.Diff(existing[0].ModuleFields)
	}

	var appended domain.ModuleVersion
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.versions.LockModule(txCtx, mod.ID); err != nil {
			return fmt.Errorf("lock module: %w", err)
		}

		if err := s.versions.ResetCurrent(txCtx, mod.ID); err != nil {
			return fmt.Errorf("reset current: %w", err)
		}

		var appendErr error
		appended, appendErr = s.versions.Append(txCtx, mod)
		if appendErr != nil {
			return fmt.Errorf("append version: %w", appendErr)
		}
		return nil
	})
	invalidate(ctx, mod.ID)
	if err != nil {
		return SaveResult{}, err
	}

	s.metrics.VersionAppended()
	result.Version = &appended

	// Eviction runs outside the append transaction. A failure leaves the
	// module over its limit until the next save or prune.
	evicted, evictErr := s.evict(ctx, mod.ID, s.policy.WithOverride(input.MaxVersions))
	if evictErr != nil {
		log.WarnContext(ctx, "evict old versions failed", slog.String("error", evictErr.Error()))
	}
	result.Evicted = evicted

	log.InfoContext(ctx, "module version created",
		slog.Int64("version_id", appended.ID),
		slog.Bool("is_new", input.IsNew),
		slog.Any("changed_fields", result.ChangedFields),
		slog.Int64("evicted", evicted),
	)

	return result, nil
}

// evict deletes the oldest versions of a module beyond the policy limit.
// Count and delete run under the module lock so a concurrent save cannot
// slip a version in between.
func (s *Service) evict(ctx context.Context, moduleID int64, policy RetentionPolicy) (int64, error) {
	var n int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.versions.LockModule(txCtx, moduleID); err != nil {
			return fmt.Errorf("lock module: %w", err)
		}

		count, err := s.versions.CountByModule(txCtx, moduleID)
		if err != nil {
			return fmt.Errorf("count versions: %w", err)
		}

		excess := policy.ExcessCount(count)
		if excess == 0 {
			return nil
		}

		n, err = s.versions.DeleteOldest(txCtx, moduleID, excess)
		if err != nil {
			return fmt.Errorf("delete oldest versions: %w", err)
		}
		return nil
	})
	invalidate(ctx, moduleID)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		s.metrics.VersionsEvicted(n)
	}
	return n, nil
}
