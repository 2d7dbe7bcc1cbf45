package version

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/moduleversion/internal/domain"
)

// Restore copies a stored version back onto its live module and marks it
// current, returning the module as stored afterwards. Versions are neither
// created nor deleted. An unknown pair returns domain.ErrNotFound without
// touching anything.
func (s *Service) Restore(ctx context.Context, input RestoreInput) (restored *domain.Module, err error) {
	defer func(start time.Time) { s.metrics.ObserveOperation("restore", start, err) }(time.Now())

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		v   domain.ModuleVersion
		mod *domain.Module
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.versions.LockModule(txCtx, input.ModuleID); err != nil {
			return fmt.Errorf("lock module: %w", err)
		}

		var getErr error
		v, getErr = s.versions.GetByID(txCtx, input.VersionID, input.ModuleID)
		if getErr != nil {
			return fmt.Errorf("get version: %w", getErr)
		}

		if err := s.modules.UpdateFields(txCtx, input.ModuleID, v.ModuleFields); err != nil {
			return fmt.Errorf("write back module: %w", err)
		}

		if err := s.versions.MarkCurrent(txCtx, input.VersionID, input.ModuleID); err != nil {
			return fmt.Errorf("mark current: %w", err)
		}

		var reloadErr error
		mod, reloadErr = s.modules.GetByID(txCtx, input.ModuleID)
		if reloadErr != nil {
			return fmt.Errorf("reload module: %w", reloadErr)
		}
		return nil
	})
	invalidate(ctx, input.ModuleID)
	if err != nil {
		return nil, err
	}

	s.metrics.VersionRestored()
	s.eventLog(ctx).InfoContext(ctx, "module version restored",
		slog.Int64("module_id", input.ModuleID),
		slog.Int64("version_id", input.VersionID),
		slog.Time("version_changed_at", v.ChangedAt),
	)

	return mod, nil
}

// ListVersions returns the history of a module, newest first.
func (s *Service) ListVersions(ctx context.Context, moduleID int64) ([]domain.ModuleVersion, error) {
	if err := validateModuleID(moduleID); err != nil {
		return nil, err
	}

	versions, err := s.listVersions(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	return versions, nil
}
