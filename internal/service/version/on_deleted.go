package version

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/moduleversion/internal/domain"
)

// OnDeleted drops the whole history of a module removed by the host.
func (s *Service) OnDeleted(ctx context.Context, moduleID int64) (err error) {
	defer func(start time.Time) { s.metrics.ObserveOperation("on_deleted", start, err) }(time.Now())

	if err := validateModuleID(moduleID); err != nil {
		return err
	}

	n, err := s.versions.DeleteByModule(ctx, moduleID)
	invalidate(ctx, moduleID)
	if err != nil {
		return fmt.Errorf("delete versions: %w", err)
	}

	s.metrics.VersionsDeleted("module", n)
	s.eventLog(ctx).InfoContext(ctx, "module versions deleted",
		slog.Int64("module_id", moduleID),
		slog.Int64("deleted", n),
	)

	return nil
}

// OnExtensionUninstalled drops the history of every module of the
// uninstalled type and returns how many versions were removed.
func (s *Service) OnExtensionUninstalled(ctx context.Context, key domain.ExtensionKey) (deleted int64, err error) {
	defer func(start time.Time) { s.metrics.ObserveOperation("on_extension_uninstalled", start, err) }(time.Now())

	if err := validateExtensionKey(key); err != nil {
		return 0, err
	}

	n, err := s.versions.DeleteByExtension(ctx, key)
	invalidateAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete versions of %s: %w", key.Kind, err)
	}

	s.metrics.VersionsDeleted("extension", n)
	s.eventLog(ctx).InfoContext(ctx, "extension versions deleted",
		slog.String("module", key.Kind),
		slog.Int("client_id", key.ClientID),
		slog.Int64("deleted", n),
	)

	return n, nil
}

// UninstallExtension handles the host's uninstall event, which carries only
// the extension id. The extension must still be registered when called.
func (s *Service) UninstallExtension(ctx context.Context, extensionID int64) (deleted int64, err error) {
	defer func(start time.Time) { s.metrics.ObserveOperation("uninstall_extension", start, err) }(time.Now())

	if extensionID <= 0 {
		return 0, domain.NewValidationError("extension_id", "must be positive")
	}

	ext, err := s.extensions.GetByID(ctx, extensionID)
	if err != nil {
		return 0, fmt.Errorf("get extension: %w", err)
	}

	return s.OnExtensionUninstalled(ctx, ext.Key())
}
