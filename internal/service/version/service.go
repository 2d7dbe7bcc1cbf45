package version

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/moduleversion/internal/domain"
	"github.com/heartmarshall/moduleversion/pkg/ctxutil"
)

// DefaultPruneConcurrency bounds PruneAll when no explicit value is given.
const DefaultPruneConcurrency = 4

type versionRepo interface {
	Append(ctx context.Context, m domain.Module) (domain.ModuleVersion, error)
	ListByModule(ctx context.Context, moduleID int64) ([]domain.ModuleVersion, error)
	GetByID(ctx context.Context, versionID, moduleID int64) (domain.ModuleVersion, error)
	MarkCurrent(ctx context.Context, versionID, moduleID int64) error
	ResetCurrent(ctx context.Context, moduleID int64) error
	LockModule(ctx context.Context, moduleID int64) error
	DeleteByModule(ctx context.Context, moduleID int64) (int64, error)
	DeleteOldest(ctx context.Context, moduleID int64, count int) (int64, error)
	DeleteByExtension(ctx context.Context, key domain.ExtensionKey) (int64, error)
	CountByModule(ctx context.Context, moduleID int64) (int, error)
	ListModulesOverLimit(ctx context.Context, limit int) ([]int64, error)
}

type moduleRepo interface {
	GetByID(ctx context.Context, moduleID int64) (*domain.Module, error)
	UpdateFields(ctx context.Context, moduleID int64, fields domain.ModuleFields) error
}

type extensionRepo interface {
	GetByID(ctx context.Context, extensionID int64) (*domain.Extension, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	VersionAppended()
	SaveSkipped()
	VersionsEvicted(n int64)
	VersionRestored()
	VersionsDeleted(reason string, n int64)
	ObserveOperation(op string, start time.Time, err error)
}

// Service keeps a bounded snapshot history per module and restores
// snapshots onto the live module.
type Service struct {
	versions    versionRepo
	modules     moduleRepo
	extensions  extensionRepo
	tx          txManager
	metrics     recorder
	policy      RetentionPolicy
	concurrency int
	log         *slog.Logger
}

// NewService creates a new version service. A non-positive retention limit
// is clamped to 1 and reported once at WARN.
func NewService(
	log *slog.Logger,
	versions versionRepo,
	modules moduleRepo,
	extensions extensionRepo,
	tx txManager,
	metrics recorder,
	policy RetentionPolicy,
	pruneConcurrency int,
) *Service {
	log = log.With("service", "version")

	if policy.Clamped() {
		log.Warn("versions max is not positive, keeping 1 version per module",
			slog.Int("configured", policy.MaxVersions),
		)
	}
	if pruneConcurrency < 1 {
		pruneConcurrency = DefaultPruneConcurrency
	}

	return &Service{
		versions:    versions,
		modules:     modules,
		extensions:  extensions,
		tx:          tx,
		metrics:     metrics,
		policy:      policy,
		concurrency: pruneConcurrency,
		log:         log,
	}
}

// eventLog returns the service logger tagged with the request and actor of ctx.
func (s *Service) eventLog(ctx context.Context) *slog.Logger {
	l := s.log
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		l = l.With(slog.String("request_id", id))
	}
	if actor, ok := ctxutil.ActorFromCtx(ctx); ok {
		l = l.With(slog.String("actor", actor))
	}
	return l
}
