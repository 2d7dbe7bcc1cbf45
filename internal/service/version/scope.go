package version

import (
	"context"
	"slices"
	"sync"

	"github.com/heartmarshall/moduleversion/internal/domain"
)

type scopeKey struct{}

// scope memoizes version lists for the lifetime of one handled event.
type scope struct {
	mu       sync.Mutex
	versions map[int64][]domain.ModuleVersion
}

// WithScope attaches a request-scoped version cache to ctx. Reads made by the
// service through the returned context are loaded once per module until a
// write to that module invalidates them. Without a scope nothing is cached.
func WithScope(ctx context.Context) context.Context {
	if _, ok := ctx.Value(scopeKey{}).(*scope); ok {
		return ctx
	}
	return context.WithValue(ctx, scopeKey{}, &scope{versions: make(map[int64][]domain.ModuleVersion)})
}

func scopeFromCtx(ctx context.Context) *scope {
	sc, _ := ctx.Value(scopeKey{}).(*scope)
	return sc
}

// listVersions loads the versions of a module, newest first, through the
// scope cache when one is attached.
func (s *Service) listVersions(ctx context.Context, moduleID int64) ([]domain.ModuleVersion, error) {
	sc := scopeFromCtx(ctx)
	if sc != nil {
		sc.mu.Lock()
		cached, ok := sc.versions[moduleID]
		sc.mu.Unlock()
		if ok {
			return slices.Clone(cached), nil
		}
	}

	versions, err := s.versions.ListByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	if sc != nil {
		sc.mu.Lock()
		sc.versions[moduleID] = slices.Clone(versions)
		sc.mu.Unlock()
	}
	return versions, nil
}

// invalidate drops the cached list of one module.
func invalidate(ctx context.Context, moduleID int64) {
	if sc := scopeFromCtx(ctx); sc != nil {
		sc.mu.Lock()
		delete(sc.versions, moduleID)
		sc.mu.Unlock()
	}
}

// invalidateAll drops every cached list.
func invalidateAll(ctx context.Context) {
	if sc := scopeFromCtx(ctx); sc != nil {
		sc.mu.Lock()
		clear(sc.versions)
		sc.mu.Unlock()
	}
}
