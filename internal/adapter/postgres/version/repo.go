// Package version implements the module version store using PostgreSQL.
// Statements come from sqlstmt; rows are scanned with pgxscan.
package version

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/moduleversion/internal/adapter/postgres"
	"github.com/heartmarshall/moduleversion/internal/adapter/sqlstmt"
	"github.com/heartmarshall/moduleversion/internal/domain"
)

const entity = "module_version"

// Repo provides module version persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	sql sqlstmt.Builder
	now func() time.Time
}

// New creates a new version repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, sql: sqlstmt.Postgres(), now: time.Now}
}

// versionRow mirrors the modules_versions projection in sqlstmt.VersionColumns.
type versionRow struct {
	ID          int64      `db:"id"`
	Current     bool       `db:"current"`
	ModuleID    int64      `db:"mod_id"`
	Title       string     `db:"title"`
	Note        string     `db:"note"`
	Content     string     `db:"content"`
	Ordering    int        `db:"ordering"`
	Position    string     `db:"position"`
	PublishUp   *time.Time `db:"publish_up"`
	PublishDown *time.Time `db:"publish_down"`
	Published   int        `db:"published"`
	Module      string     `db:"module"`
	Access      int        `db:"access"`
	ShowTitle   bool       `db:"showtitle"`
	Params      string     `db:"params"`
	ClientID    int        `db:"client_id"`
	Language    string     `db:"language"`
	ChangeDate  time.Time  `db:"changedate"`
}

func (r versionRow) toDomain() domain.ModuleVersion {
	return domain.ModuleVersion{
		ID:        r.ID,
		ModuleID:  r.ModuleID,
		Current:   r.Current,
		ChangedAt: r.ChangeDate.UTC(),
		ModuleFields: domain.ModuleFields{
			Title:       r.Title,
			Note:        r.Note,
			Content:     r.Content,
			Ordering:    r.Ordering,
			Position:    r.Position,
			PublishUp:   r.PublishUp,
			PublishDown: r.PublishDown,
			Published:   r.Published,
			Kind:        r.Module,
			Access:      r.Access,
			ShowTitle:   r.ShowTitle,
			Params:      r.Params,
			ClientID:    r.ClientID,
			Language:    r.Language,
		}.Normalized(),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByModule returns every version of a module, newest first. An unknown
// module yields an empty slice.
func (r *Repo) ListByModule(ctx context.Context, moduleID int64) ([]domain.ModuleVersion, error) {
	query, args, err := r.sql.ListByModule(moduleID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list versions: %w", err)
	}

	var rows []versionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "module", moduleID)
	}

	versions := make([]domain.ModuleVersion, len(rows))
	for i, row := range rows {
		versions[i] = row.toDomain()
	}
	return versions, nil
}

// GetByID returns one version of a module.
// Returns domain.ErrNotFound if the version does not belong to the module.
func (r *Repo) GetByID(ctx context.Context, versionID, moduleID int64) (domain.ModuleVersion, error) {
	query, args, err := r.sql.GetVersion(versionID, moduleID).ToSql()
	if err != nil {
		return domain.ModuleVersion{}, fmt.Errorf("build get version: %w", err)
	}

	var row versionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.ModuleVersion{}, postgres.MapError(err, entity, versionID)
	}
	return row.toDomain(), nil
}

// CountByModule returns the number of stored versions of a module.
func (r *Repo) CountByModule(ctx context.Context, moduleID int64) (int, error) {
	query, args, err := r.sql.CountByModule(moduleID).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count versions: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "module", moduleID)
	}
	return count, nil
}

// ListModulesOverLimit returns the ids of modules holding more than limit
// versions, in ascending order.
func (r *Repo) ListModulesOverLimit(ctx context.Context, limit int) ([]int64, error) {
	query, args, err := r.sql.ModulesOverLimit(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build modules over limit: %w", err)
	}

	var ids []int64
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, postgres.MapError(err, "limit", int64(limit))
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append snapshots m as a new current version and returns it with the
// assigned id. It does not touch the current flag of older versions.
func (r *Repo) Append(ctx context.Context, m domain.Module) (domain.ModuleVersion, error) {
	v := domain.Snapshot(m, r.now())

	query, args, err := r.sql.InsertVersion(v).ToSql()
	if err != nil {
		return domain.ModuleVersion{}, fmt.Errorf("build insert version: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&v.ID); err != nil {
		return domain.ModuleVersion{}, postgres.MapError(err, "module", m.ID)
	}
	return v, nil
}

// lockModuleSQL serializes writers of one module's history until the
// surrounding transaction ends.
const lockModuleSQL = `SELECT pg_advisory_xact_lock($1)`

// LockModule takes a transaction-scoped advisory lock keyed by the module id.
// It must run inside RunInTx; outside a transaction the lock is released as
// soon as the statement completes.
func (r *Repo) LockModule(ctx context.Context, moduleID int64) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, lockModuleSQL, moduleID); err != nil {
		return postgres.MapError(err, "module", moduleID)
	}
	return nil
}

// ResetCurrent clears the current flag on every version of a module.
func (r *Repo) ResetCurrent(ctx context.Context, moduleID int64) error {
	_, err := r.exec(ctx, r.sql.ResetCurrent(moduleID), "module", moduleID)
	return err
}

// MarkCurrent makes versionID the only current version of its module.
// Returns domain.ErrNotFound and changes nothing if the pair does not exist.
func (r *Repo) MarkCurrent(ctx context.Context, versionID, moduleID int64) error {
	affected, err := r.exec(ctx, r.sql.MarkCurrent(versionID, moduleID), entity, versionID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%s %d of module %d: %w", entity, versionID, moduleID, domain.ErrNotFound)
	}
	return nil
}

// DeleteByModule removes every version of a module.
func (r *Repo) DeleteByModule(ctx context.Context, moduleID int64) (int64, error) {
	return r.exec(ctx, r.sql.DeleteByModule(moduleID), "module", moduleID)
}

// DeleteOldest removes up to count of the lowest-id versions of a module.
// A non-positive count is a no-op.
func (r *Repo) DeleteOldest(ctx context.Context, moduleID int64, count int) (int64, error) {
	if count <= 0 {
		return 0, nil
	}
	return r.exec(ctx, r.sql.DeleteOldest(moduleID, count), "module", moduleID)
}

// DeleteByExtension removes the versions of every module of one type.
func (r *Repo) DeleteByExtension(ctx context.Context, key domain.ExtensionKey) (int64, error) {
	return r.exec(ctx, r.sql.DeleteByExtension(key), "extension "+key.Kind+" client", int64(key.ClientID))
}

type sqlizer interface {
	ToSql() (string, []any, error)
}

func (r *Repo) exec(ctx context.Context, stmt sqlizer, what string, id int64) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build statement: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, what, id)
	}
	return tag.RowsAffected(), nil
}
