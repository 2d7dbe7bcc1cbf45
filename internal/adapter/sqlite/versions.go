package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/moduleversion/internal/domain"
)

const versionEntity = "module_version"

var timeNow = time.Now

// VersionRepo stores module versions in SQLite.
type VersionRepo struct {
	store *Store
	now   func() time.Time
}

// versionRow mirrors sqlstmt.VersionColumns; timestamps are unix millis.
type versionRow struct {
	ID          int64         `db:"id"`
	Current     bool          `db:"current"`
	ModuleID    int64         `db:"mod_id"`
	Title       string        `db:"title"`
	Note        string        `db:"note"`
	Content     string        `db:"content"`
	Ordering    int           `db:"ordering"`
	Position    string        `db:"position"`
	PublishUp   sql.NullInt64 `db:"publish_up"`
	PublishDown sql.NullInt64 `db:"publish_down"`
	Published   int           `db:"published"`
	Module      string        `db:"module"`
	Access      int           `db:"access"`
	ShowTitle   bool          `db:"showtitle"`
	Params      string        `db:"params"`
	ClientID    int           `db:"client_id"`
	Language    string        `db:"language"`
	ChangeDate  int64         `db:"changedate"`
}

func millisToTime(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64).UTC()
	return &t
}

func (r versionRow) toDomain() domain.ModuleVersion {
	return domain.ModuleVersion{
		ID:        r.ID,
		ModuleID:  r.ModuleID,
		Current:   r.Current,
		ChangedAt: time.UnixMilli(r.ChangeDate).UTC(),
		ModuleFields: domain.ModuleFields{
			Title:       r.Title,
			Note:        r.Note,
			Content:     r.Content,
			Ordering:    r.Ordering,
			Position:    r.Position,
			PublishUp:   millisToTime(r.PublishUp),
			PublishDown: millisToTime(r.PublishDown),
			Published:   r.Published,
			Kind:        r.Module,
			Access:      r.Access,
			ShowTitle:   r.ShowTitle,
			Params:      r.Params,
			ClientID:    r.ClientID,
			Language:    r.Language,
		},
	}
}

// ListByModule returns every version of a module, newest first.
func (r *VersionRepo) ListByModule(ctx context.Context, moduleID int64) ([]domain.ModuleVersion, error) {
	query, args, err := r.store.sql.ListByModule(moduleID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list versions: %w", err)
	}

	var rows []versionRow
	if err := sqlscan.Select(ctx, r.store.querier(ctx), &rows, query, args...); err != nil {
		return nil, mapError(err, "module", moduleID)
	}

	versions := make([]domain.ModuleVersion, len(rows))
	for i, row := range rows {
		versions[i] = row.toDomain()
	}
	return versions, nil
}

// GetByID returns one version of a module, or domain.ErrNotFound.
func (r *VersionRepo) GetByID(ctx context.Context, versionID, moduleID int64) (domain.ModuleVersion, error) {
	query, args, err := r.store.sql.GetVersion(versionID, moduleID).ToSql()
	if err != nil {
		return domain.ModuleVersion{}, fmt.Errorf("build get version: %w", err)
	}

	var row versionRow
	if err := sqlscan.Get(ctx, r.store.querier(ctx), &row, query, args...); err != nil {
		return domain.ModuleVersion{}, mapError(err, versionEntity, versionID)
	}
	return row.toDomain(), nil
}

// CountByModule returns the number of stored versions of a module.
func (r *VersionRepo) CountByModule(ctx context.Context, moduleID int64) (int, error) {
	query, args, err := r.store.sql.CountByModule(moduleID).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count versions: %w", err)
	}

	var count int
	if err := r.store.querier(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, mapError(err, "module", moduleID)
	}
	return count, nil
}

// ListModulesOverLimit returns the ids of modules holding more than limit versions.
func (r *VersionRepo) ListModulesOverLimit(ctx context.Context, limit int) ([]int64, error) {
	query, args, err := r.store.sql.ModulesOverLimit(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build modules over limit: %w", err)
	}

	var ids []int64
	if err := sqlscan.Select(ctx, r.store.querier(ctx), &ids, query, args...); err != nil {
		return nil, mapError(err, "limit", int64(limit))
	}
	return ids, nil
}

// Append snapshots m as a new current version.
func (r *VersionRepo) Append(ctx context.Context, m domain.Module) (domain.ModuleVersion, error) {
	v := domain.Snapshot(m, r.now())

	query, args, err := r.store.sql.InsertVersion(v).ToSql()
	if err != nil {
		return domain.ModuleVersion{}, fmt.Errorf("build insert version: %w", err)
	}

	if err := r.store.querier(ctx).QueryRowContext(ctx, query, args...).Scan(&v.ID); err != nil {
		return domain.ModuleVersion{}, mapError(err, "module", m.ID)
	}
	return v, nil
}

// LockModule is a no-op: every transaction takes the database write lock at
// BEGIN (_txlock=immediate), which already serializes writers.
func (r *VersionRepo) LockModule(ctx context.Context, moduleID int64) error {
	return ctx.Err()
}

// ResetCurrent clears the current flag on every version of a module.
func (r *VersionRepo) ResetCurrent(ctx context.Context, moduleID int64) error {
	_, err := r.store.exec(ctx, r.store.sql.ResetCurrent(moduleID), "module", moduleID)
	return err
}

// MarkCurrent makes versionID the only current version of its module.
// An unknown pair changes nothing and returns domain.ErrNotFound.
func (r *VersionRepo) MarkCurrent(ctx context.Context, versionID, moduleID int64) error {
	affected, err := r.store.exec(ctx, r.store.sql.MarkCurrent(versionID, moduleID), versionEntity, versionID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%s %d of module %d: %w", versionEntity, versionID, moduleID, domain.ErrNotFound)
	}
	return nil
}

// DeleteByModule removes every version of a module.
func (r *VersionRepo) DeleteByModule(ctx context.Context, moduleID int64) (int64, error) {
	return r.store.exec(ctx, r.store.sql.DeleteByModule(moduleID), "module", moduleID)
}

// DeleteOldest removes up to count of the lowest-id versions of a module.
func (r *VersionRepo) DeleteOldest(ctx context.Context, moduleID int64, count int) (int64, error) {
	if count <= 0 {
		return 0, nil
	}
	return r.store.exec(ctx, r.store.sql.DeleteOldest(moduleID, count), "module", moduleID)
}

// DeleteByExtension removes the versions of every module of one type.
func (r *VersionRepo) DeleteByExtension(ctx context.Context, key domain.ExtensionKey) (int64, error) {
	return r.store.exec(ctx, r.store.sql.DeleteByExtension(key), "extension "+key.Kind+" client", int64(key.ClientID))
}

type sqlizer interface {
	ToSql() (string, []any, error)
}

func (s *Store) exec(ctx context.Context, stmt sqlizer, what string, id int64) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build statement: %w", err)
	}

	res, err := s.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, what, id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, mapError(err, what, id)
	}
	return n, nil
}
