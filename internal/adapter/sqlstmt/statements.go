// Package sqlstmt builds the SQL statements shared by the PostgreSQL and
// SQLite adapters. Statements differ between engines only in placeholder
// format and in how timestamps are bound.
package sqlstmt

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/moduleversion/internal/domain"
)

// Table names.
const (
	VersionsTable   = "modules_versions"
	ModulesTable    = "modules"
	ExtensionsTable = "extensions"
)

// Column names. current and position are quoted because both engines treat
// them as keywords in some positions.
const (
	ColID         = "id"
	ColCurrent    = `"current"`
	ColModuleID   = "mod_id"
	ColChangeDate = "changedate"
)

// TimeEncoder converts a timestamp into the value bound for the engine.
type TimeEncoder func(time.Time) any

// Builder produces squirrel builders for one SQL engine.
type Builder struct {
	sb         sq.StatementBuilderType
	encodeTime TimeEncoder
}

// New creates a Builder with the given placeholder format and time encoding.
func New(format sq.PlaceholderFormat, encodeTime TimeEncoder) Builder {
	return Builder{
		sb:         sq.StatementBuilder.PlaceholderFormat(format),
		encodeTime: encodeTime,
	}
}

// Postgres returns the builder used by the pgx adapter.
func Postgres() Builder {
	return New(sq.Dollar, func(t time.Time) any { return t.UTC() })
}

// SQLite returns the builder used by the SQLite adapter; timestamps are
// stored as unix milliseconds.
func SQLite() Builder {
	return New(sq.Question, func(t time.Time) any { return t.UTC().UnixMilli() })
}

// trackedColumns maps domain field names to their SQL identifiers.
var trackedColumns = map[string]string{
	domain.FieldPosition: `"position"`,
}

func column(field string) string {
	if c, ok := trackedColumns[field]; ok {
		return c
	}
	return field
}

// TrackedColumns returns the SQL identifiers of every tracked field in
// domain.TrackedFields order.
func TrackedColumns() []string {
	cols := make([]string, len(domain.TrackedFields))
	for i, f := range domain.TrackedFields {
		cols[i] = column(f)
	}
	return cols
}

// VersionColumns is the projection used for every version read.
func VersionColumns() []string {
	cols := []string{ColID, ColCurrent, ColModuleID}
	cols = append(cols, TrackedColumns()...)
	return append(cols, ColChangeDate)
}

func (b Builder) timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return b.encodeTime(*t)
}

// trackedValues returns the tracked columns of f keyed by SQL identifier.
func (b Builder) trackedValues(f domain.ModuleFields) map[string]any {
	return map[string]any{
		column(domain.FieldTitle):       f.Title,
		column(domain.FieldNote):        f.Note,
		column(domain.FieldContent):     f.Content,
		column(domain.FieldOrdering):    f.Ordering,
		column(domain.FieldPosition):    f.Position,
		column(domain.FieldPublishUp):   b.timeOrNil(f.PublishUp),
		column(domain.FieldPublishDown): b.timeOrNil(f.PublishDown),
		column(domain.FieldPublished):   f.Published,
		column(domain.FieldKind):        f.Kind,
		column(domain.FieldAccess):      f.Access,
		column(domain.FieldShowTitle):   f.ShowTitle,
		column(domain.FieldParams):      f.Params,
		column(domain.FieldClientID):    f.ClientID,
		column(domain.FieldLanguage):    f.Language,
	}
}

// ---------------------------------------------------------------------------
// modules_versions
// ---------------------------------------------------------------------------

// ListByModule selects every version of a module, newest first.
func (b Builder) ListByModule(moduleID int64) sq.SelectBuilder {
	return b.sb.Select(VersionColumns()...).
		From(VersionsTable).
		Where(sq.Eq{ColModuleID: moduleID}).
		OrderBy(ColID + " DESC")
}

// GetVersion selects one version, scoped to its owner.
func (b Builder) GetVersion(versionID, moduleID int64) sq.SelectBuilder {
	return b.sb.Select(VersionColumns()...).
		From(VersionsTable).
		Where(sq.Eq{ColID: versionID, ColModuleID: moduleID})
}

// CountByModule counts the versions of a module.
func (b Builder) CountByModule(moduleID int64) sq.SelectBuilder {
	return b.sb.Select("COUNT(*)").
		From(VersionsTable).
		Where(sq.Eq{ColModuleID: moduleID})
}

// InsertVersion inserts v and returns the generated id.
func (b Builder) InsertVersion(v domain.ModuleVersion) sq.InsertBuilder {
	values := b.trackedValues(v.ModuleFields)
	values[ColCurrent] = v.Current
	values[ColModuleID] = v.ModuleID
	values[ColChangeDate] = b.encodeTime(v.ChangedAt)

	return b.sb.Insert(VersionsTable).
		SetMap(values).
		Suffix("RETURNING " + ColID)
}

// ResetCurrent clears the current flag on every version of a module.
func (b Builder) ResetCurrent(moduleID int64) sq.UpdateBuilder {
	return b.sb.Update(VersionsTable).
		Set(ColCurrent, false).
		Where(sq.Eq{ColModuleID: moduleID, ColCurrent: true})
}

// MarkCurrent flags versionID as current and every sibling as not current
// in a single statement. The EXISTS guard makes the statement a no-op when
// the version does not belong to the module, so a bad pair can never leave
// the module without a current version.
func (b Builder) MarkCurrent(versionID, moduleID int64) sq.UpdateBuilder {
	return b.sb.Update(VersionsTable).
		Set(ColCurrent, sq.Expr("CASE WHEN "+ColID+" = ? THEN TRUE ELSE FALSE END", versionID)).
		Where(sq.Eq{ColModuleID: moduleID}).
		Where(sq.Expr(
			"EXISTS (SELECT 1 FROM "+VersionsTable+" WHERE "+ColID+" = ? AND "+ColModuleID+" = ?)",
			versionID, moduleID,
		))
}

// DeleteByModule removes every version of a module.
func (b Builder) DeleteByModule(moduleID int64) sq.DeleteBuilder {
	return b.sb.Delete(VersionsTable).
		Where(sq.Eq{ColModuleID: moduleID})
}

// DeleteOldest removes the count lowest-id versions of a module.
func (b Builder) DeleteOldest(moduleID int64, count int) sq.DeleteBuilder {
	return b.sb.Delete(VersionsTable).
		Where(sq.Eq{ColModuleID: moduleID}).
		Where(sq.Expr(
			ColID+" IN (SELECT "+ColID+" FROM "+VersionsTable+" WHERE "+ColModuleID+" = ? ORDER BY "+ColID+" ASC LIMIT ?)",
			moduleID, count,
		))
}

// DeleteByExtension removes the versions of every module of one type.
func (b Builder) DeleteByExtension(key domain.ExtensionKey) sq.DeleteBuilder {
	return b.sb.Delete(VersionsTable).
		Where(sq.Eq{
			column(domain.FieldKind):     key.Kind,
			column(domain.FieldClientID): key.ClientID,
		})
}

// ModulesOverLimit selects the owners holding more than limit versions.
func (b Builder) ModulesOverLimit(limit int) sq.SelectBuilder {
	return b.sb.Select(ColModuleID).
		From(VersionsTable).
		GroupBy(ColModuleID).
		Having("COUNT(*) > ?", limit).
		OrderBy(ColModuleID)
}

// ---------------------------------------------------------------------------
// Host tables
// ---------------------------------------------------------------------------

// GetModule selects the tracked fields of a live module.
func (b Builder) GetModule(moduleID int64) sq.SelectBuilder {
	cols := append([]string{ColID}, TrackedColumns()...)
	return b.sb.Select(cols...).
		From(ModulesTable).
		Where(sq.Eq{ColID: moduleID})
}

// UpdateModule writes f onto the live module. The owning module id itself
// is never part of the update.
func (b Builder) UpdateModule(moduleID int64, f domain.ModuleFields) sq.UpdateBuilder {
	return b.sb.Update(ModulesTable).
		SetMap(b.trackedValues(f)).
		Where(sq.Eq{ColID: moduleID})
}

// GetExtension selects an installed extension by id.
func (b Builder) GetExtension(extensionID int64) sq.SelectBuilder {
	return b.sb.Select("extension_id", "element", "client_id").
		From(ExtensionsTable).
		Where(sq.Eq{"extension_id": extensionID})
}
