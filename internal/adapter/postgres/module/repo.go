// Package module reads and writes the host CMS modules table. It is the
// write-back target when a stored version is restored.
package module

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/moduleversion/internal/adapter/postgres"
	"github.com/heartmarshall/moduleversion/internal/adapter/sqlstmt"
	"github.com/heartmarshall/moduleversion/internal/domain"
)

const entity = "module"

// Repo provides access to live modules backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	sql sqlstmt.Builder
}

// New creates a new module repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, sql: sqlstmt.Postgres()}
}

type moduleRow struct {
	ID          int64      `db:"id"`
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
}

// GetByID returns the live state of a module.
// Returns domain.ErrNotFound if the module does not exist.
func (r *Repo) GetByID(ctx context.Context, moduleID int64) (*domain.Module, error) {
	query, args, err := r.sql.GetModule(moduleID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get module: %w", err)
	}

	var row moduleRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, moduleID)
	}

	return &domain.Module{
		ID: row.ID,
		ModuleFields: domain.ModuleFields{
			Title:       row.Title,
			Note:        row.Note,
			Content:     row.Content,
			Ordering:    row.Ordering,
			Position:    row.Position,
			PublishUp:   row.PublishUp,
			PublishDown: row.PublishDown,
			Published:   row.Published,
			Kind:        row.Module,
			Access:      row.Access,
			ShowTitle:   row.ShowTitle,
			Params:      row.Params,
			ClientID:    row.ClientID,
			Language:    row.Language,
		},
	}, nil
}

// UpdateFields overwrites every tracked field of the live module.
// Returns domain.ErrNotFound if the module no longer exists.
func (r *Repo) UpdateFields(ctx context.Context, moduleID int64, fields domain.ModuleFields) error {
	query, args, err := r.sql.UpdateModule(moduleID, fields).ToSql()
	if err != nil {
		return fmt.Errorf("build update module: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, moduleID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, moduleID, domain.ErrNotFound)
	}
	return nil
}
