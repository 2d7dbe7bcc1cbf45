package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/moduleversion/internal/domain"
)

// ModuleRepo reads and writes live modules in the host modules table.
type ModuleRepo struct {
	store *Store
}

type moduleRow struct {
	ID          int64         `db:"id"`
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
}

// GetByID returns the live state of a module, or domain.ErrNotFound.
func (r *ModuleRepo) GetByID(ctx context.Context, moduleID int64) (*domain.Module, error) {
	query, args, err := r.store.sql.GetModule(moduleID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get module: %w", err)
	}

	var row moduleRow
	if err := sqlscan.Get(ctx, r.store.querier(ctx), &row, query, args...); err != nil {
		return nil, mapError(err, "module", moduleID)
	}

	return &domain.Module{
		ID: row.ID,
		ModuleFields: domain.ModuleFields{
			Title:       row.Title,
			Note:        row.Note,
			Content:     row.Content,
			Ordering:    row.Ordering,
			Position:    row.Position,
			PublishUp:   millisToTime(row.PublishUp),
			PublishDown: millisToTime(row.PublishDown),
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
func (r *ModuleRepo) UpdateFields(ctx context.Context, moduleID int64, fields domain.ModuleFields) error {
	affected, err := r.store.exec(ctx, r.store.sql.UpdateModule(moduleID, fields), "module", moduleID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("module %d: %w", moduleID, domain.ErrNotFound)
	}
	return nil
}

// ExtensionRepo looks up installed extensions in the host extensions table.
type ExtensionRepo struct {
	store *Store
}

// GetByID returns an installed extension, or domain.ErrNotFound.
func (r *ExtensionRepo) GetByID(ctx context.Context, extensionID int64) (*domain.Extension, error) {
	query, args, err := r.store.sql.GetExtension(extensionID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get extension: %w", err)
	}

	var row struct {
		ID       int64  `db:"extension_id"`
		Element  string `db:"element"`
		ClientID int    `db:"client_id"`
	}
	if err := sqlscan.Get(ctx, r.store.querier(ctx), &row, query, args...); err != nil {
		return nil, mapError(err, "extension", extensionID)
	}

	return &domain.Extension{ID: row.ID, Element: row.Element, ClientID: row.ClientID}, nil
}
