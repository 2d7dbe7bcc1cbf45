// Package extension looks up installed extensions in the host CMS.
package extension

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/moduleversion/internal/adapter/postgres"
	"github.com/heartmarshall/moduleversion/internal/adapter/sqlstmt"
	"github.com/heartmarshall/moduleversion/internal/domain"
)

// Repo provides read access to the host extensions table.
type Repo struct {
	db  postgres.Querier
	sql sqlstmt.Builder
}

// New creates a new extension repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, sql: sqlstmt.Postgres()}
}

type extensionRow struct {
	ID       int64  `db:"extension_id"`
	Element  string `db:"element"`
	ClientID int    `db:"client_id"`
}

// GetByID returns an installed extension.
// Returns domain.ErrNotFound if no extension has the id.
func (r *Repo) GetByID(ctx context.Context, extensionID int64) (*domain.Extension, error) {
	query, args, err := r.sql.GetExtension(extensionID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get extension: %w", err)
	}

	var row extensionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "extension", extensionID)
	}

	return &domain.Extension{ID: row.ID, Element: row.Element, ClientID: row.ClientID}, nil
}
