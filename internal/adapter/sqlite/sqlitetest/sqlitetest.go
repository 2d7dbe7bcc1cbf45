// Package sqlitetest provides throwaway SQLite stores with the host CMS
// tables in place, for tests of the store and of the service above it.
package sqlitetest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/moduleversion/internal/adapter/sqlite"
	"github.com/heartmarshall/moduleversion/internal/domain"
)

const hostSchema = `
CREATE TABLE IF NOT EXISTS modules (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    title        TEXT    NOT NULL DEFAULT '',
    note         TEXT    NOT NULL DEFAULT '',
    content      TEXT    NOT NULL DEFAULT '',
    ordering     INTEGER NOT NULL DEFAULT 0,
    "position"   TEXT    NOT NULL DEFAULT '',
    publish_up   INTEGER,
    publish_down INTEGER,
    published    INTEGER NOT NULL DEFAULT 0,
    module       TEXT    NOT NULL DEFAULT '',
    access       INTEGER NOT NULL DEFAULT 0,
    showtitle    BOOLEAN NOT NULL DEFAULT 1,
    params       TEXT    NOT NULL DEFAULT '',
    client_id    INTEGER NOT NULL DEFAULT 0,
    language     TEXT    NOT NULL DEFAULT '*'
);

CREATE TABLE IF NOT EXISTS extensions (
    extension_id INTEGER PRIMARY KEY AUTOINCREMENT,
    element      TEXT    NOT NULL,
    client_id    INTEGER NOT NULL DEFAULT 0
);
`

// Open creates a migrated store in a temp directory together with the host
// tables. The store is closed via t.Cleanup.
func Open(t *testing.T) *sqlite.Store {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "versions.db"))
	if err != nil {
		t.Fatalf("sqlitetest: open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, err := store.DB().ExecContext(ctx, hostSchema); err != nil {
		t.Fatalf("sqlitetest: create host tables: %v", err)
	}
	return store
}

// ModuleFields returns a realistic set of tracked fields.
func ModuleFields() domain.ModuleFields {
	up := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return domain.ModuleFields{
		Title:     "Latest news",
		Note:      "seeded",
		Content:   "<p>hello</p>",
		Ordering:  1,
		Position:  "sidebar-right",
		PublishUp: &up,
		Published: 1,
		Kind:      "mod_custom",
		Access:    1,
		ShowTitle: true,
		Params:    `{"layout":"_:default"}`,
		Language:  "*",
	}
}

func millis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().UnixMilli()
}

// SeedModule inserts a live module and returns it with its generated id.
func SeedModule(t *testing.T, store *sqlite.Store, fields domain.ModuleFields) domain.Module {
	t.Helper()

	res, err := store.DB().ExecContext(context.Background(),
		`INSERT INTO modules (title, note, content, ordering, "position", publish_up, publish_down,
		                      published, module, access, showtitle, params, client_id, language)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fields.Title, fields.Note, fields.Content, fields.Ordering, fields.Position,
		millis(fields.PublishUp), millis(fields.PublishDown), fields.Published, fields.Kind,
		fields.Access, fields.ShowTitle, fields.Params, fields.ClientID, fields.Language,
	)
	if err != nil {
		t.Fatalf("sqlitetest: SeedModule: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("sqlitetest: SeedModule last id: %v", err)
	}

	return domain.Module{ID: id, ModuleFields: fields}
}

// SeedExtension registers an installed extension.
func SeedExtension(t *testing.T, store *sqlite.Store, element string, clientID int) domain.Extension {
	t.Helper()

	res, err := store.DB().ExecContext(context.Background(),
		`INSERT INTO extensions (element, client_id) VALUES (?, ?)`, element, clientID)
	if err != nil {
		t.Fatalf("sqlitetest: SeedExtension: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("sqlitetest: SeedExtension last id: %v", err)
	}

	return domain.Extension{ID: id, Element: element, ClientID: clientID}
}
