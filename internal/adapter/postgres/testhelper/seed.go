package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/moduleversion/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// ModuleFields returns a realistic set of tracked fields with a unique title.
func ModuleFields() domain.ModuleFields {
	up := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return domain.ModuleFields{
		Title:     "Module " + uniqueSuffix(),
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

// SeedModule inserts a live module into the host modules table.
// Returns the module with its generated id.
func SeedModule(t *testing.T, pool *pgxpool.Pool, fields domain.ModuleFields) domain.Module {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO modules (title, note, content, ordering, "position", publish_up, publish_down,
		                      published, module, access, showtitle, params, client_id, language)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id`,
		fields.Title, fields.Note, fields.Content, fields.Ordering, fields.Position,
		fields.PublishUp, fields.PublishDown, fields.Published, fields.Kind, fields.Access,
		fields.ShowTitle, fields.Params, fields.ClientID, fields.Language,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedModule: %v", err)
	}

	return domain.Module{ID: id, ModuleFields: fields}
}

// SeedExtension registers an installed extension with a unique element name.
func SeedExtension(t *testing.T, pool *pgxpool.Pool, clientID int) domain.Extension {
	t.Helper()

	ext := domain.Extension{Element: "mod_test_" + uniqueSuffix(), ClientID: clientID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO extensions (element, client_id) VALUES ($1, $2) RETURNING extension_id`,
		ext.Element, ext.ClientID,
	).Scan(&ext.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedExtension: %v", err)
	}

	return ext
}
