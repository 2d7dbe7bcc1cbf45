package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/moduleversion/migrations"
)

const (
	pgUser     = "moduleversion"
	pgPassword = "moduleversion"
	pgDatabase = "cms"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB returns a pool on a shared PostgreSQL container holding the
// migrated modules_versions table and the host CMS tables. The container is
// started once per test binary; the pool is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		sharedDSN, initErr = setup(ctx)
	})
	if initErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: create pgxpool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func setup(ctx context.Context) (string, error) {
	dsn, err := startContainer(ctx)
	if err != nil {
		return "", err
	}

	// goose works on database/sql.
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return "", fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := migrate(ctx, db); err != nil {
		return "", err
	}
	if _, err := db.ExecContext(ctx, hostSchema); err != nil {
		return "", fmt.Errorf("create host tables: %w", err)
	}

	return dsn, nil
}

func startContainer(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, host, port.Port(), pgDatabase), nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// hostSchema creates the CMS tables the collaborators read and write. The
// service never migrates them; production databases already have them.
const hostSchema = `
CREATE TABLE IF NOT EXISTS modules (
    id           BIGSERIAL    PRIMARY KEY,
    title        VARCHAR(100) NOT NULL DEFAULT '',
    note         VARCHAR(255) NOT NULL DEFAULT '',
    content      TEXT         NOT NULL DEFAULT '',
    ordering     INTEGER      NOT NULL DEFAULT 0,
    "position"   VARCHAR(50)  NOT NULL DEFAULT '',
    publish_up   TIMESTAMPTZ,
    publish_down TIMESTAMPTZ,
    published    SMALLINT     NOT NULL DEFAULT 0,
    module       VARCHAR(50)  NOT NULL DEFAULT '',
    access       INTEGER      NOT NULL DEFAULT 0,
    showtitle    BOOLEAN      NOT NULL DEFAULT TRUE,
    params       TEXT         NOT NULL DEFAULT '',
    client_id    SMALLINT     NOT NULL DEFAULT 0,
    language     VARCHAR(7)   NOT NULL DEFAULT '*'
);

CREATE TABLE IF NOT EXISTS extensions (
    extension_id BIGSERIAL    PRIMARY KEY,
    element      VARCHAR(100) NOT NULL,
    client_id    SMALLINT     NOT NULL DEFAULT 0
);
`
