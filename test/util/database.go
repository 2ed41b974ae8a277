// Package util holds the PostgreSQL plumbing shared by integration tests.
//
// Every test gets its own schema inside one shared database, so tests can
// run in parallel without seeing each other's rows. The database itself
// comes from CI_DATABASE_URL when set, otherwise from a testcontainer that
// is started once per test binary.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/pkg/database"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var shared struct {
	once    sync.Once
	connStr string
	err     error
}

// ProvisionSchema creates a fresh schema for the calling test, runs the ent
// migrations plus the hand-written partial indexes in it, and registers a
// cleanup that drops the schema again. The returned connection string has
// search_path pinned to the new schema, so every pool opened from it is
// confined to this test's tables.
func ProvisionSchema(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	base := BaseConnString(t)
	schema := SchemaName(t)

	admin, err := stdsql.Open("pgx", base)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	require.NoError(t, err, "create schema %s", schema)
	_ = admin.Close()

	t.Cleanup(func() {
		db, err := stdsql.Open("pgx", base)
		if err != nil {
			t.Logf("drop schema %s: %v", schema, err)
			return
		}
		defer func() { _ = db.Close() }()
		if _, err := db.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
			t.Logf("drop schema %s: %v", schema, err)
		}
	})

	connStr := WithSearchPath(base, schema)

	// Migrate through a throwaway pool; callers open their own.
	entClient, db := OpenPool(t, connStr)
	require.NoError(t, entClient.Schema.Create(ctx))
	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))

	return connStr
}

// OpenPool opens a connection pool against connStr and wraps it in an ent
// client. Both are closed via t.Cleanup in LIFO order, after anything the
// caller registered later.
func OpenPool(t *testing.T, connStr string) (*ent.Client, *stdsql.DB) {
	t.Helper()

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})
	return entClient, db
}

// BaseConnString returns a connection string for the shared database, with
// no search_path set. CI points at an external service container through
// CI_DATABASE_URL; local runs share a single testcontainer.
func BaseConnString(t *testing.T) string {
	t.Helper()

	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		return url
	}

	shared.once.Do(func() {
		ctx := context.Background()
		t.Log("starting shared postgres testcontainer")

		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("maestro_test"),
			postgres.WithUsername("maestro"),
			postgres.WithPassword("maestro"),
			postgres.BasicWaitStrategies(),
		)
		if err != nil {
			shared.err = fmt.Errorf("start postgres container: %w", err)
			return
		}
		shared.connStr, shared.err = container.ConnectionString(ctx, "sslmode=disable")
	})
	require.NoError(t, shared.err, "shared postgres unavailable")
	return shared.connStr
}

// SchemaName derives a unique, identifier-safe schema name from the test
// name. Postgres truncates identifiers at 63 bytes, so the test name part
// is capped and a random suffix keeps parallel runs of the same test apart.
func SchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, t.Name())
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("schema name suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// WithSearchPath appends a search_path parameter to a pgx connection string
// so every pooled connection lands in the given schema.
func WithSearchPath(connStr, schema string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schema
}
