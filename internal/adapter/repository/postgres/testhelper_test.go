package postgres_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcos-nsantos/zapgo-backend/internal/infrastructure/database"
)

type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
}

// SetupTestDB starts a PostGIS container with the schema migrated. Migrations
// run twice to prove they are idempotent.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgis/postgis:18-3.6-alpine",
		postgres.WithDatabase("zapgo"),
		postgres.WithUsername("zapgo"),
		postgres.WithPassword("zapgo"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "starting postgis container")
	db := &TestDB{Container: container}

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db.Pool, err = pgxpool.New(ctx, connString)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, database.RunMigrations(ctx, db.Pool, migrationsPath()))
	}

	return db
}

func (db *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if db.Pool != nil {
		db.Pool.Close()
	}
	if db.Container != nil {
		if err := db.Container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
}

func (db *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()
	for _, table := range tables {
		_, err := db.Pool.Exec(context.Background(), "TRUNCATE TABLE "+pgx.Identifier{table}.Sanitize()+" CASCADE")
		require.NoError(t, err, "truncating %s", table)
	}
}

func migrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "..", "..", "migrations")
}
