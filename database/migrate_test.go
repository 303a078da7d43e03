package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestMigrateSQLite_CreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, MigrateSQLite(ctx, db))
	// second run is a no-op
	require.NoError(t, MigrateSQLite(ctx, db))

	for _, table := range []string{"users", "tasks"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, table, name)
	}

	_, err = db.Exec(`INSERT INTO users (name, email, password, created_at, updated_at) VALUES ('a', 'a@example.com', 'x', 0, 0)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO tasks (title, status, user_id, created_at, updated_at) VALUES ('title', 'archived', 1, 0, 0)`)
	assert.Error(t, err, "status check constraint must reject unknown statuses")
}

func TestMigrate_InvalidDSN(t *testing.T) {
	err := Migrate(context.Background(), "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	assert.Error(t, err)
}
