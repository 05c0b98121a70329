// Package repotest opens a migrated SQLite database for repository tests.
package repotest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/migrations"

	_ "modernc.org/sqlite"
)

// OpenDB returns a fresh database with the full schema applied. It is closed
// when the test ends.
func OpenDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}
