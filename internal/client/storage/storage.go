// Package storage opens the local tracker database and applies its schema.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/repomanager"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Applied to every connection.
const pragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Open opens (creating if needed) the database at path and runs migrations.
func Open(ctx context.Context, path string, rm repomanager.RepositoryManager) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+pragmas)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Remove deletes the database file and its WAL side files. A missing file is
// not an error.
func Remove(path string) error {
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
	}
	return nil
}
