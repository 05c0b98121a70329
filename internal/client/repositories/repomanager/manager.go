// Package repomanager vends SQLite repositories bound to a given handle, so
// services can run the same repository code on *sql.DB or inside a
// transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/migrations"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/exams"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/settings"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/studyitems"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/timelogs"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/usermeta"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/users"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/dbx"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	StudyItems(db dbx.DBTX) studyitems.Repository
	Exams(db dbx.DBTX) exams.Repository
	TimeLogs(db dbx.DBTX) timelogs.Repository
	UserMetadata(db dbx.DBTX) usermeta.Repository
	Settings(db dbx.DBTX) settings.Repository
}

// SQLiteRepositoryManager is the RepositoryManager for the local database.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) StudyItems(db dbx.DBTX) studyitems.Repository {
	return studyitems.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Exams(db dbx.DBTX) exams.Repository {
	return exams.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) TimeLogs(db dbx.DBTX) timelogs.Repository {
	return timelogs.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) UserMetadata(db dbx.DBTX) usermeta.Repository {
	return usermeta.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded schema.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrations.Up(ctx, db)
}
