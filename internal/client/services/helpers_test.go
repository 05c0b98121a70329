package services

import (
	"database/sql"
	"testing"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/repomanager"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/repotest"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/logging"
)

func setupDB(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	return repotest.OpenDB(t), repomanager.NewSQLiteRepositoryManager()
}

func newAccounts(t *testing.T) (AccountService, *sql.DB) {
	t.Helper()
	db, rm := setupDB(t)
	return NewAccountService(db, rm, logging.NewNopLogger()), db
}

func registerReq(username, email, password string) RegisterRequest {
	return RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        []byte(password),
		ConfirmPassword: []byte(password),
	}
}
