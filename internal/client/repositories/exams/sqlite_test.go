package exams

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/repotest"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
)

func TestPut_RoundTrip(t *testing.T) {
	db := repotest.OpenDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e := models.NewExamRecord("e1", "u1")
	require.NoError(t, r.Put(ctx, &e))

	got, err := r.GetByKey(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, &e, got)

	e.Set = models.SetC
	e.Subject = "Valuation"
	e.Marks = "62"
	e.Status = models.StatusPass
	require.NoError(t, r.Put(ctx, &e))

	got, err = r.GetByKey(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, &e, got)
}

func TestOwnerScoping(t *testing.T) {
	db := repotest.OpenDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	a := models.NewExamRecord("a1", "alice")
	b := models.NewExamRecord("b1", "bob")
	require.NoError(t, r.Put(ctx, &a))
	require.NoError(t, r.Put(ctx, &b))

	got, err := r.GetAllByOwner(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)

	require.NoError(t, r.DeleteAllByOwner(ctx, "bob"))
	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "alice", all[0].OwnerID)

	_, err = r.GetByKey(ctx, "b1")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestPut_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO exam_records").WillReturnError(assert.AnError)

	e := models.NewExamRecord("e1", "u1")
	err = NewSQLiteRepository(db).Put(context.Background(), &e)
	require.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}
