package timelogs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/repotest"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
)

func TestPut_RoundTripAndOrder(t *testing.T) {
	db := repotest.OpenDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, &models.TimeLogEntry{ID: "l2", OwnerID: "u1", Date: "2025-01-02", Subject: models.SubjectFR, Hours: 2}))
	require.NoError(t, r.Put(ctx, &models.TimeLogEntry{ID: "l1", OwnerID: "u1", Date: "2025-01-01", Subject: models.SubjectFR, Hours: 3}))

	got, err := r.GetAllByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-01-01", got[0].Date)
	assert.Equal(t, 3.0, got[0].Hours)

	one, err := r.GetByKey(ctx, "l2")
	require.NoError(t, err)
	assert.Equal(t, models.SubjectFR, one.Subject)
}

func TestPut_OneEntryPerOwnerAndDate(t *testing.T) {
	db := repotest.OpenDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, &models.TimeLogEntry{ID: "l1", OwnerID: "u1", Date: "2025-01-01", Subject: models.SubjectFR, Hours: 3}))
	require.Error(t, r.Put(ctx, &models.TimeLogEntry{ID: "l2", OwnerID: "u1", Date: "2025-01-01", Subject: models.SubjectFR, Hours: 5}))

	require.NoError(t, r.Put(ctx, &models.TimeLogEntry{ID: "l3", OwnerID: "u2", Date: "2025-01-01", Subject: models.SubjectFR, Hours: 5}))
}

func TestDeleteAllByOwner(t *testing.T) {
	db := repotest.OpenDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, &models.TimeLogEntry{ID: "l1", OwnerID: "u1", Date: "2025-01-01", Subject: models.SubjectFR, Hours: 3}))
	require.NoError(t, r.Put(ctx, &models.TimeLogEntry{ID: "l2", OwnerID: "u2", Date: "2025-01-01", Subject: models.SubjectFR, Hours: 1}))

	require.NoError(t, r.DeleteAllByOwner(ctx, "u1"))

	_, err := r.GetByKey(ctx, "l1")
	require.ErrorIs(t, err, common.ErrNotFound)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
