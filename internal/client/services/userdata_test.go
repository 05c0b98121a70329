package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/logging"
)

func newDataService(t *testing.T) DataService {
	t.Helper()
	db, rm := setupDB(t)
	svc := NewDataService(db, rm, logging.NewNopLogger())
	svc.(*dataService).now = func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func sampleData() *models.UserData {
	meta := models.NewUserMetadata("")
	meta.CompletionDates[models.SubjectFR] = "2025-02-15"
	meta.CurrentView = models.ViewConsistency
	meta.ExamDate = "2025-05-02"

	exam := models.NewExamRecord("e1", "")
	exam.Marks = "55"

	return &models.UserData{
		Items: []models.StudyItem{
			{ID: "c1", Subject: models.SubjectFR, Name: "Ch1", PlannedDate: "2025-01-01", EstimatedHours: 5},
			{ID: "c2", Subject: models.SubjectDT, Name: "Ch2", Completed: true},
		},
		Exams: []models.ExamRecord{exam},
		Logs: []models.TimeLogEntry{
			{ID: "l1", Date: "2025-01-01", Subject: models.SubjectFR, Hours: 3},
		},
		Metadata: meta,
	}
}

func TestLoad_EmptyUserGetsDefaults(t *testing.T) {
	svc := newDataService(t)

	data, err := svc.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, data.Items)
	assert.Empty(t, data.Exams)
	assert.Empty(t, data.Logs)
	assert.Equal(t, "u1", data.Metadata.OwnerID)
	assert.Equal(t, models.ViewDashboard, data.Metadata.CurrentView)
	assert.Len(t, data.Metadata.CompletionDates, len(models.Subjects))
}

func TestReplace_ThenLoadRestoresSnapshot(t *testing.T) {
	svc := newDataService(t)
	ctx := context.Background()

	require.NoError(t, svc.Replace(ctx, "u1", sampleData()))

	got, err := svc.Load(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, got.Items, 2)
	assert.Equal(t, "u1", got.Items[0].OwnerID)
	assert.Equal(t, "Ch1", got.Items[0].Name)
	assert.True(t, got.Items[1].Completed)

	require.Len(t, got.Exams, 1)
	assert.Equal(t, "55", got.Exams[0].Marks)
	assert.Equal(t, models.SetA, got.Exams[0].Set)

	require.Len(t, got.Logs, 1)
	assert.Equal(t, 3.0, got.Logs[0].Hours)

	assert.Equal(t, "2025-02-15", got.Metadata.CompletionDates[models.SubjectFR])
	assert.Equal(t, models.ViewConsistency, got.Metadata.CurrentView)
	assert.Equal(t, "2025-05-02", got.Metadata.ExamDate)
	assert.Equal(t, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), got.Metadata.UpdatedAt)
}

func TestReplace_RemovesRecordsMissingFromSnapshot(t *testing.T) {
	svc := newDataService(t)
	ctx := context.Background()

	require.NoError(t, svc.Replace(ctx, "u1", sampleData()))

	smaller := sampleData()
	smaller.Items = smaller.Items[:1]
	smaller.Logs = nil
	require.NoError(t, svc.Replace(ctx, "u1", smaller))

	got, err := svc.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
	assert.Empty(t, got.Logs)
}

func TestReplace_LeavesOtherOwnersAlone(t *testing.T) {
	svc := newDataService(t)
	ctx := context.Background()

	alice := sampleData()
	require.NoError(t, svc.Replace(ctx, "alice", alice))

	bob := &models.UserData{
		Items:    []models.StudyItem{{ID: "b1", Subject: models.SubjectIBS, Name: "Case study"}},
		Metadata: models.NewUserMetadata("bob"),
	}
	require.NoError(t, svc.Replace(ctx, "bob", bob))

	got, err := svc.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)

	got, err = svc.Load(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "b1", got.Items[0].ID)
}

func TestReplace_FailureRollsBack(t *testing.T) {
	svc := newDataService(t)
	ctx := context.Background()

	require.NoError(t, svc.Replace(ctx, "u1", sampleData()))

	broken := sampleData()
	broken.Items = nil
	broken.Logs = []models.TimeLogEntry{
		{ID: "x1", Date: "2025-01-05", Subject: models.SubjectFR, Hours: 1},
		{ID: "x2", Date: "2025-01-05", Subject: models.SubjectFR, Hours: 2},
	}
	require.Error(t, svc.Replace(ctx, "u1", broken))

	got, err := svc.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got.Items, 2, "failed save must not delete the previous snapshot")
	require.Len(t, got.Logs, 1)
	assert.Equal(t, "l1", got.Logs[0].ID)
}
