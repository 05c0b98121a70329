package state

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
)

func newState(t *testing.T) (*State, *atomic.Int32) {
	t.Helper()
	var changes atomic.Int32
	s := New("u1", nil, func() { changes.Add(1) })
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s, &changes
}

func TestNew_CopiesInput(t *testing.T) {
	data := &models.UserData{
		Items:    []models.StudyItem{{ID: "c1", Subject: models.SubjectFR, Name: "Ch1"}},
		Metadata: models.UserMetadata{CompletionDates: map[models.Subject]string{models.SubjectFR: "2025-01-01"}},
	}
	s := New("u1", data, nil)

	data.Items[0].Name = "mutated"
	data.Metadata.CompletionDates[models.SubjectFR] = "mutated"

	assert.Equal(t, "Ch1", s.Items()[0].Name)
	meta := s.Metadata()
	assert.Equal(t, "2025-01-01", meta.CompletionDates[models.SubjectFR])
	assert.Equal(t, "u1", meta.OwnerID)
	assert.Len(t, meta.CompletionDates, len(models.Subjects))
	assert.False(t, s.Dirty())
}

func TestItems_AddToggleEditDelete(t *testing.T) {
	s, changes := newState(t)

	item, err := s.AddItem(models.StudyItem{Subject: models.SubjectFR, Name: " Ch1 ", PlannedDate: "2025-01-01", EstimatedHours: 5})
	require.NoError(t, err)
	assert.Equal(t, "id-1", item.ID)
	assert.Equal(t, "u1", item.OwnerID)
	assert.Equal(t, "Ch1", item.Name)
	assert.True(t, s.Dirty())

	done, err := s.ToggleItem(item.ID)
	require.NoError(t, err)
	assert.True(t, done)

	item.Name = "Ch1 revised"
	item.Completed = true
	require.NoError(t, s.UpdateItem(item))

	got, err := s.Item(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ch1 revised", got.Name)

	require.NoError(t, s.DeleteItem(item.ID))
	assert.Empty(t, s.Items())
	assert.Equal(t, int32(4), changes.Load())
}

func TestItems_Validation(t *testing.T) {
	s, changes := newState(t)

	_, err := s.AddItem(models.StudyItem{Subject: models.SubjectFR, Name: "  "})
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = s.AddItem(models.StudyItem{Subject: "LAW", Name: "x"})
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = s.AddItem(models.StudyItem{Subject: models.SubjectDT, Name: "x", EstimatedHours: -1})
	require.ErrorIs(t, err, common.ErrValidation)

	for _, h := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = s.AddItem(models.StudyItem{Subject: models.SubjectDT, Name: "x", EstimatedHours: h})
		require.ErrorIs(t, err, common.ErrValidation, "estimated hours %v", h)
	}

	_, err = s.AddItem(models.StudyItem{Subject: models.SubjectDT, Name: "x", PlannedDate: "tomorrow"})
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = s.ToggleItem("missing")
	require.ErrorIs(t, err, common.ErrNotFound)

	require.ErrorIs(t, s.DeleteItem("missing"), common.ErrNotFound)
	require.ErrorIs(t, s.UpdateItem(models.StudyItem{ID: "missing", Subject: models.SubjectFR, Name: "x"}), common.ErrNotFound)

	assert.Zero(t, changes.Load())
	assert.False(t, s.Dirty())
}

func TestExams_DefaultsAndUpdates(t *testing.T) {
	s, _ := newState(t)

	e, err := s.AddExam()
	require.NoError(t, err)
	assert.Equal(t, models.SetA, e.Set)
	assert.Equal(t, models.StatusPending, e.Status)
	assert.Empty(t, e.Subject)
	assert.Empty(t, e.Marks)

	e, err = s.UpdateExam(e.ID, "subject", "My own paper")
	require.NoError(t, err)
	assert.Equal(t, "My own paper", e.Subject)

	e, err = s.UpdateExam(e.ID, "set", "C")
	require.NoError(t, err)
	assert.Equal(t, models.SetC, e.Set)
	assert.Empty(t, e.Subject, "free-text subject is cleared when switching to a fixed list")

	_, err = s.UpdateExam(e.ID, "subject", "Psychology & Philosophy")
	require.ErrorIs(t, err, common.ErrValidation)

	e, err = s.UpdateExam(e.ID, "subject", "Valuation")
	require.NoError(t, err)
	assert.Equal(t, "Valuation", e.Subject)

	e, err = s.UpdateExam(e.ID, "marks", "61")
	require.NoError(t, err)
	assert.Equal(t, "61", e.Marks)

	e, err = s.UpdateExam(e.ID, "status", "pass")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPass, e.Status)

	_, err = s.UpdateExam(e.ID, "status", "maybe")
	require.ErrorIs(t, err, common.ErrValidation)
	_, err = s.UpdateExam(e.ID, "colour", "red")
	require.ErrorIs(t, err, common.ErrValidation)
	_, err = s.UpdateExam("missing", "marks", "1")
	require.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, s.DeleteExam(e.ID))
	assert.Empty(t, s.Exams())
}

func TestUpsertLog(t *testing.T) {
	s, changes := newState(t)

	require.NoError(t, s.UpsertLog("2025-01-01", 0))
	assert.Empty(t, s.Logs(), "zero hours on a new date is a no-op")
	assert.Zero(t, changes.Load())

	require.NoError(t, s.UpsertLog("2025-01-01", 3))
	logs := s.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, 3.0, logs[0].Hours)
	assert.Equal(t, models.SubjectFR, logs[0].Subject)
	id := logs[0].ID

	require.NoError(t, s.UpsertLog("2025-01-01", 5))
	logs = s.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, 5.0, logs[0].Hours)
	assert.Equal(t, id, logs[0].ID, "existing entry is replaced in place")

	require.NoError(t, s.UpsertLog("2025-01-01", 0))
	assert.Empty(t, s.Logs())

	require.ErrorIs(t, s.UpsertLog("2025-01-01", 25), common.ErrValidation)
	require.ErrorIs(t, s.UpsertLog("2025-01-01", -1), common.ErrValidation)
	require.ErrorIs(t, s.UpsertLog("01/01/2025", 2), common.ErrValidation)
}

func TestUpsertLog_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
	}{
		{"negative", -0.5},
		{"over a day", 24.01},
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, changes := newState(t)
			require.NoError(t, s.UpsertLog("2025-01-01", 2))
			changes.Store(0)

			require.ErrorIs(t, s.UpsertLog("2025-01-01", tt.hours), common.ErrValidation)
			require.ErrorIs(t, s.UpsertLog("2025-01-02", tt.hours), common.ErrValidation)

			logs := s.Logs()
			require.Len(t, logs, 1)
			assert.Equal(t, 2.0, logs[0].Hours)
			assert.Zero(t, changes.Load())
		})
	}

	s, _ := newState(t)
	require.NoError(t, s.UpsertLog("2025-01-01", models.MaxDailyHours))
}

func TestMetadataSetters(t *testing.T) {
	s, changes := newState(t)

	require.NoError(t, s.SetCompletionDate(models.SubjectAFM, "2025-03-01"))
	require.NoError(t, s.SetExamDate("2025-05-02"))
	require.NoError(t, s.SetView(models.ViewMasterPlan))

	m := s.Metadata()
	assert.Equal(t, "2025-03-01", m.CompletionDates[models.SubjectAFM])
	assert.Equal(t, "2025-05-02", m.ExamDate)
	assert.Equal(t, models.ViewMasterPlan, m.CurrentView)
	assert.Equal(t, int32(3), changes.Load())

	require.NoError(t, s.SetView(models.ViewMasterPlan))
	assert.Equal(t, int32(3), changes.Load(), "setting the same value is not a change")

	require.ErrorIs(t, s.SetView("analytics"), common.ErrValidation)
	require.ErrorIs(t, s.SetExamDate("soon"), common.ErrValidation)
	require.ErrorIs(t, s.SetCompletionDate("LAW", ""), common.ErrValidation)

	m.CompletionDates[models.SubjectAFM] = "changed outside"
	assert.Equal(t, "2025-03-01", s.Metadata().CompletionDates[models.SubjectAFM])
}

func TestSnapshotAndMarkSaved(t *testing.T) {
	s, _ := newState(t)

	_, err := s.AddItem(models.StudyItem{Subject: models.SubjectFR, Name: "Ch1"})
	require.NoError(t, err)

	snap, v := s.Snapshot()
	require.Len(t, snap.Items, 1)

	_, err = s.AddItem(models.StudyItem{Subject: models.SubjectFR, Name: "Ch2"})
	require.NoError(t, err)

	s.MarkSaved(v)
	assert.True(t, s.Dirty(), "a change after the snapshot keeps the state dirty")

	_, v = s.Snapshot()
	s.MarkSaved(v)
	assert.False(t, s.Dirty())
}

func TestConcurrentMutations(t *testing.T) {
	s := New("u1", nil, nil)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddItem(models.StudyItem{Subject: models.SubjectFR, Name: fmt.Sprintf("Ch%d", i)})
			_, _ = s.Snapshot()
		}()
	}
	wg.Wait()

	assert.Len(t, s.Items(), 20)
}
