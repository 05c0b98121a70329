// Package state holds a signed-in user's collections in memory. Every
// mutation bumps a version, marks the state dirty and fires the change
// callback so the save scheduler can debounce a write-back.
package state

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
)

// State is safe for concurrent use.
type State struct {
	mu       sync.Mutex
	ownerID  string
	items    []models.StudyItem
	exams    []models.ExamRecord
	logs     []models.TimeLogEntry
	meta     models.UserMetadata
	version  uint64
	saved    uint64
	onChange func()
	newID    func() string
}

// New builds a State from loaded data. onChange may be nil.
func New(ownerID string, data *models.UserData, onChange func()) *State {
	if data == nil {
		data = &models.UserData{Metadata: models.NewUserMetadata(ownerID)}
	}
	meta := cloneMeta(data.Metadata)
	meta.OwnerID = ownerID
	meta.Normalize()

	return &State{
		ownerID:  ownerID,
		items:    slices.Clone(data.Items),
		exams:    slices.Clone(data.Exams),
		logs:     slices.Clone(data.Logs),
		meta:     meta,
		onChange: onChange,
		newID:    uuid.NewString,
	}
}

func (s *State) OwnerID() string {
	return s.ownerID
}

// SetOnChange replaces the change callback.
func (s *State) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the collections and the version it reflects.
func (s *State) Snapshot() (*models.UserData, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.UserData{
		Items:    slices.Clone(s.items),
		Exams:    slices.Clone(s.exams),
		Logs:     slices.Clone(s.logs),
		Metadata: cloneMeta(s.meta),
	}, s.version
}

// Dirty reports whether there are changes newer than the last saved version.
func (s *State) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version != s.saved
}

// MarkSaved records that the snapshot at version has been persisted. Changes
// made after that snapshot keep the state dirty.
func (s *State) MarkSaved(version uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version > s.saved {
		s.saved = version
	}
}

// mutate runs fn under the lock and, when it reports a change, bumps the
// version and fires onChange after unlocking.
func (s *State) mutate(fn func() (bool, error)) error {
	s.mu.Lock()
	changed, err := fn()
	if changed {
		s.version++
	}
	cb := s.onChange
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if changed && cb != nil {
		cb()
	}
	return nil
}

// --- chapters ---

func (s *State) Items() []models.StudyItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *State) Item(id string) (models.StudyItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.itemIndex(id)
	if i < 0 {
		return models.StudyItem{}, fmt.Errorf("chapter %s: %w", id, common.ErrNotFound)
	}
	return s.items[i], nil
}

// AddItem validates item, assigns a fresh ID and appends it.
func (s *State) AddItem(item models.StudyItem) (models.StudyItem, error) {
	if err := validateItem(&item); err != nil {
		return models.StudyItem{}, err
	}
	err := s.mutate(func() (bool, error) {
		item.ID = s.newID()
		item.OwnerID = s.ownerID
		s.items = append(s.items, item)
		return true, nil
	})
	return item, err
}

// UpdateItem replaces the chapter with the same ID.
func (s *State) UpdateItem(item models.StudyItem) error {
	if err := validateItem(&item); err != nil {
		return err
	}
	return s.mutate(func() (bool, error) {
		i := s.itemIndex(item.ID)
		if i < 0 {
			return false, fmt.Errorf("chapter %s: %w", item.ID, common.ErrNotFound)
		}
		item.OwnerID = s.ownerID
		s.items[i] = item
		return true, nil
	})
}

// ToggleItem flips the completion flag and returns the new value.
func (s *State) ToggleItem(id string) (bool, error) {
	var completed bool
	err := s.mutate(func() (bool, error) {
		i := s.itemIndex(id)
		if i < 0 {
			return false, fmt.Errorf("chapter %s: %w", id, common.ErrNotFound)
		}
		s.items[i].Completed = !s.items[i].Completed
		completed = s.items[i].Completed
		return true, nil
	})
	return completed, err
}

func (s *State) DeleteItem(id string) error {
	return s.mutate(func() (bool, error) {
		i := s.itemIndex(id)
		if i < 0 {
			return false, fmt.Errorf("chapter %s: %w", id, common.ErrNotFound)
		}
		s.items = slices.Delete(s.items, i, i+1)
		return true, nil
	})
}

func (s *State) itemIndex(id string) int {
	return slices.IndexFunc(s.items, func(it models.StudyItem) bool { return it.ID == id })
}

func validateItem(item *models.StudyItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return common.ValidationError("Chapter name is required.")
	}
	if !item.Subject.Valid() {
		return common.ValidationError(fmt.Sprintf("Unknown subject %q.", item.Subject))
	}
	if math.IsNaN(item.EstimatedHours) || math.IsInf(item.EstimatedHours, 0) {
		return common.ValidationError("Estimated hours must be a number.")
	}
	if item.EstimatedHours < 0 {
		return common.ValidationError("Estimated hours cannot be negative.")
	}
	if item.PlannedDate != "" {
		if _, err := models.ParseDate(item.PlannedDate); err != nil {
			return common.ValidationError("Planned date must be YYYY-MM-DD.")
		}
	}
	return nil
}

// --- SPOM exams ---

func (s *State) Exams() []models.ExamRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.exams)
}

// AddExam appends a blank Set A attempt.
func (s *State) AddExam() (models.ExamRecord, error) {
	var exam models.ExamRecord
	err := s.mutate(func() (bool, error) {
		exam = models.NewExamRecord(s.newID(), s.ownerID)
		s.exams = append(s.exams, exam)
		return true, nil
	})
	return exam, err
}

// Exam fields accepted by UpdateExam.
const (
	ExamFieldSet     = "set"
	ExamFieldSubject = "subject"
	ExamFieldMarks   = "marks"
	ExamFieldStatus  = "status"
)

// UpdateExam sets one field of an exam record. Changing the set clears a
// subject that the new set does not offer.
func (s *State) UpdateExam(id, field, value string) (models.ExamRecord, error) {
	var out models.ExamRecord
	err := s.mutate(func() (bool, error) {
		i := slices.IndexFunc(s.exams, func(e models.ExamRecord) bool { return e.ID == id })
		if i < 0 {
			return false, fmt.Errorf("exam %s: %w", id, common.ErrNotFound)
		}
		e := s.exams[i]

		switch strings.ToLower(field) {
		case ExamFieldSet:
			set, err := models.ParseExamSet(value)
			if err != nil {
				return false, common.ValidationError("Set must be one of Set A, Set B, Set C, Set D.")
			}
			e.Set = set
			if e.CheckSubject(e.Subject) != nil {
				e.Subject = ""
			}
		case ExamFieldSubject:
			if err := e.CheckSubject(value); err != nil {
				return false, common.ValidationError(fmt.Sprintf("Subject %q is not offered in %s.", value, e.Set))
			}
			e.Subject = value
		case ExamFieldMarks:
			e.Marks = value
		case ExamFieldStatus:
			status, err := models.ParseExamStatus(value)
			if err != nil {
				return false, common.ValidationError("Status must be Pending, Pass or Fail.")
			}
			e.Status = status
		default:
			return false, common.ValidationError(fmt.Sprintf("Unknown exam field %q.", field))
		}

		s.exams[i] = e
		out = e
		return true, nil
	})
	return out, err
}

func (s *State) DeleteExam(id string) error {
	return s.mutate(func() (bool, error) {
		i := slices.IndexFunc(s.exams, func(e models.ExamRecord) bool { return e.ID == id })
		if i < 0 {
			return false, fmt.Errorf("exam %s: %w", id, common.ErrNotFound)
		}
		s.exams = slices.Delete(s.exams, i, i+1)
		return true, nil
	})
}

// --- time logs ---

func (s *State) Logs() []models.TimeLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.logs)
}

// UpsertLog sets the hours logged on date. An existing entry is replaced in
// place, or removed when hours is 0. A new date with 0 hours is a no-op;
// otherwise a single entry is added under Financial Reporting.
func (s *State) UpsertLog(date string, hours float64) error {
	if _, err := models.ParseDate(date); err != nil {
		return common.ValidationError("Date must be YYYY-MM-DD.")
	}
	// NaN fails every comparison, so the bound is stated positively.
	if !(hours >= 0 && hours <= models.MaxDailyHours) {
		return common.ValidationError("Hours must be between 0 and 24.")
	}

	return s.mutate(func() (bool, error) {
		i := slices.IndexFunc(s.logs, func(l models.TimeLogEntry) bool { return l.Date == date })
		switch {
		case i >= 0 && hours <= 0:
			s.logs = slices.Delete(s.logs, i, i+1)
		case i >= 0:
			if s.logs[i].Hours == hours {
				return false, nil
			}
			s.logs[i].Hours = hours
		case hours <= 0:
			return false, nil
		default:
			s.logs = append(s.logs, models.TimeLogEntry{
				ID:      s.newID(),
				OwnerID: s.ownerID,
				Date:    date,
				Subject: models.SubjectFR,
				Hours:   hours,
			})
		}
		return true, nil
	})
}

// --- metadata ---

func (s *State) Metadata() models.UserMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMeta(s.meta)
}

// SetCompletionDate sets the target completion date for subject. An empty
// date clears it.
func (s *State) SetCompletionDate(subject models.Subject, date string) error {
	if !subject.Valid() {
		return common.ValidationError(fmt.Sprintf("Unknown subject %q.", subject))
	}
	if date != "" {
		if _, err := models.ParseDate(date); err != nil {
			return common.ValidationError("Date must be YYYY-MM-DD.")
		}
	}
	return s.mutate(func() (bool, error) {
		if s.meta.CompletionDates[subject] == date {
			return false, nil
		}
		s.meta.CompletionDates[subject] = date
		return true, nil
	})
}

// SetExamDate sets the exam countdown target. An empty date clears it.
func (s *State) SetExamDate(date string) error {
	if date != "" {
		if _, err := models.ParseDate(date); err != nil {
			return common.ValidationError("Date must be YYYY-MM-DD.")
		}
	}
	return s.mutate(func() (bool, error) {
		if s.meta.ExamDate == date {
			return false, nil
		}
		s.meta.ExamDate = date
		return true, nil
	})
}

func (s *State) SetView(view models.View) error {
	if _, err := models.ParseView(string(view)); err != nil {
		return common.ValidationError(fmt.Sprintf("Unknown view %q.", view))
	}
	return s.mutate(func() (bool, error) {
		if s.meta.CurrentView == view {
			return false, nil
		}
		s.meta.CurrentView = view
		return true, nil
	})
}

func cloneMeta(m models.UserMetadata) models.UserMetadata {
	m.CompletionDates = maps.Clone(m.CompletionDates)
	return m
}
