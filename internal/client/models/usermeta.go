package models

import "time"

// UserMetadata holds per-user settings saved alongside the collections.
type UserMetadata struct {
	OwnerID         string
	CompletionDates map[Subject]string
	CurrentView     View
	ExamDate        string
	UpdatedAt       time.Time
}

// NewUserMetadata returns metadata with an empty target date for every
// subject and the dashboard selected.
func NewUserMetadata(ownerID string) UserMetadata {
	dates := make(map[Subject]string, len(Subjects))
	for _, s := range Subjects {
		dates[s] = ""
	}
	return UserMetadata{
		OwnerID:         ownerID,
		CompletionDates: dates,
		CurrentView:     ViewDashboard,
	}
}

// Normalize fills in any subject missing from CompletionDates and an empty view.
func (m *UserMetadata) Normalize() {
	if m.CompletionDates == nil {
		m.CompletionDates = make(map[Subject]string, len(Subjects))
	}
	for _, s := range Subjects {
		if _, ok := m.CompletionDates[s]; !ok {
			m.CompletionDates[s] = ""
		}
	}
	if m.CurrentView == "" {
		m.CurrentView = ViewDashboard
	}
}
