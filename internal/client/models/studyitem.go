package models

// StudyItem is a chapter in the master plan.
type StudyItem struct {
	ID             string
	OwnerID        string
	Subject        Subject
	Name           string
	Completed      bool
	PlannedDate    string
	EstimatedHours float64
}
