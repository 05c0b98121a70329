package models

// MaxDailyHours bounds a single day's log.
const MaxDailyHours = 24

// TimeLogEntry is the hours studied on one date. There is at most one entry
// per date per user.
type TimeLogEntry struct {
	ID      string
	OwnerID string
	Date    string
	Subject Subject
	Hours   float64
}
