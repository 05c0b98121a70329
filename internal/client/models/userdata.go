package models

// UserData is everything a user owns, loaded and saved as one unit.
type UserData struct {
	Items    []StudyItem
	Exams    []ExamRecord
	Logs     []TimeLogEntry
	Metadata UserMetadata
}
