package models

import (
	"fmt"
	"slices"
	"strings"
)

// ExamSet is one of the four SPOM paper sets.
type ExamSet string

const (
	SetA ExamSet = "Set A"
	SetB ExamSet = "Set B"
	SetC ExamSet = "Set C"
	SetD ExamSet = "Set D"
)

var ExamSets = []ExamSet{SetA, SetB, SetC, SetD}

// SetCSubjects are the electives offered under Set C.
var SetCSubjects = []string{
	"Risk Management",
	"Sustainable Development and Sustainability Reporting",
	"Public Finance and Government Accounting",
	"The Insolvency and Bankruptcy Code, 2016",
	"International Taxation",
	"The Arbitration and Conciliation Act, 1996",
	"Forensic Accounting",
	"Valuation",
	"Financial Services and Capital Markets",
	"Forex and Treasury Management",
}

// SetDSubjects are the papers offered under Set D.
var SetDSubjects = []string{
	"The Constitution of India & Art of Advocacy",
	"Psychology & Philosophy",
	"Entrepreneurship & Start-up Ecosystem",
	"Digital Ecosystem and Controls",
}

// AllowedSubjects returns the fixed subject list for s, or nil when the set
// takes free text.
func (s ExamSet) AllowedSubjects() []string {
	switch s {
	case SetC:
		return SetCSubjects
	case SetD:
		return SetDSubjects
	default:
		return nil
	}
}

// ParseExamSet accepts "Set A" or just "A", case-insensitively.
func ParseExamSet(v string) (ExamSet, error) {
	v = strings.TrimSpace(v)
	for _, s := range ExamSets {
		if strings.EqualFold(v, string(s)) || strings.EqualFold(v, strings.TrimPrefix(string(s), "Set ")) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown exam set %q", v)
}

// ExamStatus is the outcome of a SPOM attempt.
type ExamStatus string

const (
	StatusPending ExamStatus = "Pending"
	StatusPass    ExamStatus = "Pass"
	StatusFail    ExamStatus = "Fail"
)

var ExamStatuses = []ExamStatus{StatusPending, StatusPass, StatusFail}

func ParseExamStatus(v string) (ExamStatus, error) {
	for _, s := range ExamStatuses {
		if strings.EqualFold(strings.TrimSpace(v), string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown exam status %q", v)
}

// ExamRecord is a single SPOM mock exam. Marks is free text so that an
// unscored attempt can stay empty.
type ExamRecord struct {
	ID      string
	OwnerID string
	Set     ExamSet
	Subject string
	Marks   string
	Status  ExamStatus
}

// NewExamRecord returns a blank Set A attempt.
func NewExamRecord(id, ownerID string) ExamRecord {
	return ExamRecord{
		ID:      id,
		OwnerID: ownerID,
		Set:     SetA,
		Status:  StatusPending,
	}
}

// CheckSubject reports an error when subject is not allowed for the record's
// set. An empty subject is always accepted.
func (e ExamRecord) CheckSubject(subject string) error {
	allowed := e.Set.AllowedSubjects()
	if subject == "" || allowed == nil || slices.Contains(allowed, subject) {
		return nil
	}
	return fmt.Errorf("%q is not a %s subject", subject, e.Set)
}
