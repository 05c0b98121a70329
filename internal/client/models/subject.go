// Package models defines the tracker's records and fixed enumerations.
package models

import (
	"fmt"
	"strings"
)

// Subject is one of the six CA Final papers. The code ("FR") is what gets
// persisted; Title is for display.
type Subject string

const (
	SubjectFR    Subject = "FR"
	SubjectAFM   Subject = "AFM"
	SubjectAUDIT Subject = "AUDIT"
	SubjectDT    Subject = "DT"
	SubjectIDT   Subject = "IDT"
	SubjectIBS   Subject = "IBS"
)

// Subjects lists every subject in display order.
var Subjects = []Subject{SubjectFR, SubjectAFM, SubjectAUDIT, SubjectDT, SubjectIDT, SubjectIBS}

var subjectTitles = map[Subject]string{
	SubjectFR:    "Financial Reporting",
	SubjectAFM:   "Adv. Financial Mgmt",
	SubjectAUDIT: "Adv. Auditing",
	SubjectDT:    "Direct Tax",
	SubjectIDT:   "Indirect Tax",
	SubjectIBS:   "Int. Business Solutions",
}

func (s Subject) Title() string {
	if t, ok := subjectTitles[s]; ok {
		return t
	}
	return string(s)
}

func (s Subject) Valid() bool {
	_, ok := subjectTitles[s]
	return ok
}

// ParseSubject accepts a subject code or its full title, case-insensitively.
func ParseSubject(v string) (Subject, error) {
	v = strings.TrimSpace(v)
	for _, s := range Subjects {
		if strings.EqualFold(v, string(s)) || strings.EqualFold(v, subjectTitles[s]) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown subject %q", v)
}
