// Package stats computes the read-only figures shown by the dashboard,
// consistency and analytics views. Every function is pure.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
)

// Progress band names.
const (
	BandComplete = "complete"
	BandOnTrack  = "on-track"
	BandBehind   = "behind"
)

// Progress is a done/total rollup.
type Progress struct {
	Subject models.Subject
	Done    int
	Total   int
	Percent int
}

// MonthTotal is the hours logged in one calendar month.
type MonthTotal struct {
	Month string
	Hours float64
}

// DayPoint is one day of a month series.
type DayPoint struct {
	Date  string
	Day   int
	Hours float64
}

// DaySubjects is the per-subject hours for one day.
type DaySubjects struct {
	Date     string
	Hours    map[models.Subject]float64
	Subtotal float64
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the whole days from today to target (YYYY-MM-DD),
// floored at 0. ok is false when target is empty or malformed.
func DaysUntil(today time.Time, target string) (int, bool) {
	if target == "" {
		return 0, false
	}
	t, err := time.ParseInLocation(models.DateLayout, target, today.Location())
	if err != nil {
		return 0, false
	}
	from := midnight(today)
	// Round absorbs DST shifts between the two midnights.
	days := int(math.Round(t.Sub(from).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return days, true
}

// CompletionPercent is round(100*done/total), 0 when total is 0.
func CompletionPercent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}

// Overall rolls up every item regardless of subject.
func Overall(items []models.StudyItem) Progress {
	p := Progress{Total: len(items)}
	for _, it := range items {
		if it.Completed {
			p.Done++
		}
	}
	p.Percent = CompletionPercent(p.Done, p.Total)
	return p
}

// BySubject returns one rollup per subject in display order, including
// subjects with no items.
func BySubject(items []models.StudyItem) []Progress {
	out := make([]Progress, len(models.Subjects))
	idx := make(map[models.Subject]int, len(models.Subjects))
	for i, s := range models.Subjects {
		out[i].Subject = s
		idx[s] = i
	}
	for _, it := range items {
		i, ok := idx[it.Subject]
		if !ok {
			continue
		}
		out[i].Total++
		if it.Completed {
			out[i].Done++
		}
	}
	for i := range out {
		out[i].Percent = CompletionPercent(out[i].Done, out[i].Total)
	}
	return out
}

// NextFocus returns the first n incomplete items in plan order.
func NextFocus(items []models.StudyItem, n int) []models.StudyItem {
	var out []models.StudyItem
	for _, it := range items {
		if len(out) >= n {
			break
		}
		if !it.Completed {
			out = append(out, it)
		}
	}
	return out
}

// ProgressBand classifies a completion percentage.
func ProgressBand(pct int) string {
	switch {
	case pct >= 100:
		return BandComplete
	case pct >= 50:
		return BandOnTrack
	default:
		return BandBehind
	}
}

// DailyTotals sums hours per date.
func DailyTotals(logs []models.TimeLogEntry) map[string]float64 {
	out := make(map[string]float64, len(logs))
	for _, l := range logs {
		out[l.Date] += l.Hours
	}
	return out
}

// MonthlyTotals sums hours per month, newest first. selected is always
// present even with no logs.
func MonthlyTotals(logs []models.TimeLogEntry, selected string) []MonthTotal {
	sums := make(map[string]float64)
	for _, l := range logs {
		if len(l.Date) < len(models.MonthLayout) {
			continue
		}
		sums[l.Date[:len(models.MonthLayout)]] += l.Hours
	}
	if selected != "" {
		if _, ok := sums[selected]; !ok {
			sums[selected] = 0
		}
	}

	out := make([]MonthTotal, 0, len(sums))
	for m, h := range sums {
		out = append(out, MonthTotal{Month: m, Hours: h})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out
}

func daysIn(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, month.Location()).Day()
}

// MonthSeries returns one point per calendar day of month (YYYY-MM).
func MonthSeries(logs []models.TimeLogEntry, month string) ([]DayPoint, error) {
	m, err := models.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	totals := DailyTotals(logs)
	n := daysIn(m)
	out := make([]DayPoint, n)
	for d := 1; d <= n; d++ {
		date := time.Date(m.Year(), m.Month(), d, 0, 0, 0, 0, m.Location()).Format(models.DateLayout)
		out[d-1] = DayPoint{Date: date, Day: d, Hours: totals[date]}
	}
	return out, nil
}

// MonthlyAverage is the month's hours divided by the days in the month, or by
// the elapsed days when month is today's month.
func MonthlyAverage(logs []models.TimeLogEntry, month string, today time.Time) (float64, error) {
	m, err := models.ParseMonth(month)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, l := range logs {
		if len(l.Date) >= len(month) && l.Date[:len(month)] == month {
			total += l.Hours
		}
	}
	divisor := daysIn(m)
	if today.Year() == m.Year() && today.Month() == m.Month() {
		divisor = today.Day()
	}
	if divisor == 0 {
		return 0, nil
	}
	return total / float64(divisor), nil
}

// LastNDays returns per-subject hours for the n days ending today, oldest
// first.
func LastNDays(logs []models.TimeLogEntry, today time.Time, n int) []DaySubjects {
	if n <= 0 {
		return nil
	}
	byDate := make(map[string][]models.TimeLogEntry)
	for _, l := range logs {
		byDate[l.Date] = append(byDate[l.Date], l)
	}

	start := midnight(today)
	out := make([]DaySubjects, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := start.AddDate(0, 0, -i).Format(models.DateLayout)
		day := DaySubjects{Date: date, Hours: make(map[models.Subject]float64, len(models.Subjects))}
		for _, s := range models.Subjects {
			day.Hours[s] = 0
		}
		for _, l := range byDate[date] {
			day.Hours[l.Subject] += l.Hours
			day.Subtotal += l.Hours
		}
		out = append(out, day)
	}
	return out
}
