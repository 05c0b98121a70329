package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/stats"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
)

const focusCount = 4

var bandMarks = map[string]string{
	stats.BandComplete: "done",
	stats.BandOnTrack:  "on track",
	stats.BandBehind:   "behind",
}

// Dashboard prints the countdown, overall and per-subject progress, the next
// chapters to study and the mock exam tally.
func (a *App) Dashboard(ctx context.Context) error {
	st, err := a.state()
	if err != nil {
		return err
	}
	now := a.now()
	meta := st.Metadata()
	items := st.Items()

	if days, ok := stats.DaysUntil(now, meta.ExamDate); ok {
		a.printf("CA Final exam %s: %d days left\n", meta.ExamDate, days)
	} else {
		a.printf("CA Final exam: set the date with exam-date <YYYY-MM-DD>\n")
	}

	overall := stats.Overall(items)
	a.printf("Overall: %d/%d chapters (%d%%)\n\n", overall.Done, overall.Total, overall.Percent)

	for _, p := range stats.BySubject(items) {
		a.printf("  %-6s %-*s %3d%%  %-8s %d/%d%s\n",
			p.Subject, barWidth, bar(float64(p.Percent), 100), p.Percent,
			bandMarks[stats.ProgressBand(p.Percent)], p.Done, p.Total,
			a.dueSuffix(meta.CompletionDates[p.Subject]))
	}

	focus := stats.NextFocus(items, focusCount)
	a.printf("\nToday's focus:\n")
	if len(focus) == 0 {
		a.printf("  nothing pending\n")
	}
	for _, it := range focus {
		a.printf("  %s  %s: %s\n", shortID(it.ID), it.Subject, it.Name)
	}

	exams := st.Exams()
	var pass, fail int
	for _, e := range exams {
		switch e.Status {
		case models.StatusPass:
			pass++
		case models.StatusFail:
			fail++
		}
	}
	a.printf("\nSPOM: %d attempts, %d passed, %d failed\n", len(exams), pass, fail)
	return nil
}

func (a *App) dueSuffix(date string) string {
	if date == "" {
		return ""
	}
	t, err := models.ParseDate(date)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("  target %s (%s)", date, humanize.RelTime(t, a.now(), "ago", "from now"))
}

func (a *App) SetExamDate(ctx context.Context, args []string) error {
	date, err := oneArg(args, "exam-date <YYYY-MM-DD|->")
	if err != nil {
		return err
	}
	st, err := a.state()
	if err != nil {
		return err
	}
	if date == "-" {
		date = ""
	}
	if err := st.SetExamDate(date); err != nil {
		return err
	}
	if days, ok := stats.DaysUntil(a.now(), date); ok {
		a.printf("Exam date set: %d days left.\n", days)
	} else {
		a.printf("Exam date cleared.\n")
	}
	return nil
}

// SetDue sets a subject's completion target; "-" clears it.
func (a *App) SetDue(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return common.ValidationError("Usage: due <subject> <YYYY-MM-DD|->")
	}
	st, err := a.state()
	if err != nil {
		return err
	}
	subject, err := models.ParseSubject(strings.Join(args[:len(args)-1], " "))
	if err != nil {
		return common.ValidationError(err.Error())
	}
	date := args[len(args)-1]
	if date == "-" {
		date = ""
	}
	if err := st.SetCompletionDate(subject, date); err != nil {
		return err
	}
	a.printf("%s target: %s\n", subject.Title(), orDash(date))
	return nil
}

// SetView records the selected view and renders it.
func (a *App) SetView(ctx context.Context, args []string) error {
	name, err := oneArg(args, "view <dashboard|master-plan|consistency>")
	if err != nil {
		return err
	}
	st, err := a.state()
	if err != nil {
		return err
	}
	view, err := models.ParseView(name)
	if err != nil {
		return common.ValidationError(err.Error())
	}
	if err := st.SetView(view); err != nil {
		return err
	}
	return a.renderView(ctx, view)
}

func (a *App) renderView(ctx context.Context, view models.View) error {
	switch view {
	case models.ViewMasterPlan:
		return a.Chapters(ctx, nil)
	case models.ViewConsistency:
		return a.Month(ctx, nil)
	default:
		return a.Dashboard(ctx)
	}
}

// Save writes pending changes immediately.
func (a *App) Save(ctx context.Context) error {
	st, err := a.state()
	if err != nil {
		return err
	}
	if !st.Dirty() {
		a.printf("Nothing to save.\n")
		return nil
	}
	if err := a.sync.Flush(ctx); err != nil {
		return err
	}
	a.printf("Saved.\n")
	return nil
}
