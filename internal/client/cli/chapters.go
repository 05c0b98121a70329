package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
)

// shortIDLen is how much of an ID listings print; commands accept any
// unique prefix.
const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// resolveID finds the single id in ids that equals or starts with prefix.
func resolveID(kind, prefix string, ids []string) (string, error) {
	var match string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", common.ValidationError(fmt.Sprintf("%s id %q is ambiguous.", kind, prefix))
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("%s %s: %w", kind, prefix, common.ErrNotFound)
	}
	return match, nil
}

func oneArg(args []string, usage string) (string, error) {
	if len(args) != 1 {
		return "", common.ValidationError("Usage: " + usage)
	}
	return args[0], nil
}

func formatHours(h float64) string {
	return humanize.FtoaWithDigits(h, 2)
}

func parseHours(s string) (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, common.ValidationError(fmt.Sprintf("%q is not a number.", s))
	}
	return h, nil
}

func (a *App) chapterID(prefix string) (string, error) {
	st, err := a.state()
	if err != nil {
		return "", err
	}
	items := st.Items()
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return resolveID("chapter", prefix, ids)
}

// Chapters prints the master plan, optionally for one subject.
func (a *App) Chapters(ctx context.Context, args []string) error {
	st, err := a.state()
	if err != nil {
		return err
	}

	var filter models.Subject
	if len(args) > 0 {
		if filter, err = models.ParseSubject(strings.Join(args, " ")); err != nil {
			return common.ValidationError(err.Error())
		}
	}

	items := st.Items()
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tSUBJECT\tCHAPTER\tHOURS\tPLANNED")
	n := 0
	for _, it := range items {
		if filter != "" && it.Subject != filter {
			continue
		}
		done := " "
		if it.Completed {
			done = "x"
		}
		fmt.Fprintf(tw, "%s\t[%s]\t%s\t%s\t%s\t%s\n",
			shortID(it.ID), done, it.Subject, it.Name, formatHours(it.EstimatedHours), it.PlannedDate)
		n++
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if n == 0 {
		a.printf("No chapters yet. Use add-chapter to plan one.\n")
	}
	return nil
}

// AddChapter prompts for a new chapter and appends it to the plan.
func (a *App) AddChapter(ctx context.Context) error {
	st, err := a.state()
	if err != nil {
		return err
	}

	item, err := a.promptChapter(models.StudyItem{Subject: models.SubjectFR})
	if err != nil {
		return err
	}
	added, err := st.AddItem(item)
	if err != nil {
		return err
	}
	a.printf("Added %s (%s).\n", added.Name, shortID(added.ID))
	return nil
}

// EditChapter prompts for every field of a chapter, keeping the current
// value on an empty answer.
func (a *App) EditChapter(ctx context.Context, args []string) error {
	prefix, err := oneArg(args, "edit-chapter <id>")
	if err != nil {
		return err
	}
	id, err := a.chapterID(prefix)
	if err != nil {
		return err
	}
	st, err := a.state()
	if err != nil {
		return err
	}
	current, err := st.Item(id)
	if err != nil {
		return err
	}

	item, err := a.promptChapter(current)
	if err != nil {
		return err
	}
	if err := st.UpdateItem(item); err != nil {
		return err
	}
	a.printf("Updated %s.\n", item.Name)
	return nil
}

func (a *App) ToggleChapter(ctx context.Context, args []string) error {
	prefix, err := oneArg(args, "toggle <id>")
	if err != nil {
		return err
	}
	id, err := a.chapterID(prefix)
	if err != nil {
		return err
	}
	st, err := a.state()
	if err != nil {
		return err
	}
	done, err := st.ToggleItem(id)
	if err != nil {
		return err
	}
	if done {
		a.printf("Marked done.\n")
	} else {
		a.printf("Marked not done.\n")
	}
	return nil
}

func (a *App) DeleteChapter(ctx context.Context, args []string) error {
	prefix, err := oneArg(args, "delete-chapter <id>")
	if err != nil {
		return err
	}
	id, err := a.chapterID(prefix)
	if err != nil {
		return err
	}
	st, err := a.state()
	if err != nil {
		return err
	}
	if err := st.DeleteItem(id); err != nil {
		return err
	}
	a.printf("Deleted.\n")
	return nil
}

func (a *App) promptChapter(item models.StudyItem) (models.StudyItem, error) {
	subject, err := GetOptional(a.reader, "Subject (FR, AFM, AUDIT, DT, IDT, IBS)", string(item.Subject), a.out)
	if err != nil {
		return item, err
	}
	s, err := models.ParseSubject(subject)
	if err != nil {
		return item, common.ValidationError(err.Error())
	}
	item.Subject = s

	if item.Name, err = GetOptional(a.reader, "Chapter name", item.Name, a.out); err != nil {
		return item, err
	}

	hours, err := GetOptional(a.reader, "Estimated hours", formatHours(item.EstimatedHours), a.out)
	if err != nil {
		return item, err
	}
	if item.EstimatedHours, err = parseHours(hours); err != nil {
		return item, err
	}

	planned, err := GetOptional(a.reader, "Planned date (YYYY-MM-DD, - for none)", item.PlannedDate, a.out)
	if err != nil {
		return item, err
	}
	if planned == "-" {
		planned = ""
	}
	item.PlannedDate = planned
	return item, nil
}
