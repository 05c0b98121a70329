package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/state"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
)

func (a *App) examID(prefix string) (string, error) {
	st, err := a.state()
	if err != nil {
		return "", err
	}
	exams := st.Exams()
	ids := make([]string, len(exams))
	for i, e := range exams {
		ids[i] = e.ID
	}
	return resolveID("exam", prefix, ids)
}

// Exams prints the SPOM mock exam log.
func (a *App) Exams(ctx context.Context) error {
	st, err := a.state()
	if err != nil {
		return err
	}
	exams := st.Exams()
	if len(exams) == 0 {
		a.printf("No mock exams yet. Use add-exam to record one.\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSET\tSUBJECT\tMARKS\tSTATUS")
	for _, e := range exams {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", shortID(e.ID), e.Set, orDash(e.Subject), orDash(e.Marks), e.Status)
	}
	return tw.Flush()
}

func (a *App) AddExam(ctx context.Context) error {
	st, err := a.state()
	if err != nil {
		return err
	}
	e, err := st.AddExam()
	if err != nil {
		return err
	}
	a.printf("Added mock exam %s (%s, %s).\n", shortID(e.ID), e.Set, e.Status)
	return nil
}

// SetExam updates one field of a mock exam. For Set C and Set D the subject
// may be given by its number in the listed options.
func (a *App) SetExam(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return common.ValidationError("Usage: set-exam <id> <set|subject|marks|status> <value>")
	}
	id, err := a.examID(args[0])
	if err != nil {
		return err
	}
	st, err := a.state()
	if err != nil {
		return err
	}

	field := strings.ToLower(args[1])
	value := strings.Join(args[2:], " ")

	if field == state.ExamFieldSubject {
		if value, err = a.examSubject(st, id, value); err != nil {
			return err
		}
	}

	e, err := st.UpdateExam(id, field, value)
	if err != nil {
		return err
	}
	a.printf("%s: %s | %s | %s | %s\n", shortID(e.ID), e.Set, orDash(e.Subject), orDash(e.Marks), e.Status)
	return nil
}

func (a *App) examSubject(st *state.State, id, value string) (string, error) {
	var exam models.ExamRecord
	for _, e := range st.Exams() {
		if e.ID == id {
			exam = e
		}
	}
	allowed := exam.Set.AllowedSubjects()
	if allowed == nil {
		return value, nil
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= len(allowed) {
		return allowed[n-1], nil
	}
	if value == "" || exam.CheckSubject(value) != nil {
		a.printf("Subjects offered in %s:\n", exam.Set)
		for i, s := range allowed {
			a.printf("  %d. %s\n", i+1, s)
		}
	}
	return value, nil
}

func (a *App) DeleteExam(ctx context.Context, args []string) error {
	prefix, err := oneArg(args, "delete-exam <id>")
	if err != nil {
		return err
	}
	id, err := a.examID(prefix)
	if err != nil {
		return err
	}
	st, err := a.state()
	if err != nil {
		return err
	}
	if err := st.DeleteExam(id); err != nil {
		return err
	}
	a.printf("Deleted.\n")
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
