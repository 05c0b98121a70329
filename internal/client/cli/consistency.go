package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/stats"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
)

const barWidth = 24

// LogHours records hours for a date. "today" is accepted for the date.
func (a *App) LogHours(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return common.ValidationError("Usage: log <YYYY-MM-DD|today> <hours>")
	}
	st, err := a.state()
	if err != nil {
		return err
	}

	date := args[0]
	if strings.EqualFold(date, "today") {
		date = models.FormatDate(a.now())
	}
	hours, err := parseHours(args[1])
	if err != nil {
		return err
	}
	if err := st.UpsertLog(date, hours); err != nil {
		return err
	}

	if hours == 0 {
		a.printf("Cleared %s.\n", date)
	} else {
		a.printf("Logged %sh on %s.\n", formatHours(hours), date)
	}
	return nil
}

// Month prints the daily series, total and average for a month (default:
// the current one) followed by every month's total.
func (a *App) Month(ctx context.Context, args []string) error {
	st, err := a.state()
	if err != nil {
		return err
	}

	now := a.now()
	month := now.Format(models.MonthLayout)
	if len(args) > 0 {
		month = args[0]
	}

	logs := st.Logs()
	series, err := stats.MonthSeries(logs, month)
	if err != nil {
		return common.ValidationError(err.Error())
	}
	avg, err := stats.MonthlyAverage(logs, month, now)
	if err != nil {
		return common.ValidationError(err.Error())
	}

	var total, peak float64
	for _, p := range series {
		total += p.Hours
		peak = max(peak, p.Hours)
	}

	a.printf("Consistency for %s\n", month)
	for _, p := range series {
		if p.Hours == 0 {
			continue
		}
		a.printf("  %s  %-*s %sh\n", p.Date, barWidth, bar(p.Hours, peak), formatHours(p.Hours))
	}
	a.printf("Total: %sh   Daily average: %sh\n", formatHours(total), formatHours(avg))

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nMONTH\tHOURS")
	for _, m := range stats.MonthlyTotals(logs, month) {
		fmt.Fprintf(tw, "%s\t%s\n", m.Month, formatHours(m.Hours))
	}
	return tw.Flush()
}

// Week prints per-subject hours for the last seven days.
func (a *App) Week(ctx context.Context) error {
	st, err := a.state()
	if err != nil {
		return err
	}

	days := stats.LastNDays(st.Logs(), a.now(), 7)

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"DATE"}
	for _, s := range models.Subjects {
		header = append(header, string(s))
	}
	header = append(header, "TOTAL")
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for _, d := range days {
		row := []string{d.Date[len("2006-"):]}
		for _, s := range models.Subjects {
			row = append(row, formatHours(d.Hours[s]))
		}
		row = append(row, formatHours(d.Subtotal))
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	return tw.Flush()
}

func bar(v, peak float64) string {
	if peak <= 0 {
		return ""
	}
	n := int(v / peak * barWidth)
	if n == 0 && v > 0 {
		n = 1
	}
	return strings.Repeat("#", n)
}
