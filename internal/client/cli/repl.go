package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Chapters(ctx context.Context, args []string) error
	AddChapter(ctx context.Context) error
	EditChapter(ctx context.Context, args []string) error
	ToggleChapter(ctx context.Context, args []string) error
	DeleteChapter(ctx context.Context, args []string) error
	Exams(ctx context.Context) error
	AddExam(ctx context.Context) error
	SetExam(ctx context.Context, args []string) error
	DeleteExam(ctx context.Context, args []string) error
	LogHours(ctx context.Context, args []string) error
	Month(ctx context.Context, args []string) error
	Week(ctx context.Context) error
	SetExamDate(ctx context.Context, args []string) error
	SetDue(ctx context.Context, args []string) error
	SetView(ctx context.Context, args []string) error
	Save(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = `Available commands:
  dashboard                        overview, countdown and today's focus
  chapters [subject]               list the master plan
  add-chapter                      add a chapter (interactive)
  edit-chapter <id>                edit a chapter (interactive)
  toggle <id>                      mark a chapter done / not done
  delete-chapter <id>              remove a chapter
  exams                            list SPOM mock exams
  add-exam                         add a blank mock exam
  set-exam <id> <field> <value>    field is set, subject, marks or status
  delete-exam <id>                 remove a mock exam
  log <YYYY-MM-DD> <hours>         record study hours (0 removes the day)
  month [YYYY-MM]                  monthly consistency report
  week                             last 7 days by subject
  exam-date <YYYY-MM-DD>           set the CA Final exam date
  due <subject> <YYYY-MM-DD|->     set a subject's completion target
  view <dashboard|master-plan|consistency>
  save                             write changes now
  whoami, reload, logout, exit`
)

// runREPL starts a read–eval–print loop over reader.
//
// It reads a line, parses the first token as the command and dispatches to
// a. Commands that need loaded data are refused until the user logs in.
// Errors returned by handlers are printed and the loop continues. The loop
// exits on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ca %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("Error:", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		handler, ok := dispatch(a, cmd, args)
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if needsLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please login first.")
			continue
		}
		if err := handler(ctx); err != nil {
			printlnFn(userMessage(err))
		}
	}
}

func needsLogin(cmd string) bool {
	switch cmd {
	case "register", "login", "logout", "reload":
		return false
	}
	return true
}

func dispatch(a execIface, cmd string, args []string) (func(context.Context) error, bool) {
	withArgs := func(fn func(context.Context, []string) error) func(context.Context) error {
		return func(ctx context.Context) error { return fn(ctx, args) }
	}

	switch cmd {
	case "register":
		return a.Register, true
	case "login":
		return a.Login, true
	case "logout":
		return a.Logout, true
	case "reload":
		return a.Restore, true
	case "whoami":
		return a.WhoAmI, true
	case "dashboard", "d":
		return a.Dashboard, true
	case "chapters", "l":
		return withArgs(a.Chapters), true
	case "add-chapter":
		return a.AddChapter, true
	case "edit-chapter":
		return withArgs(a.EditChapter), true
	case "toggle":
		return withArgs(a.ToggleChapter), true
	case "delete-chapter":
		return withArgs(a.DeleteChapter), true
	case "exams":
		return a.Exams, true
	case "add-exam":
		return a.AddExam, true
	case "set-exam":
		return withArgs(a.SetExam), true
	case "delete-exam":
		return withArgs(a.DeleteExam), true
	case "log":
		return withArgs(a.LogHours), true
	case "month":
		return withArgs(a.Month), true
	case "week":
		return a.Week, true
	case "exam-date":
		return withArgs(a.SetExamDate), true
	case "due":
		return withArgs(a.SetDue), true
	case "view":
		return withArgs(a.SetView), true
	case "save":
		return a.Save, true
	}
	return nil, false
}
