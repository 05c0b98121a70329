package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/config"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/repomanager"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/services"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/state"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/storage"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/syncer"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/logging"
	"go.uber.org/multierr"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	accounts services.AccountService
	sync     *syncer.Coordinator
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
}

// NewApp opens the local database at c.DatabasePath and wires the services
// the REPL talks to.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	rm := repomanager.NewSQLiteRepositoryManager()

	db, err := storage.Open(ctx, c.DatabasePath, rm)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	a := newApp(db, rm, c, log, bufio.NewReader(os.Stdin), os.Stdout)

	if c.SeedDemoUser {
		if err := a.accounts.SeedDefaultUsers(ctx); err != nil {
			log.Warn(ctx, "could not seed demo user", "error", err)
		}
	}
	return a, nil
}

func newApp(db *sql.DB, rm repomanager.RepositoryManager, c *config.Config, log logging.Logger, r *bufio.Reader, w io.Writer) *App {
	return &App{
		config:   c,
		log:      log,
		db:       db,
		accounts: services.NewAccountService(db, rm, log),
		sync: syncer.NewCoordinator(services.NewDataService(db, rm, log), syncer.Options{
			Debounce:   c.SaveDebounce,
			FlushOnEnd: c.FlushOnLogout,
		}, log),
		reader: r,
		out:    w,
		now:    time.Now,
	}
}

// Run restores the previous session, if any, and blocks in the REPL until
// the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the CA Final Study Tracker (type 'help' for commands)")
	if err := a.Restore(ctx); err != nil {
		a.report(err)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close ends the current session and releases the database.
func (a *App) Close(ctx context.Context) error {
	return multierr.Combine(a.sync.End(ctx), a.db.Close())
}

func (a *App) isLoggedIn() bool {
	return a.sync.User() != nil
}

func (a *App) getStatus() string {
	u := a.sync.User()
	if u == nil {
		return ""
	}
	st, err := a.sync.State()
	if err == nil && st.Dirty() {
		return fmt.Sprintf("(%s *)", u.Username)
	}
	return fmt.Sprintf("(%s)", u.Username)
}

// state returns the loaded state or common.ErrNotLoggedIn.
func (a *App) state() (*state.State, error) {
	st, err := a.sync.State()
	if err != nil {
		return nil, common.ErrNotLoggedIn
	}
	return st, nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) report(err error) {
	fmt.Fprintln(a.out, userMessage(err))
}
