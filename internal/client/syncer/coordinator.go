// Package syncer ties a signed-in user's in-memory state to the local store:
// it loads the user's data when a session begins and writes the whole
// snapshot back after a quiet period following each change.
package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/services"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/state"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/logging"
)

// DefaultDebounce is the quiet period before a change is written back.
const DefaultDebounce = time.Second

// Options tune the Coordinator.
type Options struct {
	// Debounce is the quiet period after the last change before saving.
	Debounce time.Duration
	// FlushOnEnd saves unsaved changes when the session ends.
	FlushOnEnd bool
}

type session struct {
	user  *models.Profile
	state *state.State
	sched *Scheduler
}

// Coordinator owns the current session's state and its save scheduler.
type Coordinator struct {
	data services.DataService
	opts Options
	log  logging.Logger

	mu      sync.Mutex
	current *session

	// saveMu keeps the scheduler and explicit flushes from writing at once.
	saveMu sync.Mutex
}

func NewCoordinator(data services.DataService, opts Options, log logging.Logger) *Coordinator {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	return &Coordinator{
		data: data,
		opts: opts,
		log:  log.With("component", "syncer"),
	}
}

// Begin loads the user's data and starts write-back. If loading fails no
// session is started, so stored data cannot be overwritten by empty state.
// An existing session is ended first.
func (c *Coordinator) Begin(ctx context.Context, user *models.Profile) (*state.State, error) {
	if user == nil {
		return nil, common.ErrNotLoggedIn
	}
	if err := c.End(ctx); err != nil {
		c.log.Warn(ctx, "previous session ended with error", "error", err)
	}

	data, err := c.data.Load(ctx, user.ID)
	if err != nil {
		c.log.Error(ctx, "failed to load user data", "user_id", user.ID, "error", err)
		return nil, err
	}

	st := state.New(user.ID, data, nil)
	sess := &session{user: user, state: st}
	sess.sched = NewScheduler(c.opts.Debounce, func(ctx context.Context) {
		if err := c.save(ctx, sess); err != nil {
			c.log.Error(ctx, "failed to save user data", "user_id", user.ID, "error", err)
		}
	}, c.log)
	st.SetOnChange(sess.sched.Notify)
	sess.sched.Start(context.WithoutCancel(ctx))

	c.mu.Lock()
	c.current = sess
	c.mu.Unlock()

	c.log.Info(ctx, "session started", "user_id", user.ID)
	return st, nil
}

// End stops write-back for the current session. Pending changes are dropped
// unless FlushOnEnd is set. Ending without a session is a no-op.
func (c *Coordinator) End(ctx context.Context) error {
	c.mu.Lock()
	sess := c.current
	c.current = nil
	c.mu.Unlock()

	if sess == nil {
		return nil
	}
	sess.sched.Stop()

	if c.opts.FlushOnEnd && sess.state.Dirty() {
		if err := c.save(ctx, sess); err != nil {
			return err
		}
	} else if sess.state.Dirty() {
		c.log.Warn(ctx, "session ended with unsaved changes", "user_id", sess.user.ID)
	}

	c.log.Info(ctx, "session ended", "user_id", sess.user.ID)
	return nil
}

// Flush saves the current state immediately.
func (c *Coordinator) Flush(ctx context.Context) error {
	sess, err := c.session()
	if err != nil {
		return err
	}
	return c.save(ctx, sess)
}

// State returns the loaded state of the current session.
func (c *Coordinator) State() (*state.State, error) {
	sess, err := c.session()
	if err != nil {
		return nil, err
	}
	return sess.state, nil
}

// User returns the profile of the current session, or nil.
func (c *Coordinator) User() *models.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	return c.current.user
}

func (c *Coordinator) session() (*session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil, common.ErrNotLoaded
	}
	return c.current, nil
}

// save writes the latest snapshot. On failure the state stays dirty and the
// next change schedules another attempt.
func (c *Coordinator) save(ctx context.Context, sess *session) error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	snap, version := sess.state.Snapshot()
	if err := c.data.Replace(ctx, sess.user.ID, snap); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	sess.state.MarkSaved(version)
	c.log.Debug(ctx, "user data written back", "user_id", sess.user.ID, "version", version)
	return nil
}
