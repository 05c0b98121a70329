package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/logging"
)

// Scheduler debounces change notifications into saves. Each Notify restarts
// the quiet-period timer; when it expires one save runs on the scheduler's
// goroutine, so saves never overlap.
type Scheduler struct {
	delay  time.Duration
	save   func(ctx context.Context)
	log    logging.Logger
	notify chan struct{}
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// NewScheduler creates a stopped scheduler. Call Start to run it.
func NewScheduler(delay time.Duration, save func(ctx context.Context), log logging.Logger) *Scheduler {
	return &Scheduler{
		delay:  delay,
		save:   save,
		log:    log,
		notify: make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start launches the scheduler goroutine. It exits on Stop or when ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

// Notify signals a change. It never blocks.
func (s *Scheduler) Notify() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Stop cancels any pending save and waits for the goroutine to exit. A save
// that is already running is allowed to finish. Stop is idempotent.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	timer := time.NewTimer(s.delay)
	timer.Stop()
	defer timer.Stop()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			if fire != nil {
				s.log.Debug(ctx, "pending save cancelled")
			}
			return
		case <-s.notify:
			timer.Reset(s.delay)
			fire = timer.C
		case <-fire:
			fire = nil
			s.save(ctx)
		}
	}
}
