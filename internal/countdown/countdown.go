// Package countdown implements the timer lifecycle behind the app: arm
// a duration, wait for it to elapse or be stopped, report the outcome,
// and release everything on the way back to idle. It knows nothing
// about terminals or notifications, so the same controller backs both
// the interactive UI and tests.
package countdown

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State identifies where a countdown session is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
	StateFailed
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is an outcome that Reset returns
// to idle from.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateCancelled || s == StateFailed
}

var (
	// ErrInvalidDuration rejects zero and negative durations before any
	// session state is created.
	ErrInvalidDuration = errors.New("countdown: duration must be positive")

	// ErrAlreadyRunning rejects a start while a session is active.
	ErrAlreadyRunning = errors.New("countdown: a session is already running")
)

// Controller runs at most one countdown session at a time. Start arms
// the session, Wait blocks until it completes or is stopped, and Reset
// returns the controller to idle. Methods are safe for concurrent use;
// the expected shape is one goroutine parked in Wait while another
// drives Stop, Remaining, and Reset.
type Controller struct {
	mu       sync.Mutex
	state    State
	dur      time.Duration
	deadline time.Time
	err      error

	timer  *time.Timer
	ctx    context.Context
	cancel context.CancelFunc
	gen    uint64

	now func() time.Time
}

// New returns an idle controller on the real clock.
func New() *Controller {
	return &Controller{now: time.Now}
}

// SetNowFunc overrides the clock behind Remaining. Tests use a fixed
// clock for deterministic readings; the session timer itself always
// runs on the real clock.
func (c *Controller) SetNowFunc(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Start arms a session for d. The caller then runs Wait, usually on its
// own goroutine, to observe the outcome. Starting from a terminal state
// that was never Reset is allowed and discards the stale session.
func (c *Controller) Start(d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d <= 0 {
		return ErrInvalidDuration
	}
	if c.state == StateRunning {
		return ErrAlreadyRunning
	}
	c.releaseLocked()

	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.timer = time.NewTimer(d)
	c.gen++
	c.state = StateRunning
	c.dur = d
	c.deadline = c.now().Add(d)
	c.err = nil
	return nil
}

// Wait blocks until the armed session ends and returns the outcome:
// StateCompleted when the full duration elapsed, StateCancelled when
// Stop won the race. Without a running session it returns the current
// state immediately.
func (c *Controller) Wait() State {
	c.mu.Lock()
	if c.state != StateRunning {
		st := c.state
		c.mu.Unlock()
		return st
	}
	gen := c.gen
	fired := c.timer.C
	done := c.ctx.Done()
	c.mu.Unlock()

	select {
	case <-fired:
		return c.settle(gen, StateCompleted)
	case <-done:
		return c.settle(gen, StateCancelled)
	}
}

// Stop asks the running session to cancel. Wait observes the
// cancellation and reports StateCancelled; with nothing running Stop is
// a no-op.
func (c *Controller) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	running := c.state == StateRunning
	c.mu.Unlock()

	if running && cancel != nil {
		cancel()
	}
}

// Fail records err against a completed session, marking it failed. The
// UI uses this when the end-of-countdown notification cannot be
// delivered. Outside StateCompleted the call is ignored.
func (c *Controller) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateCompleted {
		return
	}
	c.state = StateFailed
	c.err = err
}

// Reset releases the session timer and cancellation handle and returns
// the controller to idle. It is safe to call from any state and runs on
// every exit path, whatever the outcome was.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.releaseLocked()
	c.state = StateIdle
	c.dur = 0
	c.deadline = time.Time{}
	c.err = nil
}

// Remaining returns how much of the armed duration is left, clamped at
// zero. A zero reading while the session is still running means the
// outcome is about to land.
func (c *Controller) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return 0
	}
	rem := c.deadline.Sub(c.now())
	if rem < 0 {
		return 0
	}
	return rem
}

// Duration returns the duration the current or most recent session was
// armed with, or zero after Reset.
func (c *Controller) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dur
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Running reports whether a session is currently armed.
func (c *Controller) Running() bool {
	return c.State() == StateRunning
}

// Err returns the failure recorded by Fail, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// settle moves a running session to its outcome state. The generation
// check keeps a Wait that woke on a stale session's channels from
// settling a session armed after it went to sleep, and a session that
// already settled keeps its first outcome.
func (c *Controller) settle(gen uint64, st State) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen || c.state != StateRunning {
		return c.state
	}
	c.state = st
	return st
}

// releaseLocked drops the timer and cancellation handle. Callers hold mu.
func (c *Controller) releaseLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.ctx = nil
}
