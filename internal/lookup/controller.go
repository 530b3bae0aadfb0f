// Package lookup drives the transaction search panel of the portal.
//
// A search hides both outcome panels at once and resolves after a fixed
// delay: the result panel is shown when the transaction exists, the error
// panel otherwise. Overlapping searches are neither debounced nor cancelled;
// the callback that runs last decides what is on screen.
package lookup

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/hance08/concil/internal/model"
	"github.com/hance08/concil/internal/store"
)

const DefaultDelay = 300 * time.Millisecond

type Finder interface {
	FindTransaction(id string) (model.TransactionRecord, error)
}

// Scheduler runs f once after d. time.AfterFunc satisfies it.
type Scheduler func(d time.Duration, f func())

type Option func(*Controller)

func WithDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.schedule = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

type Controller struct {
	finder   Finder
	delay    time.Duration
	schedule Scheduler
	logger   *slog.Logger

	// notifyMu orders transitions together with their observer calls; it
	// is always taken before mu.
	notifyMu sync.Mutex

	mu            sync.Mutex
	resultVisible bool
	errorVisible  bool
	fields        Fields
	query         string
	resolved      string
	changed       chan struct{}
	observers     []func(Snapshot)
}

func NewController(finder Finder, opts ...Option) *Controller {
	c := &Controller{
		finder: finder,
		delay:  DefaultDelay,
		schedule: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		logger:  slog.Default(),
		changed: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Normalize trims and upper-cases raw input into a lookup key.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Search starts a lookup for raw. Blank input is ignored and reports false;
// nothing on screen changes in that case.
func (c *Controller) Search(raw string) bool {
	id := Normalize(raw)
	if id == "" {
		return false
	}

	c.notifyMu.Lock()
	c.mu.Lock()
	c.resultVisible = false
	c.errorVisible = false
	c.query = id
	c.resolved = ""
	snap, observers := c.commitLocked()
	c.mu.Unlock()

	c.logger.Debug("transaction search scheduled", "id", id, "delay", c.delay)
	notify(observers, snap)
	c.notifyMu.Unlock()

	c.schedule(c.delay, func() { c.resolve(id) })
	return true
}

func (c *Controller) resolve(id string) {
	rec, err := c.finder.FindTransaction(id)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		c.logger.Error("transaction lookup failed", "id", id, "error", err)
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if err != nil {
		c.resultVisible = false
		c.errorVisible = true
	} else {
		c.fields = Present(rec)
		c.errorVisible = false
		c.resultVisible = true
	}
	c.resolved = id
	snap, observers := c.commitLocked()
	c.mu.Unlock()

	c.logger.Debug("transaction search resolved", "id", id, "state", snap.State)
	notify(observers, snap)
}

// commitLocked wakes every Changed waiter and returns the new snapshot with
// the observers to hand it to.
func (c *Controller) commitLocked() (Snapshot, []func(Snapshot)) {
	close(c.changed)
	c.changed = make(chan struct{})
	return c.snapshotLocked(), append([]func(Snapshot){}, c.observers...)
}

func (c *Controller) snapshotLocked() Snapshot {
	state := Idle
	switch {
	case c.resultVisible:
		state = ResultShown
	case c.errorVisible:
		state = ErrorShown
	}

	return Snapshot{
		State:         state,
		ResultVisible: c.resultVisible,
		ErrorVisible:  c.errorVisible,
		Fields:        c.fields,
		Query:         c.query,
		Resolved:      c.resolved,
	}
}

func notify(observers []func(Snapshot), snap Snapshot) {
	for _, fn := range observers {
		fn(snap)
	}
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Changed returns a channel closed on the next state transition.
func (c *Controller) Changed() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.changed
}

// OnChange registers fn to be called after every transition, in the order
// the transitions happen. fn must not call Search.
func (c *Controller) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Await blocks until one of the outcome panels is visible.
func (c *Controller) Await(ctx context.Context) (Snapshot, error) {
	return c.awaitUntil(ctx, func(s Snapshot) bool {
		return s.State != Idle
	})
}

// AwaitResolved blocks until a panel produced by a search for id is
// visible. Panels left by callbacks of earlier searches are skipped.
func (c *Controller) AwaitResolved(ctx context.Context, id string) (Snapshot, error) {
	id = Normalize(id)
	return c.awaitUntil(ctx, func(s Snapshot) bool {
		return s.State != Idle && s.Resolved == id
	})
}

func (c *Controller) awaitUntil(ctx context.Context, done func(Snapshot) bool) (Snapshot, error) {
	for {
		c.mu.Lock()
		snap := c.snapshotLocked()
		changed := c.changed
		c.mu.Unlock()

		if done(snap) {
			return snap, nil
		}

		select {
		case <-ctx.Done():
			return snap, ctx.Err()
		case <-changed:
		}
	}
}
