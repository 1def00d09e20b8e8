// Package poll keeps a screen's data fresh: it fetches once on mount, then
// on a fixed cadence until unmount.
//
// Each fetch gets a sequence number. A result is applied only when it is
// newer than the last applied one, so a slow response can never overwrite a
// fresher snapshot. Results arriving after Unmount are dropped.
package poll

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/levantva/crewcenter/internal/logging"
)

// State is the controller's display state.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

var ErrAlreadyMounted = errors.New("controller already mounted")

// FetchFunc produces one snapshot.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Snapshot is what listeners receive. Err is set when the fetch of this
// cycle failed; Data then still holds the previous value.
type Snapshot[T any] struct {
	Data      T
	Seq       uint64
	State     State
	UpdatedAt time.Time
	Err       error
}

// Controller polls one screen's data.
type Controller[T any] struct {
	name      string
	interval  time.Duration
	fetch     FetchFunc[T]
	scheduler Scheduler
	now       func() time.Time
	log       logging.Logger

	mu        sync.Mutex
	mounted   bool
	ctx       context.Context
	stop      func()
	issued    uint64
	snap      Snapshot[T]
	listeners []func(Snapshot[T])

	// applyMu serializes applying a result and notifying listeners, so
	// that Unmount can wait out an in-progress notification.
	applyMu sync.Mutex
	applied uint64
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	scheduler Scheduler
	now       func() time.Time
}

// WithScheduler replaces the cron scheduler.
func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithClock replaces time.Now for UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func New[T any](name string, interval time.Duration, fetch FetchFunc[T], log logging.Logger, opts ...Option) *Controller[T] {
	o := options{scheduler: CronScheduler{}, now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	return &Controller[T]{
		name:      name,
		interval:  interval,
		fetch:     fetch,
		scheduler: o.scheduler,
		now:       o.now,
		log:       log.With("module", "poll", "screen", name),
		snap:      Snapshot[T]{State: StateLoading},
	}
}

// OnUpdate registers fn for every applied snapshot. Listeners run on the
// polling goroutine and must not call Unmount.
func (c *Controller[T]) OnUpdate(fn func(Snapshot[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Mount enters loading, fetches once, enters ready and starts the cadence.
// ctx is used for every fetch until Unmount.
func (c *Controller[T]) Mount(ctx context.Context) error {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return ErrAlreadyMounted
	}
	c.mounted = true
	c.ctx = ctx
	c.snap.State = StateLoading
	c.mu.Unlock()

	c.log.Debug(ctx, "mounted", "interval", c.interval)
	c.cycle(ctx)

	stop, err := c.scheduler.Every(c.interval, func() { c.cycle(c.context()) })
	if err != nil {
		c.Unmount()
		return err
	}

	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		stop()
		return nil
	}
	c.stop = stop
	c.mu.Unlock()
	return nil
}

// Unmount stops the cadence. Fetches still in flight are not cancelled, but
// their results are dropped and no listener runs after Unmount returns.
// Calling it again is a no-op.
func (c *Controller[T]) Unmount() {
	c.applyMu.Lock()
	c.mu.Lock()
	wasMounted := c.mounted
	c.mounted = false
	stop := c.stop
	c.stop = nil
	ctx := c.ctx
	c.mu.Unlock()
	c.applyMu.Unlock()

	if stop != nil {
		stop()
	}
	if wasMounted {
		c.log.Debug(ctx, "unmounted")
	}
}

// Refresh runs one cycle now. It does nothing when not mounted.
func (c *Controller[T]) Refresh(ctx context.Context) {
	c.cycle(ctx)
}

// Snapshot returns the latest applied snapshot.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Mounted reports whether the controller is polling.
func (c *Controller[T]) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

func (c *Controller[T]) context() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

func (c *Controller[T]) cycle(ctx context.Context) {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	data, err := c.fetch(ctx)

	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		c.log.Debug(ctx, "dropping result after unmount", "seq", seq)
		return
	}
	if seq <= c.applied {
		c.mu.Unlock()
		c.log.Debug(ctx, "dropping stale result", "seq", seq, "applied", c.applied)
		return
	}
	c.applied = seq

	c.snap.Seq = seq
	c.snap.State = StateReady
	c.snap.Err = err
	if err == nil {
		c.snap.Data = data
		c.snap.UpdatedAt = c.now()
	} else {
		c.log.Error(ctx, "poll cycle failed", "seq", seq, "error", err)
	}
	snap := c.snap
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
