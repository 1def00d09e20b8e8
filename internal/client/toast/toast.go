// Package toast is the notification channel: an ordered queue of short
// messages that expire on their own unless their duration is zero.
package toast

import (
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration applies when Add is given a negative duration.
const DefaultDuration = 5000 * time.Millisecond

// Severity of a toast.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
)

// Toast is one notification. A zero Duration never expires.
type Toast struct {
	ID        string        `json:"id"`
	Severity  Severity      `json:"type"`
	Title     string        `json:"title"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"-"`
	CreatedAt time.Time     `json:"createdAt"`
}

// MarshalJSON writes the duration in milliseconds.
func (t Toast) MarshalJSON() ([]byte, error) {
	type plain Toast
	return json.Marshal(struct {
		plain
		DurationMS int64 `json:"duration"`
	}{plain(t), t.Duration.Milliseconds()})
}

// EventType says what happened to a toast.
type EventType string

const (
	Added   EventType = "toast.added"
	Removed EventType = "toast.removed"
)

// Event is delivered to subscribers.
type Event struct {
	Type  EventType
	Toast Toast
}

// Timer is the part of *time.Timer the channel uses.
type Timer interface {
	Stop() bool
}

// Clock creates expiry timers.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Channel holds the live toasts in insertion order.
type Channel struct {
	clock Clock

	mu     sync.Mutex
	toasts []Toast
	timers map[string]Timer
	subs   map[int]func(Event)
	nextID int
}

// New returns a channel on the wall clock.
func New() *Channel {
	return NewWithClock(realClock{})
}

func NewWithClock(c Clock) *Channel {
	return &Channel{
		clock:  c,
		timers: make(map[string]Timer),
		subs:   make(map[int]func(Event)),
	}
}

// Subscribe registers fn for add and remove events and returns a func that
// unregisters it. fn must not block.
func (c *Channel) Subscribe(fn func(Event)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Add appends a toast and returns its id. A negative duration means
// DefaultDuration; zero means it stays until removed.
func (c *Channel) Add(sev Severity, title, message string, d time.Duration) string {
	if d < 0 {
		d = DefaultDuration
	}
	t := Toast{
		ID:        uuid.NewString(),
		Severity:  sev,
		Title:     title,
		Message:   message,
		Duration:  d,
		CreatedAt: c.clock.Now(),
	}

	c.mu.Lock()
	c.toasts = append(c.toasts, t)
	if d > 0 {
		id := t.ID
		c.timers[id] = c.clock.AfterFunc(d, func() { c.Remove(id) })
	}
	subs := c.subscribers()
	c.mu.Unlock()

	for _, fn := range subs {
		fn(Event{Type: Added, Toast: t})
	}
	return t.ID
}

// Remove drops the toast with id. Unknown ids are ignored.
func (c *Channel) Remove(id string) {
	c.mu.Lock()
	i := slices.IndexFunc(c.toasts, func(t Toast) bool { return t.ID == id })
	if i < 0 {
		c.mu.Unlock()
		return
	}
	t := c.toasts[i]
	c.toasts = slices.Delete(c.toasts, i, i+1)
	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	subs := c.subscribers()
	c.mu.Unlock()

	for _, fn := range subs {
		fn(Event{Type: Removed, Toast: t})
	}
}

// List returns a copy of the live toasts, oldest first.
func (c *Channel) List() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.toasts)
}

// Clear removes every toast.
func (c *Channel) Clear() {
	for _, t := range c.List() {
		c.Remove(t.ID)
	}
}

func (c *Channel) Success(title, message string) string {
	return c.Add(Success, title, message, DefaultDuration)
}

func (c *Channel) Error(title, message string) string {
	return c.Add(Error, title, message, DefaultDuration)
}

func (c *Channel) Warning(title, message string) string {
	return c.Add(Warning, title, message, DefaultDuration)
}

func (c *Channel) Info(title, message string) string {
	return c.Add(Info, title, message, DefaultDuration)
}

func (c *Channel) subscribers() []func(Event) {
	out := make([]func(Event), 0, len(c.subs))
	for _, fn := range c.subs {
		out = append(out, fn)
	}
	return out
}
