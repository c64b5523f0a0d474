// Package debounce provides a Bubble Tea friendly debounced value.
//
// A Value tracks a source that may change rapidly (for example a search box)
// and only adopts the latest source value once it has been stable for the
// configured delay. Each Set cancels the wait scheduled by the previous Set,
// so a burst of changes produces exactly one propagation.
//
//	q, cmd := m.query.Set(input.Value())
//	m.query = q
//	return m, cmd
//
//	// later, in Update:
//	if q, changed := m.query.Update(msg); changed {
//	    m.query = q
//	    // react to q.Value()
//	}
//
// The wait runs inside a tea.Cmd, so the update loop never blocks. Stop
// releases the outstanding timer when the owning model is torn down.
package debounce

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is used when a Value is created with a non-positive delay.
const DefaultDelay = 500 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FireMsg is emitted when a scheduled wait completes. Values ignore messages
// addressed to other instances or to superseded schedules.
type FireMsg struct {
	ID  int
	Tag int
}

// Value is a debounced value. It is a plain value type, updated the same way
// as the bubbles components.
type Value[T comparable] struct {
	id      int
	tag     int
	delay   time.Duration
	current T
	pending T
	cancel  context.CancelFunc
}

// New creates a Value holding initial.
func New[T comparable](initial T, delay time.Duration) Value[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return Value[T]{
		id:      nextID(),
		delay:   delay,
		current: initial,
		pending: initial,
	}
}

// ID identifies this Value in FireMsg.
func (v Value[T]) ID() int {
	return v.id
}

// Delay returns the stability window.
func (v Value[T]) Delay() time.Duration {
	return v.delay
}

// Value returns the debounced value.
func (v Value[T]) Value() T {
	return v.current
}

// Pending returns the most recent source value, applied or not.
func (v Value[T]) Pending() T {
	return v.pending
}

// Scheduled reports whether a propagation is waiting to fire.
func (v Value[T]) Scheduled() bool {
	return v.cancel != nil
}

// Set records a new source value, cancels any pending propagation, and
// returns the command that schedules a fresh one.
func (v Value[T]) Set(val T) (Value[T], tea.Cmd) {
	if v.cancel != nil {
		v.cancel()
	}

	v.pending = val
	v.tag++

	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel

	id, tag, delay := v.id, v.tag, v.delay
	return v, func() tea.Msg {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			return FireMsg{ID: id, Tag: tag}
		case <-ctx.Done():
			return nil
		}
	}
}

// Update applies the pending value when msg is the FireMsg of the latest
// schedule. changed reports whether the debounced value actually moved.
func (v Value[T]) Update(msg tea.Msg) (Value[T], bool) {
	fire, ok := msg.(FireMsg)
	if !ok || fire.ID != v.id || fire.Tag != v.tag || v.cancel == nil {
		return v, false
	}

	v.cancel()
	v.cancel = nil

	changed := v.current != v.pending
	v.current = v.pending
	return v, changed
}

// Flush applies the pending value now and cancels its timer.
func (v Value[T]) Flush() (Value[T], bool) {
	if v.cancel == nil {
		return v, false
	}
	v.cancel()
	v.cancel = nil
	v.tag++

	changed := v.current != v.pending
	v.current = v.pending
	return v, changed
}

// Stop cancels any pending propagation. A FireMsg already in flight is
// ignored by Update afterwards.
func (v Value[T]) Stop() Value[T] {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.tag++
	return v
}
