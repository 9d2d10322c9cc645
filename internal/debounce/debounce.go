// Package debounce coalesces bursts of input into a single deferred call.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiet period the search box waits for before applying
const DefaultWindow = 300 * time.Millisecond

// Debouncer defers apply until no Trigger has happened for the configured
// window, then calls it once with the last triggered value.
type Debouncer[T any] struct {
	mu      sync.Mutex
	window  time.Duration
	apply   func(T)
	timer   *time.Timer
	pending T
	armed   bool
	gen     uint64 // bumped on every re-arm so superseded timers do nothing
}

// New creates a debouncer. A window <= 0 makes Trigger apply immediately.
func New[T any](window time.Duration, apply func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		window: window,
		apply:  apply,
	}
}

// Trigger records v as the latest value and (re)arms the timer
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	if d.window <= 0 {
		// A timer armed under a longer window must not land after v
		d.stopLocked()
		d.mu.Unlock()
		d.apply(v)
		return
	}

	d.stopLocked()
	d.pending = v
	d.armed = true
	gen := d.gen
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
	d.mu.Unlock()
}

// Flush applies the pending value now, if there is one
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.stopLocked()
	d.mu.Unlock()

	d.apply(v)
}

// Stop drops the pending value without applying it
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Pending reports whether a value is waiting for the window to elapse
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

// SetWindow changes the quiet period used by subsequent triggers
func (d *Debouncer[T]) SetWindow(window time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.window = window
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if !d.armed || gen != d.gen {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.stopLocked()
	d.mu.Unlock()

	d.apply(v)
}

// stopLocked cancels the timer and clears the pending value. Callers must hold d.mu.
func (d *Debouncer[T]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	var zero T
	d.pending = zero
	d.armed = false
	d.gen++
}
