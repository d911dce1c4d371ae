// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametimer

import "time"

// Clock is the frame clock a Timer counts against. *frametime.Clock
// satisfies it; tests may substitute anything with the same contract.
type Clock interface {
	// TotalTime returns the time as of the most recent frame sample.
	TotalTime() time.Duration

	// HasElapsed reports whether TotalTime() - reference >= duration.
	HasElapsed(reference, duration time.Duration) bool
}

// Handler receives fire notifications. It is the interface form of
// [Timer.OnElapsed] for owners that already have a type to hang the
// behavior on.
type Handler interface {
	TimerElapsed(timer *Timer)
}

// Timer is a countdown measured in frame-clock time. Create with [New].
type Timer struct {
	// OnElapsed is called synchronously from Elapsed each time the
	// timer fires. Nil means firing has no side effect beyond the
	// timer's own state.
	OnElapsed func()

	clock   Clock
	handler Handler

	startTime time.Duration
	length    time.Duration

	active    bool
	repeating bool

	// stopped is set by Stop on an active timer and cleared by any
	// call that reactivates it. stoppedAt is the total time Stop saw.
	stopped   bool
	stoppedAt time.Duration

	elapsedCount uint64
}

// New creates an inactive timer that fires length after it is started.
// Its start time is pinned to the clock's current total time.
func New(clock Clock, length time.Duration, repeating bool) *Timer {
	return &Timer{
		clock:     clock,
		startTime: clock.TotalTime(),
		length:    length,
		repeating: repeating,
	}
}

// SetHandler installs handler to be notified on every fire, after
// OnElapsed. Pass nil to remove it.
func (t *Timer) SetHandler(handler Handler) {
	t.handler = handler
}

// Start activates an inactive timer with a fresh countdown. It has no
// effect on a timer that is already active; use Reset to restart one.
func (t *Timer) Start() {
	if t.active {
		return
	}
	t.startTime = t.clock.TotalTime()
	t.active = true
	t.stopped = false
}

// Resume activates an inactive timer without restarting its countdown.
// Progress made before Stop is kept: the time spent stopped is not
// counted toward the deadline.
func (t *Timer) Resume() {
	if t.active {
		return
	}
	if t.stopped {
		t.startTime += t.clock.TotalTime() - t.stoppedAt
		t.stopped = false
	}
	t.active = true
}

// Stop deactivates the timer without firing it, freezing its progress.
func (t *Timer) Stop() {
	if !t.active {
		return
	}
	t.active = false
	t.stopped = true
	t.stoppedAt = t.clock.TotalTime()
}

// Reset restarts the countdown from the current total time and
// activates the timer, whatever state it was in.
func (t *Timer) Reset() {
	t.startTime = t.clock.TotalTime()
	t.active = true
	t.stopped = false
}

// Elapsed checks the timer against the clock and fires it if its
// length has passed since the start time. Firing calls OnElapsed and
// the handler, increments the fire count, then either restarts the
// countdown (repeating) or deactivates the timer (one-shot).
//
// Returns true exactly when the timer fired during this call. An
// inactive timer returns false without consulting the clock.
func (t *Timer) Elapsed() bool {
	if !t.active {
		return false
	}
	if !t.clock.HasElapsed(t.startTime, t.length) {
		return false
	}

	if t.OnElapsed != nil {
		t.OnElapsed()
	}
	if t.handler != nil {
		t.handler.TimerElapsed(t)
	}
	t.elapsedCount++

	if t.repeating {
		t.startTime = t.clock.TotalTime()
	} else {
		t.active = false
	}
	return true
}

// Active reports whether the timer is counting.
func (t *Timer) Active() bool { return t.active }

// Repeating reports whether the timer restarts itself after firing.
func (t *Timer) Repeating() bool { return t.repeating }

// ElapsedCount returns how many times the timer has fired.
func (t *Timer) ElapsedCount() uint64 { return t.elapsedCount }

// HasElapsedOnce reports whether the timer has fired at least once.
func (t *Timer) HasElapsedOnce() bool { return t.elapsedCount > 0 }

// StartTime returns the total time the current countdown is measured
// from. After Stop and Resume it is shifted forward by the time spent
// stopped.
func (t *Timer) StartTime() time.Duration { return t.startTime }

// Length returns the configured countdown length.
func (t *Timer) Length() time.Duration { return t.length }

// Progress returns how much of the countdown has been used, as of the
// last frame sample, clamped to [0, Length]. A stopped timer reports
// the progress it had when stopped; a one-shot timer that has fired
// reports its full length.
func (t *Timer) Progress() time.Duration {
	var progress time.Duration
	switch {
	case t.active:
		progress = t.clock.TotalTime() - t.startTime
	case t.stopped:
		progress = t.stoppedAt - t.startTime
	case t.elapsedCount > 0 && !t.repeating:
		progress = t.length
	}
	return min(max(progress, 0), t.length)
}

// Remaining returns the countdown time left, as of the last frame
// sample.
func (t *Timer) Remaining() time.Duration {
	return t.length - t.Progress()
}

// Fraction returns Progress as a fraction of Length in [0, 1]. A
// zero-length timer reports 1.
func (t *Timer) Fraction() float64 {
	if t.length <= 0 {
		return 1
	}
	return float64(t.Progress()) / float64(t.length)
}
