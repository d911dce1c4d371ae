// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package frametime

import (
	"sync"
	"time"

	"github.com/bureau-foundation/frameclock/lib/clock"
)

// Clock is a monotonic frame clock. Create with [New]; the zero value
// is not usable.
type Clock struct {
	source clock.Clock

	start time.Time
	last  time.Time
	delta time.Duration
}

// New creates a Clock that samples source. The start time and the
// first sample are both taken now, so Delta and TotalTime report zero
// until the first Advance.
func New(source clock.Clock) *Clock {
	now := source.Now()
	return &Clock{
		source: source,
		start:  now,
		last:   now,
	}
}

var defaultClock = sync.OnceValue(func() *Clock {
	return New(clock.Real())
})

// Default returns a process-wide Clock backed by the real time source,
// created on first use. It is never torn down. Code that consumes a
// clock should still take one as a parameter rather than calling
// Default itself.
func Default() *Clock {
	return defaultClock()
}

// Advance samples the time source and records the delta since the
// previous sample. Call it exactly once per frame, before anything
// that checks timers.
//
// A source reading earlier than the previous sample is treated as no
// time passing, so Delta is never negative and TotalTime never
// decreases.
func (c *Clock) Advance() {
	now := c.source.Now()
	if now.Before(c.last) {
		now = c.last
	}
	c.delta = now.Sub(c.last)
	c.last = now
}

// Delta returns the time between the two most recent Advance calls,
// or zero before the first Advance.
func (c *Clock) Delta() time.Duration {
	return c.delta
}

// TotalTime returns the time from creation to the most recent Advance.
// Calls between two Advances return the same value.
func (c *Clock) TotalTime() time.Duration {
	return c.last.Sub(c.start)
}

// ElapsedTime returns the time from creation to now, sampling the
// source on every call.
func (c *Clock) ElapsedTime() time.Duration {
	elapsed := c.source.Now().Sub(c.start)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// HasElapsed reports whether at least duration has passed between
// reference and the last sample. Both reference and the comparison are
// in TotalTime terms.
func (c *Clock) HasElapsed(reference, duration time.Duration) bool {
	return c.TotalTime()-reference >= duration
}

// DeltaIn returns Delta expressed in unit.
func (c *Clock) DeltaIn(unit time.Duration) float64 {
	return In(c.Delta(), unit)
}

// TotalTimeIn returns TotalTime expressed in unit.
func (c *Clock) TotalTimeIn(unit time.Duration) float64 {
	return In(c.TotalTime(), unit)
}

// ElapsedTimeIn returns ElapsedTime expressed in unit.
func (c *Clock) ElapsedTimeIn(unit time.Duration) float64 {
	return In(c.ElapsedTime(), unit)
}
