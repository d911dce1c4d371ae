// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametimer

import (
	"time"

	"github.com/bureau-foundation/frameclock/lib/clock"
	"github.com/bureau-foundation/frameclock/lib/frametime"
)

var _ Clock = (*frametime.Clock)(nil)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// frameDriver pairs a fake source with the frame clock sampling it.
type frameDriver struct {
	source *clock.FakeClock
	frames *frametime.Clock
}

func newFrameDriver() *frameDriver {
	source := clock.Fake(epoch)
	return &frameDriver{source: source, frames: frametime.New(source)}
}

// step moves the source forward by d and samples it, as one frame.
func (driver *frameDriver) step(d time.Duration) {
	driver.source.Advance(d)
	driver.frames.Advance()
}

// recordingHandler counts TimerElapsed calls and remembers the last
// timer it saw.
type recordingHandler struct {
	calls int
	last  *Timer
}

func (handler *recordingHandler) TimerElapsed(timer *Timer) {
	handler.calls++
	handler.last = timer
}
