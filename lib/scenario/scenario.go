// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"context"
	"log/slog"
	"time"

	"github.com/bureau-foundation/frameclock/lib/clock"
	"github.com/bureau-foundation/frameclock/lib/config"
	"github.com/bureau-foundation/frameclock/lib/frametime"
	"github.com/bureau-foundation/frameclock/lib/gametimer"
)

// Entry is one configured timer. The scenario keeps the timer itself
// so that its counters stay readable after the registry reaps it.
type Entry struct {
	Name  string
	Limit uint64

	handle gametimer.Handle
	timer  *gametimer.Timer
}

// Timer returns the entry's timer, registered or not.
func (entry *Entry) Timer() *gametimer.Timer { return entry.timer }

// Handle returns the handle from the most recent registration.
func (entry *Entry) Handle() gametimer.Handle { return entry.handle }

// Scenario owns a frame clock, a registry, and the configured timers.
type Scenario struct {
	source   clock.Clock
	frames   *frametime.Clock
	registry *gametimer.Registry
	logger   *slog.Logger
	interval time.Duration

	entries []*Entry
	byName  map[string]*Entry

	frame uint64
	fired []string
}

// New builds a scenario from cfg, sampling time from source. Timers are
// registered in configuration order.
func New(cfg *config.Config, source clock.Clock, logger *slog.Logger) *Scenario {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	frames := frametime.New(source)
	scenario := &Scenario{
		source:   source,
		frames:   frames,
		registry: gametimer.NewRegistry(frames, logger),
		logger:   logger,
		interval: cfg.FrameInterval(),
		byName:   make(map[string]*Entry, len(cfg.Timers)),
	}

	for _, timerConfig := range cfg.Timers {
		entry := &Entry{
			Name:  timerConfig.Name,
			Limit: timerConfig.Limit,
			timer: gametimer.New(frames, timerConfig.Duration, timerConfig.Repeat),
		}
		entry.timer.OnElapsed = scenario.onElapsed(entry)

		mode := gametimer.ManualStart
		if timerConfig.Start == config.StartImmediate {
			mode = gametimer.StartImmediately
		}
		entry.handle = scenario.registry.Add(entry.timer, mode)

		scenario.entries = append(scenario.entries, entry)
		scenario.byName[entry.Name] = entry
	}
	return scenario
}

// onElapsed builds the fire callback for entry. A repeating timer with
// a limit is stopped by the fire that reaches it.
func (s *Scenario) onElapsed(entry *Entry) func() {
	return func() {
		// The timer increments its count after this callback returns.
		fires := entry.timer.ElapsedCount() + 1
		s.fired = append(s.fired, entry.Name)
		s.logger.Info("timer fired",
			"timer", entry.Name,
			"fires", fires,
			"frame", s.frame,
			"total_time", s.frames.TotalTime(),
		)
		if entry.Limit > 0 && fires >= entry.Limit {
			entry.timer.Stop()
			s.logger.Info("timer reached its limit", "timer", entry.Name, "limit", entry.Limit)
		}
	}
}

// Step runs one frame: advance the clock, then sweep the registry.
// Returns the names of the timers that fired, in the order they fired.
func (s *Scenario) Step() []string {
	s.frame++
	s.fired = s.fired[:0]
	s.frames.Advance()
	s.registry.Sweep()
	fired := make([]string, len(s.fired))
	copy(fired, s.fired)
	return fired
}

// Run steps the loop, sleeping one frame interval on the source between
// frames, until maxFrames frames have run, ctx is cancelled, or (when
// maxFrames is zero) no registered timer is active any more.
func (s *Scenario) Run(ctx context.Context, maxFrames uint64) error {
	s.logger.Info("frame loop starting",
		"frame_interval", s.interval,
		"timers", len(s.entries),
		"max_frames", maxFrames,
	)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if maxFrames > 0 && s.frame >= maxFrames {
			break
		}
		if maxFrames == 0 && !s.AnyActive() {
			break
		}
		s.source.Sleep(s.interval)
		s.Step()
	}
	s.logger.Info("frame loop finished",
		"frames", s.frame,
		"total_time", s.frames.TotalTime(),
	)
	return nil
}

// AnyActive reports whether any registered timer is counting.
func (s *Scenario) AnyActive() bool {
	for _, entry := range s.entries {
		if s.registry.Contains(entry.handle) && entry.timer.Active() {
			return true
		}
	}
	return false
}

// Frame returns the number of frames stepped so far.
func (s *Scenario) Frame() uint64 { return s.frame }

// Clock returns the scenario's frame clock.
func (s *Scenario) Clock() *frametime.Clock { return s.frames }

// Registry returns the registry owning the scenario's timers.
func (s *Scenario) Registry() *gametimer.Registry { return s.registry }

// FrameInterval returns the configured time between frames.
func (s *Scenario) FrameInterval() time.Duration { return s.interval }

// Entries returns the configured timers in configuration order.
func (s *Scenario) Entries() []*Entry { return s.entries }

// Lookup returns the entry named name.
func (s *Scenario) Lookup(name string) (*Entry, bool) {
	entry, ok := s.byName[name]
	return entry, ok
}

// Registered reports whether entry's timer is still owned by the
// registry.
func (s *Scenario) Registered(entry *Entry) bool {
	return s.registry.Contains(entry.handle)
}

// Toggle stops an active timer or resumes an inactive one. A reaped
// timer is left alone; use Rearm.
func (s *Scenario) Toggle(entry *Entry) {
	timer, ok := s.registry.Get(entry.handle)
	if !ok {
		return
	}
	if timer.Active() {
		timer.Stop()
		s.logger.Debug("timer stopped", "timer", entry.Name)
		return
	}
	timer.Resume()
	s.logger.Debug("timer resumed", "timer", entry.Name)
}

// Rearm resets entry's timer to a full countdown, registering it again
// first if the registry has reaped it.
func (s *Scenario) Rearm(entry *Entry) {
	if !s.registry.Contains(entry.handle) {
		entry.handle = s.registry.Add(entry.timer, gametimer.ManualStart)
	}
	entry.timer.Reset()
	s.logger.Debug("timer rearmed", "timer", entry.Name, "handle", entry.handle)
}
