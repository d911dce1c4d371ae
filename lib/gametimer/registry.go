// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametimer

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// StartMode selects whether [Registry.Add] starts the timer.
type StartMode int

const (
	// ManualStart registers the timer as-is; the owner starts it later.
	ManualStart StartMode = iota
	// StartImmediately calls Start on the timer before Add returns.
	StartImmediately
)

// Handle identifies a timer owned by a [Registry]. The zero Handle
// never refers to a timer. Handles are comparable and remain valid
// until their timer is removed, reaped, or the registry is cleared;
// after that every lookup through them fails.
type Handle struct {
	index      uint32
	generation uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.generation == 0 }

// String formats the handle as "index:generation".
func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.index, h.generation)
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the String
// form.
func (h *Handle) UnmarshalText(text []byte) error {
	indexText, generationText, found := strings.Cut(string(text), ":")
	if !found {
		return fmt.Errorf("invalid timer handle %q: missing ':'", text)
	}
	index, err := strconv.ParseUint(indexText, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid timer handle %q: %w", text, err)
	}
	generation, err := strconv.ParseUint(generationText, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid timer handle %q: %w", text, err)
	}
	h.index = uint32(index)
	h.generation = uint32(generation)
	return nil
}

// slot is one arena cell. A slot is live while timer is non-nil.
type slot struct {
	timer      *Timer
	generation uint32

	// sweep is the registry's sweep counter when the timer was added.
	// A sweep only visits slots added before it began.
	sweep uint64
}

// Registry owns a set of timers and reaps one-shot timers once they
// fire. Create with [NewRegistry].
type Registry struct {
	clock  Clock
	logger *slog.Logger

	slots []slot
	free  []uint32
	live  int

	sweeps uint64
}

// NewRegistry creates an empty registry whose factory timers count
// against clock. A nil logger discards registry diagnostics.
func NewRegistry(clock Clock, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		clock:  clock,
		logger: logger,
	}
}

// Add takes ownership of timer and returns its handle. With
// StartImmediately the timer is started before Add returns. A nil
// timer is ignored and yields the zero Handle.
//
// Timers added from a fire callback during Sweep are first checked by
// the following Sweep.
func (r *Registry) Add(timer *Timer, mode StartMode) Handle {
	if timer == nil {
		return Handle{}
	}

	var index uint32
	if count := len(r.free); count > 0 {
		index = r.free[count-1]
		r.free = r.free[:count-1]
	} else {
		index = uint32(len(r.slots))
		r.slots = append(r.slots, slot{generation: 1})
	}

	cell := &r.slots[index]
	cell.timer = timer
	cell.sweep = r.sweeps
	r.live++

	if mode == StartImmediately {
		timer.Start()
	}

	handle := Handle{index: index, generation: cell.generation}
	r.logger.Debug("timer added",
		"handle", handle,
		"length", timer.Length(),
		"repeating", timer.Repeating(),
		"started", mode == StartImmediately,
	)
	return handle
}

// NewTimer constructs a timer against the registry's clock and adds it.
func (r *Registry) NewTimer(length time.Duration, repeating bool, mode StartMode) (Handle, *Timer) {
	timer := New(r.clock, length, repeating)
	return r.Add(timer, mode), timer
}

// Get returns the timer h refers to. The boolean is false for the zero
// handle and for handles whose timer has been removed.
func (r *Registry) Get(h Handle) (*Timer, bool) {
	if !r.valid(h) {
		return nil, false
	}
	return r.slots[h.index].timer, true
}

// Contains reports whether h still refers to a timer in the registry.
func (r *Registry) Contains(h Handle) bool {
	return r.valid(h)
}

// Len returns the number of timers the registry owns.
func (r *Registry) Len() int {
	return r.live
}

// Remove drops the timer h refers to. Unknown and stale handles are
// ignored.
func (r *Registry) Remove(h Handle) {
	if !r.valid(h) {
		return
	}
	r.release(h.index)
	r.logger.Debug("timer removed", "handle", h)
}

// Clear drops every timer. All outstanding handles become stale.
func (r *Registry) Clear() {
	removed := r.live
	for index := range r.slots {
		if r.slots[index].timer != nil {
			r.release(uint32(index))
		}
	}
	r.logger.Debug("timers cleared", "removed", removed)
}

// Sweep calls Elapsed once on every timer present when the sweep
// begins, then drops each one-shot timer that fired. Returns the number
// of timers that fired.
//
// Fire callbacks may add and remove timers. A timer removed by a
// callback before its turn is not visited; a timer added by a callback
// waits for the next Sweep.
func (r *Registry) Sweep() int {
	r.sweeps++
	current := r.sweeps
	count := len(r.slots)
	fired := 0

	for index := 0; index < count; index++ {
		cell := r.slots[index]
		if cell.timer == nil || cell.sweep >= current {
			continue
		}
		if !cell.timer.Elapsed() {
			continue
		}
		fired++
		if cell.timer.Repeating() {
			continue
		}

		// The callback may already have removed this timer, or removed
		// it and handed the slot to a new one.
		after := r.slots[index]
		if after.timer != cell.timer || after.generation != cell.generation {
			continue
		}
		handle := Handle{index: uint32(index), generation: cell.generation}
		r.release(uint32(index))
		r.logger.Debug("timer reaped",
			"handle", handle,
			"elapsed_count", cell.timer.ElapsedCount(),
		)
	}
	return fired
}

// TimerStatus is a point-in-time view of one registered timer.
type TimerStatus struct {
	Handle       Handle
	Length       time.Duration
	Repeating    bool
	Active       bool
	ElapsedCount uint64
	Remaining    time.Duration
}

// Snapshot returns the status of every owned timer in slot order.
func (r *Registry) Snapshot() []TimerStatus {
	statuses := make([]TimerStatus, 0, r.live)
	for index, cell := range r.slots {
		if cell.timer == nil {
			continue
		}
		statuses = append(statuses, TimerStatus{
			Handle:       Handle{index: uint32(index), generation: cell.generation},
			Length:       cell.timer.Length(),
			Repeating:    cell.timer.Repeating(),
			Active:       cell.timer.Active(),
			ElapsedCount: cell.timer.ElapsedCount(),
			Remaining:    cell.timer.Remaining(),
		})
	}
	return statuses
}

func (r *Registry) valid(h Handle) bool {
	if h.generation == 0 || int(h.index) >= len(r.slots) {
		return false
	}
	cell := r.slots[h.index]
	return cell.timer != nil && cell.generation == h.generation
}

// release empties a live slot, retires its generation, and returns it
// to the free list.
func (r *Registry) release(index uint32) {
	cell := &r.slots[index]
	cell.timer = nil
	cell.generation++
	if cell.generation == 0 {
		cell.generation = 1
	}
	r.free = append(r.free, index)
	r.live--
}
