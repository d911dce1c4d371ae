// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "time"

// HeatDecayDuration is how long a timer row glows after it fires.
// Heat starts at 1.0 and decays linearly to 0.0 over this duration of
// frame-clock time.
const HeatDecayDuration = 1500 * time.Millisecond

// HeatTracker maps timer names to the frame-clock total time of their
// last fire.
type HeatTracker struct {
	ignitions map[string]time.Duration
}

// NewHeatTracker creates an empty heat tracker.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{ignitions: make(map[string]time.Duration)}
}

// Ignite records a fire at total time now. Restarts the decay if the
// timer was already hot.
func (tracker *HeatTracker) Ignite(name string, now time.Duration) {
	tracker.ignitions[name] = now
}

// Heat returns the current intensity for a timer: 1.0 at ignition,
// linearly decaying to 0.0 over [HeatDecayDuration].
func (tracker *HeatTracker) Heat(name string, now time.Duration) float64 {
	ignition, exists := tracker.ignitions[name]
	if !exists {
		return 0.0
	}
	elapsed := now - ignition
	if elapsed >= HeatDecayDuration {
		return 0.0
	}
	if elapsed < 0 {
		return 1.0
	}
	return 1.0 - float64(elapsed)/float64(HeatDecayDuration)
}

// HasHot reports whether any timer still glows. Fully decayed entries
// are dropped as a side effect.
func (tracker *HeatTracker) HasHot(now time.Duration) bool {
	hot := false
	for name, ignition := range tracker.ignitions {
		if now-ignition < HeatDecayDuration {
			hot = true
			continue
		}
		delete(tracker.ignitions, name)
	}
	return hot
}
