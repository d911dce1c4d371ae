// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametimer

import (
	"fmt"
	"time"
)

// TimeUnit names the magnitude a [ScaledDuration] is expressed in.
type TimeUnit int

const (
	Nanoseconds TimeUnit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
)

var timeUnitNames = [...]string{
	Nanoseconds:  "Nanoseconds",
	Microseconds: "Microseconds",
	Milliseconds: "Milliseconds",
	Seconds:      "Seconds",
	Minutes:      "Minutes",
	Hours:        "Hours",
	Days:         "Days",
}

// String returns the unit's name, e.g. "Seconds".
func (unit TimeUnit) String() string {
	if unit < 0 || int(unit) >= len(timeUnitNames) {
		return fmt.Sprintf("TimeUnit(%d)", int(unit))
	}
	return timeUnitNames[unit]
}

// ScaledDuration is a duration expressed in the largest unit that
// keeps the value readable.
type ScaledDuration struct {
	Value float64
	Unit  TimeUnit
}

// String formats the duration with two decimals, e.g. "2.50 Seconds".
func (scaled ScaledDuration) String() string {
	return fmt.Sprintf("%.2f %s", scaled.Value, scaled.Unit)
}

// Scale converts d into a ScaledDuration. Each step up the ladder is
// taken only once the value reaches the next unit: below 1000ns stays
// in nanoseconds, below 1000us in microseconds, below 1000ms in
// milliseconds, below 60s in seconds, below 60min in minutes, below
// 24h in hours, and everything longer is days.
func Scale(d time.Duration) ScaledDuration {
	nanoseconds := d.Nanoseconds()
	if nanoseconds < 1_000 {
		return ScaledDuration{Value: float64(nanoseconds), Unit: Nanoseconds}
	}

	microseconds := float64(nanoseconds) / 1_000
	if microseconds < 1_000 {
		return ScaledDuration{Value: microseconds, Unit: Microseconds}
	}

	milliseconds := float64(nanoseconds) / 1_000_000
	if milliseconds < 1_000 {
		return ScaledDuration{Value: milliseconds, Unit: Milliseconds}
	}

	seconds := milliseconds / 1_000
	if seconds < 60 {
		return ScaledDuration{Value: seconds, Unit: Seconds}
	}

	minutes := seconds / 60
	if minutes < 60 {
		return ScaledDuration{Value: minutes, Unit: Minutes}
	}

	hours := minutes / 60
	if hours < 24 {
		return ScaledDuration{Value: hours, Unit: Hours}
	}

	return ScaledDuration{Value: hours / 24, Unit: Days}
}

// Duration returns the timer's length scaled for display. It has no
// effect on timing.
func (t *Timer) Duration() ScaledDuration {
	return Scale(t.length)
}
