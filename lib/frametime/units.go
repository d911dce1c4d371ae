// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package frametime

import "time"

// In converts d to a count of unit, keeping the fractional part:
// In(1500*time.Millisecond, time.Second) is 1.5. A non-positive unit
// returns 0.
func In(d, unit time.Duration) float64 {
	if unit <= 0 {
		return 0
	}
	whole := d / unit
	remainder := d % unit
	return float64(whole) + float64(remainder)/float64(unit)
}

// Seconds converts d to floating-point seconds, the unit frame
// integration code most often wants.
func Seconds(d time.Duration) float64 {
	return In(d, time.Second)
}
