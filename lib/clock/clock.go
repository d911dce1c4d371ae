// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the wall-clock reads a frame loop performs. Production
// code injects Real(); tests inject Fake() with deterministic time
// control.
type Clock interface {
	// Now returns the current time. Real clocks include a monotonic
	// reading, so differences between two Now values are immune to
	// wall-clock adjustments.
	Now() time.Time

	// Sleep pauses the frame loop for at least duration d. A fake
	// clock advances itself by d instead of blocking.
	Sleep(d time.Duration)
}
