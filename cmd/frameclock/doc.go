// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// frameclock drives a scenario of deferred timers off a frame clock.
//
// By default it opens a terminal dashboard that advances the clock and
// sweeps the timer registry once per frame, showing each timer's
// countdown. With --headless it runs the same loop without a display,
// logging every fire to stderr. --simulate runs headless against a fake
// time source stepped one frame interval per frame, so a run completes
// instantly and produces the same output every time.
//
// The scenario comes from --config, the FRAMECLOCK_CONFIG environment
// variable, or a built-in demo. --report writes a CBOR summary of the
// run when it ends.
package main
