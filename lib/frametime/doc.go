// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package frametime provides the per-frame clock a game-style loop
// samples once per frame.
//
// A [Clock] records the time it was created, the time of the most
// recent [Clock.Advance], and the delta between the last two samples.
// Reads come in two flavors:
//
//   - [Clock.TotalTime] and [Clock.Delta] report time as of the last
//     Advance. Every consumer polled during the same frame sees the
//     same values.
//   - [Clock.ElapsedTime] re-samples the time source and reports "right
//     now", independent of the frame cadence.
//
// [Clock.HasElapsed] compares against TotalTime, so countdowns built on
// it observe elapsed time only after the owner calls Advance. If the
// owner never advances, nothing built on this clock ever expires.
//
// The clock does no locking: the owning loop calls Advance and reads
// from a single goroutine.
package frametime
