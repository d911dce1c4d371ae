// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for frame-driven
// code.
//
// Production code accepts a Clock instead of calling time.Now or
// time.Sleep directly. In production, Real() provides the standard
// library behavior. In tests and simulations, Fake() provides a source
// that stands still until Advance (or Sleep) moves it forward.
//
// # Wiring Pattern
//
// Hand the source to whatever samples time once per frame:
//
//	frames := frametime.New(clock.Real())
//
// In tests:
//
//	source := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	frames := frametime.New(source)
//	source.Advance(500 * time.Millisecond)
//	frames.Advance() // Delta() is now exactly 500ms
//
// Unlike a scheduler clock, a FakeClock has no pending waiters: nothing
// fires when it advances. Firing is the business of whoever polls the
// frame clock afterwards.
package clock
