// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package gametimer provides one-shot and repeating countdown timers
// driven by a frame clock, and a [Registry] that owns a set of them and
// reaps the expired ones each frame.
//
// A [Timer] never fires on its own. It fires when someone calls
// [Timer.Elapsed] after the frame clock has advanced past its deadline.
// The usual owner loop is:
//
//	frames.Advance()
//	registry.Sweep()
//
// Timer states:
//
//	Inactive --Start/Resume/Reset--> Active
//	Active   --Stop-->                Inactive (progress frozen)
//	Active   --fire, one-shot-->      Inactive
//	Active   --fire, repeating-->     Active (countdown restarted)
//	any      --Reset-->               Active (zero progress)
//
// The registry hands out generation-checked [Handle] values instead of
// pointers into its storage. Removing a timer bumps its slot's
// generation, so a stale handle can never reach whichever timer later
// reuses the slot.
//
// Nothing in this package locks. Timers and registries belong to the
// goroutine that runs the frame loop.
package gametimer
