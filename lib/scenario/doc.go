// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package scenario is the owner side of the frame clock: it registers
// the timers a [config.Config] describes, steps the frame loop
// (Advance, then Sweep), and keeps per-timer bookkeeping that outlives
// the registry's reaping so a run can be reported afterwards.
//
// A Scenario is driven either by [Scenario.Run] for headless loops or
// one [Scenario.Step] at a time by an interactive front end.
package scenario
