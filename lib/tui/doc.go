// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui is the interactive owner of a frame-clock scenario. Built
// on bubbletea (Elm architecture): every tick message is one frame, and
// handling it advances the clock and sweeps the timer registry before
// the view is rendered.
//
// The dashboard lists every configured timer with a countdown bar, its
// state, and its fire count. Timers that just fired glow briefly; the
// glow decays in frame-clock time, so it freezes with the loop.
package tui
