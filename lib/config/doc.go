// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads frame-loop scenario files for frameclock
// binaries.
//
// A scenario is loaded from a single file named by either the
// FRAMECLOCK_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no discovery and no search path.
//
// Files are YAML. Files ending in .json or .jsonc may carry comments
// and trailing commas; they are stripped before parsing (YAML being a
// superset of JSON, the same decoder handles both). Durations use Go
// syntax: "500ms", "2s", "1m30s".
//
// Key exports:
//
//   - [Config] -- frame rate, log level, and the timers to register
//   - [Default] -- a small demo scenario at 60 frames per second
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other frameclock packages.
package config
