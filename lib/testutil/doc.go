// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for frameclock packages.
//
// [WriteFile] places a fixture (typically a scenario file) in a
// per-test temporary directory and returns its path. [CaptureLogs]
// returns a logger whose text output is collected in a buffer, for
// tests that assert on what was logged.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no frameclock-internal dependencies.
package testutil
