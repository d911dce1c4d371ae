// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"log/slog"
)

// CaptureLogs returns a logger emitting text records at level and
// above, and the buffer collecting them.
//
//	logger, output := testutil.CaptureLogs(slog.LevelDebug)
//	...
//	if !strings.Contains(output.String(), "timer reaped") { ... }
func CaptureLogs(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buffer, &slog.HandlerOptions{Level: level}))
	return logger, &buffer
}
