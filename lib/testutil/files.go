// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes contents to name inside a fresh temporary directory
// and returns the full path. The directory is removed when the test
// completes. The extension of name matters to loaders that pick a
// format from it.
//
//	path := testutil.WriteFile(t, "scenario.yaml", "frame_rate: 30\n")
func WriteFile(t testing.TB, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}
