// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides the binary entrypoint exit path for
// frameclock binaries: report an error from run() to stderr, where the
// structured logger may not exist yet, and exit with the right code.
package process
