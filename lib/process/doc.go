// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers for console
// binaries. These functions centralize the raw I/O and exit handling
// that happen after run() returns, when the structured logger and the
// console output may not exist:
//
//   - [ExitCode] maps an error from run() to a process exit code.
//   - [Fatal] reports an unrecoverable error to stderr and exits.
//   - [Exit] combines both for main().
package process
