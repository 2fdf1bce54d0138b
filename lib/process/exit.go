// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// exitCoder is implemented by errors that carry their own exit code,
// such as console.ExitError.
type exitCoder interface {
	ExitCode() int
}

// ExitCode returns the process exit code for err: 0 for nil, the
// error's own code when it (or anything it wraps) has an ExitCode
// method, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// Report writes "error: err" to w unless err carries its own exit code,
// in which case the command has already reported the failure. Returns
// the exit code.
func Report(w io.Writer, err error) int {
	code := ExitCode(err)
	if err == nil {
		return code
	}
	var coder exitCoder
	if !errors.As(err, &coder) {
		fmt.Fprintf(w, "error: %v\n", err)
	}
	return code
}

// Fatal writes "error: err" to stderr and exits with code 1. Use it in
// main() for errors from before the console output exists.
func Fatal(err error) {
	os.Exit(fatal(os.Stderr, err))
}

func fatal(w io.Writer, err error) int {
	fmt.Fprintf(w, "error: %v\n", err)
	return 1
}

// Exit reports err to stderr per [Report] and exits with its code.
// A nil error exits 0.
func Exit(err error) {
	os.Exit(Report(os.Stderr, err))
}
