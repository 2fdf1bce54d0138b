// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"fmt"
)

// TB is the subset of testing.TB the helpers need.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireErrorAs returns err unwrapped to T, or fails the test when err
// is nil or nothing in its chain is a T.
//
//	validation := testutil.RequireErrorAs[*console.ValidationError](t, err, "running greet")
func RequireErrorAs[T error](t TB, err error, msgAndArgs ...any) T {
	t.Helper()
	var target T
	if err == nil {
		t.Fatalf("expected %T, got nil error: %s", target, formatMessage(msgAndArgs))
		return target
	}
	if !errors.As(err, &target) {
		t.Fatalf("expected %T, got %T (%v): %s", target, err, err, formatMessage(msgAndArgs))
	}
	return target
}

// RequireNoError fails the test when err is non-nil.
//
//	testutil.RequireNoError(t, app.AddCommand(command), "registering %s", command.Name)
func RequireNoError(t TB, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error %v: %s", err, formatMessage(msgAndArgs))
	}
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
