// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"strconv"
	"testing"
)

func TestValidationError_Messages(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{&ValidationError{Reason: MissingOption, Name: "env"}, "required option '--env' not provided"},
		{&ValidationError{Reason: MissingOptionValue, Name: "env"}, "option '--env' requires a value, which is not provided"},
		{&ValidationError{Reason: MissingArgument, Name: "path", Position: 2}, "required argument '2:path' not provided"},
		{&ValidationError{Reason: InvalidValue, Name: "--repeat", Err: strconv.ErrSyntax}, "invalid value for '--repeat': invalid syntax"},
		{&ValidationError{Reason: InvalidValue, Name: "--repeat"}, "invalid value for '--repeat'"},
	}
	for _, test := range tests {
		if got := test.err.Error(); got != test.want {
			t.Errorf("Error() = %q, want %q", got, test.want)
		}
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	err := error(&ValidationError{Reason: InvalidValue, Name: "x", Err: strconv.ErrRange})
	if !errors.Is(err, strconv.ErrRange) {
		t.Error("errors.Is did not reach the detail error")
	}
}

func TestConfigurationError(t *testing.T) {
	err := configurationErrorf("option --force", "declared %d times", 2)
	if got, want := err.Error(), "option --force: declared 2 times"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Unwrap(err) == nil {
		t.Error("Unwrap() = nil")
	}

	bare := &ConfigurationError{Err: errors.New("broken")}
	if bare.Error() != "broken" {
		t.Errorf("Error() without subject = %q", bare.Error())
	}
}

func TestNoCommandError_Messages(t *testing.T) {
	tests := []struct {
		err  *NoCommandError
		want string
	}{
		{&NoCommandError{}, "no valid commands found"},
		{&NoCommandError{Available: []string{"a", "b"}}, "no valid commands found; available commands: a, b"},
		{&NoCommandError{Requested: "x"}, `unknown command "x"`},
		{&NoCommandError{Requested: "biuld", Suggestion: "build", Available: []string{"build"}}, `unknown command "biuld" (did you mean "build"?); available commands: build`},
	}
	for _, test := range tests {
		if got := test.err.Error(); got != test.want {
			t.Errorf("Error() = %q, want %q", got, test.want)
		}
	}
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}
	if err.ExitCode() != 3 || err.Error() != "exit code 3" {
		t.Errorf("ExitError = %d / %q", err.ExitCode(), err.Error())
	}
}
