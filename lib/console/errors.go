// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a programming error in how commands,
// options or arguments were declared or registered: an invalid value
// policy, a nil descriptor, a duplicate name. These surface at startup
// and are never the end user's fault.
type ConfigurationError struct {
	// Subject names what was being configured (e.g. "option --force",
	// "command greet").
	Subject string

	// Err is the underlying reason.
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Subject == "" {
		return e.Err.Error()
	}
	return e.Subject + ": " + e.Err.Error()
}

// Unwrap returns the underlying reason.
func (e *ConfigurationError) Unwrap() error { return e.Err }

func configurationErrorf(subject, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Subject: subject, Err: fmt.Errorf(format, args...)}
}

// ValidationReason classifies a [ValidationError].
type ValidationReason int

const (
	// MissingOption means a required option was not passed.
	MissingOption ValidationReason = iota + 1

	// MissingOptionValue means an option whose policy is
	// [OptionValueRequired] was passed without "=value".
	MissingOptionValue

	// MissingArgument means a required positional argument was not
	// passed.
	MissingArgument

	// InvalidValue means a value was passed but could not be used
	// (unparseable number, unknown enumerated choice).
	InvalidValue
)

// ValidationError reports an invocation that does not satisfy the
// resolved command's descriptors. The user fixes it by correcting the
// command line.
type ValidationError struct {
	Reason ValidationReason

	// Name is the option or argument name.
	Name string

	// Position is the 1-based position of a missing argument. Zero for
	// options.
	Position int

	// Err carries detail for InvalidValue. Nil otherwise.
	Err error
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case MissingOption:
		return fmt.Sprintf("required option '--%s' not provided", e.Name)
	case MissingOptionValue:
		return fmt.Sprintf("option '--%s' requires a value, which is not provided", e.Name)
	case MissingArgument:
		return fmt.Sprintf("required argument '%d:%s' not provided", e.Position, e.Name)
	case InvalidValue:
		if e.Err != nil {
			return fmt.Sprintf("invalid value for '%s': %v", e.Name, e.Err)
		}
		return fmt.Sprintf("invalid value for '%s'", e.Name)
	}
	return fmt.Sprintf("invalid parameter '%s'", e.Name)
}

// Unwrap returns the detail error, if any.
func (e *ValidationError) Unwrap() error { return e.Err }

// NoCommandError reports that no command could be resolved for an
// invocation: the explicit command name (if any) is not registered and
// no usable default command is configured.
type NoCommandError struct {
	// Requested is the command name from the command line, or "" when
	// none was given.
	Requested string

	// Suggestion is the closest registered command name to Requested,
	// or "" when nothing is close.
	Suggestion string

	// Available lists registered command names, sorted.
	Available []string
}

func (e *NoCommandError) Error() string {
	var builder strings.Builder
	if e.Requested != "" {
		fmt.Fprintf(&builder, "unknown command %q", e.Requested)
		if e.Suggestion != "" {
			fmt.Fprintf(&builder, " (did you mean %q?)", e.Suggestion)
		}
	} else {
		builder.WriteString("no valid commands found")
	}
	if len(e.Available) > 0 {
		fmt.Fprintf(&builder, "; available commands: %s", strings.Join(e.Available, ", "))
	}
	return builder.String()
}

// ExitError signals a non-zero exit code without printing an extra
// error message. A handler that has already reported its own failure
// returns an ExitError so the entrypoint exits with Code silently.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. Entrypoints check for this method on
// returned errors to distinguish "handled non-zero exit" from
// "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}
