// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package console is a small framework for command-line applications
// that dispatch on a command name.
//
// [Parameter] turns a raw argument vector into a script name, an
// optional command name, a map of "--name" / "--name=value" options and
// an ordered list of positional arguments. A [Command] declares the
// options and arguments it accepts as [Option] and [Argument]
// descriptors, and wraps a [Handler]. An [App] owns a registry of
// commands, resolves which one to run (explicit command name or the
// configured default), registers the command's descriptors on the
// parser, validates them, and runs the handler:
//
//	parameter := console.NewParameter(os.Args)
//	output := console.NewOutput(os.Stdout, os.Stderr)
//	app := console.NewApp(output, console.NewInput(os.Stdin, output), parameter)
//
//	greet := &console.Command{Name: "greet", Description: "Say hello."}
//	greet.AddArgument("name", console.Optional, "world")
//	greet.Handler = func(app *console.App, output *console.Output, input *console.Input, parameter *console.Parameter) (any, error) {
//	    output.Writeln("Hello, " + parameter.Argument("name").String())
//	    return nil, nil
//	}
//	app.AddCommand(greet)
//	app.SetDefaultCommand(greet)
//	_, err := app.Run()
//
// Options are long-form only. There are no short flags, no "--"
// terminator and no repeated-option accumulation: the last occurrence of
// a name wins.
//
// Errors are typed: [ConfigurationError] for invalid descriptors or
// registrations, [ValidationError] for invocations that do not satisfy a
// command's descriptors, [NoCommandError] when no command can be
// resolved. Handler errors pass through [App.Run] unmodified.
//
// Handlers may call other commands' [Command.Run] synchronously. There is
// no cycle detection: a handler that (transitively) runs itself recurses
// until the stack is exhausted.
//
// Nothing in this package is safe for concurrent use. An App, its
// Parameter and its commands belong to one invocation.
package console
