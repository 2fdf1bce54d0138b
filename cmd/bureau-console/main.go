// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"io"
	"os"

	"github.com/bureau-foundation/console/lib/config"
	"github.com/bureau-foundation/console/lib/console"
	"github.com/bureau-foundation/console/lib/process"
)

const appName = "bureau-console"

func main() {
	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		process.Fatal(err)
	}
	process.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr, cfg))
}

// run builds the application around the given streams and runs the
// invocation in argv. Errors the user should see have already been
// written to stderr when the returned error carries an exit code.
func run(argv []string, stdin io.Reader, stdout, stderr io.Writer, cfg *config.Config) error {
	output := console.NewOutput(stdout, stderr)
	colorMode, err := console.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}
	output.SetColor(colorMode)

	app, err := newApp(output, console.NewInput(stdin, output), console.NewParameter(argv))
	if err != nil {
		return err
	}
	app.SetLogger(console.NewLogger(stderr, cfg.SlogLevel(), console.LogFormat(cfg.LogFormat)).With(
		"app", appName,
	))

	if _, err := app.Run(); err != nil {
		return reportError(output, err)
	}
	return nil
}

// newApp registers every command. greet is the default.
func newApp(output *console.Output, input *console.Input, parameter *console.Parameter) (*console.App, error) {
	app := console.NewApp(output, input, parameter)
	app.SetName(appName)

	greet, err := newGreetCommand()
	if err != nil {
		return nil, err
	}
	if err := app.AddCommands(
		greet,
		newConfirmCommand(),
		newRelayCommand(),
		newVersionCommand(),
		console.NewHelpCommand(),
		console.NewListCommand(),
	); err != nil {
		return nil, err
	}
	app.SetDefaultCommand(greet)
	return app, nil
}

// reportError writes err as an error block and converts it into an
// ExitError so main does not print it a second time. Errors that
// already carry an exit code were reported by their command.
func reportError(output *console.Output, err error) error {
	var exitError *console.ExitError
	if errors.As(err, &exitError) {
		return err
	}

	lines := []string{err.Error()}
	var validation *console.ValidationError
	var noCommand *console.NoCommandError
	switch {
	case errors.As(err, &validation):
		lines = append(lines, "Run '"+appName+" help <command>' for usage.")
	case errors.As(err, &noCommand):
		lines = append(lines, "Run '"+appName+" help' for the list of commands.")
	}
	output.WriteErrorBlock(lines...)
	return &console.ExitError{Code: 1}
}
