// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"io"
	"log/slog"
	"slices"
	"sort"
)

// State is where an [App] is in its run.
type State int

const (
	// StateIdle: constructed, no run started.
	StateIdle State = iota
	// StateResolving: choosing the command and validating parameters.
	StateResolving
	// StateExecuting: the command's handler is running.
	StateExecuting
	// StateDone: the handler returned.
	StateDone
	// StateFailed: resolution or validation failed; the handler never ran.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateExecuting:
		return "executing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// App is a console application: a registry of commands plus the
// collaborators they run with.
type App struct {
	name string

	output    *Output
	input     *Input
	parameter *Parameter
	logger    *slog.Logger

	commands              map[string]*Command
	defaultCommand        string
	onlyUseDefaultCommand bool

	state State
}

// NewApp returns an App whose commands receive output, input and
// parameter. The logger discards everything until [App.SetLogger].
func NewApp(output *Output, input *Input, parameter *Parameter) *App {
	return &App{
		output:    output,
		input:     input,
		parameter: parameter,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		commands:  make(map[string]*Command),
	}
}

func (a *App) SetName(name string)           { a.name = name }
func (a *App) Name() string                  { return a.name }
func (a *App) Output() *Output               { return a.output }
func (a *App) Input() *Input                 { return a.input }
func (a *App) Parameter() *Parameter         { return a.parameter }
func (a *App) Logger() *slog.Logger          { return a.logger }
func (a *App) SetLogger(logger *slog.Logger) { a.logger = logger }
func (a *App) State() State                  { return a.state }

// AddCommand prepares command with the App's collaborators and
// registers it under its name. An empty name, a nil command or a name
// already registered is a [ConfigurationError].
func (a *App) AddCommand(command *Command) error {
	if command == nil {
		return configurationErrorf("app", "command is nil")
	}
	if command.Name == "" {
		return configurationErrorf("app", "command name must be set before registration")
	}
	if _, exists := a.commands[command.Name]; exists {
		return configurationErrorf("command "+command.Name, "registered more than once")
	}
	command.Prepare(a, a.output, a.input, a.parameter)
	a.commands[command.Name] = command
	return nil
}

// AddCommands registers each command in turn, stopping at the first
// error.
func (a *App) AddCommands(commands ...*Command) error {
	for _, command := range commands {
		if err := a.AddCommand(command); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaultCommandByName sets the command run when none is named on
// the command line. The name is looked up at run time, so it may be
// registered later.
func (a *App) SetDefaultCommandByName(name string) { a.defaultCommand = name }

// SetDefaultCommand is SetDefaultCommandByName(command.Name).
func (a *App) SetDefaultCommand(command *Command) { a.SetDefaultCommandByName(command.Name) }

// DefaultCommandName returns the configured default command name.
func (a *App) DefaultCommandName() string { return a.defaultCommand }

// SetOnlyUseDefaultCommand makes the default command the only command:
// the first positional token is then an argument, never a command name.
func (a *App) SetOnlyUseDefaultCommand(only bool) { a.onlyUseDefaultCommand = only }

// OnlyUseDefaultCommand reports the setting above.
func (a *App) OnlyUseDefaultCommand() bool { return a.onlyUseDefaultCommand }

// Command returns the registered command by name, or nil.
func (a *App) Command(name string) *Command { return a.commands[name] }

// Commands returns the registered commands sorted by name.
func (a *App) Commands() []*Command {
	commands := make([]*Command, 0, len(a.commands))
	for _, command := range a.commands {
		commands = append(commands, command)
	}
	sort.Slice(commands, func(i, j int) bool { return commands[i].Name < commands[j].Name })
	return commands
}

// CommandNames returns the registered command names, sorted.
func (a *App) CommandNames() []string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Run resolves the command for the parsed invocation, validates its
// options and arguments, and runs it.
//
// Resolution: when only the default command is allowed, command-name
// recognition is switched off and the default runs. Otherwise the
// command named on the command line runs if it is registered, else the
// default. With neither, Run fails with a [NoCommandError]. Validation
// failures are [ValidationError]s; the handler does not run. Handler
// results and errors are returned unmodified.
func (a *App) Run() (any, error) {
	a.state = StateResolving

	command, err := a.resolve()
	if err != nil {
		a.state = StateFailed
		return nil, err
	}

	if err := a.validate(command); err != nil {
		a.state = StateFailed
		a.logger.Warn("invalid invocation",
			"command", command.Name,
			"error", err,
		)
		return nil, err
	}

	a.state = StateExecuting
	a.logger.Debug("running command", "command", command.Name)
	result, err := command.Run()
	a.state = StateDone
	return result, err
}

func (a *App) resolve() (*Command, error) {
	var defaultCommand, explicitCommand *Command
	if a.defaultCommand != "" {
		defaultCommand = a.Command(a.defaultCommand)
		if defaultCommand == nil {
			a.logger.Debug("default command not registered", "command", a.defaultCommand)
		}
	}

	requested := ""
	if !a.onlyUseDefaultCommand {
		// A parser left with command names disabled reports none;
		// enabling first moves the token back out of the arguments.
		a.parameter.EnableCommandName()
		requested = a.parameter.CommandName()
		if requested != "" {
			explicitCommand = a.Command(requested)
		}
	} else {
		a.parameter.DisableCommandName()
	}

	if explicitCommand != nil {
		a.logger.Debug("resolved command from command line", "command", explicitCommand.Name)
		return explicitCommand, nil
	}
	if defaultCommand != nil {
		a.logger.Debug("resolved default command",
			"command", defaultCommand.Name,
			"requested", requested,
		)
		return defaultCommand, nil
	}

	names := a.CommandNames()
	return nil, &NoCommandError{
		Requested:  requested,
		Suggestion: suggestCommand(requested, names),
		Available:  names,
	}
}

func (a *App) validate(command *Command) error {
	if err := a.parameter.SetCommandOptions(command.options); err != nil {
		return err
	}
	if err := a.parameter.SetCommandArguments(command.arguments); err != nil {
		return err
	}
	if err := a.parameter.CheckCommandOptions(); err != nil {
		return err
	}
	return a.parameter.CheckCommandArguments()
}
