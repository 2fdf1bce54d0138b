// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "slices"

// Handler is the behavior of a [Command]. It receives the collaborators
// injected by [Command.Prepare] (nil when Prepare was not called) and
// returns an arbitrary result. Returned errors pass through [App.Run]
// unmodified.
type Handler func(app *App, output *Output, input *Input, parameter *Parameter) (any, error)

// Command is a named unit of work with its own option and argument
// descriptors.
type Command struct {
	// Name is the command name as typed by the user and the key in an
	// App's registry.
	Name string

	// Description is shown by the help command. It is Markdown: the
	// first line doubles as the summary in command listings.
	Description string

	// Usage overrides the synthesized usage line in help output.
	Usage string

	// Examples are shown in help output after the option table.
	Examples []Example

	// Handler runs the command. A command without a handler returns
	// false from Run.
	Handler Handler

	options   []*Option
	arguments []*Argument

	app       *App
	output    *Output
	input     *Input
	parameter *Parameter
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal command line.
	Command string
}

// AddOption declares an option. Declaring a name twice is a
// [ConfigurationError]; the first declaration stays.
func (c *Command) AddOption(name string, requirement Requirement, policy ValuePolicy, defaultValue string) (*Option, error) {
	option, err := NewOption(name, requirement, policy, defaultValue)
	if err != nil {
		return nil, err
	}
	if c.Option(name) != nil {
		return nil, configurationErrorf("command "+c.Name, "option --%s declared more than once", name)
	}
	c.options = append(c.options, option)
	return option, nil
}

// AddArgument declares the next positional argument. Declaring a name
// twice is a [ConfigurationError]; the first declaration stays.
func (c *Command) AddArgument(name string, requirement Requirement, defaultValue string) (*Argument, error) {
	argument, err := NewArgument(name, requirement, defaultValue)
	if err != nil {
		return nil, err
	}
	if c.Argument(name) != nil {
		return nil, configurationErrorf("command "+c.Name, "argument %s declared more than once", name)
	}
	c.arguments = append(c.arguments, argument)
	return argument, nil
}

// Options returns the declared options in declaration order.
func (c *Command) Options() []*Option { return slices.Clone(c.options) }

// Arguments returns the declared arguments in declaration order, which
// is also their positional order.
func (c *Command) Arguments() []*Argument { return slices.Clone(c.arguments) }

// Option returns the declared option by name, or nil.
func (c *Command) Option(name string) *Option {
	for _, option := range c.options {
		if option.name == name {
			return option
		}
	}
	return nil
}

// Argument returns the declared argument by name, or nil.
func (c *Command) Argument(name string) *Argument {
	for _, argument := range c.arguments {
		if argument.name == name {
			return argument
		}
	}
	return nil
}

// Prepare injects the collaborators the handler receives. [App.AddCommand]
// calls it; commands run outside an App call it themselves.
func (c *Command) Prepare(app *App, output *Output, input *Input, parameter *Parameter) {
	c.app = app
	c.output = output
	c.input = input
	c.parameter = parameter
}

// Run invokes the handler with the prepared collaborators and returns
// its result. Without a handler, Run returns false and no error.
//
// A handler may run other commands, including (transitively) its own
// command; nothing guards against the resulting recursion.
func (c *Command) Run() (any, error) {
	if c.Handler == nil {
		return false, nil
	}
	return c.Handler(c.app, c.output, c.input, c.parameter)
}
