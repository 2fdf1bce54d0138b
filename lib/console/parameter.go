// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"slices"
	"strings"
)

// optionPrefix introduces an option token. Only long options exist.
const optionPrefix = "--"

// Parameter parses a raw argument vector and validates a command's
// descriptors against it.
//
// The first token is the script name. The next token is the command
// name when it is non-empty and does not start with "--". Every later
// "--name" or "--name=value" token is an option; everything else is a
// positional argument, in order.
//
// Command-name recognition can be switched off after parsing
// ([Parameter.DisableCommandName]); the command-name token then becomes
// the first positional argument. Switching it back on moves it out
// again.
type Parameter struct {
	raw []string

	scriptName         string
	commandName        string
	commandNameEnabled bool
	options            map[string]OptionToken
	arguments          []string

	commandOptions   []*Option
	commandArguments []*Argument
}

// NewParameter returns a parser with argv already parsed and
// command-name recognition enabled.
func NewParameter(argv []string) *Parameter {
	parameter := &Parameter{commandNameEnabled: true}
	parameter.SetParameters(argv)
	return parameter
}

// SetParameters replaces the raw argument vector and re-parses it,
// discarding everything derived from the previous vector. The
// command-name mode is kept.
func (p *Parameter) SetParameters(argv []string) {
	p.raw = slices.Clone(argv)
	p.parse()
}

// Parameters returns a copy of the raw argument vector.
func (p *Parameter) Parameters() []string {
	return slices.Clone(p.raw)
}

func (p *Parameter) reset() {
	p.scriptName = ""
	p.commandName = ""
	p.options = make(map[string]OptionToken)
	p.arguments = nil
}

func (p *Parameter) parse() {
	p.reset()
	if len(p.raw) == 0 {
		return
	}
	p.scriptName = p.raw[0]
	tokens := p.raw[1:]

	if len(tokens) > 0 && tokens[0] != "" && !strings.HasPrefix(tokens[0], optionPrefix) {
		p.commandName = tokens[0]
		tokens = tokens[1:]
		if !p.commandNameEnabled {
			p.arguments = append(p.arguments, p.commandName)
		}
	}

	for _, token := range tokens {
		if name, ok := strings.CutPrefix(token, optionPrefix); ok {
			if name, value, hasValue := strings.Cut(name, "="); hasValue {
				p.options[name] = OptionToken{Value: value, HasValue: true}
			} else {
				p.options[name] = OptionToken{}
			}
			continue
		}
		p.arguments = append(p.arguments, token)
	}
}

// ScriptName returns the first token of the argument vector, or "" for
// an empty vector.
func (p *Parameter) ScriptName() string { return p.scriptName }

// CommandName returns the command-name token, or "" when there is none
// or command-name recognition is disabled.
func (p *Parameter) CommandName() string {
	if !p.commandNameEnabled {
		return ""
	}
	return p.commandName
}

// CommandNameEnabled reports the command-name mode.
func (p *Parameter) CommandNameEnabled() bool { return p.commandNameEnabled }

// EnableCommandName switches command-name recognition on. If it was
// off, the command-name token is taken back out of the positional
// arguments (its first occurrence).
func (p *Parameter) EnableCommandName() {
	if p.commandNameEnabled {
		return
	}
	p.commandNameEnabled = true
	if p.commandName == "" {
		return
	}
	if index := slices.Index(p.arguments, p.commandName); index >= 0 {
		p.arguments = slices.Delete(p.arguments, index, index+1)
	}
}

// DisableCommandName switches command-name recognition off. If it was
// on, the command-name token becomes the first positional argument.
func (p *Parameter) DisableCommandName() {
	if !p.commandNameEnabled {
		return
	}
	p.commandNameEnabled = false
	if p.commandName == "" {
		return
	}
	p.arguments = slices.Insert(p.arguments, 0, p.commandName)
}

// RawOptions returns a copy of the parsed options, before any
// descriptor is applied.
func (p *Parameter) RawOptions() map[string]OptionToken {
	options := make(map[string]OptionToken, len(p.options))
	for name, token := range p.options {
		options[name] = token
	}
	return options
}

// RawArguments returns a copy of the positional arguments.
func (p *Parameter) RawArguments() []string {
	return slices.Clone(p.arguments)
}

// SetCommandOptions registers the option descriptors to validate and
// resolve against. Fails with a [ConfigurationError] on a nil
// descriptor or a duplicate name; nothing is registered in that case.
func (p *Parameter) SetCommandOptions(options []*Option) error {
	seen := make(map[string]bool, len(options))
	for index, option := range options {
		if option == nil {
			return configurationErrorf("command options", "descriptor %d is nil", index)
		}
		if seen[option.name] {
			return configurationErrorf("option --"+option.name, "registered more than once")
		}
		seen[option.name] = true
	}
	p.commandOptions = slices.Clone(options)
	return nil
}

// SetCommandArguments registers the argument descriptors to validate
// and resolve against, assigning each its order index from its position
// in arguments. Fails with a [ConfigurationError] on a nil descriptor, a
// duplicate name, or an argument already ordered at another index.
func (p *Parameter) SetCommandArguments(arguments []*Argument) error {
	seen := make(map[string]bool, len(arguments))
	for index, argument := range arguments {
		if argument == nil {
			return configurationErrorf("command arguments", "descriptor %d is nil", index)
		}
		if seen[argument.name] {
			return configurationErrorf("argument "+argument.name, "registered more than once")
		}
		seen[argument.name] = true
		if err := argument.canOrder(index); err != nil {
			return err
		}
	}
	for index, argument := range arguments {
		argument.order = index
	}
	p.commandArguments = slices.Clone(arguments)
	return nil
}

// CheckCommandOptions binds every registered option to the parsed
// options and fails with a [ValidationError] on the first required
// option that is missing or value-required option passed bare.
func (p *Parameter) CheckCommandOptions() error {
	for _, option := range p.commandOptions {
		option.Bind(p.options)
	}
	for _, option := range p.commandOptions {
		if option.IsRequired() && !option.HasBeenProvided() {
			return &ValidationError{Reason: MissingOption, Name: option.name}
		}
		if option.IsValueRequired() && option.HasBeenProvided() {
			if _, hasValue := option.ProvidedValue(); !hasValue {
				return &ValidationError{Reason: MissingOptionValue, Name: option.name}
			}
		}
	}
	return nil
}

// CheckCommandArguments binds every registered argument, in order index
// order, to the positional arguments and fails with a [ValidationError]
// on the first required argument whose slot is empty.
func (p *Parameter) CheckCommandArguments() error {
	for _, argument := range p.commandArguments {
		argument.Bind(p.arguments)
	}
	for _, argument := range p.commandArguments {
		if argument.IsRequired() && !argument.HasBeenProvided() {
			return &ValidationError{
				Reason:   MissingArgument,
				Name:     argument.name,
				Position: argument.order + 1,
			}
		}
	}
	return nil
}

// CommandOption returns the registered option descriptor by name, or
// nil.
func (p *Parameter) CommandOption(name string) *Option {
	for _, option := range p.commandOptions {
		if option.name == name {
			return option
		}
	}
	return nil
}

// CommandArgument returns the registered argument descriptor by name,
// or nil.
func (p *Parameter) CommandArgument(name string) *Argument {
	for _, argument := range p.commandArguments {
		if argument.name == name {
			return argument
		}
	}
	return nil
}

// Option resolves a registered option (see [Option.Value]). Unknown
// names are absent.
func (p *Parameter) Option(name string) Value {
	option := p.CommandOption(name)
	if option == nil {
		return Value{}
	}
	return option.Value()
}

// Argument resolves a registered argument (see [Argument.Value]).
// Unknown names are absent.
func (p *Parameter) Argument(name string) Value {
	argument := p.CommandArgument(name)
	if argument == nil {
		return Value{}
	}
	return argument.Value()
}

// Options resolves every registered option through [Parameter.Option].
func (p *Parameter) Options() map[string]Value {
	values := make(map[string]Value, len(p.commandOptions))
	for _, option := range p.commandOptions {
		values[option.name] = p.Option(option.name)
	}
	return values
}

// Arguments resolves every registered argument through
// [Parameter.Argument].
func (p *Parameter) Arguments() map[string]Value {
	values := make(map[string]Value, len(p.commandArguments))
	for _, argument := range p.commandArguments {
		values[argument.name] = p.Argument(argument.name)
	}
	return values
}
