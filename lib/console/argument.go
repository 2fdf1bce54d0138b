// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

// unordered marks an argument that has not been registered on a parser.
const unordered = -1

// Argument describes a positional argument a command accepts. Its order
// index, assigned by [Parameter.SetCommandArguments], decides which
// positional token binds to it.
type Argument struct {
	name         string
	description  string
	requirement  Requirement
	defaultValue string
	order        int

	provided      bool
	providedValue string
}

// NewArgument builds an argument descriptor. An empty defaultValue
// means the argument has no default.
func NewArgument(name string, requirement Requirement, defaultValue string) (*Argument, error) {
	if name == "" {
		return nil, configurationErrorf("argument", "name must not be empty")
	}
	if !requirement.valid() {
		return nil, configurationErrorf("argument "+name, "invalid requirement %v", requirement)
	}
	return &Argument{
		name:         name,
		requirement:  requirement,
		defaultValue: defaultValue,
		order:        unordered,
	}, nil
}

func (a *Argument) Name() string               { return a.name }
func (a *Argument) Description() string        { return a.description }
func (a *Argument) SetDescription(text string) { a.description = text }
func (a *Argument) IsRequired() bool           { return a.requirement == Required }
func (a *Argument) DefaultValue() string       { return a.defaultValue }
func (a *Argument) HasBeenProvided() bool      { return a.provided }

// Order returns the 0-based order index, or -1 before registration.
func (a *Argument) Order() int { return a.order }

// canOrder reports whether the argument may take order index. An
// argument is ordered once: the same index again is fine, another is a
// [ConfigurationError].
func (a *Argument) canOrder(index int) error {
	if a.order != unordered && a.order != index {
		return configurationErrorf("argument "+a.name, "order index already assigned as %d, cannot reassign to %d", a.order, index)
	}
	return nil
}

// Bind resets the provided state and takes the positional token at the
// argument's order index, if there is one.
func (a *Argument) Bind(positional []string) {
	a.provided = false
	a.providedValue = ""
	if a.order < 0 || a.order >= len(positional) {
		return
	}
	a.provided = true
	a.providedValue = positional[a.order]
}

// Value resolves the argument: the bound token, else the default, else
// absent.
func (a *Argument) Value() Value {
	if a.provided {
		return TextValue(a.providedValue)
	}
	if a.defaultValue != "" {
		return TextValue(a.defaultValue)
	}
	return Value{}
}
