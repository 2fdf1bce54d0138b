// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "fmt"

// Requirement says whether an option or argument must be passed.
type Requirement int

const (
	// Optional descriptors may be omitted.
	Optional Requirement = iota

	// Required descriptors must be passed or validation fails.
	Required
)

func (r Requirement) valid() bool { return r == Optional || r == Required }

func (r Requirement) String() string {
	switch r {
	case Optional:
		return "optional"
	case Required:
		return "required"
	}
	return fmt.Sprintf("Requirement(%d)", int(r))
}

// ValuePolicy says whether an option takes a value. The zero value is
// not a valid policy: options are always constructed with an explicit
// one.
type ValuePolicy int

const (
	// OptionFlag options never take a value: "--verbose".
	OptionFlag ValuePolicy = iota + 1

	// OptionValueOptional options may be passed bare or as
	// "--name=value".
	OptionValueOptional

	// OptionValueRequired options must be passed as "--name=value" when
	// passed at all.
	OptionValueRequired
)

func (p ValuePolicy) valid() bool {
	return p == OptionFlag || p == OptionValueOptional || p == OptionValueRequired
}

func (p ValuePolicy) String() string {
	switch p {
	case OptionFlag:
		return "flag"
	case OptionValueOptional:
		return "optional"
	case OptionValueRequired:
		return "required"
	}
	return fmt.Sprintf("ValuePolicy(%d)", int(p))
}

// ParseValuePolicy converts "flag", "optional" or "required" into a
// ValuePolicy.
func ParseValuePolicy(s string) (ValuePolicy, error) {
	switch s {
	case "flag":
		return OptionFlag, nil
	case "optional":
		return OptionValueOptional, nil
	case "required":
		return OptionValueRequired, nil
	}
	return 0, fmt.Errorf("unknown value policy %q (want flag, optional or required)", s)
}

// OptionToken is one parsed "--name" or "--name=value" occurrence.
// HasValue distinguishes "--name=" (explicit empty value) from a bare
// "--name".
type OptionToken struct {
	Value    string
	HasValue bool
}

// Option describes a named "--" option a command accepts, and holds the
// state bound from the most recent parse.
type Option struct {
	name         string
	description  string
	requirement  Requirement
	policy       ValuePolicy
	defaultValue string

	provided      bool
	providedValue string
	hasValue      bool
}

// NewOption builds an option descriptor. An empty defaultValue means
// the option has no default. Fails with a [ConfigurationError] for an
// empty name, an unknown requirement or an unknown value policy.
func NewOption(name string, requirement Requirement, policy ValuePolicy, defaultValue string) (*Option, error) {
	subject := "option --" + name
	if name == "" {
		return nil, configurationErrorf("option", "name must not be empty")
	}
	if !requirement.valid() {
		return nil, configurationErrorf(subject, "invalid requirement %v", requirement)
	}
	if !policy.valid() {
		return nil, configurationErrorf(subject, "value policy must be OptionFlag, OptionValueOptional or OptionValueRequired, got %v", policy)
	}
	return &Option{
		name:         name,
		requirement:  requirement,
		policy:       policy,
		defaultValue: defaultValue,
	}, nil
}

func (o *Option) Name() string               { return o.name }
func (o *Option) Description() string        { return o.description }
func (o *Option) SetDescription(text string) { o.description = text }
func (o *Option) IsRequired() bool           { return o.requirement == Required }
func (o *Option) Policy() ValuePolicy        { return o.policy }
func (o *Option) IsFlag() bool               { return o.policy == OptionFlag }
func (o *Option) DefaultValue() string       { return o.defaultValue }

// IsValueRequired reports whether the option must carry "=value" when
// passed.
func (o *Option) IsValueRequired() bool { return o.policy == OptionValueRequired }

// HasBeenProvided reports whether the last [Option.Bind] found the
// option on the command line.
func (o *Option) HasBeenProvided() bool { return o.provided }

// ProvidedValue returns the value passed with "=value" in the last
// bind, and whether there was one.
func (o *Option) ProvidedValue() (string, bool) { return o.providedValue, o.hasValue }

// Bind resets the provided state and matches the option against parsed
// options. Binding is not cumulative: every call starts from scratch.
func (o *Option) Bind(options map[string]OptionToken) {
	o.provided = false
	o.providedValue = ""
	o.hasValue = false

	token, ok := options[o.name]
	if !ok {
		return
	}
	o.provided = true
	if token.HasValue {
		o.providedValue = token.Value
		o.hasValue = true
	}
}

// Value resolves the option: an explicit value wins; a bare flag is
// true when the policy is OptionFlag or there is no default, otherwise
// the default; an absent option falls back to the default.
func (o *Option) Value() Value {
	if o.hasValue {
		return TextValue(o.providedValue)
	}
	if o.provided && (o.policy == OptionFlag || o.defaultValue == "") {
		return FlagValue()
	}
	if o.defaultValue != "" {
		return TextValue(o.defaultValue)
	}
	return Value{}
}
