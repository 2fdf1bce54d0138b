// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"strconv"
	"strings"
)

type valueKind uint8

const (
	valueAbsent valueKind = iota
	valueFlag
	valueText
)

// Value is a resolved option or argument value. It is in one of three
// states: absent (unknown name, or not passed and no default), flag
// (passed bare, resolves to true), or text (an explicit value or a
// default).
type Value struct {
	kind valueKind
	text string
}

// TextValue returns a Value holding text.
func TextValue(text string) Value { return Value{kind: valueText, text: text} }

// FlagValue returns the Value of a bare flag.
func FlagValue() Value { return Value{kind: valueFlag} }

// IsSet reports whether the value is present (flag or text).
func (v Value) IsSet() bool { return v.kind != valueAbsent }

// IsFlag reports whether the value resolved to a bare "true".
func (v Value) IsFlag() bool { return v.kind == valueFlag }

// Text returns the text and whether the value holds text. Flags and
// absent values report false.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == valueText
}

// String returns the text, "true" for a flag and "" when absent.
func (v Value) String() string {
	switch v.kind {
	case valueFlag:
		return "true"
	case valueText:
		return v.text
	}
	return ""
}

// Bool interprets the value as a boolean. A flag is true, an absent
// value is false, and text is parsed with [strconv.ParseBool] (plus
// "yes"/"no"/"on"/"off"); unparseable text is an error.
func (v Value) Bool() (bool, error) {
	switch v.kind {
	case valueAbsent:
		return false, nil
	case valueFlag:
		return true, nil
	}
	switch strings.ToLower(v.text) {
	case "yes", "on", "y":
		return true, nil
	case "no", "off", "n", "":
		return false, nil
	}
	return strconv.ParseBool(v.text)
}

// Int interprets the value as a base-10 integer. Absent values return
// fallback; flags and unparseable text are errors.
func (v Value) Int(fallback int) (int, error) {
	switch v.kind {
	case valueAbsent:
		return fallback, nil
	case valueFlag:
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(v.text)
}

// Any returns the value in its loosely typed form: nil when absent,
// true for a flag, the string otherwise. Useful for JSON rendering.
func (v Value) Any() any {
	switch v.kind {
	case valueFlag:
		return true
	case valueText:
		return v.text
	}
	return nil
}
