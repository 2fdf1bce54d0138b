// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// BindParams declares options and arguments on command from the tagged
// fields of params, which must be a pointer to a struct. Arguments are
// declared in field order.
//
// # Struct tags
//
//   - option:"name" or argument:"name": what the field binds to.
//     Fields with neither are skipped.
//   - required:"true": the option or argument must be passed.
//   - value:"flag|optional|required": the option's value policy.
//     Defaults to "flag" for bool fields and "optional" otherwise.
//     Ignored for arguments.
//   - default:"value": the default, as it would be typed on the
//     command line.
//   - desc:"help text": shown by the help command.
//
// # Supported field types
//
// string, bool, int, int64, float64, [time.Duration], []string
// (comma-separated).
//
// Embedded structs are bound recursively. Invalid tags and unsupported
// types are [ConfigurationError]s.
//
// Typical use:
//
//	type greetParams struct {
//	    Name  string `argument:"name" default:"world" desc:"who to greet"`
//	    Shout bool   `option:"shout" desc:"upper-case the greeting"`
//	}
//
//	var params greetParams
//	command := &console.Command{Name: "greet"}
//	if err := console.BindParams(command, &params); err != nil { ... }
//	command.Handler = func(app *console.App, output *console.Output, input *console.Input, parameter *console.Parameter) (any, error) {
//	    if err := console.DecodeParams(parameter, &params); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
func BindParams(command *Command, params any) error {
	structValue, err := paramsStruct(params)
	if err != nil {
		return &ConfigurationError{Subject: "command " + command.Name, Err: err}
	}
	return bindStructFields(command, structValue)
}

func paramsStruct(params any) (reflect.Value, error) {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Ptr || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return value.Elem(), nil
}

func bindStructFields(command *Command, structValue reflect.Value) error {
	structType := structValue.Type()
	for i := range structType.NumField() {
		field := structType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStructFields(command, structValue.Field(i)); err != nil {
				return err
			}
			continue
		}

		optionName, isOption := field.Tag.Lookup("option")
		argumentName, isArgument := field.Tag.Lookup("argument")
		if !isOption && !isArgument {
			continue
		}
		subject := "command " + command.Name
		if isOption && isArgument {
			return configurationErrorf(subject, "field %s: has both option and argument tags", field.Name)
		}
		if !isSupportedField(field.Type) {
			return configurationErrorf(subject, "field %s: unsupported type %s", field.Name, field.Type)
		}

		requirement := Optional
		if required := field.Tag.Get("required"); required != "" {
			parsed, err := strconv.ParseBool(required)
			if err != nil {
				return configurationErrorf(subject, "field %s: required tag: %v", field.Name, err)
			}
			if parsed {
				requirement = Required
			}
		}
		defaultValue := field.Tag.Get("default")
		description := field.Tag.Get("desc")

		if isArgument {
			argument, err := command.AddArgument(argumentName, requirement, defaultValue)
			if err != nil {
				return err
			}
			argument.SetDescription(description)
			continue
		}

		policy := OptionValueOptional
		if field.Type.Kind() == reflect.Bool {
			policy = OptionFlag
		}
		if tag := field.Tag.Get("value"); tag != "" {
			parsed, err := ParseValuePolicy(tag)
			if err != nil {
				return configurationErrorf(subject, "field %s: %v", field.Name, err)
			}
			policy = parsed
		}
		option, err := command.AddOption(optionName, requirement, policy, defaultValue)
		if err != nil {
			return err
		}
		option.SetDescription(description)
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

func isSupportedField(fieldType reflect.Type) bool {
	if fieldType == durationType {
		return true
	}
	switch fieldType.Kind() {
	case reflect.String, reflect.Bool, reflect.Int, reflect.Int64, reflect.Float64:
		return true
	case reflect.Slice:
		return fieldType.Elem().Kind() == reflect.String
	}
	return false
}

// DecodeParams fills the tagged fields of params from the resolved
// values in parameter (after validation). Absent values leave the field
// at its zero value. A value that does not parse as the field's type is
// a [ValidationError] with reason [InvalidValue].
func DecodeParams(parameter *Parameter, params any) error {
	structValue, err := paramsStruct(params)
	if err != nil {
		return &ConfigurationError{Subject: "decode", Err: err}
	}
	return decodeStructFields(parameter, structValue)
}

func decodeStructFields(parameter *Parameter, structValue reflect.Value) error {
	structType := structValue.Type()
	for i := range structType.NumField() {
		field := structType.Field(i)
		fieldValue := structValue.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := decodeStructFields(parameter, fieldValue); err != nil {
				return err
			}
			continue
		}

		var name string
		var value Value
		if optionName, ok := field.Tag.Lookup("option"); ok {
			name, value = "--"+optionName, parameter.Option(optionName)
		} else if argumentName, ok := field.Tag.Lookup("argument"); ok {
			name, value = argumentName, parameter.Argument(argumentName)
		} else {
			continue
		}
		if !value.IsSet() || !fieldValue.CanSet() {
			continue
		}
		if err := setField(fieldValue, value); err != nil {
			return &ValidationError{Reason: InvalidValue, Name: name, Err: err}
		}
	}
	return nil
}

func setField(fieldValue reflect.Value, value Value) error {
	if fieldValue.Type() == durationType {
		duration, err := time.ParseDuration(value.String())
		if err != nil {
			return err
		}
		fieldValue.SetInt(int64(duration))
		return nil
	}

	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(value.String())
	case reflect.Bool:
		parsed, err := value.Bool()
		if err != nil {
			return err
		}
		fieldValue.SetBool(parsed)
	case reflect.Int, reflect.Int64:
		parsed, err := strconv.ParseInt(value.String(), 10, 64)
		if err != nil {
			return err
		}
		fieldValue.SetInt(parsed)
	case reflect.Float64:
		parsed, err := strconv.ParseFloat(value.String(), 64)
		if err != nil {
			return err
		}
		fieldValue.SetFloat(parsed)
	case reflect.Slice:
		var items []string
		if text := value.String(); text != "" {
			items = strings.Split(text, ",")
		}
		fieldValue.Set(reflect.ValueOf(items).Convert(fieldValue.Type()))
	default:
		return fmt.Errorf("unsupported type %s", fieldValue.Type())
	}
	return nil
}
