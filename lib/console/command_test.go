// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/console/lib/testutil"
)

func TestCommand_RunWithoutHandler(t *testing.T) {
	command := &Command{Name: "noop"}

	result, err := command.Run()
	testutil.RequireNoError(t, err)
	if result != false {
		t.Errorf("Run() = %#v, want false", result)
	}
}

func TestCommand_RunPassesPreparedCollaborators(t *testing.T) {
	output := NewOutput(&bytes.Buffer{}, &bytes.Buffer{})
	input := NewInput(strings.NewReader(""), output)
	parameter := NewParameter([]string{"tool"})
	app := NewApp(output, input, parameter)

	var gotApp *App
	var gotOutput *Output
	var gotInput *Input
	var gotParameter *Parameter
	command := &Command{
		Name: "inspect",
		Handler: func(app *App, output *Output, input *Input, parameter *Parameter) (any, error) {
			gotApp, gotOutput, gotInput, gotParameter = app, output, input, parameter
			return 42, nil
		},
	}
	command.Prepare(app, output, input, parameter)

	result, err := command.Run()
	testutil.RequireNoError(t, err)
	if result != 42 {
		t.Errorf("Run() = %#v, want 42", result)
	}
	if gotApp != app || gotOutput != output || gotInput != input || gotParameter != parameter {
		t.Error("handler did not receive the prepared collaborators")
	}
}

func TestCommand_RunUnprepared(t *testing.T) {
	var sawNil bool
	command := &Command{
		Name: "bare",
		Handler: func(app *App, output *Output, input *Input, parameter *Parameter) (any, error) {
			sawNil = app == nil && output == nil && input == nil && parameter == nil
			return nil, nil
		},
	}
	if _, err := command.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !sawNil {
		t.Error("unprepared command received non-nil collaborators")
	}
}

func TestCommand_HandlerErrorPassesThrough(t *testing.T) {
	sentinel := errors.New("disk full")
	command := &Command{
		Name: "fail",
		Handler: func(app *App, output *Output, input *Input, parameter *Parameter) (any, error) {
			return nil, sentinel
		},
	}
	if _, err := command.Run(); err != sentinel {
		t.Errorf("Run() error = %v, want the handler's error unchanged", err)
	}
}

func TestCommand_CallsAnotherCommand(t *testing.T) {
	inner := &Command{
		Name: "inner",
		Handler: func(app *App, output *Output, input *Input, parameter *Parameter) (any, error) {
			return "inner result", nil
		},
	}
	outer := &Command{
		Name: "outer",
		Handler: func(app *App, output *Output, input *Input, parameter *Parameter) (any, error) {
			result, err := app.Command("inner").Run()
			if err != nil {
				return nil, err
			}
			return "outer(" + result.(string) + ")", nil
		},
	}
	app, _ := newTestApp(t, []string{"tool", "outer"}, "")
	testutil.RequireNoError(t, app.AddCommands(inner, outer))

	result, err := app.Run()
	testutil.RequireNoError(t, err)
	if result != "outer(inner result)" {
		t.Errorf("Run() = %#v", result)
	}
}

func TestCommand_AddOptionDuplicate(t *testing.T) {
	command := &Command{Name: "build"}
	first, err := command.AddOption("force", Optional, OptionFlag, "")
	testutil.RequireNoError(t, err)

	_, err = command.AddOption("force", Required, OptionValueRequired, "x")
	testutil.RequireErrorAs[*ConfigurationError](t, err)

	if got := command.Option("force"); got != first {
		t.Error("duplicate declaration replaced the first option")
	}
	if len(command.Options()) != 1 {
		t.Errorf("Options() has %d entries, want 1", len(command.Options()))
	}
}

func TestCommand_AddArgumentDuplicate(t *testing.T) {
	command := &Command{Name: "copy"}
	_, err := command.AddArgument("path", Required, "")
	testutil.RequireNoError(t, err)

	_, err = command.AddArgument("path", Optional, "")
	testutil.RequireErrorAs[*ConfigurationError](t, err)
}

func TestCommand_AddOptionInvalidPolicy(t *testing.T) {
	command := &Command{Name: "build"}
	_, err := command.AddOption("force", Optional, ValuePolicy(9), "")
	testutil.RequireErrorAs[*ConfigurationError](t, err)
	if command.Option("force") != nil {
		t.Error("invalid option was registered")
	}
}

func TestCommand_DeclarationOrder(t *testing.T) {
	command := &Command{Name: "copy"}
	for _, name := range []string{"source", "destination", "mode"} {
		if _, err := command.AddArgument(name, Optional, ""); err != nil {
			t.Fatalf("AddArgument(%s): %v", name, err)
		}
	}
	var names []string
	for _, argument := range command.Arguments() {
		names = append(names, argument.Name())
	}
	if diff := cmp.Diff([]string{"source", "destination", "mode"}, names); diff != "" {
		t.Errorf("Arguments() order (-want +got):\n%s", diff)
	}

	// The returned slice is a copy.
	arguments := command.Arguments()
	arguments[0] = nil
	if command.Arguments()[0] == nil {
		t.Error("mutating Arguments() result changed the command")
	}
}
