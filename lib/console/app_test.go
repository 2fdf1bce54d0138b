// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/console/lib/testutil"
)

// testStreams holds the buffers behind a test App's Output.
type testStreams struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// newTestApp builds an App over argv with buffered output and stdin
// fed from the given text.
func newTestApp(t *testing.T, argv []string, stdin string) (*App, *testStreams) {
	t.Helper()
	streams := &testStreams{}
	output := NewOutput(&streams.stdout, &streams.stderr)
	output.SetColor(ColorNever)
	return NewApp(output, NewInput(strings.NewReader(stdin), output), NewParameter(argv)), streams
}

// recordingCommand returns a command that records the command name it
// ran under into ran.
func recordingCommand(name string, ran *[]string) *Command {
	return &Command{
		Name: name,
		Handler: func(app *App, output *Output, input *Input, parameter *Parameter) (any, error) {
			*ran = append(*ran, name)
			return name, nil
		},
	}
}

func TestApp_Resolution(t *testing.T) {
	tests := []struct {
		name           string
		argv           []string
		defaultCommand string
		want           string
	}{
		{"explicit command", []string{"tool", "test"}, "build", "test"},
		{"explicit wins over default", []string{"tool", "build"}, "test", "build"},
		{"no command runs default", []string{"tool"}, "build", "build"},
		{"options only runs default", []string{"tool", "--force"}, "build", "build"},
		{"unknown command runs default", []string{"tool", "deploy"}, "build", "build"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var ran []string
			app, _ := newTestApp(t, test.argv, "")
			testutil.RequireNoError(t, app.AddCommands(recordingCommand("build", &ran), recordingCommand("test", &ran)))
			app.SetDefaultCommandByName(test.defaultCommand)

			result, err := app.Run()
			testutil.RequireNoError(t, err)
			if result != test.want {
				t.Errorf("Run() = %#v, want %q", result, test.want)
			}
			if diff := cmp.Diff([]string{test.want}, ran); diff != "" {
				t.Errorf("ran (-want +got):\n%s", diff)
			}
			if app.State() != StateDone {
				t.Errorf("State() = %v, want done", app.State())
			}
		})
	}
}

func TestApp_NoCommand(t *testing.T) {
	var ran []string
	app, _ := newTestApp(t, []string{"tool", "biuld"}, "")
	testutil.RequireNoError(t, app.AddCommands(recordingCommand("build", &ran), recordingCommand("test", &ran)))

	_, err := app.Run()
	noCommand := testutil.RequireErrorAs[*NoCommandError](t, err)
	if noCommand.Requested != "biuld" || noCommand.Suggestion != "build" {
		t.Errorf("got requested=%q suggestion=%q", noCommand.Requested, noCommand.Suggestion)
	}
	if diff := cmp.Diff([]string{"build", "test"}, noCommand.Available); diff != "" {
		t.Errorf("Available (-want +got):\n%s", diff)
	}
	if len(ran) != 0 {
		t.Errorf("ran %v, want nothing", ran)
	}
	if app.State() != StateFailed {
		t.Errorf("State() = %v, want failed", app.State())
	}
}

func TestApp_NoCommandWithoutName(t *testing.T) {
	app, _ := newTestApp(t, []string{"tool"}, "")

	_, err := app.Run()
	noCommand := testutil.RequireErrorAs[*NoCommandError](t, err)
	if noCommand.Error() != "no valid commands found" {
		t.Errorf("Error() = %q", noCommand.Error())
	}
}

func TestApp_UnregisteredDefault(t *testing.T) {
	var ran []string
	app, _ := newTestApp(t, []string{"tool"}, "")
	testutil.RequireNoError(t, app.AddCommand(recordingCommand("build", &ran)))
	app.SetDefaultCommandByName("missing")

	_, err := app.Run()
	testutil.RequireErrorAs[*NoCommandError](t, err)
}

func TestApp_DefaultRegisteredLater(t *testing.T) {
	var ran []string
	app, _ := newTestApp(t, []string{"tool"}, "")
	app.SetDefaultCommandByName("build")
	testutil.RequireNoError(t, app.AddCommand(recordingCommand("build", &ran)))

	if _, err := app.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if diff := cmp.Diff([]string{"build"}, ran); diff != "" {
		t.Errorf("ran (-want +got):\n%s", diff)
	}
}

func TestApp_OnlyUseDefaultCommand(t *testing.T) {
	var words []string
	echo := &Command{
		Name: "echo",
		Handler: func(app *App, output *Output, input *Input, parameter *Parameter) (any, error) {
			words = append(words, parameter.Argument("first").String(), parameter.Argument("second").String())
			return nil, nil
		},
	}
	if _, err := echo.AddArgument("first", Required, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := echo.AddArgument("second", Optional, ""); err != nil {
		t.Fatal(err)
	}

	// "help" is registered, but in only-default mode it is an argument.
	app, _ := newTestApp(t, []string{"tool", "help", "me"}, "")
	testutil.RequireNoError(t, app.AddCommands(echo, NewHelpCommand()))
	app.SetDefaultCommand(echo)
	app.SetOnlyUseDefaultCommand(true)

	if _, err := app.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if diff := cmp.Diff([]string{"help", "me"}, words); diff != "" {
		t.Errorf("arguments (-want +got):\n%s", diff)
	}
	if app.Parameter().CommandName() != "" {
		t.Errorf("CommandName() = %q in only-default mode", app.Parameter().CommandName())
	}
}

func TestApp_OnlyDefaultThenNormalRun(t *testing.T) {
	var ran []string
	app, _ := newTestApp(t, []string{"tool", "test"}, "")
	testutil.RequireNoError(t, app.AddCommands(recordingCommand("build", &ran), recordingCommand("test", &ran)))
	app.SetDefaultCommandByName("build")

	app.SetOnlyUseDefaultCommand(true)
	if _, err := app.Run(); err != nil {
		t.Fatal(err)
	}
	app.SetOnlyUseDefaultCommand(false)
	if _, err := app.Run(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"build", "test"}, ran); diff != "" {
		t.Errorf("ran (-want +got):\n%s", diff)
	}
}

func TestApp_ValidationStopsHandler(t *testing.T) {
	var ran []string
	command := recordingCommand("deploy", &ran)
	if _, err := command.AddOption("env", Required, OptionValueRequired, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := command.AddArgument("target", Required, ""); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		argv       []string
		wantReason ValidationReason
	}{
		// Options are checked before arguments.
		{"option and argument missing", []string{"tool", "deploy"}, MissingOption},
		{"bare value option", []string{"tool", "deploy", "--env", "web"}, MissingOptionValue},
		{"argument missing", []string{"tool", "deploy", "--env=prod"}, MissingArgument},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ran = nil
			app, _ := newTestApp(t, test.argv, "")
			testutil.RequireNoError(t, app.AddCommand(command))

			_, err := app.Run()
			validation := testutil.RequireErrorAs[*ValidationError](t, err)
			if validation.Reason != test.wantReason {
				t.Errorf("Reason = %v, want %v", validation.Reason, test.wantReason)
			}
			if len(ran) != 0 {
				t.Error("handler ran despite validation failure")
			}
			if app.State() != StateFailed {
				t.Errorf("State() = %v, want failed", app.State())
			}
		})
	}
}

func TestApp_HandlerErrorUnmodified(t *testing.T) {
	sentinel := errors.New("boom")
	app, _ := newTestApp(t, []string{"tool", "fail"}, "")
	testutil.RequireNoError(t, app.AddCommand(&Command{
		Name: "fail",
		Handler: func(app *App, output *Output, input *Input, parameter *Parameter) (any, error) {
			return "partial", sentinel
		},
	}))

	result, err := app.Run()
	if err != sentinel {
		t.Errorf("Run() error = %v, want sentinel", err)
	}
	if result != "partial" {
		t.Errorf("Run() result = %#v, want partial", result)
	}
	if app.State() != StateDone {
		t.Errorf("State() = %v, want done", app.State())
	}
}

func TestApp_StateDuringHandler(t *testing.T) {
	var during State
	app, _ := newTestApp(t, []string{"tool", "peek"}, "")
	testutil.RequireNoError(t, app.AddCommand(&Command{
		Name: "peek",
		Handler: func(app *App, output *Output, input *Input, parameter *Parameter) (any, error) {
			during = app.State()
			return nil, nil
		},
	}))

	if app.State() != StateIdle {
		t.Errorf("State() before Run = %v, want idle", app.State())
	}
	if _, err := app.Run(); err != nil {
		t.Fatal(err)
	}
	if during != StateExecuting {
		t.Errorf("State() inside handler = %v, want executing", during)
	}
}

func TestApp_AddCommandErrors(t *testing.T) {
	app, _ := newTestApp(t, []string{"tool"}, "")

	testutil.RequireErrorAs[*ConfigurationError](t, app.AddCommand(nil), "nil command")
	testutil.RequireErrorAs[*ConfigurationError](t, app.AddCommand(&Command{}), "unnamed command")

	first := &Command{Name: "build"}
	testutil.RequireNoError(t, app.AddCommand(first))
	testutil.RequireErrorAs[*ConfigurationError](t, app.AddCommand(&Command{Name: "build"}), "duplicate")
	if app.Command("build") != first {
		t.Error("duplicate registration replaced the first command")
	}
}

func TestApp_CommandNamesSorted(t *testing.T) {
	app, _ := newTestApp(t, []string{"tool"}, "")
	testutil.RequireNoError(t, app.AddCommands(&Command{Name: "zeta"}, &Command{Name: "alpha"}, &Command{Name: "mid"}))

	if diff := cmp.Diff([]string{"alpha", "mid", "zeta"}, app.CommandNames()); diff != "" {
		t.Errorf("CommandNames() (-want +got):\n%s", diff)
	}
	var names []string
	for _, command := range app.Commands() {
		names = append(names, command.Name)
	}
	if diff := cmp.Diff([]string{"alpha", "mid", "zeta"}, names); diff != "" {
		t.Errorf("Commands() (-want +got):\n%s", diff)
	}
}

func TestApp_RunWithoutHandlerReturnsFalse(t *testing.T) {
	app, _ := newTestApp(t, []string{"tool", "noop"}, "")
	testutil.RequireNoError(t, app.AddCommand(&Command{Name: "noop"}))

	result, err := app.Run()
	testutil.RequireNoError(t, err)
	if result != false {
		t.Errorf("Run() = %#v, want false", result)
	}
}

func TestApp_LogsResolution(t *testing.T) {
	var logs bytes.Buffer
	var ran []string
	app, _ := newTestApp(t, []string{"tool"}, "")
	app.SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	testutil.RequireNoError(t, app.AddCommand(recordingCommand("build", &ran)))
	app.SetDefaultCommandByName("build")

	if _, err := app.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), `msg="resolved default command" command=build`) {
		t.Errorf("logs = %q, want default resolution record", logs.String())
	}
}
