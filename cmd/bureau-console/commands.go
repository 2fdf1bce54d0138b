// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/console/lib/console"
	"github.com/bureau-foundation/console/lib/version"
)

// declinedExitCode is returned by confirm when the answer is no.
const declinedExitCode = 3

type greetParams struct {
	Name     string `argument:"name" default:"world" desc:"who to greet"`
	Greeting string `option:"greeting" value:"required" default:"Hello" desc:"the greeting word"`
	Shout    bool   `option:"shout" desc:"upper-case the whole greeting"`
	Repeat   int    `option:"repeat" value:"optional" default:"1" desc:"how many times to print the greeting"`
}

func newGreetCommand() (*console.Command, error) {
	command := &console.Command{
		Name: "greet",
		Description: "Greet someone.\n\n" +
			"The greeting is printed `--repeat` times and upper-cased with `--shout`.",
		Examples: []console.Example{
			{Description: "Greet the world", Command: appName},
			{Description: "Greet Ada twice, loudly", Command: appName + " greet Ada --shout --repeat=2"},
			{Description: "Use another greeting word", Command: appName + " greet Ada --greeting=Hi"},
		},
	}

	var params greetParams
	if err := console.BindParams(command, &params); err != nil {
		return nil, err
	}

	command.Handler = func(app *console.App, output *console.Output, input *console.Input, parameter *console.Parameter) (any, error) {
		params = greetParams{}
		if err := console.DecodeParams(parameter, &params); err != nil {
			return nil, err
		}
		if params.Repeat < 1 {
			return nil, &console.ValidationError{
				Reason: console.InvalidValue,
				Name:   "--repeat",
				Err:    fmt.Errorf("must be at least 1, got %d", params.Repeat),
			}
		}

		greeting := fmt.Sprintf("%s, %s!", params.Greeting, params.Name)
		if params.Shout {
			greeting = strings.ToUpper(greeting)
		}
		for range params.Repeat {
			output.Writeln(greeting)
		}
		return greeting, nil
	}
	return command, nil
}

func newConfirmCommand() *console.Command {
	command := &console.Command{
		Name: "confirm",
		Description: "Ask a yes/no question on standard input.\n\n" +
			"Exits 0 when the answer is yes and 3 when it is no. An empty answer, " +
			"or the end of input, picks the default: yes, or no with `--default-no`.",
		Examples: []console.Example{
			{Description: "Guard a script step", Command: appName + ` confirm "Deploy now?" && ./deploy`},
		},
	}
	question, _ := command.AddArgument("question", console.Required, "")
	question.SetDescription("the question to ask")
	defaultNo, _ := command.AddOption("default-no", console.Optional, console.OptionFlag, "")
	defaultNo.SetDescription("answer no when nothing is entered")

	command.Handler = func(app *console.App, output *console.Output, input *console.Input, parameter *console.Parameter) (any, error) {
		answerNo, err := parameter.Option("default-no").Bool()
		if err != nil {
			return nil, &console.ValidationError{Reason: console.InvalidValue, Name: "--default-no", Err: err}
		}

		answer, err := input.YesNo(parameter.Argument("question").String(), !answerNo)
		if errors.Is(err, io.EOF) {
			// The prompt is still on the current line.
			output.Newline(1)
		} else if err != nil {
			return nil, err
		}

		if !answer {
			output.WriteError("declined")
			return false, &console.ExitError{Code: declinedExitCode}
		}
		output.WriteSuccess("confirmed")
		return true, nil
	}
	return command
}

func newRelayCommand() *console.Command {
	command := &console.Command{
		Name: "relay",
		Description: "Run greet with this invocation's options and arguments.\n\n" +
			"Shows one command running another from inside its handler: greet's " +
			"descriptors are registered and validated again before it runs.",
		Examples: []console.Example{
			{Description: "Relay a loud greeting", Command: appName + " relay Ada --shout"},
		},
	}

	command.Handler = func(app *console.App, output *console.Output, input *console.Input, parameter *console.Parameter) (any, error) {
		greet := app.Command("greet")
		if greet == nil {
			return nil, fmt.Errorf("relay: greet is not registered")
		}

		output.Progress("relaying to greet...")
		if err := parameter.SetCommandOptions(greet.Options()); err != nil {
			return nil, err
		}
		if err := parameter.SetCommandArguments(greet.Arguments()); err != nil {
			return nil, err
		}
		if err := parameter.CheckCommandOptions(); err != nil {
			return nil, err
		}
		if err := parameter.CheckCommandArguments(); err != nil {
			return nil, err
		}
		output.Progress("relayed to greet")
		output.ResetProgress()
		output.Newline(1)

		app.Logger().Debug("relaying", "from", "relay", "to", greet.Name)
		result, err := greet.Run()
		if err != nil {
			return nil, fmt.Errorf("relay: %w", err)
		}
		return result, nil
	}
	return command
}

func newVersionCommand() *console.Command {
	command := &console.Command{
		Name:        "version",
		Description: "Print build information.",
		Examples: []console.Example{
			{Description: "Version with Go toolchain and platform", Command: appName + " version --full"},
			{Description: "Machine-readable build information", Command: appName + " version --format=json"},
		},
	}
	full, _ := command.AddOption("full", console.Optional, console.OptionFlag, "")
	full.SetDescription("include the Go version and platform")
	format, _ := command.AddOption("format", console.Optional, console.OptionValueRequired, "text")
	format.SetDescription("output format: text, json or yaml")

	command.Handler = func(app *console.App, output *console.Output, input *console.Input, parameter *console.Parameter) (any, error) {
		showFull, err := parameter.Option("full").Bool()
		if err != nil {
			return nil, &console.ValidationError{Reason: console.InvalidValue, Name: "--full", Err: err}
		}

		build := version.Current()
		switch format := parameter.Option("format").String(); format {
		case "text":
			if showFull {
				output.Writeln(appName + " " + version.Full())
			} else {
				output.Writeln(appName + " " + version.Info())
			}
		case "json":
			encoder := json.NewEncoder(output.Stdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(build); err != nil {
				return nil, err
			}
		case "yaml":
			encoder := yaml.NewEncoder(output.Stdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(build); err != nil {
				return nil, err
			}
			if err := encoder.Close(); err != nil {
				return nil, err
			}
		default:
			return nil, &console.ValidationError{
				Reason: console.InvalidValue,
				Name:   "--format",
				Err:    fmt.Errorf("unknown format %q (want text, json or yaml)", format),
			}
		}
		return build, nil
	}
	return command
}
