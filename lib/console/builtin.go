// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "fmt"

// NewHelpCommand returns the "help" command: without an argument it
// lists the registered commands, with one it shows that command's help
// page. An unknown name fails with a [NoCommandError].
func NewHelpCommand() *Command {
	command := &Command{
		Name: "help",
		Description: "Show the available commands, or the help page of one command.\n\n" +
			"Each help page lists the command's `arguments` in positional order and its `--options`.",
		Examples: []Example{
			{Description: "List every command", Command: "help"},
			{Description: "Show how to call the list command", Command: "help list"},
		},
	}
	argument, _ := command.AddArgument("command_name", Optional, "")
	argument.SetDescription("command to describe")

	command.Handler = func(app *App, output *Output, input *Input, parameter *Parameter) (any, error) {
		name, given := parameter.Argument("command_name").Text()
		if !given {
			WriteCommandList(output, app)
			return nil, nil
		}
		target := app.Command(name)
		if target == nil {
			names := app.CommandNames()
			return nil, &NoCommandError{
				Requested:  name,
				Suggestion: suggestCommand(name, names),
				Available:  names,
			}
		}
		WriteCommandHelp(output, parameter.ScriptName(), target)
		return nil, nil
	}
	return command
}

// NewListCommand returns the "list" command, which prints the App's
// manifest as text (the help listing), JSON, YAML or CBOR.
func NewListCommand() *Command {
	command := &Command{
		Name:        "list",
		Description: "List the registered commands and their options and arguments.",
		Examples: []Example{
			{Description: "Machine-readable registry", Command: "list --format=json"},
		},
	}
	format, _ := command.AddOption("format", Optional, OptionValueRequired, "text")
	format.SetDescription("output format: text, json, yaml or cbor")

	command.Handler = func(app *App, output *Output, input *Input, parameter *Parameter) (any, error) {
		switch format := ManifestFormat(parameter.Option("format").String()); format {
		case "text":
			WriteCommandList(output, app)
			return nil, nil
		case ManifestJSON, ManifestYAML, ManifestCBOR:
			return nil, EncodeManifest(output.Stdout(), app.Manifest(), format)
		default:
			return nil, &ValidationError{
				Reason: InvalidValue,
				Name:   "--format",
				Err:    fmt.Errorf("unknown format %q (want text, json, yaml or cbor)", string(format)),
			}
		}
	}
	return command
}
