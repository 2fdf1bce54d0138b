// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// defaultHelpWidth is the wrap width when stdout is not a terminal.
const defaultHelpWidth = 80

// FlagSet projects the command's options onto a pflag.FlagSet for
// rendering the help option table. Parsing never goes through it.
func (c *Command) FlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(c.Name, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.SortFlags = false
	for _, option := range c.options {
		usage := option.description
		if option.IsRequired() {
			usage = strings.TrimSpace(usage + " (required)")
		}
		if option.policy == OptionFlag {
			flagSet.Bool(option.name, false, usage)
			continue
		}
		flagSet.String(option.name, option.defaultValue, usage)
		if option.policy == OptionValueOptional {
			// A bare optional-value option resolves to its default, or
			// to true without one.
			noValue := option.defaultValue
			if noValue == "" {
				noValue = "true"
			}
			flagSet.Lookup(option.name).NoOptDefVal = noValue
		}
	}
	return flagSet
}

// UsageLine returns the synthesized usage line, e.g.
// "tool greet [options] <name> [<title>]". Command.Usage overrides it.
func (c *Command) UsageLine(scriptName string) string {
	if c.Usage != "" {
		return c.Usage
	}
	parts := []string{programName(scriptName), c.Name}
	if len(c.options) > 0 {
		parts = append(parts, "[options]")
	}
	for _, argument := range c.arguments {
		if argument.IsRequired() {
			parts = append(parts, "<"+argument.name+">")
		} else {
			parts = append(parts, "[<"+argument.name+">]")
		}
	}
	return strings.Join(parts, " ")
}

// WriteCommandHelp writes the help page of one command: description,
// usage, arguments, options and examples.
func WriteCommandHelp(output *Output, scriptName string, command *Command) {
	width := helpWidth(output.Stdout())
	heading := output.Style().Bold(true).Foreground(output.Theme().Heading)

	if description := renderMarkdown(command.Description, output, width); description != "" {
		output.Writeln(description)
		output.Newline(1)
	}

	output.Writeln(heading.Render("Usage:"))
	output.Writeln("  " + command.UsageLine(scriptName))

	if len(command.arguments) > 0 {
		output.Newline(1)
		output.Writeln(heading.Render("Arguments:"))
		rows := make([][2]string, 0, len(command.arguments))
		for _, argument := range command.arguments {
			detail := argument.description
			if argument.IsRequired() {
				detail = strings.TrimSpace(detail + " (required)")
			} else if argument.defaultValue != "" {
				detail = strings.TrimSpace(fmt.Sprintf("%s (default %q)", detail, argument.defaultValue))
			}
			rows = append(rows, [2]string{argument.name, detail})
		}
		writeColumns(output, rows)
	}

	if len(command.options) > 0 {
		output.Newline(1)
		output.Writeln(heading.Render("Options:"))
		output.Write(command.FlagSet().FlagUsagesWrapped(width))
	}

	if len(command.Examples) > 0 {
		output.Newline(1)
		output.Writeln(heading.Render("Examples:"))
		muted := output.Style().Foreground(output.Theme().Muted)
		for index, example := range command.Examples {
			if index > 0 {
				output.Newline(1)
			}
			if example.Description != "" {
				output.Writeln(muted.Render("  # " + example.Description))
			}
			output.Writeln("  " + example.Command)
		}
	}
}

// WriteCommandList writes the registered commands with the first line
// of each description, marking the default command.
func WriteCommandList(output *Output, app *App) {
	heading := output.Style().Bold(true).Foreground(output.Theme().Heading)
	if app.Name() != "" {
		output.Writeln(app.Name())
		output.Newline(1)
	}
	output.Writeln(heading.Render("Usage:"))
	output.Writeln("  " + programName(app.Parameter().ScriptName()) + " <command> [options] [arguments]")
	output.Newline(1)
	output.Writeln(heading.Render("Available commands:"))

	nameStyle := output.Style().Foreground(output.Theme().Info)
	rows := make([][2]string, 0, len(app.commands))
	for _, command := range app.Commands() {
		summary := summaryLine(command.Description)
		if command.Name == app.DefaultCommandName() {
			summary = strings.TrimSpace(summary + " (default)")
		}
		rows = append(rows, [2]string{nameStyle.Render(command.Name), summary})
	}
	writeColumns(output, rows)
}

// writeColumns writes two-column rows indented by two spaces, padding
// the first column to its widest visible cell. Widths ignore ANSI
// escapes, which text/tabwriter would count.
func writeColumns(output *Output, rows [][2]string) {
	widest := 0
	for _, row := range rows {
		widest = max(widest, ansi.StringWidth(row[0]))
	}
	for _, row := range rows {
		padding := strings.Repeat(" ", widest-ansi.StringWidth(row[0])+3)
		output.Writeln(strings.TrimRight("  "+row[0]+padding+row[1], " "))
	}
}

// summaryLine returns the first non-empty line of a Markdown
// description with emphasis markers and backquotes removed.
func summaryLine(description string) string {
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.NewReplacer("**", "", "__", "", "`", "").Replace(line)
	}
	return ""
}

func programName(scriptName string) string {
	if scriptName == "" {
		return "console"
	}
	return filepath.Base(scriptName)
}

func helpWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return defaultHelpWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultHelpWidth
	}
	return min(width, 120)
}
