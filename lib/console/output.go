// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// ColorMode controls whether [Output] emits ANSI colors.
type ColorMode string

const (
	// ColorAuto detects color support per writer.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces 256-color output.
	ColorAlways ColorMode = "always"
	// ColorNever strips all styling.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts "auto", "always" or "never" into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(s); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// Theme is the palette Output styles with. Colors are ANSI 256-color
// codes for broad terminal compatibility.
type Theme struct {
	Error   lipgloss.Color
	Info    lipgloss.Color
	Success lipgloss.Color
	Muted   lipgloss.Color
	Heading lipgloss.Color

	// BlockForeground is the text color inside error/info/success
	// blocks, which use the matching color above as background.
	BlockForeground lipgloss.Color
}

// DefaultTheme is the palette NewOutput starts with.
var DefaultTheme = Theme{
	Error:           lipgloss.Color("160"),
	Info:            lipgloss.Color("33"),
	Success:         lipgloss.Color("34"),
	Muted:           lipgloss.Color("245"),
	Heading:         lipgloss.Color("214"),
	BlockForeground: lipgloss.Color("231"),
}

// Output is the line-oriented sink commands write to. Regular output
// goes to stdout; errors go to stderr.
type Output struct {
	stdout io.Writer
	stderr io.Writer

	stdoutRenderer *lipgloss.Renderer
	stderrRenderer *lipgloss.Renderer
	terminal       *termenv.Output

	theme          Theme
	progressLength int
}

// NewOutput returns an Output with color detected per writer.
func NewOutput(stdout, stderr io.Writer) *Output {
	output := &Output{
		stdout:         stdout,
		stderr:         stderr,
		stdoutRenderer: lipgloss.NewRenderer(stdout),
		stderrRenderer: lipgloss.NewRenderer(stderr),
		terminal:       termenv.NewOutput(stdout),
		theme:          DefaultTheme,
	}
	return output
}

// SetColor forces or restores color detection on both writers.
func (o *Output) SetColor(mode ColorMode) {
	switch mode {
	case ColorAlways:
		// SetColorProfile is needed: the renderer otherwise re-detects
		// from the environment and finds no TTY.
		o.stdoutRenderer = lipgloss.NewRenderer(o.stdout, termenv.WithProfile(termenv.ANSI256))
		o.stdoutRenderer.SetColorProfile(termenv.ANSI256)
		o.stderrRenderer = lipgloss.NewRenderer(o.stderr, termenv.WithProfile(termenv.ANSI256))
		o.stderrRenderer.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		o.stdoutRenderer = lipgloss.NewRenderer(o.stdout, termenv.WithProfile(termenv.Ascii))
		o.stdoutRenderer.SetColorProfile(termenv.Ascii)
		o.stderrRenderer = lipgloss.NewRenderer(o.stderr, termenv.WithProfile(termenv.Ascii))
		o.stderrRenderer.SetColorProfile(termenv.Ascii)
	default:
		o.stdoutRenderer = lipgloss.NewRenderer(o.stdout)
		o.stderrRenderer = lipgloss.NewRenderer(o.stderr)
	}
}

// SetTheme replaces the palette.
func (o *Output) SetTheme(theme Theme) { o.theme = theme }

// Theme returns the palette.
func (o *Output) Theme() Theme { return o.theme }

// ColorEnabled reports whether stdout styling emits escape codes.
func (o *Output) ColorEnabled() bool {
	return o.stdoutRenderer.ColorProfile() != termenv.Ascii
}

// Stdout returns the regular output writer.
func (o *Output) Stdout() io.Writer { return o.stdout }

// Stderr returns the error output writer.
func (o *Output) Stderr() io.Writer { return o.stderr }

// Style returns a new lipgloss style bound to the stdout renderer.
func (o *Output) Style() lipgloss.Style { return o.stdoutRenderer.NewStyle() }

// Write writes text without a line break.
func (o *Output) Write(text string) {
	io.WriteString(o.stdout, text)
}

// Writeln writes text followed by a line break.
func (o *Output) Writeln(text string) {
	io.WriteString(o.stdout, text+"\n")
}

// Writelns writes each line followed by a line break.
func (o *Output) Writelns(lines ...string) {
	for _, line := range lines {
		o.Writeln(line)
	}
}

// Newline writes count line breaks (at least one).
func (o *Output) Newline(count int) {
	io.WriteString(o.stdout, strings.Repeat("\n", max(count, 1)))
}

// WriteError writes an error line to stderr.
func (o *Output) WriteError(text string) {
	style := o.stderrRenderer.NewStyle().Foreground(o.theme.Error)
	io.WriteString(o.stderr, style.Render(text)+"\n")
}

// WriteInfo writes an informational line.
func (o *Output) WriteInfo(text string) {
	io.WriteString(o.stdout, o.Style().Foreground(o.theme.Info).Render(text)+"\n")
}

// WriteSuccess writes a success line.
func (o *Output) WriteSuccess(text string) {
	io.WriteString(o.stdout, o.Style().Foreground(o.theme.Success).Render(text)+"\n")
}

// WriteErrorBlock writes lines as a padded, highlighted block on
// stderr.
func (o *Output) WriteErrorBlock(lines ...string) {
	o.writeBlock(o.stderr, o.stderrRenderer, o.theme.Error, lines)
}

// WriteInfoBlock writes lines as a padded, highlighted block.
func (o *Output) WriteInfoBlock(lines ...string) {
	o.writeBlock(o.stdout, o.stdoutRenderer, o.theme.Info, lines)
}

// WriteSuccessBlock writes lines as a padded, highlighted block.
func (o *Output) WriteSuccessBlock(lines ...string) {
	o.writeBlock(o.stdout, o.stdoutRenderer, o.theme.Success, lines)
}

func (o *Output) writeBlock(w io.Writer, renderer *lipgloss.Renderer, background lipgloss.Color, lines []string) {
	if len(lines) == 0 {
		return
	}
	style := renderer.NewStyle().
		Background(background).
		Foreground(o.theme.BlockForeground).
		Padding(1, 2)
	io.WriteString(w, style.Render(strings.Join(lines, "\n"))+"\n")
}

// Progress writes message over the previous progress message on the
// same line, padding with spaces when the new message is shorter.
func (o *Output) Progress(message string) {
	if o.progressLength > 0 {
		o.terminal.CursorBack(o.progressLength)
	}
	previousLength := o.progressLength
	o.progressLength = ansi.StringWidth(message)
	if previousLength > o.progressLength {
		message += strings.Repeat(" ", previousLength-o.progressLength)
		// Park the cursor after the visible message so the next
		// progress call moves back the right distance.
		io.WriteString(o.stdout, message)
		o.terminal.CursorBack(previousLength - o.progressLength)
		return
	}
	io.WriteString(o.stdout, message)
}

// ResetProgress forgets the previous progress message, so the next
// Progress call starts fresh instead of overwriting.
func (o *Output) ResetProgress() {
	o.progressLength = 0
}
