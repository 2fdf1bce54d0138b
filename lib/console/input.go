// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Input is the line-oriented source for interactive answers. The
// parser never reads from it; only handlers that prompt do.
type Input struct {
	source io.Reader
	reader *bufio.Reader
	output *Output
}

// NewInput reads lines from reader. Prompts are written to output,
// which may be nil for silent input.
func NewInput(reader io.Reader, output *Output) *Input {
	return &Input{
		source: reader,
		reader: bufio.NewReader(reader),
		output: output,
	}
}

// Line reads one line of any length with surrounding whitespace
// trimmed. A final line without a line break is still returned; after
// it, Line returns "" and io.EOF.
func (i *Input) Line() (string, error) {
	line, err := i.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Hidden reads one line without echoing it when the reader is a
// terminal. Other readers, and input already buffered by an earlier
// read, go through [Input.Line].
func (i *Input) Hidden() (string, error) {
	file, ok := i.source.(*os.File)
	if !ok || i.reader.Buffered() > 0 || !term.IsTerminal(int(file.Fd())) {
		return i.Line()
	}
	secret, err := term.ReadPassword(int(file.Fd()))
	if i.output != nil {
		i.output.Newline(1)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}

// YesNo asks question until the answer is y/yes or n/no
// (case-insensitive). An empty answer picks defaultYes. At end of input
// it returns defaultYes with io.EOF.
func (i *Input) YesNo(question string, defaultYes bool) (bool, error) {
	hint := " [y/N] "
	if defaultYes {
		hint = " [Y/n] "
	}
	for {
		if i.output != nil {
			i.output.Write(strings.TrimSpace(question) + hint)
		}
		answer, err := i.Line()
		if errors.Is(err, io.EOF) {
			return defaultYes, io.EOF
		}
		if err != nil {
			return defaultYes, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			return defaultYes, nil
		}
		if i.output != nil {
			i.output.Writeln("Enter y/yes or n/no.")
		}
	}
}
