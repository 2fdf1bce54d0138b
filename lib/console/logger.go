// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// LogFormat selects the slog handler built by [NewLogger].
type LogFormat string

const (
	// LogFormatAuto picks text for terminals and JSON otherwise.
	LogFormatAuto LogFormat = "auto"
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// NewLogger creates a structured logger writing to w. With
// [LogFormatAuto], a terminal gets slog.TextHandler for humans and
// anything else (pipes, files, CI) gets slog.JSONHandler for machines.
//
// Callers scope it per command:
//
//	logger := console.NewLogger(os.Stderr, slog.LevelInfo, console.LogFormatAuto).With(
//	    "command", "greet",
//	)
func NewLogger(w io.Writer, level slog.Level, format LogFormat) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if format == LogFormatAuto {
		format = LogFormatJSON
		if isTerminal(w) {
			format = LogFormatText
		}
	}
	if format == LogFormatText {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

// isTerminal reports whether w is an *os.File attached to a terminal.
func isTerminal(w any) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
