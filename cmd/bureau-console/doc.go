// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Bureau-console is a small console application built on lib/console.
// It greets, asks yes/no questions, and describes itself:
//
//	bureau-console                      greet the world (default command)
//	bureau-console greet Ada --shout    greet someone, loudly
//	bureau-console confirm "Deploy?"    ask a yes/no question on stdin
//	bureau-console relay Ada            run greet from inside another command
//	bureau-console help greet           show the help page of a command
//	bureau-console list --format=json   print the command manifest
//	bureau-console version              print build information
//
// Exit codes:
//
//	0  success
//	1  error (unknown command, invalid invocation, handler failure)
//	3  confirm was answered no
//
// Logging, log format and color are configured through
// BUREAU_CONSOLE_LOG_LEVEL, BUREAU_CONSOLE_LOG_FORMAT,
// BUREAU_CONSOLE_COLOR and NO_COLOR.
package main
