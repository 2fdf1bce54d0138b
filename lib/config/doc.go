// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides environment configuration for console
// binaries.
//
// Configuration comes from environment variables only. There is no
// configuration file and no discovery: what the process environment
// says is what the binary does.
//
//   - BUREAU_CONSOLE_LOG_LEVEL: debug, info, warn or error (default warn)
//   - BUREAU_CONSOLE_LOG_FORMAT: auto, text or json (default auto)
//   - BUREAU_CONSOLE_COLOR: auto, always or never (default auto)
//   - NO_COLOR: when non-empty, forces color off (https://no-color.org)
//
// [Load] takes the lookup function as a parameter so tests never touch
// the real environment; binaries pass [os.LookupEnv].
//
// This package depends on no other packages in this module.
package config
