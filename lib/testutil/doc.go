// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for console packages.
//
// [RequireErrorAs] unwraps an error to a concrete type or fails the
// test, so typed-error assertions read as one line. [RequireNoError]
// fails on any error with context.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no dependencies on other packages in this module.
package testutil
