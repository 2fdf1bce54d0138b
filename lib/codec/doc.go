// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the CBOR configuration used for machine-readable
// console output (the "list --format=cbor" manifest).
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys, smallest integer encoding, no indefinite-length items. Two runs
// over the same registry produce identical bytes, so manifests can be
// hashed or diffed.
//
// Types carry `json` struct tags only. fxamacker/cbor reads them when no
// `cbor` tag is present, so one tag set names fields in JSON, YAML
// (which has its own `yaml` tags) and CBOR alike.
//
//	data, err := codec.Marshal(manifest)
//	err = codec.Unmarshal(data, &manifest)
package codec
