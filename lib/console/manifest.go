// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/console/lib/codec"
)

// Manifest describes an App's command registry for machine consumers.
// The CBOR encoding reuses the json tags.
type Manifest struct {
	Name                  string            `json:"name,omitempty" yaml:"name,omitempty"`
	DefaultCommand        string            `json:"default_command,omitempty" yaml:"default_command,omitempty"`
	OnlyUseDefaultCommand bool              `json:"only_use_default_command,omitempty" yaml:"only_use_default_command,omitempty"`
	Commands              []CommandManifest `json:"commands" yaml:"commands"`
}

// CommandManifest describes one command.
type CommandManifest struct {
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Options     []OptionManifest   `json:"options,omitempty" yaml:"options,omitempty"`
	Arguments   []ArgumentManifest `json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// OptionManifest describes one option. Value is the value policy:
// "flag", "optional" or "required".
type OptionManifest struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool   `json:"required" yaml:"required"`
	Value       string `json:"value" yaml:"value"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
}

// ArgumentManifest describes one positional argument. Position is
// 1-based.
type ArgumentManifest struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Position    int    `json:"position" yaml:"position"`
	Required    bool   `json:"required" yaml:"required"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
}

// Manifest snapshots the registry, commands sorted by name.
func (a *App) Manifest() Manifest {
	manifest := Manifest{
		Name:                  a.name,
		DefaultCommand:        a.defaultCommand,
		OnlyUseDefaultCommand: a.onlyUseDefaultCommand,
		Commands:              []CommandManifest{},
	}
	for _, command := range a.Commands() {
		entry := CommandManifest{
			Name:        command.Name,
			Description: command.Description,
		}
		for _, option := range command.options {
			entry.Options = append(entry.Options, OptionManifest{
				Name:        option.name,
				Description: option.description,
				Required:    option.IsRequired(),
				Value:       option.policy.String(),
				Default:     option.defaultValue,
			})
		}
		for index, argument := range command.arguments {
			entry.Arguments = append(entry.Arguments, ArgumentManifest{
				Name:        argument.name,
				Description: argument.description,
				Position:    index + 1,
				Required:    argument.IsRequired(),
				Default:     argument.defaultValue,
			})
		}
		manifest.Commands = append(manifest.Commands, entry)
	}
	return manifest
}

// ManifestFormat is a machine-readable manifest encoding.
type ManifestFormat string

const (
	ManifestJSON ManifestFormat = "json"
	ManifestYAML ManifestFormat = "yaml"
	ManifestCBOR ManifestFormat = "cbor"
)

// EncodeManifest writes manifest to w in format.
func EncodeManifest(w io.Writer, manifest Manifest, format ManifestFormat) error {
	switch format {
	case ManifestJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(manifest)
	case ManifestYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(manifest); err != nil {
			return err
		}
		return encoder.Close()
	case ManifestCBOR:
		data, err := codec.Marshal(manifest)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown manifest format %q", format)
}
