// SPDX-License-Identifier: GPL-3.0-or-later

package demo

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bassosimone/procedure"
)

// Settings configures the demonstration scenarios.
type Settings struct {
	// Procedure holds the capability flags for constructing procedures.
	//
	// Set by [DefaultSettings] to [procedure.NewConfig].
	Procedure *procedure.Config

	// Rotations is the number of rounds of the [*Rotation] scenario.
	//
	// Set by [DefaultSettings] to 4.
	Rotations int
}

// DefaultSettings returns the default [*Settings].
func DefaultSettings() *Settings {
	return &Settings{
		Procedure: procedure.NewConfig(),
		Rotations: 4,
	}
}

type fileSettings struct {
	SignalErrors      bool   `toml:"signal_errors"`
	Equality          string `toml:"equality"`
	ValidateSelectors bool   `toml:"validate_selectors"`
	Rotations         int    `toml:"rotations"`
}

// LoadSettings reads [*Settings] from the TOML file at path.
//
// Keys missing from the file keep their default value.
func LoadSettings(path string) (*Settings, error) {
	var raw fileSettings
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return applyFileSettings(meta, raw)
}

// ParseSettings is like [LoadSettings] but reads TOML from data.
func ParseSettings(data string) (*Settings, error) {
	var raw fileSettings
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return applyFileSettings(meta, raw)
}

func applyFileSettings(meta toml.MetaData, raw fileSettings) (*Settings, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown settings key %q", undecoded[0].String())
	}

	settings := DefaultSettings()

	if meta.IsDefined("signal_errors") {
		settings.Procedure.SignalErrors = raw.SignalErrors
	}

	if meta.IsDefined("equality") {
		mode, err := procedure.ParseEqualityMode(strings.TrimSpace(raw.Equality))
		if err != nil {
			return nil, fmt.Errorf("parse equality: %w", err)
		}
		settings.Procedure.Equality = mode
	}

	if meta.IsDefined("validate_selectors") {
		settings.Procedure.ValidateSelectors = raw.ValidateSelectors
	}

	if meta.IsDefined("rotations") {
		if raw.Rotations < 0 {
			return nil, fmt.Errorf("rotations must be non-negative, got %d", raw.Rotations)
		}
		settings.Rotations = raw.Rotations
	}

	return settings, nil
}
