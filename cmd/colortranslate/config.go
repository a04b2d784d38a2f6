// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/colortranslator/base/iox/tomlx"
	"cogentcore.org/colortranslator/base/iox/yamlx"
	"cogentcore.org/colortranslator/translator"
	"github.com/spf13/cobra"
)

// Config is the configuration of the commands, read from a config
// file and overridden by the flags that are set.
type Config struct {
	translator.Options `yaml:",inline"`

	// To are the formats to print. Empty means all of them.
	To []translator.Format `toml:"to" yaml:"to"`

	// Swatch prints a swatch of each color.
	Swatch bool `toml:"swatch" yaml:"swatch"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Options: translator.DefaultOptions()}
}

// Open reads the config file with the given name, choosing
// TOML or YAML from its extension.
func (c *Config) Open(filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Open(c, filename)
	case ".yaml", ".yml":
		return yamlx.Open(c, filename)
	default:
		return fmt.Errorf("config file %q: unsupported extension %q", filename, ext)
	}
}

// Formats returns the formats to print.
func (c *Config) Formats() []translator.Format {
	if len(c.To) == 0 {
		return translator.Formats
	}
	return c.To
}

// loadConfig returns the configuration of the given command.
func loadConfig(cmd *cobra.Command, f *flags) (Config, error) {
	c := DefaultConfig()
	if f.config != "" {
		if err := c.Open(f.config); err != nil {
			return c, err
		}
		slog.Info("read config", "file", f.config)
	}

	fl := cmd.Flags()
	if fl.Changed("to") {
		c.To = nil
		for _, s := range f.to {
			ft, err := translator.ParseFormat(s)
			if err != nil {
				return c, err
			}
			c.To = append(c.To, ft)
		}
	}
	if fl.Changed("legacy") {
		c.Legacy = f.legacy
	}
	if fl.Changed("spaced") {
		c.Spaced = f.spaced
	}
	if fl.Changed("angle-unit") {
		c.AngleUnit = f.angleUnit
	}
	if fl.Changed("digits") {
		c.MaxDigits = f.digits
	}
	if fl.Changed("no-limit") {
		c.LimitToColorSpace = !f.noLimit
	}
	if fl.Changed("no-cache") {
		c.CacheInput = !f.noCache
	}
	if fl.Changed("swatch") {
		c.Swatch = f.swatch
	}
	if c.MaxDigits < 0 {
		return c, fmt.Errorf("invalid digits %d: must not be negative", c.MaxDigits)
	}
	return c, nil
}
