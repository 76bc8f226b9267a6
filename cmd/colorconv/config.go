// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/iox/tomlx"
	"cogentcore.org/colorspace/colors"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

// Config contains the settings for colorconv that can be
// given in a TOML config file. Command line flags override them.
type Config struct {

	// Space is the color space that colors are mixed,
	// compared, and graded in.
	Space colors.Spaces `toml:"space"`

	// Swatch is whether to print a colored swatch
	// next to each color on terminals that support it.
	Swatch bool `toml:"swatch"`

	// Amount is the default mix amount, in [0, 1].
	Amount float32 `toml:"amount"`

	// Steps is the default number of colors in a gradient.
	Steps int `toml:"steps"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{Space: colors.RGBSpace, Swatch: true, Amount: 0.5, Steps: 5}
}

// apply sets each field of the config whose flag was not set on the
// command line from the given config file. A leading ~ in the
// filename is expanded to the home directory.
func (c *Config) apply(filename string, flags *pflag.FlagSet) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	file := Defaults()
	if err := tomlx.Open(&file, filename); err != nil {
		return errors.Errorf("opening config file %q: %w", filename, err)
	}
	slog.Info("using config file", "file", filename)
	if !flags.Changed("space") {
		c.Space = file.Space
	}
	if !flags.Changed("swatch") {
		c.Swatch = file.Swatch
	}
	if !flags.Changed("amount") {
		c.Amount = file.Amount
	}
	if !flags.Changed("steps") {
		c.Steps = file.Steps
	}
	return nil
}
