// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorconv converts, mixes, and compares colors across the
// RGB, CMYK, HSL, HSV, and XYZ color spaces, and works with palettes.
package main

import (
	"io"
	"os"

	"cogentcore.org/colorspace/base/logx"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// App is the state shared by the colorconv commands.
type App struct {
	Config

	// ConfigFile is the TOML config file given with --config.
	ConfigFile string

	// Verbose, VeryVerbose, and Quiet select the logging level.
	Verbose, VeryVerbose, Quiet bool

	out *termenv.Output
}

// newRootCmd returns the root colorconv command, writing its results to w.
func newRootCmd(w io.Writer) *cobra.Command {
	a := &App{Config: Defaults()}
	root := &cobra.Command{
		Use:          "colorconv",
		Short:        "Convert, mix, and compare colors",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(a.VeryVerbose, a.Verbose, a.Quiet)
			logx.SetDefaultLogger()
			a.out = termenv.NewOutput(cmd.OutOrStdout())
			if a.ConfigFile == "" {
				return nil
			}
			return a.Config.apply(a.ConfigFile, cmd.Flags())
		},
	}
	root.SetOut(w)

	pf := root.PersistentFlags()
	pf.StringVar(&a.ConfigFile, "config", "", "TOML config file")
	pf.BoolVarP(&a.Verbose, "verbose", "v", false, "show informational log messages")
	pf.BoolVar(&a.VeryVerbose, "vv", false, "show debug log messages")
	pf.BoolVarP(&a.Quiet, "quiet", "q", false, "only show error log messages")
	pf.VarP(&a.Space, "space", "s", "color space: rgb, cmyk, hsl, hsv, or xyz")
	pf.BoolVar(&a.Swatch, "swatch", a.Swatch, "print a colored swatch next to each color")

	root.AddCommand(a.convertCmd(), a.mixCmd(), a.distanceCmd(), a.paletteCmd())
	return root
}
