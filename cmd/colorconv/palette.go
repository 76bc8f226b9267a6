// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/iox/imagex"
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/palette"
	"github.com/spf13/cobra"
)

// swatchSize is the size in pixels of each color in a rendered palette image.
const swatchSize = 32

func (a *App) paletteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Work with palettes of named colors",
		Long: `Work with palettes of named colors. A palette is either the name of a
built in palette or a TOML, YAML, or JSON palette file.`,
	}
	cmd.AddCommand(a.paletteListCmd(), a.paletteNearestCmd(), a.paletteGradientCmd())
	return cmd
}

func (a *App) paletteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [palette]",
		Short: "List the built in palettes or the colors of a palette",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, n := range palette.Builtins() {
					cmd.Println(n)
				}
				return nil
			}
			p, err := palette.Load(args[0])
			if err != nil {
				return err
			}
			for _, e := range p.Entries {
				cmd.Printf("%s%s %s\n", a.swatch(e.Color), e.Color.HexCode(), e.Name)
			}
			return nil
		},
	}
}

func (a *App) paletteNearestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nearest <palette> <color>...",
		Short: "Find the closest palette entry to each color",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := palette.Load(args[0])
			if err != nil {
				return err
			}
			if p.Len() == 0 {
				return errors.Errorf("palette %q has no colors", args[0])
			}
			cs, err := parseColors(args[1:])
			if err != nil {
				return err
			}
			for _, c := range cs {
				e, d := p.NearestIn(a.Space, c)
				cmd.Printf("%s %s%s %s %g\n", c.HexCode(), a.swatch(e.Color), e.Color.HexCode(), e.Name, d)
			}
			return nil
		},
	}
}

func (a *App) paletteGradientCmd() *cobra.Command {
	var name, out, imageFile string
	cmd := &cobra.Command{
		Use:   "gradient <start> <end>",
		Short: "Make a palette of colors evenly spaced between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			p := palette.NewGradient(name, cs[0], cs[1], a.Steps, a.Space)
			for _, e := range p.Entries {
				a.printColor(cmd, e.Color)
			}
			if out != "" {
				if err := p.Save(out); err != nil {
					return err
				}
				slog.Info("saved palette", "file", out)
			}
			if imageFile != "" {
				img := colors.Strip(p.Colors(), swatchSize*p.Len(), swatchSize)
				if err := imagex.Save(img, imageFile); err != nil {
					return err
				}
				slog.Info("saved image", "file", imageFile)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&a.Steps, "steps", "n", a.Steps, "number of colors")
	f.StringVar(&name, "name", "gradient", "name of the palette")
	f.StringVarP(&out, "out", "o", "", "save the palette to this TOML, YAML, or JSON file")
	f.StringVar(&imageFile, "image", "", "save a swatch image to this PNG, JPEG, GIF, TIFF, or BMP file")
	return cmd
}
