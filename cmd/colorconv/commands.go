// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/colors"
	"github.com/spf13/cobra"
)

// ParseColor parses a color given on the command line. It accepts
// the text forms of every color space, such as "rgb(255, 0, 0)",
// "cmyk(0, 255, 255, 0)", and "hsl(0, 1, 0.5)", in addition to
// hex codes and CSS color names (see [colors.Parse]).
func ParseColor(s string) (colors.RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	text := []byte(strings.ReplaceAll(s, " ", ""))
	var err error
	switch {
	case strings.HasPrefix(s, "rgb("):
		var r, g, b uint8
		_, err = fmt.Sscanf(string(text), "rgb(%d,%d,%d)", &r, &g, &b)
		if err == nil {
			return colors.NewRGB(r, g, b), nil
		}
	case strings.HasPrefix(s, "cmyk("):
		var c colors.CMYK
		if err = c.UnmarshalText(text); err == nil {
			return c.RGB(), nil
		}
	case strings.HasPrefix(s, "hsl("):
		var c colors.HSL
		if err = c.UnmarshalText(text); err == nil {
			return c.RGB(), nil
		}
	case strings.HasPrefix(s, "hsv("):
		var c colors.HSV
		if err = c.UnmarshalText(text); err == nil {
			return c.RGB(), nil
		}
	case strings.HasPrefix(s, "xyz("):
		var c colors.XYZ
		if err = c.UnmarshalText(text); err == nil {
			return c.RGB(), nil
		}
	default:
		return colors.Parse(s)
	}
	return colors.RGB{}, errors.Errorf("invalid color %q: %w", s, err)
}

// parseColors parses all of the given colors.
func parseColors(args []string) ([]colors.RGB, error) {
	res := make([]colors.RGB, len(args))
	for i, arg := range args {
		c, err := ParseColor(arg)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}

// swatch returns a colored block for the given color if swatches are on
// and the output supports colors, and otherwise the empty string.
func (a *App) swatch(c colors.RGB) string {
	if !a.Swatch || a.out == nil {
		return ""
	}
	s := a.out.String("  ").Background(a.out.Color(c.HexCode())).String()
	if s == "  " {
		return ""
	}
	return s + " "
}

// name returns the CSS name of the given color, or the nearest
// CSS name preceded by a '~' if it has none.
func name(c colors.RGB) string {
	if n, ok := colors.NameOf(c); ok {
		return n
	}
	return "~" + colors.Nearest(c)
}

// printColor prints the given color as a hex code with its name.
func (a *App) printColor(cmd *cobra.Command, c colors.RGB) {
	cmd.Printf("%s%s %s\n", a.swatch(c), c.HexCode(), name(c))
}

func (a *App) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>...",
		Short: "Print colors in every color space",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			for i, c := range cs {
				if i > 0 {
					cmd.Println()
				}
				a.printColor(cmd, c)
				for _, s := range colors.SpacesValues() {
					cmd.Println(s.Convert(c))
				}
			}
			return nil
		},
	}
}

func (a *App) mixCmd() *cobra.Command {
	var cubic bool
	var startSlope, endSlope float32
	cmd := &cobra.Command{
		Use:   "mix <start> <end>",
		Short: "Interpolate between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			slog.Debug("mixing", "start", cs[0], "end", cs[1], "space", a.Space, "amount", a.Amount, "cubic", cubic)
			var c colors.RGB
			if cubic {
				c = a.Space.Cerp(cs[0], cs[1], startSlope, endSlope, a.Amount)
			} else {
				c = a.Space.Lerp(cs[0], cs[1], a.Amount)
			}
			a.printColor(cmd, c)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float32VarP(&a.Amount, "amount", "a", a.Amount, "amount of the end color, in [0, 1]")
	f.BoolVar(&cubic, "cubic", false, "use cubic instead of linear interpolation")
	f.Float32Var(&startSlope, "start-slope", 0, "slope at the start color for --cubic")
	f.Float32Var(&endSlope, "end-slope", 0, "slope at the end color for --cubic")
	return cmd
}

func (a *App) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Print the distance between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			cmd.Printf("%g\n", a.Space.Distance(cs[0], cs[1]))
			return nil
		},
	}
}
