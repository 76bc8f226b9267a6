// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"

	"cogentcore.org/colorspace/base/errors"
)

// Spaces are the color spaces, for selecting the space that an
// interpolation or distance is computed in. It implements
// [encoding.TextMarshaler] and the pflag.Value interface so that it
// can be used directly in configuration files and command line flags.
type Spaces int32

const (
	RGBSpace Spaces = iota
	CMYKSpace
	HSLSpace
	HSVSpace
	XYZSpace
)

var spaceNames = [...]string{"rgb", "cmyk", "hsl", "hsv", "xyz"}

// SpacesValues returns all of the color spaces.
func SpacesValues() []Spaces {
	return []Spaces{RGBSpace, CMYKSpace, HSLSpace, HSVSpace, XYZSpace}
}

// String returns the lower case name of the space.
func (s Spaces) String() string {
	if s < 0 || int(s) >= len(spaceNames) {
		return fmt.Sprintf("Spaces(%d)", int32(s))
	}
	return spaceNames[s]
}

// SetString sets the space from its name, ignoring case.
func (s *Spaces) SetString(name string) error {
	for i, n := range spaceNames {
		if strings.EqualFold(n, name) {
			*s = Spaces(i)
			return nil
		}
	}
	return errors.Errorf("colors.Spaces.SetString: %q is not one of %s", name, strings.Join(spaceNames[:], ", "))
}

// Set is equivalent to [Spaces.SetString], for the pflag.Value interface.
func (s *Spaces) Set(name string) error { return s.SetString(name) }

// Type returns the type name for the pflag.Value interface.
func (s *Spaces) Type() string { return "space" }

func (s Spaces) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Spaces) UnmarshalText(text []byte) error { return s.SetString(string(text)) }

// Convert returns the given color in this space.
func (s Spaces) Convert(c Space) Space {
	switch s {
	case CMYKSpace:
		return c.CMYK()
	case HSLSpace:
		return c.HSL()
	case HSVSpace:
		return c.HSV()
	case XYZSpace:
		return c.XYZ()
	default:
		return c.RGB()
	}
}

// Lerp returns the linear interpolation between the given colors in
// this space, at the given amount in [0, 1].
func (s Spaces) Lerp(start, end Space, amount float32) RGB {
	switch s {
	case CMYKSpace:
		return start.CMYK().Lerp(end, amount).RGB()
	case HSLSpace:
		return start.HSL().Lerp(end, amount).RGB()
	case HSVSpace:
		return start.HSV().Lerp(end, amount).RGB()
	case XYZSpace:
		return start.XYZ().Lerp(end, amount).RGB()
	default:
		return start.RGB().Lerp(end, amount)
	}
}

// Cerp returns the cubic interpolation between the given colors in
// this space, at the given amount in [0, 1] and with the given slopes.
func (s Spaces) Cerp(start, end Space, startSlope, endSlope, amount float32) RGB {
	switch s {
	case CMYKSpace:
		return start.CMYK().Cerp(end, startSlope, endSlope, amount).RGB()
	case HSLSpace:
		return start.HSL().Cerp(end, startSlope, endSlope, amount).RGB()
	case HSVSpace:
		return start.HSV().Cerp(end, startSlope, endSlope, amount).RGB()
	case XYZSpace:
		return start.XYZ().Cerp(end, startSlope, endSlope, amount).RGB()
	default:
		return start.RGB().Cerp(end, startSlope, endSlope, amount)
	}
}

// Distance returns the distance between the given colors in this space.
func (s Spaces) Distance(a, b Space) float32 {
	switch s {
	case CMYKSpace:
		return a.CMYK().Distance(b)
	case HSLSpace:
		return a.HSL().Distance(b)
	case HSVSpace:
		return a.HSV().Distance(b)
	case XYZSpace:
		return a.XYZ().Distance(b)
	default:
		return a.RGB().Distance(b)
	}
}
