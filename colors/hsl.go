// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math32"
)

// HSL is a color in the HSL space: hue in degrees in [0, 360),
// and saturation and lightness in [0, 1]. Its components can only
// be set through its setters, which keep them in range.
type HSL struct {
	h, s, l float32
}

// NewHSL returns a new [HSL] color with the given components,
// normalized as by [HSL.SetHue], [HSL.SetSaturation], and
// [HSL.SetLightness].
func NewHSL(hue, saturation, lightness float32) HSL {
	var c HSL
	c.SetHue(hue)
	c.SetSaturation(saturation)
	c.SetLightness(lightness)
	return c
}

// HSLFromComponents returns a new [HSL] color from the given
// hue, saturation, and lightness.
func HSLFromComponents(comps [3]float32) HSL {
	return NewHSL(comps[0], comps[1], comps[2])
}

// Hue returns the hue in degrees, in [0, 360).
func (c HSL) Hue() float32 { return c.h }

// Saturation returns the saturation, in [0, 1].
func (c HSL) Saturation() float32 { return c.s }

// Lightness returns the lightness, in [0, 1].
func (c HSL) Lightness() float32 { return c.l }

// SetHue sets the hue in degrees, wrapping it into [0, 360).
// It panics if the hue is infinite or NaN.
func (c *HSL) SetHue(hue float32) {
	if !math32.IsFinite(hue) {
		panic(fmt.Sprintf("colors.HSL.SetHue: hue must be finite, got %g", hue))
	}
	c.h = math32.NormalizeHue(hue)
}

// SetSaturation sets the saturation, clamped to [0, 1].
func (c *HSL) SetSaturation(saturation float32) {
	c.s = math32.Clamp(saturation, 0, 1)
}

// SetLightness sets the lightness, clamped to [0, 1].
func (c *HSL) SetLightness(lightness float32) {
	c.l = math32.Clamp(lightness, 0, 1)
}

// Components returns the hue, saturation, and lightness.
func (c HSL) Components() [3]float32 {
	return [3]float32{c.h, c.s, c.l}
}

// String returns the color in the form "hsl(h, s, l)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", c.h, c.s, c.l)
}

// RGBA implements the [color.Color] interface.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return rgba(c.RGB())
}

// MarshalText implements [encoding.TextMarshaler] using [HSL.String].
func (c HSL) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], accepting
// the form returned by [HSL.String].
func (c *HSL) UnmarshalText(text []byte) error {
	var h, s, l float32
	_, err := fmt.Sscanf(string(text), "hsl(%g,%g,%g)", &h, &s, &l)
	if err != nil {
		return errors.Errorf("colors.HSL.UnmarshalText: %q: %w", text, err)
	}
	if !math32.IsFinite(h) {
		return errors.Errorf("colors.HSL.UnmarshalText: %q: hue must be finite", text)
	}
	*c = NewHSL(h, s, l)
	return nil
}

// Lerp returns the per-component linear interpolation between this color
// and the given end color (converted to HSL) at the given amount in [0, 1].
// The hue is interpolated in degrees without wrapping around, so the
// path from 350° to 10° passes through 180°.
func (c HSL) Lerp(end Space, amount float32) HSL {
	e := end.HSL()
	return NewHSL(
		math32.Lerp(c.h, e.h, amount),
		math32.Lerp(c.s, e.s, amount),
		math32.Lerp(c.l, e.l, amount),
	)
}

// Cerp returns the per-component cubic interpolation between this color
// and the given end color (converted to HSL) at the given amount in [0, 1].
// The hue is interpolated as in [HSL.Lerp].
func (c HSL) Cerp(end Space, startSlope, endSlope, amount float32) HSL {
	e := end.HSL()
	return NewHSL(
		math32.Cerp(c.h, e.h, startSlope, endSlope, amount),
		math32.Cerp(c.s, e.s, startSlope, endSlope, amount),
		math32.Cerp(c.l, e.l, startSlope, endSlope, amount),
	)
}

// Distance returns the distance between this color and the given color
// (converted to HSL) in a cone embedding of the space, where the hue is
// an angle on a circle of radius twice the lightness and the saturation
// is the height.
func (c HSL) Distance(other Space) float32 {
	o := other.HSL()
	return hueDistance(c.h, c.s, c.l, o.h, o.s, o.l)
}

// HSL returns the color itself, implementing [Space].
func (c HSL) HSL() HSL {
	return c
}

// RGB converts the color to the RGB space.
func (c HSL) RGB() RGB {
	chroma := (1 - math32.Abs(2*c.l-1)) * c.s
	return rgbFromChroma(c.h, chroma, c.l-chroma/2)
}

func (c HSL) CMYK() CMYK { return c.RGB().CMYK() }
func (c HSL) HSV() HSV   { return c.RGB().HSV() }
func (c HSL) XYZ() XYZ   { return c.RGB().XYZ() }

// HSL converts the color to the HSL space. Grays have zero hue and
// saturation.
func (c RGB) HSL() HSL {
	r := c.Ratios()
	lo, hi, hiIndex := channelExtent(r)
	l := (hi + lo) / 2
	if math32.NearlyEqual(hi, lo) {
		return HSL{l: l}
	}
	delta := hi - lo
	var s float32
	if l > 0.5 {
		s = delta / (2 - hi - lo)
	} else {
		s = delta / (hi + lo)
	}
	return NewHSL(hueFromRatios(r, delta, hiIndex, false), s, l)
}
