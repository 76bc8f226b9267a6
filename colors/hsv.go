// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math32"
)

// HSV is a color in the HSV space: hue in degrees in [0, 360),
// and saturation and value in [0, 1]. Its components can only
// be set through its setters, which keep them in range.
type HSV struct {
	h, s, v float32
}

// NewHSV returns a new [HSV] color with the given components,
// normalized as by [HSV.SetHue], [HSV.SetSaturation], and
// [HSV.SetValue].
func NewHSV(hue, saturation, value float32) HSV {
	var c HSV
	c.SetHue(hue)
	c.SetSaturation(saturation)
	c.SetValue(value)
	return c
}

// HSVFromComponents returns a new [HSV] color from the given
// hue, saturation, and value.
func HSVFromComponents(comps [3]float32) HSV {
	return NewHSV(comps[0], comps[1], comps[2])
}

func (c HSV) Hue() float32        { return c.h }
func (c HSV) Saturation() float32 { return c.s }
func (c HSV) Value() float32      { return c.v }

// SetHue sets the hue in degrees, wrapping it into [0, 360).
// It panics if the hue is infinite or NaN.
func (c *HSV) SetHue(hue float32) {
	if !math32.IsFinite(hue) {
		panic(fmt.Sprintf("colors.HSV.SetHue: hue must be finite, got %g", hue))
	}
	c.h = math32.NormalizeHue(hue)
}

// SetSaturation sets the saturation, clamped to [0, 1].
func (c *HSV) SetSaturation(saturation float32) {
	c.s = math32.Clamp(saturation, 0, 1)
}

// SetValue sets the value, clamped to [0, 1].
func (c *HSV) SetValue(value float32) {
	c.v = math32.Clamp(value, 0, 1)
}

// Components returns the hue, saturation, and value.
func (c HSV) Components() [3]float32 {
	return [3]float32{c.h, c.s, c.v}
}

// String returns the color in the form "hsv(h, s, v)".
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%g, %g, %g)", c.h, c.s, c.v)
}

// RGBA implements the [color.Color] interface.
func (c HSV) RGBA() (r, g, b, a uint32) {
	return rgba(c.RGB())
}

// MarshalText implements [encoding.TextMarshaler] using [HSV.String].
func (c HSV) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], accepting
// the form returned by [HSV.String].
func (c *HSV) UnmarshalText(text []byte) error {
	var h, s, v float32
	_, err := fmt.Sscanf(string(text), "hsv(%g,%g,%g)", &h, &s, &v)
	if err != nil {
		return errors.Errorf("colors.HSV.UnmarshalText: %q: %w", text, err)
	}
	if !math32.IsFinite(h) {
		return errors.Errorf("colors.HSV.UnmarshalText: %q: hue must be finite", text)
	}
	*c = NewHSV(h, s, v)
	return nil
}

// Lerp returns the per-component linear interpolation between this color
// and the given end color (converted to HSV) at the given amount in [0, 1].
// Like [HSL.Lerp], the hue does not wrap around.
func (c HSV) Lerp(end Space, amount float32) HSV {
	e := end.HSV()
	return NewHSV(
		math32.Lerp(c.h, e.h, amount),
		math32.Lerp(c.s, e.s, amount),
		math32.Lerp(c.v, e.v, amount),
	)
}

// Cerp returns the per-component cubic interpolation between this color
// and the given end color (converted to HSV) at the given amount in [0, 1].
func (c HSV) Cerp(end Space, startSlope, endSlope, amount float32) HSV {
	e := end.HSV()
	return NewHSV(
		math32.Cerp(c.h, e.h, startSlope, endSlope, amount),
		math32.Cerp(c.s, e.s, startSlope, endSlope, amount),
		math32.Cerp(c.v, e.v, startSlope, endSlope, amount),
	)
}

// Distance returns the distance between this color and the given color
// (converted to HSV) in the same cone embedding as [HSL.Distance],
// with the value in place of the lightness.
func (c HSV) Distance(other Space) float32 {
	o := other.HSV()
	return hueDistance(c.h, c.s, c.v, o.h, o.s, o.v)
}

// HSV returns the color itself, implementing [Space].
func (c HSV) HSV() HSV {
	return c
}

// RGB converts the color to the RGB space.
func (c HSV) RGB() RGB {
	chroma := c.v * c.s
	return rgbFromChroma(c.h, chroma, c.v-chroma)
}

func (c HSV) CMYK() CMYK { return c.RGB().CMYK() }
func (c HSV) HSL() HSL   { return c.RGB().HSL() }
func (c HSV) XYZ() XYZ   { return c.RGB().XYZ() }

// HSV converts the color to the HSV space. Grays have zero hue and
// saturation.
func (c RGB) HSV() HSV {
	r := c.Ratios()
	lo, hi, hiIndex := channelExtent(r)
	if math32.NearlyEqual(hi, lo) {
		return HSV{v: hi}
	}
	delta := hi - lo
	var s float32
	if !math32.NearlyEqual(hi, 0) {
		s = delta / hi
	}
	return NewHSV(hueFromRatios(r, delta, hiIndex, true), s, hi)
}
