// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math32"
)

// XYZ is a color in the CIE 1931 XYZ space, with each component
// in [0, 1]. Conversion from RGB treats the RGB ratios as linear
// light, without decoding the sRGB transfer function.
type XYZ struct {
	x, y, z float32
}

// rgbToXYZ is the sRGB (D65) to XYZ matrix.
var rgbToXYZ = [3][3]float32{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// xyzToRGB is the inverse of [rgbToXYZ].
var xyzToRGB = [3][3]float32{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// NewXYZ returns a new [XYZ] color with the given components,
// each clamped to [0, 1].
func NewXYZ(x, y, z float32) XYZ {
	var c XYZ
	c.SetX(x)
	c.SetY(y)
	c.SetZ(z)
	return c
}

// XYZFromComponents returns a new [XYZ] color from the given components.
func XYZFromComponents(comps [3]float32) XYZ {
	return NewXYZ(comps[0], comps[1], comps[2])
}

func (c XYZ) X() float32 { return c.x }
func (c XYZ) Y() float32 { return c.y }
func (c XYZ) Z() float32 { return c.z }

// SetX sets the X component, clamped to [0, 1].
func (c *XYZ) SetX(x float32) { c.x = math32.Clamp(x, 0, 1) }

// SetY sets the Y (luminance) component, clamped to [0, 1].
func (c *XYZ) SetY(y float32) { c.y = math32.Clamp(y, 0, 1) }

// SetZ sets the Z component, clamped to [0, 1].
func (c *XYZ) SetZ(z float32) { c.z = math32.Clamp(z, 0, 1) }

// Components returns the X, Y, and Z components.
func (c XYZ) Components() [3]float32 {
	return [3]float32{c.x, c.y, c.z}
}

// String returns the color in the form "xyz(x, y, z)".
func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%g, %g, %g)", c.x, c.y, c.z)
}

// RGBA implements the [color.Color] interface.
func (c XYZ) RGBA() (r, g, b, a uint32) {
	return rgba(c.RGB())
}

// MarshalText implements [encoding.TextMarshaler] using [XYZ.String].
func (c XYZ) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], accepting
// the form returned by [XYZ.String].
func (c *XYZ) UnmarshalText(text []byte) error {
	var x, y, z float32
	_, err := fmt.Sscanf(string(text), "xyz(%g,%g,%g)", &x, &y, &z)
	if err != nil {
		return errors.Errorf("colors.XYZ.UnmarshalText: %q: %w", text, err)
	}
	*c = NewXYZ(x, y, z)
	return nil
}

// Lerp returns the per-component linear interpolation between this color
// and the given end color (converted to XYZ) at the given amount in [0, 1].
func (c XYZ) Lerp(end Space, amount float32) XYZ {
	e := end.XYZ()
	return NewXYZ(
		math32.Lerp(c.x, e.x, amount),
		math32.Lerp(c.y, e.y, amount),
		math32.Lerp(c.z, e.z, amount),
	)
}

// Cerp returns the per-component cubic interpolation between this color
// and the given end color (converted to XYZ) at the given amount in [0, 1].
func (c XYZ) Cerp(end Space, startSlope, endSlope, amount float32) XYZ {
	e := end.XYZ()
	return NewXYZ(
		math32.Cerp(c.x, e.x, startSlope, endSlope, amount),
		math32.Cerp(c.y, e.y, startSlope, endSlope, amount),
		math32.Cerp(c.z, e.z, startSlope, endSlope, amount),
	)
}

// Distance returns the Euclidean distance between this color and the
// given color (converted to XYZ).
func (c XYZ) Distance(other Space) float32 {
	o := other.XYZ()
	dx, dy, dz := c.x-o.x, c.y-o.y, c.z-o.z
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// XYZ returns the color itself, implementing [Space].
func (c XYZ) XYZ() XYZ {
	return c
}

// RGB converts the color to the RGB space. Channels that fall outside
// of the RGB gamut are clamped to [0, 255] and then truncated.
func (c XYZ) RGB() RGB {
	v := mulMatrix(xyzToRGB, c.Components())
	return RGB{
		R: uint8(math32.Clamp(v[0]*255, 0, 255)),
		G: uint8(math32.Clamp(v[1]*255, 0, 255)),
		B: uint8(math32.Clamp(v[2]*255, 0, 255)),
	}
}

func (c XYZ) CMYK() CMYK { return c.RGB().CMYK() }
func (c XYZ) HSL() HSL   { return c.RGB().HSL() }
func (c XYZ) HSV() HSV   { return c.RGB().HSV() }

// XYZ converts the color to the XYZ space. Components above 1,
// such as the X and Z of white, are clamped.
func (c RGB) XYZ() XYZ {
	return XYZFromComponents(mulMatrix(rgbToXYZ, c.Ratios()))
}

// mulMatrix returns the product of the given matrix and column vector.
func mulMatrix(m [3][3]float32, v [3]float32) [3]float32 {
	var res [3]float32
	for i, row := range m {
		res[i] = row[0]*v[0] + row[1]*v[1] + row[2]*v[2]
	}
	return res
}
