// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colorspace/math32"
)

// Color is a color that can be read and modified in terms of any of the
// color spaces. It is stored in the [RGB] space, so setting a component
// of another space converts to that space, sets the component, and
// converts back. Because CMYK, HSL, and HSV have more degrees of freedom
// than RGB, reading a component back after setting it may not return
// the value that was set.
//
// The zero value is black.
type Color struct {
	rgb RGB
}

// New returns a new [Color] from the given color in any space.
func New(c Space) Color {
	return Color{rgb: c.RGB()}
}

func (c Color) RGB() RGB   { return c.rgb }
func (c Color) CMYK() CMYK { return c.rgb.CMYK() }
func (c Color) HSL() HSL   { return c.rgb.HSL() }
func (c Color) HSV() HSV   { return c.rgb.HSV() }
func (c Color) XYZ() XYZ   { return c.rgb.XYZ() }

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return rgba(c.rgb)
}

// String returns the color as a "#rrggbb" hex code.
func (c Color) String() string {
	return c.rgb.HexCode()
}

// MarshalText implements [encoding.TextMarshaler] using [RGB.MarshalText].
func (c Color) MarshalText() ([]byte, error) {
	return c.rgb.MarshalText()
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [RGB.UnmarshalText].
func (c *Color) UnmarshalText(text []byte) error {
	return c.rgb.UnmarshalText(text)
}

////////  Getters

func (c Color) Red() uint8     { return c.rgb.R }
func (c Color) Green() uint8   { return c.rgb.G }
func (c Color) Blue() uint8    { return c.rgb.B }
func (c Color) Cyan() uint8    { return c.CMYK().C }
func (c Color) Magenta() uint8 { return c.CMYK().M }
func (c Color) Yellow() uint8  { return c.CMYK().Y }
func (c Color) Key() uint8     { return c.CMYK().K }

// Hue returns the hue in degrees, which is the same in HSL and HSV.
func (c Color) Hue() float32 { return c.HSL().Hue() }

func (c Color) HSLSaturation() float32 { return c.HSL().Saturation() }
func (c Color) HSVSaturation() float32 { return c.HSV().Saturation() }
func (c Color) Lightness() float32     { return c.HSL().Lightness() }
func (c Color) Value() float32         { return c.HSV().Value() }

func (c Color) RGBOctets() [3]uint8       { return c.rgb.Octets() }
func (c Color) CMYKOctets() [4]uint8      { return c.CMYK().Octets() }
func (c Color) HSLComponents() [3]float32 { return c.HSL().Components() }
func (c Color) HSVComponents() [3]float32 { return c.HSV().Components() }
func (c Color) RGBRatios() [3]float32     { return c.rgb.Ratios() }
func (c Color) CMYKRatios() [4]float32    { return c.CMYK().Ratios() }
func (c Color) RGBHex() uint32            { return c.rgb.Hex() }
func (c Color) CMYKHex() uint32           { return c.CMYK().Hex() }

////////  Setters

func (c *Color) SetRed(v uint8)   { c.rgb.R = v }
func (c *Color) SetGreen(v uint8) { c.rgb.G = v }
func (c *Color) SetBlue(v uint8)  { c.rgb.B = v }

// SetCyan sets the cyan channel through the CMYK space.
func (c *Color) SetCyan(v uint8) {
	t := c.CMYK()
	t.C = v
	c.rgb = t.RGB()
}

// SetMagenta sets the magenta channel through the CMYK space.
func (c *Color) SetMagenta(v uint8) {
	t := c.CMYK()
	t.M = v
	c.rgb = t.RGB()
}

// SetYellow sets the yellow channel through the CMYK space.
func (c *Color) SetYellow(v uint8) {
	t := c.CMYK()
	t.Y = v
	c.rgb = t.RGB()
}

// SetKey sets the key (black) channel through the CMYK space.
func (c *Color) SetKey(v uint8) {
	t := c.CMYK()
	t.K = v
	c.rgb = t.RGB()
}

// SetHue sets the hue in degrees through the HSV space.
// It panics if the hue is infinite or NaN.
func (c *Color) SetHue(hue float32) {
	t := c.HSV()
	t.SetHue(hue)
	c.rgb = t.RGB()
}

// SetHSLSaturation sets the saturation through the HSL space.
func (c *Color) SetHSLSaturation(s float32) {
	t := c.HSL()
	t.SetSaturation(s)
	c.rgb = t.RGB()
}

// SetHSVSaturation sets the saturation through the HSV space.
func (c *Color) SetHSVSaturation(s float32) {
	t := c.HSV()
	t.SetSaturation(s)
	c.rgb = t.RGB()
}

// SetLightness sets the lightness through the HSL space.
func (c *Color) SetLightness(l float32) {
	t := c.HSL()
	t.SetLightness(l)
	c.rgb = t.RGB()
}

// SetValue sets the value through the HSV space.
func (c *Color) SetValue(v float32) {
	t := c.HSV()
	t.SetValue(v)
	c.rgb = t.RGB()
}

////////  Adjustments

// ShiftHue rotates the hue by the given number of degrees,
// which may be negative.
func (c *Color) ShiftHue(degrees float32) {
	c.SetHue(c.Hue() + degrees)
}

// relative returns x changed by the given fraction of itself,
// with the fraction clamped to [0, 1].
func relative(x, amount float32, increase bool) float32 {
	d := x * math32.Clamp(amount, 0, 1)
	if increase {
		return x + d
	}
	return x - d
}

// HSLSaturate increases the HSL saturation by the given fraction of itself.
func (c *Color) HSLSaturate(amount float32) {
	c.SetHSLSaturation(relative(c.HSLSaturation(), amount, true))
}

// HSLDesaturate decreases the HSL saturation by the given fraction of itself.
func (c *Color) HSLDesaturate(amount float32) {
	c.SetHSLSaturation(relative(c.HSLSaturation(), amount, false))
}

// HSVSaturate increases the HSV saturation by the given fraction of itself.
func (c *Color) HSVSaturate(amount float32) {
	c.SetHSVSaturation(relative(c.HSVSaturation(), amount, true))
}

// HSVDesaturate decreases the HSV saturation by the given fraction of itself.
func (c *Color) HSVDesaturate(amount float32) {
	c.SetHSVSaturation(relative(c.HSVSaturation(), amount, false))
}

// Lighten increases the lightness by the given fraction of itself.
// Black can not be lightened.
func (c *Color) Lighten(amount float32) {
	c.SetLightness(relative(c.Lightness(), amount, true))
}

// Darken decreases the lightness by the given fraction of itself.
func (c *Color) Darken(amount float32) {
	c.SetLightness(relative(c.Lightness(), amount, false))
}

////////  Interpolation

// LerpRGB returns the linear interpolation between this color and
// the given end color in the RGB space. See [RGB.Lerp].
func (c Color) LerpRGB(end Space, amount float32) Color {
	return New(c.rgb.Lerp(end, amount))
}

// LerpCMYK returns the linear interpolation between this color and
// the given end color in the CMYK space. See [CMYK.Lerp].
func (c Color) LerpCMYK(end Space, amount float32) Color {
	return New(c.CMYK().Lerp(end, amount))
}

// LerpHSL returns the linear interpolation between this color and
// the given end color in the HSL space. See [HSL.Lerp].
func (c Color) LerpHSL(end Space, amount float32) Color {
	return New(c.HSL().Lerp(end, amount))
}

// LerpHSV returns the linear interpolation between this color and
// the given end color in the HSV space. See [HSV.Lerp].
func (c Color) LerpHSV(end Space, amount float32) Color {
	return New(c.HSV().Lerp(end, amount))
}

// LerpXYZ returns the linear interpolation between this color and
// the given end color in the XYZ space. See [XYZ.Lerp].
func (c Color) LerpXYZ(end Space, amount float32) Color {
	return New(c.XYZ().Lerp(end, amount))
}

func (c Color) CerpRGB(end Space, startSlope, endSlope, amount float32) Color {
	return New(c.rgb.Cerp(end, startSlope, endSlope, amount))
}

func (c Color) CerpCMYK(end Space, startSlope, endSlope, amount float32) Color {
	return New(c.CMYK().Cerp(end, startSlope, endSlope, amount))
}

func (c Color) CerpHSL(end Space, startSlope, endSlope, amount float32) Color {
	return New(c.HSL().Cerp(end, startSlope, endSlope, amount))
}

func (c Color) CerpHSV(end Space, startSlope, endSlope, amount float32) Color {
	return New(c.HSV().Cerp(end, startSlope, endSlope, amount))
}

func (c Color) CerpXYZ(end Space, startSlope, endSlope, amount float32) Color {
	return New(c.XYZ().Cerp(end, startSlope, endSlope, amount))
}

////////  Distance

func (c Color) DistanceRGB(other Space) float32  { return c.rgb.Distance(other) }
func (c Color) DistanceCMYK(other Space) float32 { return c.CMYK().Distance(other) }
func (c Color) DistanceHSL(other Space) float32  { return c.HSL().Distance(other) }
func (c Color) DistanceHSV(other Space) float32  { return c.HSV().Distance(other) }
func (c Color) DistanceXYZ(other Space) float32  { return c.XYZ().Distance(other) }
