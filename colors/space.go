// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the RGB, CMYK, HSL, HSV, and XYZ color spaces,
// conversions between them, interpolation, and distance metrics.
//
// [RGB] is the hub representation: every conversion between two other
// spaces goes through RGB. CMYK, HSL, and HSV have more degrees of freedom
// than 24-bit RGB, so setting one of their components and converting
// through RGB and back does not always reproduce the value that was set.
package colors

import (
	"image/color"
)

// Space is implemented by every color space type in this package.
// It is the single capability needed to pass a color of any space
// to a conversion, interpolation, or distance function.
type Space interface {
	color.Color

	// RGB returns the color in the RGB space.
	RGB() RGB

	// CMYK returns the color in the CMYK space.
	CMYK() CMYK

	// HSL returns the color in the HSL space.
	HSL() HSL

	// HSV returns the color in the HSV space.
	HSV() HSV

	// XYZ returns the color in the XYZ space.
	XYZ() XYZ
}

// FromColor returns the given standard [color.Color] as an [RGB] color.
// Colors that already implement [Space] convert directly; other colors
// are un-premultiplied and their alpha is discarded.
func FromColor(c color.Color) RGB {
	if s, ok := c.(Space); ok {
		return s.RGB()
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// rgba returns the opaque 16-bit components of the given RGB color,
// for the implementations of [color.Color].
func rgba(c RGB) (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// Models for converting standard colors to each space.
var (
	RGBModel  color.Model = color.ModelFunc(rgbModel)
	CMYKModel color.Model = color.ModelFunc(cmykModel)
	HSLModel  color.Model = color.ModelFunc(hslModel)
	HSVModel  color.Model = color.ModelFunc(hsvModel)
	XYZModel  color.Model = color.ModelFunc(xyzModel)
)

func rgbModel(c color.Color) color.Color {
	return FromColor(c)
}

func cmykModel(c color.Color) color.Color {
	if v, ok := c.(CMYK); ok {
		return v
	}
	return FromColor(c).CMYK()
}

func hslModel(c color.Color) color.Color {
	if v, ok := c.(HSL); ok {
		return v
	}
	return FromColor(c).HSL()
}

func hsvModel(c color.Color) color.Color {
	if v, ok := c.(HSV); ok {
		return v
	}
	return FromColor(c).HSV()
}

func xyzModel(c color.Color) color.Color {
	if v, ok := c.(XYZ); ok {
		return v
	}
	return FromColor(c).XYZ()
}
