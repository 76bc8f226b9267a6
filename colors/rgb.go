// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"cogentcore.org/colorspace/math32"
)

// RGB is a 24-bit color in the RGB space, with 8 bits per channel.
// It is the hub that all conversions between other spaces go through.
// The zero value is black.
type RGB struct {
	R, G, B uint8
}

// NewRGB returns a new [RGB] color with the given channel values.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// RGBFromHex returns the [RGB] color packed in the low 24 bits of
// the given value as 0xRRGGBB. Higher bits are ignored.
func RGBFromHex(hex uint32) RGB {
	return RGB{
		R: uint8((hex & 0xFF0000) >> 16),
		G: uint8((hex & 0x00FF00) >> 8),
		B: uint8(hex & 0x0000FF),
	}
}

// RGBFromOctets returns the [RGB] color with the given channel values.
func RGBFromOctets(octets [3]uint8) RGB {
	return RGB{R: octets[0], G: octets[1], B: octets[2]}
}

// RGBFromRatios returns the [RGB] color with the given channel ratios,
// which are clamped to [0, 1].
func RGBFromRatios(ratios [3]float32) RGB {
	return RGB{R: octet(ratios[0]), G: octet(ratios[1]), B: octet(ratios[2])}
}

// Red returns the red channel.
func (c RGB) Red() uint8 { return c.R }

// Green returns the green channel.
func (c RGB) Green() uint8 { return c.G }

// Blue returns the blue channel.
func (c RGB) Blue() uint8 { return c.B }

// SetRed sets the red channel.
func (c *RGB) SetRed(r uint8) { c.R = r }

// SetGreen sets the green channel.
func (c *RGB) SetGreen(g uint8) { c.G = g }

// SetBlue sets the blue channel.
func (c *RGB) SetBlue(b uint8) { c.B = b }

// octet converts a channel ratio to a channel value, clamping the
// ratio to [0, 1] and rounding half up.
func octet(ratio float32) uint8 {
	return uint8(math32.Clamp(ratio, 0, 1)*255 + 0.5)
}

// ratio converts a channel value to a ratio in [0, 1].
func ratio(octet uint8) float32 {
	return float32(octet) / 255
}

// Octets returns the channel values as an array.
func (c RGB) Octets() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Ratios returns the channel values as ratios in [0, 1].
func (c RGB) Ratios() [3]float32 {
	return [3]float32{ratio(c.R), ratio(c.G), ratio(c.B)}
}

// RatiosAlpha returns the channel values as ratios in [0, 1],
// followed by a zero alpha component, for consumers that
// expect four float components.
func (c RGB) RatiosAlpha() [4]float32 {
	return [4]float32{ratio(c.R), ratio(c.G), ratio(c.B), 0}
}

// Hex returns the color packed as 0xRRGGBB.
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// HexCode returns the color as a lower case "#rrggbb" hex code.
// See [FromHexCode] for the converse.
func (c RGB) HexCode() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the color in the form "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA implements the [color.Color] interface. The color is fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return rgba(c)
}

// MarshalText implements [encoding.TextMarshaler] using [RGB.HexCode].
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.HexCode()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [FromHexCode].
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := FromHexCode(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Lerp returns the per-channel linear interpolation between this color
// and the given end color (converted to RGB) at the given amount in [0, 1].
func (c RGB) Lerp(end Space, amount float32) RGB {
	e := end.RGB()
	return RGB{
		R: math32.LerpU8(c.R, e.R, amount),
		G: math32.LerpU8(c.G, e.G, amount),
		B: math32.LerpU8(c.B, e.B, amount),
	}
}

// Cerp returns the per-channel cubic interpolation between this color
// and the given end color (converted to RGB) at the given amount in [0, 1],
// consistent with the given slopes at either end.
func (c RGB) Cerp(end Space, startSlope, endSlope, amount float32) RGB {
	e := end.RGB()
	return RGB{
		R: math32.CerpU8(c.R, e.R, startSlope, endSlope, amount),
		G: math32.CerpU8(c.G, e.G, startSlope, endSlope, amount),
		B: math32.CerpU8(c.B, e.B, startSlope, endSlope, amount),
	}
}

// Distance returns the Euclidean distance between this color and the
// given color (converted to RGB) over the three channels.
func (c RGB) Distance(other Space) float32 {
	o := other.RGB()
	r := float32(math32.Distance(c.R, o.R))
	g := float32(math32.Distance(c.G, o.G))
	b := float32(math32.Distance(c.B, o.B))
	return math32.Sqrt(r*r + g*g + b*b)
}

// RGB returns the color itself, implementing [Space].
func (c RGB) RGB() RGB {
	return c
}

// channelExtent returns the smallest and largest of the given ratios,
// along with the index of the largest. Ties keep the earliest index.
func channelExtent(ratios [3]float32) (lo, hi float32, hiIndex int) {
	lo, hi = ratios[0], ratios[0]
	for i, x := range ratios[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
			hiIndex = i + 1
		}
	}
	return
}
