// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math32"
)

// CMYK is a color in the subtractive CMYK space, with 8 bits for
// each of the cyan, magenta, yellow, and key (black) channels.
type CMYK struct {
	C, M, Y, K uint8
}

// NewCMYK returns a new [CMYK] color with the given channel values.
func NewCMYK(c, m, y, k uint8) CMYK {
	return CMYK{C: c, M: m, Y: y, K: k}
}

// CMYKFromHex returns the [CMYK] color packed in the given value
// as 0xCCMMYYKK.
func CMYKFromHex(hex uint32) CMYK {
	return CMYK{
		C: uint8(hex >> 24),
		M: uint8(hex >> 16),
		Y: uint8(hex >> 8),
		K: uint8(hex),
	}
}

// CMYKFromOctets returns the [CMYK] color with the given channel values.
func CMYKFromOctets(octets [4]uint8) CMYK {
	return CMYK{C: octets[0], M: octets[1], Y: octets[2], K: octets[3]}
}

// CMYKFromRatios returns the [CMYK] color with the given channel ratios,
// which are clamped to [0, 1].
func CMYKFromRatios(ratios [4]float32) CMYK {
	return CMYK{C: octet(ratios[0]), M: octet(ratios[1]), Y: octet(ratios[2]), K: octet(ratios[3])}
}

func (c CMYK) Cyan() uint8    { return c.C }
func (c CMYK) Magenta() uint8 { return c.M }
func (c CMYK) Yellow() uint8  { return c.Y }
func (c CMYK) Key() uint8     { return c.K }

func (c *CMYK) SetCyan(v uint8)    { c.C = v }
func (c *CMYK) SetMagenta(v uint8) { c.M = v }
func (c *CMYK) SetYellow(v uint8)  { c.Y = v }
func (c *CMYK) SetKey(v uint8)     { c.K = v }

// Octets returns the channel values as an array.
func (c CMYK) Octets() [4]uint8 {
	return [4]uint8{c.C, c.M, c.Y, c.K}
}

// Ratios returns the channel values as ratios in [0, 1].
func (c CMYK) Ratios() [4]float32 {
	return [4]float32{ratio(c.C), ratio(c.M), ratio(c.Y), ratio(c.K)}
}

// Hex returns the color packed as 0xCCMMYYKK.
func (c CMYK) Hex() uint32 {
	return uint32(c.C)<<24 | uint32(c.M)<<16 | uint32(c.Y)<<8 | uint32(c.K)
}

// HexCode returns the color as a lower case "#ccmmyykk" hex code.
func (c CMYK) HexCode() string {
	return fmt.Sprintf("#%08x", c.Hex())
}

// String returns the color in the form "cmyk(c, m, y, k)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d, %d, %d, %d)", c.C, c.M, c.Y, c.K)
}

// RGBA implements the [color.Color] interface.
func (c CMYK) RGBA() (r, g, b, a uint32) {
	return rgba(c.RGB())
}

// MarshalText implements [encoding.TextMarshaler] using [CMYK.String].
func (c CMYK) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], accepting
// the form returned by [CMYK.String].
func (c *CMYK) UnmarshalText(text []byte) error {
	var v CMYK
	_, err := fmt.Sscanf(string(text), "cmyk(%d,%d,%d,%d)", &v.C, &v.M, &v.Y, &v.K)
	if err != nil {
		return errors.Errorf("colors.CMYK.UnmarshalText: %q: %w", text, err)
	}
	*c = v
	return nil
}

// Lerp returns the per-channel linear interpolation between this color
// and the given end color (converted to CMYK) at the given amount in [0, 1].
func (c CMYK) Lerp(end Space, amount float32) CMYK {
	e := end.CMYK()
	return CMYK{
		C: math32.LerpU8(c.C, e.C, amount),
		M: math32.LerpU8(c.M, e.M, amount),
		Y: math32.LerpU8(c.Y, e.Y, amount),
		K: math32.LerpU8(c.K, e.K, amount),
	}
}

// Cerp returns the per-channel cubic interpolation between this color
// and the given end color (converted to CMYK) at the given amount in [0, 1].
func (c CMYK) Cerp(end Space, startSlope, endSlope, amount float32) CMYK {
	e := end.CMYK()
	return CMYK{
		C: math32.CerpU8(c.C, e.C, startSlope, endSlope, amount),
		M: math32.CerpU8(c.M, e.M, startSlope, endSlope, amount),
		Y: math32.CerpU8(c.Y, e.Y, startSlope, endSlope, amount),
		K: math32.CerpU8(c.K, e.K, startSlope, endSlope, amount),
	}
}

// Distance returns the Euclidean distance between this color and the
// given color (converted to CMYK) over the four channels.
func (c CMYK) Distance(other Space) float32 {
	o := other.CMYK()
	var sum float32
	co, oo := c.Octets(), o.Octets()
	for i := range co {
		d := float32(math32.Distance(co[i], oo[i]))
		sum += d * d
	}
	return math32.Sqrt(sum)
}

// CMYK returns the color itself, implementing [Space].
func (c CMYK) CMYK() CMYK {
	return c
}

// RGB converts the color to the RGB space. Each RGB channel is the
// product of the inverted color channel and the inverted key.
func (c CMYK) RGB() RGB {
	r := c.Ratios()
	ik := 1 - r[3]
	return RGB{
		R: octet((1 - r[0]) * ik),
		G: octet((1 - r[1]) * ik),
		B: octet((1 - r[2]) * ik),
	}
}

func (c CMYK) HSL() HSL { return c.RGB().HSL() }
func (c CMYK) HSV() HSV { return c.RGB().HSV() }
func (c CMYK) XYZ() XYZ { return c.RGB().XYZ() }

// CMYK converts the color to the CMYK space. Black converts to pure key,
// and every other color gets the smallest key that can represent it.
func (c RGB) CMYK() CMYK {
	r := c.Ratios()
	_, hi, _ := channelExtent(r)
	if math32.NearlyEqual(hi, 0) {
		return CMYK{K: 255}
	}
	k := 1 - hi
	return CMYK{
		C: octet((1 - r[0] - k) / hi),
		M: octet((1 - r[1] - k) / hi),
		Y: octet((1 - r[2] - k) / hi),
		K: octet(k),
	}
}
