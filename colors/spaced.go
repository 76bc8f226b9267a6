// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math/bits"
)

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HSL space.
// This is useful, for example, for assigning colors in graphs.
func Spaced(idx int) RGB {
	// blue, red, green, yellow, violet, aqua, orange, blueviolet
	hues := []float32{225, 0, 130, 55, 300, 185, 30, 270}
	loffs := []float32{0, 0, -0.05, -0.05, 0, -0.05, 0, 0}
	lights := []float32{0.5, 0.65, 0.35, 0.5, 0.65}
	sats := []float32{0.85, 0.85, 0.85, 0.35, 0.35}
	ncats := len(hues)
	nls := len(lights)
	hi := idx % ncats
	hr := idx / ncats
	li := hr % nls
	return NewHSL(hues[hi], sats[li], loffs[hi]+lights[li]).RGB()
}

// BinarySpacedNumber returns a floating point number in the 0-1 range based on the
// binary representation of the given input number, such that the biggest differences
// are in the lowest-order bits, with progressively smaller differences for higher powers.
// 0 = 0; 1 = 0.5; 2 = 0.25; 3 = 0.75; 4 = 0.125; 5 = 0.625...
func BinarySpacedNumber(idx int) float32 {
	rv := float32(0)
	for i := range bits.Len(uint(idx)) {
		pbase := 1 << i
		base := 1 << (i + 1)
		dv := (idx % base) / pbase
		rv += float32(dv) / float32(base)
	}
	return rv
}

// BinarySpacedColor returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the hue of the HSL space
// with the given saturation and lightness.
func BinarySpacedColor(idx int, saturation, lightness float32) RGB {
	return NewHSL(360*BinarySpacedNumber(idx), saturation, lightness).RGB()
}

// List returns a list of n colors with the given HSL saturation and lightness
// and hues spaced equally around the color wheel, starting at red.
// This can be useful for automatically generating colors for things like graph lines.
func List(n int, saturation, lightness float32) []RGB {
	res := make([]RGB, 0, max(n, 0))
	inc := 360 / float32(max(n, 1))
	for i := range n {
		res = append(res, NewHSL(float32(i)*inc, saturation, lightness).RGB())
	}
	return res
}
