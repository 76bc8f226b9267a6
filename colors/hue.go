// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colorspace/math32"
)

// hueFromRatios returns the hue in degrees of the given RGB ratios,
// where delta is the difference between the largest and smallest
// ratio and hiIndex is the index of the largest. The result is not
// normalized. If wrapRed is set, the sector of the red channel is
// taken modulo 6.
func hueFromRatios(r [3]float32, delta float32, hiIndex int, wrapRed bool) float32 {
	var sector float32
	switch hiIndex {
	case 0:
		sector = (r[1] - r[2]) / delta
		if wrapRed {
			sector = math32.Mod(sector, 6)
		}
	case 1:
		sector = (r[2]-r[0])/delta + 2
	default:
		sector = (r[0]-r[1])/delta + 4
	}
	return 60 * sector
}

// rgbFromChroma reconstructs an RGB color from the given hue in degrees,
// chroma, and lightness offset, selecting which channels receive the
// chroma by the 60° sector the hue falls in.
func rgbFromChroma(hue, chroma, offset float32) RGB {
	x := chroma * (1 - math32.Abs(math32.Mod(hue/60, 2)-1))
	var r, g, b float32
	switch int(hue / 60) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB{R: octet(r + offset), G: octet(g + offset), B: octet(b + offset)}
}

// hueDistance returns the distance between two colors embedded on a
// cone, where the hue in degrees is the angle around the axis, the
// given radius (lightness or value) scales the distance from the axis,
// and saturation is the height. The result is divided by √6.
func hueDistance(h1, s1, r1, h2, s2, r2 float32) float32 {
	sin1, cos1 := math32.Sincos(math32.DegToRad(h1))
	sin2, cos2 := math32.Sincos(math32.DegToRad(h2))
	dx := 2*r1*sin1 - 2*r2*sin2
	dy := 2*r1*cos1 - 2*r2*cos2
	ds := s1 - s2
	return math32.Sqrt(dx*dx+dy*dy+ds*ds) / math32.Sqrt(6)
}
