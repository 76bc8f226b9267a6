// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
)

// Uniform returns a new [image.Uniform] filled completely with the given color.
// See [ToUniform] for the converse.
func Uniform(c Space) image.Image {
	return image.NewUniform(c.RGB())
}

// ToUniform returns the color at the origin of the given image.
// See [Uniform] for the converse.
func ToUniform(img image.Image) RGB {
	if img == nil {
		return RGB{}
	}
	return FromColor(img.At(0, 0))
}

// Pattern returns a new unbounded [image.Image] represented by the given pattern function.
func Pattern(f func(x, y int) color.Color) image.Image {
	return &pattern{f}
}

type pattern struct {
	f func(x, y int) color.Color
}

func (p *pattern) ColorModel() color.Model {
	return RGBModel
}

func (p *pattern) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (p *pattern) At(x, y int) color.Color {
	return p.f(x, y)
}

// Strip returns a new image of the given size with the given colors
// drawn as equal width vertical bands from left to right. It is used
// to render swatches of palettes and gradients.
func Strip(colors []RGB, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if len(colors) == 0 || width <= 0 {
		return img
	}
	for x := range width {
		c := colors[x*len(colors)/width]
		for y := range height {
			img.Set(x, y, c)
		}
	}
	return img
}
