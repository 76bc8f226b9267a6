// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides named lists of colors that can be
// searched, extended with gradients, and saved to and opened from
// TOML, YAML, and JSON files.
package palette

import (
	"fmt"
	"strings"

	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/math32"
)

// Palette is a named, ordered list of colors.
type Palette struct {
	Name    string  `json:"name" toml:"name" yaml:"name"`
	Entries []Entry `json:"entries" toml:"entries" yaml:"entries"`
}

// Entry is one named color of a [Palette]. The color is
// encoded as a "#rrggbb" hex code.
type Entry struct {
	Name  string     `json:"name" toml:"name" yaml:"name"`
	Color colors.RGB `json:"color" toml:"color" yaml:"color"`
}

// New returns a new empty [Palette] with the given name.
func New(name string) *Palette {
	return &Palette{Name: name}
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.Entries)
}

// Add adds a new entry with the given name and color to the palette.
func (p *Palette) Add(name string, c colors.Space) *Palette {
	p.Entries = append(p.Entries, Entry{Name: name, Color: c.RGB()})
	return p
}

// Colors returns the colors of the palette in order.
func (p *Palette) Colors() []colors.RGB {
	res := make([]colors.RGB, len(p.Entries))
	for i, e := range p.Entries {
		res[i] = e.Color
	}
	return res
}

// Lookup returns the color of the first entry with the given name,
// ignoring case.
func (p *Palette) Lookup(name string) (colors.RGB, bool) {
	for _, e := range p.Entries {
		if strings.EqualFold(e.Name, name) {
			return e.Color, true
		}
	}
	return colors.RGB{}, false
}

// Nearest returns the entry whose color is closest to the given color
// by [colors.RGB.Distance], along with that distance. Ties go to the
// earlier entry. For an empty palette it returns a zero entry and
// positive infinity.
func (p *Palette) Nearest(c colors.Space) (Entry, float32) {
	return p.NearestIn(colors.RGBSpace, c)
}

// NearestIn is like [Palette.Nearest], but measures distance
// in the given space.
func (p *Palette) NearestIn(space colors.Spaces, c colors.Space) (Entry, float32) {
	best, bestDist := Entry{}, math32.Infinity
	for _, e := range p.Entries {
		d := space.Distance(c, e.Color)
		if d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist
}

// Gradient returns n colors evenly spaced from the given start color
// to the given end color inclusive, interpolated linearly in the given
// space. It returns nil if n is not positive and just the start color
// if n is 1.
func Gradient(start, end colors.Space, n int, space colors.Spaces) []colors.RGB {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []colors.RGB{start.RGB()}
	}
	res := make([]colors.RGB, n)
	for i := range n {
		res[i] = space.Lerp(start, end, float32(i)/float32(n-1))
	}
	return res
}

// NewGradient returns a new palette with the given name containing a
// [Gradient], with entries named by the palette name and their index.
func NewGradient(name string, start, end colors.Space, n int, space colors.Spaces) *Palette {
	p := New(name)
	for i, c := range Gradient(start, end, n, space) {
		p.Add(fmt.Sprintf("%s-%d", name, i), c)
	}
	return p
}
