// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strings"
	"sync"

	"cogentcore.org/colorspace/base/errors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/image/colornames"
)

// ErrUnknownName is the error wrapped by errors returned from
// [FromName] for a name that is not a CSS standard color name.
var ErrUnknownName = errors.New("unknown color name")

// FromName returns the color value specified by the given
// CSS standard color name, ignoring case. The returned error
// wraps [ErrUnknownName] and includes the [SuggestName] result
// if there is one.
func FromName(name string) (RGB, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		if s := SuggestName(name); s != "" {
			return RGB{}, errors.Errorf("colors.FromName: %q: %w (did you mean %q?)", name, ErrUnknownName, s)
		}
		return RGB{}, errors.Errorf("colors.FromName: %q: %w", name, ErrUnknownName)
	}
	return RGB{c.R, c.G, c.B}, nil
}

// SuggestName returns the CSS standard color name most similar in
// spelling to the given name, by Levenshtein similarity, or "" if
// no name is at least half similar.
func SuggestName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.5
	for _, n := range colornames.Names {
		sim := strutil.Similarity(name, n, lev)
		if sim > bestSim || (best == "" && sim == bestSim) {
			best, bestSim = n, sim
		}
	}
	return best
}

// MustFromName returns the color value specified by the given
// CSS standard color name. It panics if the name is not found;
// see [FromName] for a version that returns an error.
func MustFromName(name string) RGB {
	return errors.Must1(FromName(name))
}

// LogFromName returns the color value specified by the given
// CSS standard color name. It logs an error and returns black
// if the name is not found; see [FromName] for a version that
// returns an error.
func LogFromName(name string) RGB {
	return errors.Log1(FromName(name))
}

// Parse returns the color specified by the given string, which is
// either a hex code starting with '#' (see [FromHexCode]) or a CSS
// standard color name (see [FromName]).
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return FromHexCode(s)
	}
	return FromName(s)
}

// nameOf maps each color with a CSS standard name to the first
// of its names in alphabetical order.
var nameOf = sync.OnceValue(func() map[RGB]string {
	m := make(map[RGB]string, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		k := RGB{c.R, c.G, c.B}
		if _, ok := m[k]; !ok {
			m[k] = name
		}
	}
	return m
})

// NameOf returns the CSS standard name of the given color, if it
// has one. For colors with more than one name, such as "aqua" and
// "cyan", the first name in alphabetical order is returned.
func NameOf(c Space) (string, bool) {
	name, ok := nameOf()[c.RGB()]
	return name, ok
}

// Nearest returns the CSS standard color name whose color is
// closest to the given color, by [RGB.Distance]. Ties are broken
// in alphabetical order.
func Nearest(c Space) string {
	rgb := c.RGB()
	best, bestDist := "", float32(-1)
	for _, name := range colornames.Names {
		n := colornames.Map[name]
		d := rgb.Distance(RGB{n.R, n.G, n.B})
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}
