// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"path/filepath"
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/iox"
	"cogentcore.org/colorspace/base/tolassert"
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() *Palette {
	return New("test").
		Add("Red", colors.NewRGB(255, 0, 0)).
		Add("green", colors.NewHSL(120, 1, 0.25)).
		Add("blue", colors.NewRGB(0, 0, 255))
}

func TestLookup(t *testing.T) {
	p := testPalette()
	assert.Equal(t, 3, p.Len())

	c, ok := p.Lookup("red")
	assert.True(t, ok)
	assert.Equal(t, colors.NewRGB(255, 0, 0), c)

	c, ok = p.Lookup("GREEN")
	assert.True(t, ok)
	assert.Equal(t, colors.NewRGB(0, 128, 0), c)

	_, ok = p.Lookup("purple")
	assert.False(t, ok)

	assert.Equal(t, []colors.RGB{colors.NewRGB(255, 0, 0), colors.NewRGB(0, 128, 0), colors.NewRGB(0, 0, 255)}, p.Colors())
}

func TestNearest(t *testing.T) {
	p := testPalette()
	e, d := p.Nearest(colors.NewRGB(250, 10, 0))
	assert.Equal(t, "Red", e.Name)
	tolassert.EqualTol(t, math32.Sqrt(125), d, 1e-4)

	e, d = p.Nearest(colors.NewRGB(0, 0, 255))
	assert.Equal(t, "blue", e.Name)
	assert.Equal(t, float32(0), d)

	// red and blue are equally far from magenta; the earlier wins
	e, _ = p.Nearest(colors.NewRGB(255, 0, 255))
	assert.Equal(t, "Red", e.Name)

	e, _ = p.NearestIn(colors.HSLSpace, colors.NewHSL(230, 1, 0.5))
	assert.Equal(t, "blue", e.Name)

	e, d = New("empty").Nearest(colors.NewRGB(1, 2, 3))
	assert.Equal(t, Entry{}, e)
	assert.True(t, math32.IsInf(d, 1))
}

func TestGradient(t *testing.T) {
	red, blue := colors.NewRGB(255, 0, 0), colors.NewRGB(0, 0, 255)

	assert.Nil(t, Gradient(red, blue, 0, colors.RGBSpace))
	assert.Nil(t, Gradient(red, blue, -2, colors.RGBSpace))
	assert.Equal(t, []colors.RGB{red}, Gradient(red, blue, 1, colors.RGBSpace))
	assert.Equal(t, []colors.RGB{red, colors.NewRGB(127, 0, 127), blue}, Gradient(red, blue, 3, colors.RGBSpace))
	assert.Equal(t, []colors.RGB{red, colors.NewRGB(0, 255, 0), blue}, Gradient(red, blue, 3, colors.HSLSpace))

	p := NewGradient("fade", red, blue, 2, colors.RGBSpace)
	assert.Equal(t, []Entry{{"fade-0", red}, {"fade-1", blue}}, p.Entries)
}

func TestSaveOpen(t *testing.T) {
	p := testPalette()
	dir := t.TempDir()
	for _, name := range []string{"p.toml", "p.yaml", "p.yml", "p.json"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, p.Save(fn), name)
		got, err := Open(fn)
		require.NoError(t, err, name)
		if diff := cmp.Diff(p, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
		}
	}

	err := p.Save(filepath.Join(dir, "p.txt"))
	assert.True(t, errors.Is(err, iox.ErrUnknownFormat))
	_, err = Open(filepath.Join(dir, "p.xml"))
	assert.True(t, errors.Is(err, iox.ErrUnknownFormat))
	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestBuiltin(t *testing.T) {
	assert.Equal(t, []string{"basic", "grays"}, Builtins())

	basic, err := Builtin("basic")
	require.NoError(t, err)
	assert.Equal(t, "basic", basic.Name)
	assert.Equal(t, 16, basic.Len())
	c, ok := basic.Lookup("teal")
	assert.True(t, ok)
	assert.Equal(t, colors.NewRGB(0, 128, 128), c)

	grays, err := Load("grays")
	require.NoError(t, err)
	assert.Equal(t, 8, grays.Len())
	e, _ := grays.Nearest(colors.NewRGB(100, 110, 105))
	assert.Equal(t, "dimgray", e.Name)

	_, err = Builtin("neon")
	assert.Error(t, err)
}
