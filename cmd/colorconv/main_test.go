// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/colorspace/base/iox/imagex"
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/palette"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "-q"))
	err := cmd.Execute()
	return buf.String(), err
}

func TestParseColor(t *testing.T) {
	good := map[string]colors.RGB{
		"rgb(255, 0, 0)":       colors.NewRGB(255, 0, 0),
		"RGB(1,2,3)":           colors.NewRGB(1, 2, 3),
		"cmyk(0, 255, 255, 0)": colors.NewRGB(255, 0, 0),
		"hsl(120, 1, 0.25)":    colors.NewRGB(0, 128, 0),
		"hsv(240,1,1)":         colors.NewRGB(0, 0, 255),
		"xyz(0, 0, 0)":         colors.NewRGB(0, 0, 0),
		" Teal ":               colors.NewRGB(0, 128, 128),
		"#F00":                 colors.NewRGB(255, 0, 0),
	}
	for s, want := range good {
		got, err := ParseColor(s)
		assert.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	for _, s := range []string{"rgb(300, 0, 0)", "rgb(1, 2)", "hsl(a, b, c)", "cmyk(1, 2, 3)", "notacolor", "#12"} {
		_, err := ParseColor(s)
		assert.Error(t, err, s)
	}
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "red")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"#ff0000 red", "rgb(255, 0, 0)", "cmyk(0, 255, 255, 0)", "hsl(0, 1, 0.5)", "hsv(0, 1, 1)"}, lines[:5])
	assert.True(t, strings.HasPrefix(lines[5], "xyz("), lines[5])

	out, err = run(t, "convert", "#7f007f", "white")
	require.NoError(t, err)
	assert.Contains(t, out, "#7f007f ~purple\n")
	assert.Contains(t, out, "\n\n#ffffff white\n")

	_, err = run(t, "convert")
	assert.Error(t, err)
	_, err = run(t, "convert", "nope")
	assert.Error(t, err)
}

func TestMix(t *testing.T) {
	out, err := run(t, "mix", "red", "blue")
	require.NoError(t, err)
	assert.Equal(t, "#7f007f ~purple\n", out)

	out, err = run(t, "mix", "red", "blue", "--space", "hsl")
	require.NoError(t, err)
	assert.Equal(t, "#00ff00 lime\n", out)

	out, err = run(t, "mix", "red", "blue", "-a", "1")
	require.NoError(t, err)
	assert.Equal(t, "#0000ff blue\n", out)

	out, err = run(t, "mix", "red", "blue", "--cubic")
	require.NoError(t, err)
	assert.Equal(t, "#7f007f ~purple\n", out)

	_, err = run(t, "mix", "red", "blue", "--space", "lab")
	assert.Error(t, err)
	_, err = run(t, "mix", "red")
	assert.Error(t, err)
}

func TestDistance(t *testing.T) {
	out, err := run(t, "distance", "red", "black")
	require.NoError(t, err)
	assert.Equal(t, "255\n", out)

	out, err = run(t, "distance", "red", "rgb(255, 4, 3)")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, "distance", "red", "red", "-s", "xyz")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "colorconv.toml")
	require.NoError(t, os.WriteFile(fn, []byte("space = 'hsl'\nswatch = false\nsteps = 3\n"), 0666))

	out, err := run(t, "mix", "red", "blue", "--config", fn)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00 lime\n", out)

	out, err = run(t, "mix", "red", "blue", "--config", fn, "--space", "rgb")
	require.NoError(t, err)
	assert.Equal(t, "#7f007f ~purple\n", out)

	out, err = run(t, "palette", "gradient", "black", "white", "--config", fn)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	_, err = run(t, "mix", "red", "blue", "--config", filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".colorconv.toml"), []byte("space = 'hsv'\n"), 0666))

	out, err := run(t, "mix", "red", "blue", "--config", "~/.colorconv.toml")
	require.NoError(t, err)
	assert.Equal(t, "#00ff00 lime\n", out)
}

func TestPaletteList(t *testing.T) {
	out, err := run(t, "palette", "list")
	require.NoError(t, err)
	assert.Equal(t, "basic\ngrays\n", out)

	out, err = run(t, "palette", "list", "grays")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 8)
	assert.Equal(t, "#696969 dimgray", lines[1])
}

func TestPaletteNearest(t *testing.T) {
	out, err := run(t, "palette", "nearest", "basic", "#fe0101", "#007f80")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "#fe0101 #ff0000 red "), lines[0])
	assert.Equal(t, "#007f80 #008080 teal 1", lines[1])

	_, err = run(t, "palette", "nearest", "missing.toml", "red")
	assert.Error(t, err)
}

func TestPaletteGradient(t *testing.T) {
	dir := t.TempDir()
	pfile, ifile := filepath.Join(dir, "fade.yaml"), filepath.Join(dir, "fade.png")
	out, err := run(t, "palette", "gradient", "red", "blue", "-n", "3", "--name", "fade", "-o", pfile, "--image", ifile)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000 red\n#7f007f ~purple\n#0000ff blue\n", out)

	p, err := palette.Open(pfile)
	require.NoError(t, err)
	assert.Equal(t, "fade", p.Name)
	assert.Equal(t, []colors.RGB{colors.NewRGB(255, 0, 0), colors.NewRGB(127, 0, 127), colors.NewRGB(0, 0, 255)}, p.Colors())
	c, ok := p.Lookup("fade-1")
	assert.True(t, ok)
	assert.Equal(t, colors.NewRGB(127, 0, 127), c)

	img, f, err := imagex.Open(ifile)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, 3*swatchSize, img.Bounds().Dx())
	assert.Equal(t, swatchSize, img.Bounds().Dy())
	assert.Equal(t, colors.NewRGB(127, 0, 127), colors.FromColor(img.At(swatchSize+1, 0)))

	_, err = run(t, "palette", "gradient", "red", "blue", "-o", filepath.Join(dir, "fade.csv"))
	assert.Error(t, err)
}
