// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/iox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := range 4 {
		for y := range 2 {
			img.Set(x, y, color.RGBA{uint8(x * 60), uint8(y * 200), 128, 255})
		}
	}
	return img
}

func TestExtToFormat(t *testing.T) {
	for ext, f := range map[string]Formats{".png": PNG, "PNG": PNG, ".jpg": JPEG, "jpeg": JPEG, ".gif": GIF, ".tif": TIFF, "tiff": TIFF, ".bmp": BMP, ".webp": WebP} {
		got, err := ExtToFormat(ext)
		assert.NoError(t, err, ext)
		assert.Equal(t, f, got, ext)
	}
	_, err := ExtToFormat(".svg")
	assert.True(t, errors.Is(err, iox.ErrUnknownFormat))
	_, err = ExtToFormat("")
	assert.Error(t, err)

	assert.Equal(t, "PNG", PNG.String())
	assert.Equal(t, "Formats(42)", Formats(42).String())
}

func TestSaveOpen(t *testing.T) {
	img := testImage()
	dir := t.TempDir()
	for _, name := range []string{"strip.png", "strip.bmp", "strip.tiff"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, Save(img, fn), name)
		got, f, err := Open(fn)
		require.NoError(t, err, name)
		want, _ := ExtToFormat(filepath.Ext(name))
		assert.Equal(t, want, f)
		for x := range 4 {
			for y := range 2 {
				assert.Equal(t, color.RGBAModel.Convert(img.At(x, y)), color.RGBAModel.Convert(got.At(x, y)), "%s %d, %d", name, x, y)
			}
		}
	}

	assert.Error(t, Save(img, filepath.Join(dir, "strip.txt")))
	assert.Error(t, Write(img, &bytes.Buffer{}, WebP))
}
