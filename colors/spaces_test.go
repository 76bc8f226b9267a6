// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaces(t *testing.T) {
	for _, s := range SpacesValues() {
		var got Spaces
		require.NoError(t, got.SetString(s.String()))
		assert.Equal(t, s, got)

		b, err := s.MarshalText()
		require.NoError(t, err)
		got = -1
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, s, got)
	}

	var s Spaces
	require.NoError(t, s.Set("HSV"))
	assert.Equal(t, HSVSpace, s)
	assert.Equal(t, "space", s.Type())
	assert.Error(t, s.Set("lab"))
	assert.Equal(t, HSVSpace, s)
	assert.Equal(t, "Spaces(9)", Spaces(9).String())
}

func TestSpacesOperations(t *testing.T) {
	red, blue := NewRGB(255, 0, 0), NewRGB(0, 0, 255)

	assert.Equal(t, red.CMYK(), CMYKSpace.Convert(red))
	assert.Equal(t, red.HSL(), HSLSpace.Convert(red))
	assert.Equal(t, red.HSV(), HSVSpace.Convert(red))
	assert.Equal(t, red.XYZ(), XYZSpace.Convert(red))
	assert.Equal(t, red, RGBSpace.Convert(NewHSL(0, 1, 0.5)))

	assert.Equal(t, NewRGB(127, 0, 127), RGBSpace.Lerp(red, blue, 0.5))
	assert.Equal(t, NewRGB(0, 255, 0), HSLSpace.Lerp(red, blue, 0.5))
	assert.Equal(t, NewRGB(0, 255, 0), HSVSpace.Lerp(red, blue, 0.5))
	assert.Equal(t, red.CMYK().Lerp(blue, 0.5).RGB(), CMYKSpace.Lerp(red, blue, 0.5))
	assert.Equal(t, red.XYZ().Lerp(blue, 0.5).RGB(), XYZSpace.Lerp(red, blue, 0.5))

	for _, s := range SpacesValues() {
		assert.Equal(t, s.Lerp(red, blue, 0.5), s.Cerp(red, blue, 0, 0, 0.5), "%v", s)
		assert.Equal(t, float32(0), s.Distance(red, red), "%v", s)
		assert.Equal(t, s.Distance(red, blue), s.Distance(blue, red), "%v", s)
	}
	assert.Equal(t, red.Distance(blue), RGBSpace.Distance(red, blue))
	assert.Equal(t, red.HSL().Distance(blue), HSLSpace.Distance(red, blue))
}
