// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"encoding/json"
	"fmt"
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGB(t *testing.T) {
	c := RGBFromHex(0xFF12345A)
	assert.Equal(t, NewRGB(0x12, 0x34, 0x5A), c)
	assert.Equal(t, uint32(0x12345A), c.Hex())
	assert.Equal(t, [3]uint8{0x12, 0x34, 0x5A}, c.Octets())
	assert.Equal(t, c, RGBFromOctets(c.Octets()))
	assert.Equal(t, c, RGBFromRatios(c.Ratios()))
	assert.Equal(t, "#12345a", c.HexCode())
	assert.Equal(t, "rgb(18, 52, 90)", c.String())

	c.SetRed(1)
	c.SetGreen(2)
	c.SetBlue(3)
	assert.Equal(t, uint8(1), c.Red())
	assert.Equal(t, uint8(2), c.Green())
	assert.Equal(t, uint8(3), c.Blue())

	assert.Equal(t, [4]float32{1, 0, 0, 0}, NewRGB(255, 0, 0).RatiosAlpha())
	assert.Equal(t, NewRGB(255, 0, 128), RGBFromRatios([3]float32{1.5, -1, 0.5}))
}

func TestFromHexCode(t *testing.T) {
	grid(func(c RGB) {
		assert.Equal(t, c, MustFromHexCode(c.HexCode()))
	})

	assert.Equal(t, MustFromHexCode("#aabbcc"), MustFromHexCode("#abc"))
	assert.Equal(t, NewRGB(0xAA, 0xBB, 0xCC), MustFromHexCode("#ABC"))
	assert.Equal(t, NewRGB(0xAB, 0xCD, 0xEF), MustFromHexCode("#AbCdEf"))
	assert.Equal(t, NewRGB(0, 0, 0), MustFromHexCode("#000"))

	for _, bad := range []string{"", "#", "abc", "aabbcc", "#ab", "#abcd", "#abcde", "#aabbccd", "#ggg", "#12345z", "#+12345", " #abc"} {
		_, err := FromHexCode(bad)
		if assert.Error(t, err, bad) {
			assert.True(t, errors.Is(err, ErrHexCode), bad)
		}
	}

	assert.Panics(t, func() { MustFromHexCode("#12") })
	assert.Equal(t, RGB{}, LogFromHexCode("#12"))
}

func TestRGBText(t *testing.T) {
	type doc struct {
		Fill   RGB
		Stroke RGB
	}
	d := doc{Fill: NewRGB(255, 0, 0), Stroke: NewRGB(0x12, 0x34, 0x56)}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{"Fill":"#ff0000","Stroke":"#123456"}`, string(b))

	var got doc
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, d, got)

	assert.Error(t, json.Unmarshal([]byte(`{"Fill":"red"}`), &got))
}

func TestRGBLerp(t *testing.T) {
	black, white := NewRGB(0, 0, 0), NewRGB(255, 255, 255)
	assert.Equal(t, NewRGB(127, 127, 127), black.Lerp(white, 0.5))
	assert.Equal(t, black, black.Lerp(white, 0))
	assert.Equal(t, white, black.Lerp(white, 1))
	assert.Equal(t, white, black.Lerp(white, 7))
	assert.Equal(t, black.Lerp(white, 0.25), white.Lerp(black, 0.75))

	// the end point is converted to RGB
	assert.Equal(t, white, black.Lerp(NewHSL(0, 0, 1), 1))

	assert.Equal(t, black, black.Cerp(white, 0, 0, 0))
	assert.Equal(t, white, black.Cerp(white, 0, 0, 1))
	assert.Equal(t, NewRGB(127, 127, 127), black.Cerp(white, 0, 0, 0.5))
}

func TestRGBDistance(t *testing.T) {
	black, white := NewRGB(0, 0, 0), NewRGB(255, 255, 255)
	tolassert.Equal(t, float32(441.6730), black.Distance(white))
	assert.Equal(t, black.Distance(white), white.Distance(black))
	assert.Equal(t, float32(0), white.Distance(white))
	assert.Equal(t, float32(5), NewRGB(3, 0, 0).Distance(NewRGB(0, 4, 0)))
}

func ExampleFromHexCode() {
	c, err := FromHexCode("#0f8")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c, c.HexCode())

	_, err = FromHexCode("0f8")
	fmt.Println(errors.Is(err, ErrHexCode))
	// Output:
	// rgb(0, 255, 136) #00ff88
	// true
}
