// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestFromName(t *testing.T) {
	assert.Equal(t, NewRGB(255, 140, 0), MustFromName("darkorange"))
	assert.Equal(t, NewRGB(255, 140, 0), MustFromName("DarkOrange"))
	assert.Equal(t, MustFromName("gray"), MustFromName("grey"))

	_, err := FromName("notacolor")
	assert.True(t, errors.Is(err, ErrUnknownName))
	assert.Panics(t, func() { MustFromName("notacolor") })
	assert.Equal(t, RGB{}, LogFromName("notacolor"))

	for _, name := range colornames.Names {
		c := MustFromName(name)
		n, ok := NameOf(c)
		assert.True(t, ok, name)
		assert.Equal(t, c, MustFromName(n), name)
		assert.Equal(t, n, Nearest(c), name)
	}
}

func TestParse(t *testing.T) {
	for _, s := range []string{"#f00", "#FF0000", "red", " Red ", "RED"} {
		c, err := Parse(s)
		assert.NoError(t, err, s)
		assert.Equal(t, NewRGB(255, 0, 0), c, s)
	}

	_, err := Parse("#ff00")
	assert.True(t, errors.Is(err, ErrHexCode))
	_, err = Parse("ff0000")
	assert.True(t, errors.Is(err, ErrUnknownName))
}

func TestSuggestName(t *testing.T) {
	assert.Equal(t, "green", SuggestName("gren"))
	assert.Equal(t, "darkorange", SuggestName("DarkOrnge"))
	assert.Equal(t, "red", SuggestName("red"))
	assert.Equal(t, "", SuggestName("qqqqqqqqqq"))

	_, err := FromName("gren")
	assert.True(t, errors.Is(err, ErrUnknownName))
	assert.Contains(t, err.Error(), `did you mean "green"?`)
}

func TestNameOf(t *testing.T) {
	name, ok := NameOf(NewRGB(0, 255, 255))
	assert.True(t, ok)
	assert.Equal(t, "aqua", name)

	name, ok = NameOf(NewHSL(0, 1, 0.5))
	assert.True(t, ok)
	assert.Equal(t, "red", name)

	_, ok = NameOf(NewRGB(1, 2, 3))
	assert.False(t, ok)
}

func TestNearest(t *testing.T) {
	assert.Equal(t, "red", Nearest(NewRGB(250, 0, 5)))
	assert.Equal(t, "black", Nearest(NewRGB(1, 2, 3)))
	assert.Equal(t, "white", Nearest(NewHSL(0, 0, 0.999)))
}

func ExampleNearest() {
	fmt.Println(Nearest(MustFromHexCode("#fe0102")))
	// Output: red
}
