// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/colorspace/base/errors"
)

// ErrHexCode is the error wrapped by all errors returned from
// [FromHexCode] for a malformed hex code.
var ErrHexCode = errors.New("invalid hex color code")

// FromHexCode parses the given hex color code of the form "#rrggbb"
// or the shorthand "#rgb", in which each digit is duplicated, such
// that "#abc" is the same as "#aabbcc". Digits may be upper or lower
// case. The returned error wraps [ErrHexCode]; see [MustFromHexCode]
// and [LogFromHexCode] for versions that do not return an error.
func FromHexCode(code string) (RGB, error) {
	digits, ok := strings.CutPrefix(code, "#")
	if !ok {
		return RGB{}, errors.Errorf("colors.FromHexCode: %q: missing '#': %w", code, ErrHexCode)
	}
	if !isHex(digits) {
		return RGB{}, errors.Errorf("colors.FromHexCode: %q: non-hex digit: %w", code, ErrHexCode)
	}
	if len(digits) == 6 {
		v, err := strconv.ParseUint(digits, 16, 32)
		if err == nil {
			return RGBFromHex(uint32(v)), nil
		}
	}
	slog.Debug("colors.FromHexCode: trying shorthand form", "code", code)
	if len(digits) == 3 {
		v, err := strconv.ParseUint(digits, 16, 16)
		if err == nil {
			r, g, b := (v>>8)&0xF, (v>>4)&0xF, v&0xF
			return RGB{uint8(r<<4 | r), uint8(g<<4 | g), uint8(b<<4 | b)}, nil
		}
	}
	return RGB{}, errors.Errorf("colors.FromHexCode: %q: expected 3 or 6 hex digits, got %d: %w", code, len(digits), ErrHexCode)
}

// MustFromHexCode parses the given hex color code and returns the
// resulting color. It panics on any resulting error; see [FromHexCode]
// for more information and a version that returns an error.
func MustFromHexCode(code string) RGB {
	return errors.Must1(FromHexCode(code))
}

// LogFromHexCode parses the given hex color code and returns the
// resulting color. It logs any resulting error and returns black;
// see [FromHexCode] for more information and a version that returns
// an error.
func LogFromHexCode(code string) RGB {
	return errors.Log1(FromHexCode(code))
}

// isHex returns whether s consists only of hexadecimal digits.
func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
