// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil))

	err := Wrap(fs.ErrNotExist)
	var e *Error
	assert.True(t, As(err, &e))
	assert.NotEmpty(t, e.Stack)
	assert.Contains(t, e.Stack[0], "TestWrap")
	assert.True(t, Is(err, fs.ErrNotExist))
	assert.Same(t, err, Wrap(err))

	err = Errorf("opening palette: %w", fs.ErrPermission)
	assert.True(t, Is(err, fs.ErrPermission))
	assert.Equal(t, "opening palette: permission denied", err.Error())
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.Equal(t, fs.ErrClosed, Log(fs.ErrClosed))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, fs.ErrClosed))
	assert.Equal(t, "x", Ignore1("x", fs.ErrClosed))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(fs.ErrInvalid) })
	assert.Equal(t, 7, Must1(7, nil))
	assert.Panics(t, func() { Must1(7, fs.ErrInvalid) })
}
