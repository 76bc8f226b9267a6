// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"runtime"
	"strconv"
	"strings"
)

// Stack returns the stack trace of the caller of the function
// that called Stack, as "function:line" strings.
func Stack() []string {
	callers := make([]uintptr, 10)
	n := runtime.Callers(3, callers)
	// Return now to avoid processing the zero Frame that would
	// otherwise be returned by frames.Next below.
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(callers[:n])
	res := []string{}
	for {
		frame, more := frames.Next()
		// Stop unwinding when we enter package runtime or test,
		// as we only care about errors in the program, not the
		// low-level language code.
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			break
		}
		res = append(res, frame.Function+":"+strconv.Itoa(frame.Line))
		if !more {
			break
		}
	}
	return res
}
