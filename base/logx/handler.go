// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default [slog] logger to one that writes
// to [os.Stderr] at [UserLevel], with colored level names on terminals
// that support them.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// NewHandler returns a text [slog.Handler] writing to w at the given level.
// Timestamps are omitted and level names are colored with [LevelColor].
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				a.Value = slog.StringValue(out.String(lvl.String()).Foreground(LevelColor(out, lvl)).String())
			}
			return a
		},
	})
}

// LevelColor returns the terminal color used for the given level
// on the given output.
func LevelColor(out *termenv.Output, level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return out.Color("1") // red
	case level >= slog.LevelWarn:
		return out.Color("3") // yellow
	case level >= slog.LevelInfo:
		return out.Color("4") // blue
	default:
		return out.Color("8") // gray
	}
}
