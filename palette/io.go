// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"embed"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/iox"
	"cogentcore.org/colorspace/base/iox/jsonx"
	"cogentcore.org/colorspace/base/iox/tomlx"
	"cogentcore.org/colorspace/base/iox/yamlx"
)

//go:embed palettes
var builtins embed.FS

// formatOf returns the decoder and encoder for the format
// of the given filename, which is chosen by its extension.
func formatOf(filename string) (iox.DecoderFunc, iox.EncoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.NewDecoder, tomlx.NewEncoder, nil
	case ".yaml", ".yml":
		return yamlx.NewDecoder, yamlx.NewEncoder, nil
	case ".json":
		return jsonx.NewDecoder, jsonx.NewEncoder, nil
	}
	return nil, nil, errors.Errorf("palette: %q: %w", filename, iox.ErrUnknownFormat)
}

// Open opens a palette from the given TOML, YAML, or JSON file,
// with the format chosen by the file extension.
func Open(filename string) (*Palette, error) {
	dec, _, err := formatOf(filename)
	if err != nil {
		return nil, err
	}
	p := &Palette{}
	if err := iox.Open(p, filename, dec); err != nil {
		return nil, errors.Wrap(err)
	}
	slog.Debug("palette: opened", "file", filename, "entries", p.Len())
	return p, nil
}

// OpenFS is like [Open], but uses the given [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string) (*Palette, error) {
	dec, _, err := formatOf(filename)
	if err != nil {
		return nil, err
	}
	p := &Palette{}
	if err := iox.OpenFS(p, fsys, filename, dec); err != nil {
		return nil, errors.Wrap(err)
	}
	return p, nil
}

// Save saves the palette to the given TOML, YAML, or JSON file,
// with the format chosen by the file extension.
func (p *Palette) Save(filename string) error {
	_, enc, err := formatOf(filename)
	if err != nil {
		return err
	}
	if err := iox.Save(p, filename, enc); err != nil {
		return errors.Wrap(err)
	}
	slog.Debug("palette: saved", "file", filename, "entries", p.Len())
	return nil
}

// Builtins returns the names of the built in palettes, in sorted order.
func Builtins() []string {
	files, err := fs.ReadDir(builtins, "palettes")
	if errors.Log(err) != nil {
		return nil
	}
	var names []string
	for _, f := range files {
		names = append(names, strings.TrimSuffix(f.Name(), path.Ext(f.Name())))
	}
	slices.Sort(names)
	return names
}

// Builtin returns the built in palette with the given name.
// See [Builtins] for the names.
func Builtin(name string) (*Palette, error) {
	matches, err := fs.Glob(builtins, path.Join("palettes", name+".*"))
	if err != nil {
		return nil, errors.Wrap(err)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("palette.Builtin: no built in palette named %q", name)
	}
	return OpenFS(builtins, matches[0])
}

// Load returns the built in palette with the given name if there is
// one, and otherwise opens the palette file with the given name.
func Load(name string) (*Palette, error) {
	if slices.Contains(Builtins(), name) {
		return Builtin(name)
	}
	return Open(name)
}
