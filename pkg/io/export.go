package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/automatagraph/pkg/diagram"
	"github.com/matzehuels/automatagraph/pkg/errors"
)

// WriteJSON encodes d as an indented JSON definition.
// The output can be read back with [ReadJSON].
func WriteJSON(w io.Writer, d *diagram.Diagram) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fromDiagram(d)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode JSON definition")
	}
	return nil
}

// WriteTOML encodes d as a TOML definition.
// The output can be read back with [ReadTOML].
func WriteTOML(w io.Writer, d *diagram.Diagram) error {
	if err := toml.NewEncoder(w).Encode(fromDiagram(d)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode TOML definition")
	}
	return nil
}

// WriteYAML encodes d as a YAML definition.
// The output can be read back with [ReadYAML].
func WriteYAML(w io.Writer, d *diagram.Diagram) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromDiagram(d)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode YAML definition")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode YAML definition")
	}
	return nil
}

// Export writes d to path, picking the encoder from the extension.
// An existing file is overwritten.
func Export(path string, d *diagram.Diagram) error {
	c := codecFor(path)
	if c == nil {
		return unsupported(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	if err := c.encode(f, d); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "close %s", path)
	}
	return nil
}
