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

// ReadTOML decodes a TOML definition from r. Keys not part of the format
// are rejected so that typos like "lable" don't silently drop labels.
// ReadTOML does not close r.
func ReadTOML(r io.Reader) (*diagram.Diagram, error) {
	def, err := decodeTOML(r)
	if err != nil {
		return nil, err
	}
	return def.toDiagram(), nil
}

// ReadJSON decodes a JSON definition from r. Unknown fields are rejected.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*diagram.Diagram, error) {
	def, err := decodeJSON(r)
	if err != nil {
		return nil, err
	}
	return def.toDiagram(), nil
}

// ReadYAML decodes a YAML definition from r. Unknown fields are rejected.
// ReadYAML does not close r.
func ReadYAML(r io.Reader) (*diagram.Diagram, error) {
	def, err := decodeYAML(r)
	if err != nil {
		return nil, err
	}
	return def.toDiagram(), nil
}

// Import reads the definition file at path, picking the decoder from the
// extension. See the package documentation for the defaults applied.
func Import(path string) (*diagram.Diagram, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	c := codecFor(path)
	if c == nil {
		return nil, unsupported(path)
	}
	def, err := c.decode(f)
	if err != nil {
		return nil, err
	}

	def.applyPathDefaults(path)
	return def.toDiagram(), nil
}

func decodeTOML(r io.Reader) (definition, error) {
	var def definition
	md, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return def, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode TOML definition")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return def, errors.New(errors.ErrCodeInvalidInput, "unknown key %q in TOML definition", undecoded[0].String())
	}
	return def, nil
}

func decodeJSON(r io.Reader) (definition, error) {
	var def definition
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return def, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON definition")
	}
	return def, nil
}

func decodeYAML(r io.Reader) (definition, error) {
	var def definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return def, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode YAML definition")
	}
	return def, nil
}
