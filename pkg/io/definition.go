package io

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/matzehuels/automatagraph/pkg/diagram"
	"github.com/matzehuels/automatagraph/pkg/errors"
)

const (
	// ExtTOML is the extension of TOML definition files.
	ExtTOML = ".toml"
	// ExtJSON is the extension of JSON definition files.
	ExtJSON = ".json"
	// ExtYAML is the extension of YAML definition files. ".yml" is
	// accepted on import as well.
	ExtYAML = ".yaml"
	extYML  = ".yml"
)

// definition is the on-disk shape shared by all encodings.
type definition struct {
	Name  string         `json:"name" toml:"name" yaml:"name"`
	File  string         `json:"file,omitempty" toml:"file,omitempty" yaml:"file,omitempty"`
	Title string         `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Nodes []diagram.Node `json:"nodes" toml:"nodes" yaml:"nodes"`
	Edges []diagram.Edge `json:"edges" toml:"edges" yaml:"edges"`
}

func fromDiagram(d *diagram.Diagram) definition {
	return definition{
		Name:  d.Name,
		File:  d.File,
		Title: d.Title,
		Nodes: d.Nodes(),
		Edges: d.Edges(),
	}
}

func (def definition) toDiagram() *diagram.Diagram {
	d := diagram.New(def.Name, def.File).WithTitle(def.Title)
	for _, n := range def.Nodes {
		d.AddNode(n)
	}
	for _, e := range def.Edges {
		d.AddEdge(e)
	}
	return d
}

// applyPathDefaults fills file and name from the definition's path.
func (def *definition) applyPathDefaults(path string) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if def.File == "" {
		def.File = stem
	}
	if def.Name == "" {
		def.Name = def.File
	}
}

// Supported reports whether path has a definition file extension.
func Supported(path string) bool {
	return codecFor(path) != nil
}

type codec struct {
	decode func(io.Reader) (definition, error)
	encode func(io.Writer, *diagram.Diagram) error
}

// codecFor picks the codec for path by extension, or nil.
func codecFor(path string) *codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtTOML:
		return &codec{decodeTOML, WriteTOML}
	case ExtJSON:
		return &codec{decodeJSON, WriteJSON}
	case ExtYAML, extYML:
		return &codec{decodeYAML, WriteYAML}
	}
	return nil
}

func unsupported(path string) error {
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported definition file %s (want %s, %s or %s)", path, ExtTOML, ExtJSON, ExtYAML)
}
