package io

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/automatagraph/pkg/diagram"
	"github.com/matzehuels/automatagraph/pkg/errors"
)

const fsmTOML = `
name  = "finite_state_machine"
file  = "fsm"
title = "Finite-state machine"

[[nodes]]
id    = "A"
label = "State A"

[[nodes]]
id    = "B"
label = "State B"

[[edges]]
from  = "A"
to    = "B"
label = "0"

[[edges]]
from  = "B"
to    = "B"
label = "0,1"
`

func TestReadTOML(t *testing.T) {
	d, err := ReadTOML(strings.NewReader(fsmTOML))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}

	if d.Name != "finite_state_machine" || d.File != "fsm" || d.Title != "Finite-state machine" {
		t.Errorf("header = %q/%q/%q", d.Name, d.File, d.Title)
	}

	wantNodes := []diagram.Node{{ID: "A", Label: "State A"}, {ID: "B", Label: "State B"}}
	if got := d.Nodes(); !reflect.DeepEqual(got, wantNodes) {
		t.Errorf("Nodes() = %v, want %v", got, wantNodes)
	}

	wantEdges := []diagram.Edge{{From: "A", To: "B", Label: "0"}, {From: "B", To: "B", Label: "0,1"}}
	if got := d.Edges(); !reflect.DeepEqual(got, wantEdges) {
		t.Errorf("Edges() = %v, want %v", got, wantEdges)
	}
}

func TestReadTOMLRejectsUnknownKeys(t *testing.T) {
	src := "name = \"g\"\n[[nodes]]\nid = \"a\"\nlable = \"typo\"\n"
	_, err := ReadTOML(strings.NewReader(src))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("ReadTOML() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
	if !strings.Contains(err.Error(), "lable") {
		t.Errorf("error should name the unknown key: %v", err)
	}
}

func TestReadTOMLMalformed(t *testing.T) {
	_, err := ReadTOML(strings.NewReader("name = "))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ReadTOML() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestReadJSON(t *testing.T) {
	src := `{"name":"pushdown_automaton","file":"pda","nodes":[{"id":"q0"}],"edges":[{"from":"q0","to":"q0","label":"a, ε → A"}]}`
	d, err := ReadJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if d.NodeCount() != 1 || d.EdgeCount() != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", d.NodeCount(), d.EdgeCount())
	}
	if got := d.Edges()[0].Label; got != "a, ε → A" {
		t.Errorf("edge label = %q", got)
	}
}

func TestReadJSONRejectsUnknownFields(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"name":"g","states":[]}`))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ReadJSON() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

const pdaYAML = `
name: pushdown_automaton
file: pda
nodes:
  - id: q0
  - id: q1
edges:
  - from: q0
    to: q1
    label: "a, ε → A"
`

func TestReadYAML(t *testing.T) {
	d, err := ReadYAML(strings.NewReader(pdaYAML))
	if err != nil {
		t.Fatalf("ReadYAML() error: %v", err)
	}
	if d.Name != "pushdown_automaton" || d.File != "pda" {
		t.Errorf("header = %q/%q", d.Name, d.File)
	}
	if d.NodeCount() != 2 || d.EdgeCount() != 1 {
		t.Fatalf("counts = %d/%d, want 2/1", d.NodeCount(), d.EdgeCount())
	}
	if got := d.Edges()[0].Label; got != "a, ε → A" {
		t.Errorf("edge label = %q", got)
	}

	_, err = ReadYAML(strings.NewReader("name: x\nnodes:\n  - id: a\n    lable: A\n"))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown field error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, d := range diagram.Builtins() {
		t.Run(d.File, func(t *testing.T) {
			var jsonBuf, tomlBuf, yamlBuf bytes.Buffer
			if err := WriteJSON(&jsonBuf, d); err != nil {
				t.Fatalf("WriteJSON() error: %v", err)
			}
			if err := WriteTOML(&tomlBuf, d); err != nil {
				t.Fatalf("WriteTOML() error: %v", err)
			}
			if err := WriteYAML(&yamlBuf, d); err != nil {
				t.Fatalf("WriteYAML() error: %v", err)
			}

			fromJSON, err := ReadJSON(&jsonBuf)
			if err != nil {
				t.Fatalf("ReadJSON() error: %v", err)
			}
			fromTOML, err := ReadTOML(&tomlBuf)
			if err != nil {
				t.Fatalf("ReadTOML() error: %v\n%s", err, tomlBuf.String())
			}

			fromYAML, err := ReadYAML(&yamlBuf)
			if err != nil {
				t.Fatalf("ReadYAML() error: %v\n%s", err, yamlBuf.String())
			}

			for name, got := range map[string]*diagram.Diagram{"json": fromJSON, "toml": fromTOML, "yaml": fromYAML} {
				if got.Name != d.Name || got.File != d.File || got.Title != d.Title {
					t.Errorf("%s header = %q/%q/%q", name, got.Name, got.File, got.Title)
				}
				if !reflect.DeepEqual(got.Nodes(), d.Nodes()) {
					t.Errorf("%s nodes = %v, want %v", name, got.Nodes(), d.Nodes())
				}
				if !reflect.DeepEqual(got.Edges(), d.Edges()) {
					t.Errorf("%s edges = %v, want %v", name, got.Edges(), d.Edges())
				}
			}
		})
	}
}

func TestImportDefaultsFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.toml")
	src := "[[nodes]]\nid = \"a\"\n[[edges]]\nfrom = \"a\"\nto = \"a\"\nlabel = \"x\"\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Import(path)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if d.File != "mine" {
		t.Errorf("File = %q, want %q", d.File, "mine")
	}
	if d.Name != "mine" {
		t.Errorf("Name = %q, want %q", d.Name, "mine")
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()
	xml := filepath.Join(dir, "g.xml")
	if err := os.WriteFile(xml, []byte("<graph/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing file", filepath.Join(dir, "nope.toml"), errors.ErrCodeFileNotFound},
		{"unsupported extension", xml, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(tt.path)
			if !errors.Is(err, tt.code) {
				t.Errorf("Import(%s) error = %v, want %s", tt.path, err, tt.code)
			}
		})
	}
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{ExtTOML, ExtJSON, ExtYAML} {
		path := filepath.Join(dir, "tm"+ext)
		if err := Export(path, diagram.TM()); err != nil {
			t.Fatalf("Export(%s) error: %v", path, err)
		}
		d, err := Import(path)
		if err != nil {
			t.Fatalf("Import(%s) error: %v", path, err)
		}
		if !reflect.DeepEqual(d.Edges(), diagram.TM().Edges()) {
			t.Errorf("%s edges = %v", ext, d.Edges())
		}
	}

	if err := Export(filepath.Join(dir, "tm.png"), diagram.TM()); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Export(.png) error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestSupported(t *testing.T) {
	tests := map[string]bool{
		"fsm.toml": true,
		"FSM.TOML": true,
		"fsm.json": true,
		"fsm.yaml": true,
		"fsm.yml":  true,
		"fsm.xml":  false,
		"fsm":      false,
	}
	for path, want := range tests {
		if got := Supported(path); got != want {
			t.Errorf("Supported(%q) = %v, want %v", path, got, want)
		}
	}
}
