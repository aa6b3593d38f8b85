// Package io reads and writes diagram definition files.
//
// # Overview
//
// Definitions let the same draw path that handles the built-in diagrams
// take arbitrary node and edge declarations. The encoding is chosen by file
// extension: TOML (.toml), JSON (.json) or YAML (.yaml, .yml).
//
// # TOML Format
//
//	name  = "finite_state_machine"
//	file  = "fsm"
//	title = "Finite-state machine"
//
//	[[nodes]]
//	id    = "A"
//	label = "State A"
//
//	[[edges]]
//	from  = "A"
//	to    = "B"
//	label = "0"
//
// # JSON Format
//
//	{
//	  "name": "finite_state_machine",
//	  "file": "fsm",
//	  "nodes": [{"id": "A", "label": "State A"}],
//	  "edges": [{"from": "A", "to": "B", "label": "0"}]
//	}
//
// # YAML Format
//
//	name: finite_state_machine
//	file: fsm
//	nodes:
//	  - id: A
//	    label: State A
//	edges:
//	  - from: A
//	    to: B
//	    label: "0"
//
// # Defaults
//
// When importing from a path, a missing "file" falls back to the path's
// base name without extension, and a missing "name" falls back to "file".
// Node labels default to the node ID at draw time.
//
// Decoded definitions are not validated beyond syntax: the draw path
// accepts whatever is declared. Run [diagram.Lint] for advisory checks.
package io
