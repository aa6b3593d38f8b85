package diagram

import "slices"

// Node is a vertex of a diagram. Label is what gets drawn; ID is what edges
// refer to.
type Node struct {
	ID    string `json:"id" toml:"id" yaml:"id"`
	Label string `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
}

// Edge is a labeled arrow between two node IDs. The label is free text, for
// example an input symbol, a stack operation or a tape operation.
type Edge struct {
	From  string `json:"from" toml:"from" yaml:"from"`
	To    string `json:"to" toml:"to" yaml:"to"`
	Label string `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
}

// Diagram is an ordered collection of nodes and edges under a name.
//
// Name is the Graphviz graph name (e.g. "finite_state_machine"). File is the
// stem of the rendered output (e.g. "fsm" for fsm.png). Title is a
// human-readable description used in listings only.
//
// Declaration order is preserved and drives the generated DOT, so the same
// declarations always produce the same output.
type Diagram struct {
	Name  string
	File  string
	Title string

	nodes []Node
	edges []Edge
}

// New creates an empty diagram. If file is empty, name is used as the file
// stem.
func New(name, file string) *Diagram {
	if file == "" {
		file = name
	}
	return &Diagram{Name: name, File: file}
}

// WithTitle sets the listing title and returns d for chaining.
func (d *Diagram) WithTitle(title string) *Diagram {
	d.Title = title
	return d
}

// Node appends a node. An empty label is drawn as the ID.
func (d *Diagram) Node(id, label string) *Diagram {
	d.nodes = append(d.nodes, Node{ID: id, Label: label})
	return d
}

// Edge appends a labeled edge from one node ID to another.
func (d *Diagram) Edge(from, to, label string) *Diagram {
	d.edges = append(d.edges, Edge{From: from, To: to, Label: label})
	return d
}

// AddNode appends n as given.
func (d *Diagram) AddNode(n Node) { d.nodes = append(d.nodes, n) }

// AddEdge appends e as given.
func (d *Diagram) AddEdge(e Edge) { d.edges = append(d.edges, e) }

// Nodes returns a copy of the nodes in declaration order.
func (d *Diagram) Nodes() []Node { return slices.Clone(d.nodes) }

// Edges returns a copy of the edges in declaration order.
func (d *Diagram) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of declared nodes, duplicates included.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of declared edges.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// DisplayLabel returns the label drawn for n: its Label, or its ID when the
// label is empty.
func (n Node) DisplayLabel() string {
	if n.Label == "" {
		return n.ID
	}
	return n.Label
}

// IsSelfLoop reports whether the edge starts and ends on the same node.
func (e Edge) IsSelfLoop() bool { return e.From == e.To }
