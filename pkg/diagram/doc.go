// Package diagram describes labeled directed graphs to be drawn.
//
// # Overview
//
// A [Diagram] is a name plus ordered lists of [Node] and [Edge] values.
// Nothing here interprets the labels: a diagram of a finite-state machine
// holds its transitions as free text, exactly as they should appear on the
// arrows. No automaton is ever executed.
//
// # Building
//
// Diagrams are built with chained calls, mirroring how a Graphviz digraph is
// declared:
//
//	d := diagram.New("finite_state_machine", "fsm").
//	    Node("A", "State A").
//	    Node("B", "State B").
//	    Edge("A", "B", "0")
//
// The builder accepts anything: duplicate IDs, self-loops and edges to
// undeclared nodes are stored as given. Use [Lint] to report such issues
// without rejecting the diagram.
//
// # Built-ins
//
// [FSM], [PDA] and [TM] return the three fixed diagrams drawn by default.
// [Builtins] returns all of them in drawing order and [Lookup] finds one by
// file stem or graph name.
package diagram
