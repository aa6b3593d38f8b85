// Package dot turns diagrams into Graphviz DOT and renders them to images.
//
// # Usage
//
//	src := dot.ToDOT(diagram.FSM(), dot.Options{})
//	png, err := dot.Render(ctx, src, dot.FormatPNG)
//
// # DOT Output
//
// [ToDOT] emits one statement per declared node and edge, in declaration
// order, with every identifier quoted. The graph is named after the
// diagram. Layout attributes are left at Graphviz defaults (ellipse nodes,
// top-to-bottom ranks) unless [Options] overrides them, so the output
// matches a plain hand-written digraph of the same declarations.
//
// # Rendering
//
// [Render] uses [github.com/goccy/go-graphviz], which embeds Graphviz as a
// WebAssembly module: no dot binary has to be installed. Layout is entirely
// Graphviz's; this package only hands it the declarations.
package dot
