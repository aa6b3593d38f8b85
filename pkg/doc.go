// Package pkg holds the libraries behind the automatagraph CLI.
//
// Data flows one way:
//
//	[diagram] or [io] definition file
//	         ↓
//	[render/dot] ToDOT, then Render through Graphviz
//	         ↓
//	[pipeline] write <name>.<format>, then [render/view] Open
//
// [cache] stores rendered artifacts keyed by DOT source and format.
// [observability] exposes hooks around rendering, writing and viewing.
// [errors] defines the coded errors every package returns.
//
// Drawing the three built-in diagrams:
//
//	r := pipeline.NewRunner(nil, view.Open, log.Default())
//	defer r.Close()
//	_, err := r.DrawAll(ctx, diagram.Builtins(), pipeline.Options{View: true})
package pkg
