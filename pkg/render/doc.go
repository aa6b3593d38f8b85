// Package render groups the output side of automatagraph.
//
// The [dot] subpackage turns a diagram into Graphviz DOT and lays it out in
// process as PNG, SVG or JPEG. The [view] subpackage hands a written file to
// the platform viewer.
package render
