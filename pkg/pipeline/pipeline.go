// Package pipeline draws diagrams: DOT generation, rendering, writing the
// artifact and opening it in a viewer.
//
// # Stages
//
//  1. DOT: [dot.ToDOT] turns the diagram's declarations into Graphviz source
//  2. Render: Graphviz lays out and rasterizes the source, with results
//     cached by source and format
//  3. Write: the artifact is written to <OutputDir>/<File>.<Format>,
//     replacing any previous file
//  4. View: the artifact is opened in the system viewer if requested
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, view.Open, logger)
//	results, err := runner.DrawAll(ctx, diagram.Builtins(), pipeline.Options{View: true})
//
// Draws run one after another. The first failure stops the run and is
// returned unchanged; later diagrams are not attempted.
package pipeline

import (
	"strings"
	"time"

	"github.com/matzehuels/automatagraph/pkg/render/dot"
)

// Options configures a draw.
type Options struct {
	// Format is the output format (png, svg, jpg, dot). Empty means png.
	Format string

	// OutputDir is where artifacts are written. Empty means the working
	// directory.
	OutputDir string

	// View opens each artifact in the system viewer after writing it.
	View bool

	// DOT controls DOT generation.
	DOT dot.Options
}

// ValidateAndSetDefaults normalizes the format and checks every option.
func (o *Options) ValidateAndSetDefaults() error {
	o.Format = dot.NormalizeFormat(o.Format)
	if err := dot.ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	o.DOT.RankDir = strings.ToUpper(o.DOT.RankDir)
	return o.DOT.Validate()
}

// Result describes one drawn diagram.
type Result struct {
	Diagram  string        // graph name
	Path     string        // artifact path
	Format   string        // artifact format
	Size     int           // bytes written
	CacheHit bool          // render was served from cache
	Viewed   bool          // viewer was launched
	Duration time.Duration // total time for the draw
}
