package dot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/automatagraph/pkg/diagram"
	"github.com/matzehuels/automatagraph/pkg/errors"
)

// Options configures DOT generation. The zero value leaves every layout
// attribute to Graphviz.
type Options struct {
	// RankDir sets the graph's rankdir (TB, LR, BT, RL).
	RankDir string
	// Shape sets the default node shape (e.g. "circle").
	Shape string
}

// ValidRankDirs is the set of rankdir values Graphviz accepts.
var ValidRankDirs = map[string]bool{"": true, "TB": true, "LR": true, "BT": true, "RL": true}

// Validate reports an INVALID_INPUT error for a rankdir Graphviz does not
// accept. RankDir is compared case-insensitively.
func (o Options) Validate() error {
	if !ValidRankDirs[strings.ToUpper(o.RankDir)] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid rankdir: %s (must be TB, LR, BT, or RL)", o.RankDir)
	}
	return nil
}

// ToDOT converts a diagram to Graphviz DOT source. The result is
// deterministic: the same diagram and options always yield the same bytes.
func ToDOT(d *diagram.Diagram, opts Options) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", quote(d.Name))

	if opts.RankDir != "" {
		fmt.Fprintf(&buf, "  rankdir=%s;\n", quote(strings.ToUpper(opts.RankDir)))
	}
	if opts.Shape != "" {
		fmt.Fprintf(&buf, "  node [shape=%s];\n", quote(opts.Shape))
	}
	if opts.RankDir != "" || opts.Shape != "" {
		buf.WriteString("\n")
	}

	for _, n := range d.Nodes() {
		fmt.Fprintf(&buf, "  %s [label=%s];\n", quote(n.ID), quote(n.DisplayLabel()))
	}

	if d.EdgeCount() > 0 {
		buf.WriteString("\n")
	}
	for _, e := range d.Edges() {
		fmt.Fprintf(&buf, "  %s -> %s [label=%s];\n", quote(e.From), quote(e.To), quote(e.Label))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// quote returns s as a DOT double-quoted string. Only '"' and '\' are
// escaped and a newline becomes Graphviz's \n line break; every other byte
// is passed through as is.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
