package dot

import (
	"bytes"
	"context"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/automatagraph/pkg/errors"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatJPG = "jpg"
	FormatDOT = "dot"
)

// DefaultFormat is the format written when none is requested.
const DefaultFormat = FormatPNG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{FormatPNG: true, FormatSVG: true, FormatJPG: true, FormatDOT: true}

var graphvizFormats = map[string]graphviz.Format{
	FormatPNG: graphviz.PNG,
	FormatSVG: graphviz.SVG,
	FormatJPG: graphviz.JPG,
}

// ValidateFormat returns an INVALID_FORMAT error for unsupported formats.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'png', 'svg', 'jpg', or 'dot')", format)
	}
	return nil
}

// NormalizeFormat lowercases format, maps "jpeg" to "jpg" and substitutes
// DefaultFormat for the empty string.
func NormalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "":
		return DefaultFormat
	case "jpeg":
		return FormatJPG
	}
	return f
}

// Render lays out DOT source and encodes it in format. FormatDOT returns the
// source unchanged without invoking Graphviz.
func Render(ctx context.Context, src string, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if format == FormatDOT {
		return []byte(src), nil
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphvizFormats[format], &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	if buf.Len() == 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "render %s: graphviz produced no output", format)
	}
	return buf.Bytes(), nil
}
