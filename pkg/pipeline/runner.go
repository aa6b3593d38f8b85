package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/automatagraph/pkg/cache"
	"github.com/matzehuels/automatagraph/pkg/diagram"
	"github.com/matzehuels/automatagraph/pkg/errors"
	"github.com/matzehuels/automatagraph/pkg/observability"
	"github.com/matzehuels/automatagraph/pkg/render/dot"
	"github.com/matzehuels/automatagraph/pkg/render/view"
)

// RenderFunc renders DOT source in a format. [dot.Render] is the default.
type RenderFunc func(ctx context.Context, src, format string) ([]byte, error)

// Runner draws diagrams with caching. It holds no per-draw state.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
	Opener view.Opener
	Render RenderFunc
}

// NewRunner creates a runner.
// If c is nil, a NullCache is used (caching disabled).
// If opener is nil, the platform viewer is used.
func NewRunner(c cache.Cache, opener view.Opener, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if opener == nil {
		opener = view.Open
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
		Opener: opener,
		Render: dot.Render,
	}
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// DrawAll draws ds in order and stops at the first failure. Results for
// the diagrams drawn before the failure are returned with the error.
func (r *Runner) DrawAll(ctx context.Context, ds []*diagram.Diagram, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(ds))
	for _, d := range ds {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.Draw(ctx, d, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Draw renders d, writes it to <OutputDir>/<File>.<Format> and optionally
// opens it. An existing file at that path is overwritten.
func (r *Runner) Draw(ctx context.Context, d *diagram.Diagram, opts Options) (Result, error) {
	start := time.Now()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Result{}, err
	}
	if err := errors.ValidateFileStem(d.File); err != nil {
		return Result{}, err
	}

	path := filepath.Join(opts.OutputDir, d.File+"."+opts.Format)
	res := Result{Diagram: d.Name, Path: path, Format: opts.Format}

	src := dot.ToDOT(d, opts.DOT)
	r.Logger.Debug("generated DOT", "diagram", d.Name, "nodes", d.NodeCount(), "edges", d.EdgeCount())

	data, hit, err := r.render(ctx, d.Name, src, opts.Format)
	if err != nil {
		return res, err
	}
	res.CacheHit = hit

	if err := writeArtifact(path, data); err != nil {
		observability.Draw().OnWrite(ctx, path, 0, err)
		return res, err
	}
	observability.Draw().OnWrite(ctx, path, len(data), nil)
	res.Size = len(data)
	r.Logger.Debug("wrote artifact", "path", path, "bytes", len(data))

	if opts.View {
		err := r.Opener(ctx, path)
		observability.Draw().OnViewerOpen(ctx, path, err)
		if err != nil {
			return res, err
		}
		res.Viewed = true
	}

	res.Duration = time.Since(start)
	return res, nil
}

// render returns the artifact for src, consulting the cache first.
// Cache failures are logged and otherwise ignored.
func (r *Runner) render(ctx context.Context, name, src, format string) ([]byte, bool, error) {
	key := cache.ArtifactKey(src, format)

	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "diagram", name, "err", err)
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		r.Logger.Debug("cache hit", "diagram", name, "format", format)
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	observability.Draw().OnRenderStart(ctx, name, format)
	start := time.Now()
	data, err = r.Render(ctx, src, format)
	observability.Draw().OnRenderComplete(ctx, name, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
		r.Logger.Warn("cache write failed", "diagram", name, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create output directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}
