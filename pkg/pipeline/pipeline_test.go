package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/automatagraph/pkg/cache"
	"github.com/matzehuels/automatagraph/pkg/diagram"
	"github.com/matzehuels/automatagraph/pkg/errors"
	"github.com/matzehuels/automatagraph/pkg/render/dot"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// recorder is a view.Opener that remembers what it was asked to open.
type recorder struct {
	paths []string
	err   error
}

func (r *recorder) open(_ context.Context, path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

func newTestRunner(c cache.Cache, rec *recorder) *Runner {
	return NewRunner(c, rec.open, log.New(io.Discard))
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		wantFormat string
		wantRank   string
		wantErr    errors.Code
	}{
		{"zero value", Options{}, "png", "", ""},
		{"upper format", Options{Format: "SVG"}, "svg", "", ""},
		{"lower rankdir", Options{DOT: dot.Options{RankDir: "lr"}}, "png", "LR", ""},
		{"bad format", Options{Format: "pdf"}, "", "", errors.ErrCodeInvalidFormat},
		{"bad rankdir", Options{DOT: dot.Options{RankDir: "diagonal"}}, "", "", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := opts.ValidateAndSetDefaults()
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", opts.Format, tt.wantFormat)
			}
			if opts.DOT.RankDir != tt.wantRank {
				t.Errorf("RankDir = %q, want %q", opts.DOT.RankDir, tt.wantRank)
			}
			if opts.OutputDir != "." {
				t.Errorf("OutputDir = %q, want %q", opts.OutputDir, ".")
			}
		})
	}
}

func TestDrawAllBuiltins(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	r := newTestRunner(nil, rec)

	results, err := r.DrawAll(context.Background(), diagram.Builtins(), Options{OutputDir: dir, View: true})
	if err != nil {
		t.Fatalf("DrawAll() error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("DrawAll() returned %d results, want 3", len(results))
	}

	for i, name := range []string{"fsm.png", "pda.png", "tm.png"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("%s not written: %v", name, err)
		}
		if !bytes.HasPrefix(data, pngMagic) {
			t.Errorf("%s is not a PNG", name)
		}
		if results[i].Path != path || results[i].Size != len(data) || !results[i].Viewed {
			t.Errorf("results[%d] = %+v", i, results[i])
		}
		if rec.paths[i] != path {
			t.Errorf("viewer call %d = %q, want %q", i, rec.paths[i], path)
		}
	}
}

func TestDrawOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tm.dot")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := newTestRunner(nil, &recorder{})
	for i := 0; i < 2; i++ {
		if _, err := r.Draw(context.Background(), diagram.TM(), Options{OutputDir: dir, Format: "dot"}); err != nil {
			t.Fatalf("Draw() run %d error: %v", i, err)
		}
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := dot.ToDOT(diagram.TM(), dot.Options{}); string(got) != want {
		t.Errorf("tm.dot = %q, want %q", got, want)
	}
}

func TestDrawUsesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := newTestRunner(c, &recorder{})

	calls := 0
	r.Render = func(ctx context.Context, src, format string) ([]byte, error) {
		calls++
		return []byte("rendered:" + format), nil
	}

	dir := t.TempDir()
	first, err := r.Draw(context.Background(), diagram.FSM(), Options{OutputDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Draw(context.Background(), diagram.FSM(), Options{OutputDir: dir})
	if err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Errorf("renderer called %d times, want 1", calls)
	}
	if first.CacheHit || !second.CacheHit {
		t.Errorf("CacheHit = %v, %v; want false, true", first.CacheHit, second.CacheHit)
	}
	if data, _ := os.ReadFile(second.Path); string(data) != "rendered:png" {
		t.Errorf("cached artifact = %q", data)
	}
}

func TestDrawAllStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	r := newTestRunner(nil, &recorder{})

	boom := errors.New(errors.ErrCodeRenderFailed, "graphviz exploded")
	r.Render = func(ctx context.Context, src, format string) ([]byte, error) {
		if bytes.Contains([]byte(src), []byte("pushdown_automaton")) {
			return nil, boom
		}
		return []byte("ok"), nil
	}

	results, err := r.DrawAll(context.Background(), diagram.Builtins(), Options{OutputDir: dir})
	if !stderrors.Is(err, boom) {
		t.Fatalf("DrawAll() error = %v, want %v", err, boom)
	}
	if len(results) != 1 {
		t.Errorf("DrawAll() returned %d results, want 1", len(results))
	}
	if _, err := os.Stat(filepath.Join(dir, "tm.png")); !os.IsNotExist(err) {
		t.Error("tm.png should not be drawn after pda failed")
	}
}

func TestDrawViewerFailure(t *testing.T) {
	rec := &recorder{err: errors.New(errors.ErrCodeViewerFailed, "no viewer")}
	r := newTestRunner(nil, rec)
	r.Render = func(context.Context, string, string) ([]byte, error) { return []byte("x"), nil }

	res, err := r.Draw(context.Background(), diagram.FSM(), Options{OutputDir: t.TempDir(), View: true})
	if !errors.Is(err, errors.ErrCodeViewerFailed) {
		t.Fatalf("Draw() error = %v, want %s", err, errors.ErrCodeViewerFailed)
	}
	if _, statErr := os.Stat(res.Path); statErr != nil {
		t.Errorf("artifact should be written before the viewer runs: %v", statErr)
	}
}

func TestDrawRejectsUnsafeStem(t *testing.T) {
	r := newTestRunner(nil, &recorder{})
	d := diagram.New("escape", "../escape").Node("a", "A")

	if _, err := r.Draw(context.Background(), d, Options{OutputDir: t.TempDir()}); !errors.Is(err, errors.ErrCodeInvalidName) {
		t.Errorf("Draw() error = %v, want %s", err, errors.ErrCodeInvalidName)
	}
}

func TestDrawAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestRunner(nil, &recorder{})
	results, err := r.DrawAll(ctx, diagram.Builtins(), Options{OutputDir: t.TempDir()})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("DrawAll() error = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Errorf("DrawAll() returned %d results, want 0", len(results))
	}
}
