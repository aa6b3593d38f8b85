package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/automatagraph/pkg/errors"
)

func TestWatchFilesReportsWrites(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "a.toml")
	other := filepath.Join(dir, "b.toml")
	for _, p := range []string{watched, other} {
		if err := os.WriteFile(p, []byte("name = \"x\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- watchFiles(ctx, []string{watched}, 20*time.Millisecond, func(p string) {
			select {
			case changed <- p:
			default:
			}
		})
	}()

	// Keep writing until the watcher, which registers asynchronously,
	// reports a change.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

	var got string
loop:
	for {
		select {
		case got = <-changed:
			break loop
		case <-tick.C:
			_ = os.WriteFile(other, []byte("name = \"y\"\n"), 0o644)
			_ = os.WriteFile(watched, []byte("name = \"y\"\n"), 0o644)
		case <-deadline:
			t.Fatal("no change reported within 5s")
		}
	}
	if got != watched {
		t.Errorf("changed path = %q, want %q", got, watched)
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("watchFiles() after cancel = %v, want context.Canceled", err)
	}
}

func TestWatchRejectsBuiltins(t *testing.T) {
	c, _ := testCLI(t)
	if _, err := execute(t, c, "watch", "fsm"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("watch fsm error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestRedrawFlagsDrawOnlyTheChangedFile(t *testing.T) {
	flags := defaultDrawFlags()
	flags.files = []string{"a.toml", "b.toml"}
	flags.format = "svg"

	redraw := redrawFlags(flags)
	if redraw.files != nil {
		t.Errorf("redraw files = %v, want none", redraw.files)
	}
	if !redraw.noView {
		t.Error("redraw should not open the viewer")
	}
	if redraw.format != "svg" {
		t.Errorf("redraw format = %q, want svg", redraw.format)
	}
	if len(flags.files) != 2 || flags.noView {
		t.Error("redrawFlags must not modify the original flags")
	}
}
