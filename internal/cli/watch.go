package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/automatagraph/pkg/errors"
	"github.com/matzehuels/automatagraph/pkg/io"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 150 * time.Millisecond

// watchCommand creates the watch command, which redraws definition files
// as they are edited. The viewer is opened for the first draw only; most
// viewers reload the file when it changes on disk.
func (c *CLI) watchCommand() *cobra.Command {
	flags := defaultDrawFlags()

	cmd := &cobra.Command{
		Use:   "watch file.toml...",
		Short: "Redraw definition files whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd.Context(), args, flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, paths []string, flags *drawFlags) error {
	watched := append(append([]string(nil), paths...), flags.files...)
	for _, p := range watched {
		if !io.Supported(p) {
			return errors.New(errors.ErrCodeInvalidFormat, "cannot watch %s: not a definition file", p)
		}
	}

	if err := c.runDraw(ctx, paths, flags); err != nil {
		return err
	}

	redraw := redrawFlags(flags)

	printInfo("Watching %d file(s), press Ctrl+C to stop", len(watched))
	err := watchFiles(ctx, watched, watchDebounce, func(path string) {
		if err := c.runDraw(ctx, []string{path}, redraw); err != nil {
			printError("%s: %s", path, errors.UserMessage(err))
		}
	})
	if err != nil && ctx.Err() == nil {
		return err
	}
	return ctx.Err()
}

// redrawFlags derives the flags for redrawing one changed file: no viewer,
// and no --file definitions, so only the changed file is drawn.
func redrawFlags(flags *drawFlags) *drawFlags {
	redraw := *flags
	redraw.noView = true
	redraw.files = nil
	return &redraw
}

// watchFiles calls onChange with the path of each file in paths that is
// written or recreated, until ctx is done. Parent directories are watched
// rather than the files so that editors which save by renaming a temp file
// keep being tracked.
func watchFiles(ctx context.Context, paths []string, debounce time.Duration, onChange func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create file watcher")
	}
	defer w.Close()

	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "resolve %s", p)
		}
		watched[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "watch %s", dir)
		}
		dirs[dir] = true
	}

	pending := make(map[string]bool)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if p, ok := watched[abs]; ok {
				pending[p] = true
				timer.Reset(debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			printWarning("watch: %v", err)

		case <-timer.C:
			for _, p := range paths {
				if pending[p] {
					delete(pending, p)
					onChange(p)
				}
			}
		}
	}
}
