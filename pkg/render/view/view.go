// Package view opens rendered files in the platform's default viewer.
package view

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/matzehuels/automatagraph/pkg/errors"
)

// Opener opens a file for display. [Open] is the default; tests and
// headless runs substitute their own.
type Opener func(ctx context.Context, path string) error

// Open launches the platform viewer for path and waits for the launcher to
// exit. On linux this is xdg-open, which returns once the viewer has been
// spawned.
func Open(ctx context.Context, path string) error {
	cmd, err := Command(ctx, runtime.GOOS, path)
	if err != nil {
		return err
	}
	return run(cmd, path)
}

func run(cmd *exec.Cmd, path string) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return errors.Wrap(errors.ErrCodeViewerFailed, err, "open %s: %s", path, msg)
		}
		return errors.Wrap(errors.ErrCodeViewerFailed, err, "open %s", path)
	}
	return nil
}

// Program returns an Opener that runs a specific viewer instead of the
// platform default. command is split on whitespace and the path appended,
// so "feh --scale-down" runs `feh --scale-down <path>`.
func Program(command string) Opener {
	argv := strings.Fields(command)
	return func(ctx context.Context, path string) error {
		if len(argv) == 0 {
			return errors.New(errors.ErrCodeViewerFailed, "empty viewer command")
		}
		cmd := exec.CommandContext(ctx, argv[0], append(argv[1:len(argv):len(argv)], path)...)
		return run(cmd, path)
	}
}

// Command builds the launcher command for goos without starting it.
func Command(ctx context.Context, goos, path string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.CommandContext(ctx, "open", path), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.CommandContext(ctx, "xdg-open", path), nil
	case "windows":
		// The empty argument is start's window title; without it a quoted
		// path would be taken as the title.
		return exec.CommandContext(ctx, "cmd", "/c", "start", "", path), nil
	default:
		return nil, errors.New(errors.ErrCodeViewerFailed, "unsupported platform: %s", goos)
	}
}

// Noop is an Opener that does nothing.
func Noop(context.Context, string) error { return nil }
