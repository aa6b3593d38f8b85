// Package cli implements the automatagraph command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/automatagraph/pkg/buildinfo"
	"github.com/matzehuels/automatagraph/pkg/cache"
	"github.com/matzehuels/automatagraph/pkg/observability"
	"github.com/matzehuels/automatagraph/pkg/pipeline"
	"github.com/matzehuels/automatagraph/pkg/render/view"
)

// appName is the application name used for directories and display.
const appName = "automatagraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// opener overrides the viewer; see viewer.
	opener view.Opener
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RegisterHooks routes draw and cache events to the CLI's debug log.
func (c *CLI) RegisterHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetDrawHooks(h)
	observability.SetCacheHooks(h)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand, it draws every built-in diagram and opens each
// one in the viewer.
func (c *CLI) RootCommand() *cobra.Command {
	flags := defaultDrawFlags()

	root := &cobra.Command{
		Use:   appName,
		Short: "Draw finite-state, pushdown and Turing machine diagrams",
		Long: `automatagraph draws automaton diagrams with Graphviz.

With no arguments it draws the three built-in diagrams (a finite-state
machine, a pushdown automaton and a Turing machine) to fsm.png, pda.png and
tm.png in the current directory and opens each one in the system viewer.

Defaults can be set in the environment or a .env file:
  AUTOMATAGRAPH_VIEWER      viewer command used instead of the system viewer
  AUTOMATAGRAPH_FORMAT      default --format
  AUTOMATAGRAPH_OUTPUT_DIR  default --output-dir`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDraw(cmd.Context(), nil, flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	flags.register(root)

	root.AddCommand(c.drawCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.lintCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, c.viewer(), c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/automatagraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
