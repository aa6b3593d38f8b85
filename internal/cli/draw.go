package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/automatagraph/pkg/diagram"
	"github.com/matzehuels/automatagraph/pkg/errors"
	"github.com/matzehuels/automatagraph/pkg/io"
	"github.com/matzehuels/automatagraph/pkg/pipeline"
	"github.com/matzehuels/automatagraph/pkg/render/dot"
)

// keyAll selects every built-in diagram.
const keyAll = "all"

// drawFlags holds the command-line flags shared by the root and draw commands.
type drawFlags struct {
	format    string   // output format: png (default), svg, jpg, dot
	outputDir string   // directory for artifacts
	noView    bool     // skip opening the viewer
	noCache   bool     // bypass the artifact cache
	files     []string // definition files to draw in addition to args
	rankDir   string   // Graphviz rankdir override
	shape     string   // Graphviz node shape override
}

func defaultDrawFlags() *drawFlags {
	return &drawFlags{
		format:    envOr(envFormat, dot.DefaultFormat),
		outputDir: envOr(envOutputDir, "."),
	}
}

func (f *drawFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", f.format, "output format: png (default), svg, jpg, dot")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", f.outputDir, "directory to write diagrams to")
	cmd.Flags().BoolVar(&f.noView, "no-view", false, "do not open diagrams in the system viewer")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringSliceVar(&f.files, "file", nil, "diagram definition file (.toml, .json or .yaml), repeatable")
	cmd.Flags().StringVar(&f.rankDir, "rankdir", "", "layout direction: TB, LR, BT, RL (Graphviz default if empty)")
	cmd.Flags().StringVar(&f.shape, "shape", "", "node shape, e.g. circle (Graphviz default if empty)")
}

func (f *drawFlags) options() pipeline.Options {
	return pipeline.Options{
		Format:    f.format,
		OutputDir: f.outputDir,
		View:      !f.noView,
		DOT:       dot.Options{RankDir: f.rankDir, Shape: f.shape},
	}
}

// drawCommand creates the draw command.
func (c *CLI) drawCommand() *cobra.Command {
	flags := defaultDrawFlags()

	cmd := &cobra.Command{
		Use:   "draw [fsm|pda|tm|all|file.toml]...",
		Short: "Draw diagrams to image files and open them",
		Long: `Draw diagrams to image files and open them.

Arguments name built-in diagrams (fsm, pda, tm, or all) or definition files
(.toml, .json or .yaml). With no arguments and no --file, all built-ins are drawn.

Each diagram is written to <output-dir>/<name>.<format>, replacing any
existing file. Diagrams are drawn one after another; the first failure stops
the run.`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return append(diagram.BuiltinKeys(), keyAll), cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDraw(cmd.Context(), args, flags)
		},
	}
	flags.register(cmd)

	return cmd
}

// runDraw resolves the requested diagrams and draws them in order.
func (c *CLI) runDraw(ctx context.Context, args []string, flags *drawFlags) error {
	ds, err := resolveDiagrams(args, flags.files)
	if err != nil {
		return err
	}

	opts := flags.options()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Drawing %s...", diagramNames(ds)))
	spinner.Start()

	results, err := runner.DrawAll(ctx, ds, opts)
	if err != nil {
		interrupted := spinner.Cancelled()
		spinner.Stop()
		if !interrupted {
			printError("Drawing failed")
		}
		printResults(ds, results)
		return err
	}
	spinner.Stop()

	printResults(ds, results)
	prog.done(fmt.Sprintf("Drew %d diagram(s)", len(results)))
	return nil
}

// resolveDiagrams maps arguments, then --file values, to diagrams in the
// order given. An empty request means every built-in.
func resolveDiagrams(args, files []string) ([]*diagram.Diagram, error) {
	if len(args) == 0 && len(files) == 0 {
		return diagram.Builtins(), nil
	}

	var ds []*diagram.Diagram
	for _, arg := range args {
		if strings.EqualFold(arg, keyAll) {
			ds = append(ds, diagram.Builtins()...)
			continue
		}
		if d, ok := diagram.Lookup(arg); ok {
			ds = append(ds, d)
			continue
		}
		if io.Supported(arg) {
			d, err := io.Import(arg)
			if err != nil {
				return nil, err
			}
			ds = append(ds, d)
			continue
		}
		return nil, errors.New(errors.ErrCodeDiagramNotFound,
			"unknown diagram %q (built-ins: %s; or pass a .toml/.json/.yaml file)", arg, strings.Join(diagram.BuiltinKeys(), ", "))
	}

	for _, path := range files {
		d, err := io.Import(path)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}

func diagramNames(ds []*diagram.Diagram) string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.File
	}
	return strings.Join(names, ", ")
}

// printResults prints one line per drawn diagram.
func printResults(ds []*diagram.Diagram, results []pipeline.Result) {
	for i, res := range results {
		printFile(res.Path)
		printStats(ds[i].NodeCount(), ds[i].EdgeCount(), res.CacheHit)
	}
}
