package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/automatagraph/pkg/errors"
	"github.com/matzehuels/automatagraph/pkg/render/dot"
)

// dotCommand creates the dot command, which prints Graphviz source.
func (c *CLI) dotCommand() *cobra.Command {
	var opts dot.Options

	cmd := &cobra.Command{
		Use:   "dot [fsm|pda|tm|file.toml]",
		Short: "Print the Graphviz DOT source of a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			ds, err := resolveDiagrams(args, nil)
			if err != nil {
				return err
			}
			if len(ds) != 1 {
				return errors.New(errors.ErrCodeInvalidInput, "dot prints a single diagram, got %d", len(ds))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), dot.ToDOT(ds[0], opts))
			return err
		},
	}

	cmd.Flags().StringVar(&opts.RankDir, "rankdir", "", "layout direction: TB, LR, BT, RL")
	cmd.Flags().StringVar(&opts.Shape, "shape", "", "node shape, e.g. circle")

	return cmd
}
