package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/automatagraph/pkg/diagram"
	"github.com/matzehuels/automatagraph/pkg/errors"
	"github.com/matzehuels/automatagraph/pkg/io"
)

// exportCommand creates the export command, which writes a built-in
// diagram as a definition file to start a custom one from.
func (c *CLI) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [fsm|pda|tm] [file.toml|file.json|file.yaml]",
		Short: "Write a built-in diagram as a definition file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := diagram.Lookup(args[0])
			if !ok {
				return errors.New(errors.ErrCodeDiagramNotFound, "unknown diagram %q", args[0])
			}
			if err := io.Export(args[1], d); err != nil {
				return err
			}
			c.Logger.Infof("Exported %s", d.Name)
			printFile(args[1])
			return nil
		},
	}
}
