package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/automatagraph/pkg/diagram"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDiagramTable(cmd.OutOrStdout(), diagram.Builtins())
		},
	}
}

// writeDiagramTable renders ds as a bordered table.
func writeDiagramTable(w io.Writer, ds []*diagram.Diagram) error {
	rows := make([][]string, len(ds))
	for i, d := range ds {
		rows[i] = []string{d.File, d.Name, d.Title, strconv.Itoa(d.NodeCount()), strconv.Itoa(d.EdgeCount())}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Key", "Graph", "Title", "States", "Transitions").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return base.Foreground(colorCyan)
			}
			return base
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
