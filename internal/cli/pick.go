package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/automatagraph/pkg/diagram"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// DiagramListModel is the bubbletea model for interactive diagram selection.
type DiagramListModel struct {
	Diagrams []*diagram.Diagram
	Cursor   int
	Selected *diagram.Diagram
}

// NewDiagramListModel creates a new diagram list model.
func NewDiagramListModel(ds []*diagram.Diagram) DiagramListModel {
	return DiagramListModel{Diagrams: ds}
}

func (m DiagramListModel) Init() tea.Cmd {
	return nil
}

func (m DiagramListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Diagrams)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Diagrams) == 0 {
				return m, nil
			}
			m.Selected = m.Diagrams[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DiagramListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Diagram"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ draw  q quit"))
	b.WriteString("\n\n")

	for i, d := range m.Diagrams {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		counts := fmt.Sprintf("%d states · %d transitions", d.NodeCount(), d.EdgeCount())
		line := fmt.Sprintf("%s%-5s %-22s", cursor, d.File, d.Title)

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString(" " + listDimStyle.Render(counts))
		b.WriteString("\n")
	}

	return b.String()
}

// pickCommand creates the pick command for interactive selection.
func (c *CLI) pickCommand() *cobra.Command {
	flags := defaultDrawFlags()

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a built-in diagram interactively and draw it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(NewDiagramListModel(diagram.Builtins()), tea.WithContext(cmd.Context()))
			finalModel, err := p.Run()
			if err != nil {
				return fmt.Errorf("selection: %w", err)
			}

			m, ok := finalModel.(DiagramListModel)
			if !ok || m.Selected == nil {
				printInfo("Nothing selected")
				return nil
			}
			return c.runDraw(cmd.Context(), []string{m.Selected.File}, flags)
		},
	}
	flags.register(cmd)

	return cmd
}
