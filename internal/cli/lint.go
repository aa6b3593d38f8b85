package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/automatagraph/pkg/diagram"
	"github.com/matzehuels/automatagraph/pkg/errors"
)

// lintCommand creates the lint command. Findings never block drawing;
// --strict turns them into a failing exit status for CI use.
func (c *CLI) lintCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint [fsm|pda|tm|all|file.toml]...",
		Short: "Report duplicate nodes, dangling edges and unlabeled transitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := resolveDiagrams(args, nil)
			if err != nil {
				return err
			}

			total := 0
			for _, d := range ds {
				issues := diagram.Lint(d)
				total += len(issues)
				if len(issues) == 0 {
					printSuccess("%s: no issues", d.Name)
					continue
				}
				for _, issue := range issues {
					printWarning("%s: %s", d.Name, issue)
				}
			}

			if strict && total > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%d lint issue(s)", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if any issue is found")

	return cmd
}
