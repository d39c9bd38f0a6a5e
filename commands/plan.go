package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studiokit/workbench/plan"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <component>",
		Short: "Show the installation plan for a component without applying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			installer, err := app.Installer()
			if err != nil {
				return err
			}
			p, err := installer.PlanAdd(args[0])
			if err != nil {
				return err
			}
			return printPlan(cmd, p)
		},
	}
	return cmd
}

func printPlan(cmd *cobra.Command, p *plan.Plan) error {
	data, err := p.ToJSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	if p.HasConflicts() {
		for _, c := range p.Conflicts {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n",
				warnStyle.Render("conflict"), c.FilePath, c.Reason)
		}
	}
	return nil
}
