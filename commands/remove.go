package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studiokit/workbench/plan"
)

func newRemoveCmd(app *App) *cobra.Command {
	var (
		planOnly bool
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "remove <component>",
		Short: "Remove an installed component from the project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			installer, err := app.Installer()
			if err != nil {
				return err
			}

			if planOnly {
				p, err := installer.PlanRemove(args[0])
				if err != nil {
					return err
				}
				return printPlan(cmd, p)
			}

			result, err := installer.Remove(args[0], plan.ApplyOptions{Force: force})
			if err != nil {
				return reportApplyError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s removed %s (%d mutations, run %s)\n",
				okStyle.Render("ok"), args[0], result.Applied, result.RunID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&planOnly, "plan", false, "Print the plan instead of applying it")
	cmd.Flags().BoolVar(&force, "force", false, "Apply despite conflicts")
	return cmd
}
