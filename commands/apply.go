package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studiokit/workbench/plan"
)

func newApplyCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "apply <plan.json>",
		Short: "Apply a previously generated plan file",
		Long: `Apply executes the mutations of a plan file produced by
"workbench plan" or "workbench add --plan". Unlike "workbench add" it
records no install state; it is the low-level escape hatch for reviewed
plans.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read plan file: %w", err)
			}
			p, err := plan.FromJSON(data)
			if err != nil {
				return err
			}

			result, err := plan.Apply(p, plan.ApplyOptions{Force: force})
			if err != nil {
				return reportApplyError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s applied %d mutation(s) (run %s)\n",
				okStyle.Render("ok"), result.Applied, result.RunID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Apply despite conflicts")
	return cmd
}
