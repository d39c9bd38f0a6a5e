package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/studiokit/workbench/plan"
	"github.com/studiokit/workbench/provenance"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		planOnly bool
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "add <component>",
		Short: "Install a component from the registry into the project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			installer, err := app.Installer()
			if err != nil {
				return err
			}

			if planOnly {
				p, err := installer.PlanAdd(args[0])
				if err != nil {
					return err
				}
				return printPlan(cmd, p)
			}

			p, err := installer.PlanAdd(args[0])
			if err != nil {
				return err
			}
			result, err := installer.Add(args[0], plan.ApplyOptions{Force: force})
			if err != nil {
				return reportApplyError(cmd, err)
			}
			if err := recordProvenance(app, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s installed %s (%d mutations, run %s)\n",
				okStyle.Render("ok"), args[0], result.Applied, result.RunID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&planOnly, "plan", false, "Print the plan instead of applying it")
	cmd.Flags().BoolVar(&force, "force", false, "Apply despite conflicts or an existing install")
	return cmd
}

// recordProvenance appends the plan's attribution entries to the
// provenance doc so installed files pass `workbench provenance check`.
func recordProvenance(app *App, p *plan.Plan) error {
	root := app.Config.Project.Root
	entries := make([]provenance.Entry, 0, len(p.ProvenanceActions))
	for _, action := range p.ProvenanceActions {
		rel, err := filepath.Rel(root, action.FilePath)
		if err != nil {
			rel = action.FilePath
		}
		entries = append(entries, provenance.Entry{
			File:          filepath.ToSlash(rel),
			Source:        action.Source,
			License:       action.License,
			Modifications: action.Modifications,
		})
	}
	if len(entries) == 0 {
		return nil
	}
	_, err := provenance.Record(root, app.Config.Provenance.Doc, entries)
	return err
}

// reportApplyError prints the failure report for a partially applied plan
// before returning the error for a nonzero exit.
func reportApplyError(cmd *cobra.Command, err error) error {
	var applyErr *plan.ApplyError
	if errors.As(err, &applyErr) {
		data, jerr := applyErr.Report.ToJSON()
		if jerr == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), string(data))
		}
	}
	return err
}
