package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studiokit/workbench/provenance"
)

func newProvenanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provenance",
		Short: "Audit and record file provenance",
	}
	cmd.AddCommand(
		newProvenanceCheckCmd(app),
		newProvenanceRecordCmd(app),
	)
	return cmd
}

func (a *App) checker() *provenance.Checker {
	checker := provenance.NewChecker(a.Config.Project.Root)
	if a.Config.Provenance.Doc != "" {
		checker.DocPath = a.Config.Provenance.Doc
	}
	if len(a.Config.Provenance.Exclude) > 0 {
		checker.Exclude = a.Config.Provenance.Exclude
	}
	return checker
}

func newProvenanceCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every marked file is listed in the provenance doc",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.checker().Check(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, failure := range report.Failures {
				fmt.Fprintln(out, failure.Message())
			}
			if !report.OK() {
				return fmt.Errorf("provenance check failed with %d problem(s)", len(report.Failures))
			}
			fmt.Fprintf(out, "%s %d marked file(s) accounted for\n",
				okStyle.Render("ok"), len(report.MarkedFiles))
			return nil
		},
	}
}

func newProvenanceRecordCmd(app *App) *cobra.Command {
	var entry provenance.Entry

	cmd := &cobra.Command{
		Use:   "record <file>",
		Short: "Append a provenance entry for a file to the provenance doc",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry.File = args[0]
			appended, err := provenance.Record(
				app.Config.Project.Root, app.Config.Provenance.Doc, []provenance.Entry{entry})
			if err != nil {
				return err
			}
			if len(appended) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already recorded\n", dimStyle.Render(entry.File))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s recorded %s\n", okStyle.Render("ok"), entry.File)
			return nil
		},
	}

	cmd.Flags().StringVar(&entry.Source, "source", "", "Upstream source of the file")
	cmd.Flags().StringVar(&entry.Commit, "commit", "", "Upstream commit the file was taken from")
	cmd.Flags().StringVar(&entry.License, "license", "", "License of the upstream source")
	cmd.Flags().StringVar(&entry.Modifications, "modifications", "", "Summary of local modifications")
	return cmd
}
