package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studiokit/workbench/plan"
)

func newDoctorCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Verify installed component files against their recorded checksums",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := plan.Doctor(app.Store())
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				printDoctorReport(cmd, report)
			}

			if !report.Healthy() {
				return fmt.Errorf("%d installed files need attention", len(report.Problems()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the report as JSON")
	return cmd
}

func printDoctorReport(cmd *cobra.Command, report *plan.DoctorReport) {
	out := cmd.OutOrStdout()
	if len(report.Findings) == 0 {
		fmt.Fprintln(out, dimStyle.Render("no installed components"))
		return
	}
	for _, f := range report.Findings {
		var status string
		switch f.Status {
		case plan.StatusOK:
			status = okStyle.Render("ok      ")
		case plan.StatusMissing:
			status = errStyle.Render("missing ")
		case plan.StatusModified:
			status = warnStyle.Render("modified")
		}
		fmt.Fprintf(out, "%s %s %s", status, f.Component, f.FilePath)
		if f.Detail != "" {
			fmt.Fprintf(out, " (%s)", f.Detail)
		}
		fmt.Fprintln(out)
	}
}
