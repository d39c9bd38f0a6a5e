package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studiokit/workbench/specdoc"
)

func newSpecCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spec",
		Short: "Scaffold and lint component specification documents",
	}
	cmd.AddCommand(
		newSpecNewCmd(app),
		newSpecLintCmd(app),
	)
	return cmd
}

func newSpecNewCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "new <slug>",
		Short: "Scaffold a new specification document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := specdoc.NewManager(app.Config.Project.Root)
			path, err := manager.Scaffold(args[0], title)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s created %s\n", okStyle.Render("ok"), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Document title (defaults to the slug)")
	return cmd
}

func newSpecLintCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Validate every specification document under specs/",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := specdoc.NewManager(app.Config.Project.Root)
			report, err := manager.Lint()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range report.Findings {
				if f.Result.Valid {
					fmt.Fprintf(out, "%s %s\n", okStyle.Render("ok  "), f.Path)
					continue
				}
				fmt.Fprintf(out, "%s %s\n", errStyle.Render("fail"), f.Path)
				fmt.Fprintln(out, f.Result.FormatFeedback())
			}

			if !report.Valid() {
				return fmt.Errorf("%d spec(s) failed validation", len(report.Invalid()))
			}
			return nil
		},
	}
}
