package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studiokit/workbench/tokens"
)

func newTokensCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Inspect and edit the active theme's design tokens",
	}
	cmd.AddCommand(
		newTokensPathsCmd(),
		newTokensSetCmd(app),
		newTokensExportCmd(app),
	)
	return cmd
}

func newTokensPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List all addressable token paths",
		Run: func(cmd *cobra.Command, args []string) {
			for _, path := range tokens.Paths() {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
		},
	}
}

func newTokensSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <hex>",
		Short: "Set one token on the active theme and print the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := app.ThemeEngine()
			if err != nil {
				return err
			}
			if err := engine.SetToken(args[0], args[1]); err != nil {
				return err
			}
			data, err := engine.ExportJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newTokensExportCmd(app *App) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the active theme's tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := app.ThemeEngine()
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "json":
				data, err = engine.ExportJSON()
			case "yaml":
				data, err = engine.ExportYAML()
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}

			if output != "" {
				return os.WriteFile(output, data, 0o644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Export format (json or yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
