package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/studiokit/workbench/config"
)

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage registered themes",
	}
	cmd.AddCommand(
		newThemeListCmd(app),
		newThemeShowCmd(app),
		newThemeUseCmd(app),
	)
	return cmd
}

func newThemeUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Make a theme the active theme and persist the choice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := app.ThemeEngine()
			if err != nil {
				return err
			}
			if err := engine.Switch(args[0]); err != nil {
				return err
			}

			app.Config.Themes.Active = args[0]
			cfgPath := filepath.Join(app.Config.Project.Root, config.ProjectConfigFile)
			if err := app.Config.SaveToFile(cfgPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s active theme is now %s\n",
				okStyle.Render("ok"), args[0])
			return nil
		},
	}
}

func newThemeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := app.ThemeEngine()
			if err != nil {
				return err
			}
			active, err := engine.Active()
			if err != nil {
				return err
			}
			for _, name := range engine.Names() {
				marker := "  "
				if name == active.Name {
					marker = okStyle.Render("* ")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", marker, name)
			}
			return nil
		},
	}
}

func newThemeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a registered theme's tokens as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := app.ThemeEngine()
			if err != nil {
				return err
			}
			set, err := engine.Get(args[0])
			if err != nil {
				return err
			}
			data, err := set.ToJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
