package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studiokit/workbench/config"
)

// NewRoot builds the workbench root command with all subcommands wired.
func NewRoot(version string) *cobra.Command {
	app := &App{}

	var (
		configPath string
		rootPath   string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "workbench",
		Short: "Design-system workbench for component contracts, themes, and installs",
		Long: `Workbench manages a design-system component registry: generated from
component contracts, installed into target projects via deterministic
plans, themed through design tokens, and audited for provenance.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			app.Logger = NewLogger(level)

			var cfg *config.Config
			if configPath != "" {
				cfg, err = config.LoadFromFile(configPath)
			} else {
				cfg, err = config.NewLoader(app.Logger).Load()
			}
			if err != nil {
				return err
			}
			if rootPath != "" {
				cfg.Project.Root = rootPath
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			app.Config = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&rootPath, "root", "", "Project root (overrides config and git detection)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newListCmd(app),
		newPlanCmd(app),
		newAddCmd(app),
		newApplyCmd(app),
		newRemoveCmd(app),
		newDoctorCmd(app),
		newTokensCmd(app),
		newThemeCmd(app),
		newSpecCmd(app),
		newProvenanceCmd(app),
		newServeCmd(app),
		newVersionCmd(version),
	)

	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("workbench version %s\n", version)
		},
	}
}
