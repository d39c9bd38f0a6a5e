// Package commands provides the cobra subcommands for the workbench CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/studiokit/workbench/config"
	"github.com/studiokit/workbench/plan"
	"github.com/studiokit/workbench/registry"
	"github.com/studiokit/workbench/theme"
)

// App carries the shared state every subcommand needs: the resolved
// configuration and the logger. It is populated by the root command's
// persistent pre-run.
type App struct {
	Config *config.Config
	Logger *slog.Logger
}

// ParseLogLevel maps a level name to a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger creates the CLI logger: text handler on stderr at the given
// level.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Index returns the component registry index, validated.
func (a *App) Index() (*registry.Index, error) {
	return registry.GenerateValidated()
}

// Installer builds the installer for the configured project root.
func (a *App) Installer() (*plan.Installer, error) {
	idx, err := a.Index()
	if err != nil {
		return nil, err
	}
	root := a.Config.Project.Root
	layout := plan.NewDefaultLayout(root)
	store := plan.NewStore(root)
	return plan.NewInstaller(idx, layout, store, a.Logger), nil
}

// Store returns the install-state store for the configured project root.
func (a *App) Store() *plan.Store {
	return plan.NewStore(a.Config.Project.Root)
}

// ThemeEngine builds the theme engine: built-in themes plus any theme
// files in the configured themes directory, with the configured theme
// active.
func (a *App) ThemeEngine() (*theme.Engine, error) {
	engine := theme.DefaultEngine()

	dir := a.Config.ThemesPath()
	if _, err := os.Stat(dir); err == nil {
		if _, err := theme.LoadDir(engine, dir, a.Logger); err != nil {
			return nil, err
		}
	}

	if active := a.Config.Themes.Active; active != "" {
		if err := engine.Switch(active); err != nil {
			a.Logger.Warn("configured active theme not found, keeping One Dark", "theme", active)
		}
	}
	return engine, nil
}
