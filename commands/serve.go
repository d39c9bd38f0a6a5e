package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/studiokit/workbench/server"
	"github.com/studiokit/workbench/theme"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry over HTTP and watch the themes directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := app.Index()
			if err != nil {
				return err
			}
			engine, err := app.ThemeEngine()
			if err != nil {
				return err
			}

			if addr == "" {
				addr = app.Config.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			group, ctx := errgroup.WithContext(ctx)

			srv := server.New(index, app.Logger, server.Options{
				ShutdownTimeout: app.Config.Server.ShutdownTimeout.Std(),
			})
			group.Go(func() error {
				return srv.Run(ctx, addr)
			})

			themesDir := app.Config.ThemesPath()
			if _, err := os.Stat(themesDir); err == nil {
				watcher, err := theme.NewWatcher(engine, themesDir, app.Logger)
				if err != nil {
					return err
				}
				group.Go(func() error {
					return watcher.Run(ctx)
				})
				app.Logger.Info("watching themes directory", "dir", themesDir)
			}

			app.Logger.Info("serving registry", "addr", addr)
			if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to the configured server address)")
	return cmd
}
