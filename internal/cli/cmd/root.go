// Package cmd provides Cobra CLI commands for bomtool.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bomtool/internal/cli"
	"github.com/bnema/bomtool/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "bomtool",
		Short: "A keyboard-driven workspace for BOM import sessions",
		Long: `bomtool - a terminal workspace for BOM import sessions.

Import tabs live in a persistent tile tree: tabs can be added, closed,
regrouped and are restored on the next start. Utility windows (log viewer,
settings, about) are toggled from the menu bar.

Run 'bomtool' without arguments to open the workspace, or use the
subcommands to inspect or reset the saved state and the configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cmd.Context())
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runWorkspace,
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
