package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the workspace",
	Long: `Open the interactive workspace.

The saved workspace is restored unless session.restore_on_start is false.
Quitting asks whether to save; the workspace is also saved periodically
when session.autosave_interval_seconds is above zero.`,
	RunE: runWorkspace,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runWorkspace(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return app.RunWorkspace(app.Ctx())
}
