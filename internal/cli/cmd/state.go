package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bomtool/internal/cli/styles"
	"github.com/bnema/bomtool/internal/domain/entity"
)

var (
	stateJSON bool
	stateYes  bool
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset the saved workspace",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved workspace",
	Long:  `Print the saved tile tree, window flags and metadata. Use --json for the raw record.`,
	RunE:  runStateShow,
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved workspace",
	Long:  `Delete the saved workspace so that the next start uses the default layout.`,
	RunE:  runStateReset,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateResetCmd)
	stateShowCmd.Flags().BoolVar(&stateJSON, "json", false, "print the raw saved record")
	stateResetCmd.Flags().BoolVarP(&stateYes, "yes", "y", false, "skip confirmation prompt")
}

func runStateShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStateRenderer(app.Theme)
	out := cmd.OutOrStdout()

	snap, err := app.StateRepo.LoadState(app.Ctx(), entity.AppStateKey)
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}
	if snap == nil {
		fmt.Fprintln(out, renderer.RenderEmpty(app.DBPath()))
		return nil
	}

	if stateJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("encode state: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprint(out, renderer.RenderSummary(snap, app.DBPath()))
	return nil
}

func runStateReset(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStateRenderer(app.Theme)
	out := cmd.OutOrStdout()

	if !stateYes {
		ok, err := styles.RunConfirm(app.Theme, "Delete the saved workspace?")
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			fmt.Fprintln(out, renderer.RenderCanceled())
			return nil
		}
	}

	if _, err := app.ResetStateUC.Execute(app.Ctx()); err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(out, renderer.RenderReset(app.DBPath()))
	return nil
}
