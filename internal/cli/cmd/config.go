package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/cli/styles"
	"github.com/bnema/bomtool/internal/infrastructure/config"
	"github.com/bnema/bomtool/internal/infrastructure/xdg"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
	Long:  `Show where the config file lives, the effective configuration, or its JSON Schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, the config file and BOMTOOL_* environment variables are merged.`,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.toml",
	Long:  `Print a JSON Schema describing config.toml, for editor completion and validation.`,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	path := app.ConfigMgr.GetConfigFile()
	if app.ConfigMgr.Created() {
		fmt.Fprintln(out, renderer.RenderCreated(path))
	} else {
		_, err := os.Stat(path)
		fmt.Fprintln(out, renderer.RenderConfigInfo(path, err == nil))
	}
	return printDirs(out, renderer, xdg.New())
}

func printDirs(out io.Writer, renderer *styles.ConfigRenderer, dirs port.XDGPaths) error {
	lookups := []struct {
		label string
		fn    func() (string, error)
	}{
		{"config", dirs.ConfigDir},
		{"data", dirs.DataDir},
		{"state", dirs.StateDir},
		{"logs", dirs.LogDir},
	}
	for _, l := range lookups {
		dir, err := l.fn()
		if err != nil {
			return fmt.Errorf("resolve %s dir: %w", l.label, err)
		}
		fmt.Fprintln(out, renderer.RenderDir(l.label, dir))
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	data, err := toml.Marshal(app.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
