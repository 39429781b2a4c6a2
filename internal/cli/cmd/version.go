package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bnema/bomtool/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := buildInfo
		if info.GoVersion == "" {
			info.GoVersion = runtime.Version()
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, info.String())
		fmt.Fprintln(out, info.GoVersion)
		fmt.Fprintln(out, build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
