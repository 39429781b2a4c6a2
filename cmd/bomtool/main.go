package main

import (
	"runtime"

	"github.com/bnema/bomtool/internal/cli/cmd"
	"github.com/bnema/bomtool/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
