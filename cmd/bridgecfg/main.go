package main

import (
	"runtime"

	"github.com/bnema/bridgecfg/internal/cli/cmd"
	"github.com/bnema/bridgecfg/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Without a subcommand the editor opens.
	cmd.Execute()
}
