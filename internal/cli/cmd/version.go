package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bridgecfg/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		version := buildInfo.Version
		if version == "" {
			version = "dev"
		}
		fmt.Fprintf(w, "bridgecfg %s\n", version)
		if buildInfo.Commit != "" {
			fmt.Fprintf(w, "commit:  %s\n", buildInfo.Commit)
		}
		if buildInfo.BuildDate != "" {
			fmt.Fprintf(w, "built:   %s\n", buildInfo.BuildDate)
		}
		if buildInfo.GoVersion != "" {
			fmt.Fprintf(w, "go:      %s\n", buildInfo.GoVersion)
		}
		fmt.Fprintf(w, "repo:    %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
