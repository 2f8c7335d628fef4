// Package cmd provides Cobra CLI commands for bridgecfg.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bridgecfg/internal/cli"
	"github.com/bnema/bridgecfg/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	opts      cli.Options

	rootCmd = &cobra.Command{
		Use:   "bridgecfg",
		Short: "Edit and push ROS 2 parameter files for the flight software bridge",
		Long: `bridgecfg - an editor and inspector for the configuration files of a
flight software bridge plugin.

It discovers the running plugin over its control socket, lists the YAML
parameter files the plugin loaded, and lets you browse and edit them as a
tree. Edited values can be saved back to disk and pushed to the live node,
one at a time or all at once.

Run 'bridgecfg' or 'bridgecfg edit' to open the editor, or use the
subcommands for scripted inspection and pushes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context.
			// Loading the config would create the file init is about to write.
			switch cmd.Name() {
			case "help", "completion", "version", "path", "init":
				return nil
			}

			o := opts
			o.FileLog = usesTerminalUI(cmd)

			var err error
			app, err = cli.NewApp(o)
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
		Args: cobra.MaximumNArgs(1),
		RunE: runEdit,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/bridgecfg/config.toml)")
	flags.StringVar(&opts.SocketPath, "socket", "", "bridge control socket path")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// usesTerminalUI reports whether cmd takes over the terminal, in which case
// logs must not go to stderr.
func usesTerminalUI(cmd *cobra.Command) bool {
	return cmd.Name() == "edit" || !cmd.HasParent()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
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

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
