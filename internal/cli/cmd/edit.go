package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/bridgecfg/internal/cli/model"
	"github.com/bnema/bridgecfg/internal/infrastructure/config"
	"github.com/bnema/bridgecfg/internal/logging"
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the interactive editor",
	Long: `Open the interactive tree editor.

The editor polls the bridge until the plugin answers, then opens the first
config file it reports. A FILE argument is opened immediately, which allows
editing while the bridge is offline.

Examples:
  bridgecfg edit
  bridgecfg edit ./config/params.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx := a.Ctx()
	a.PruneJournal(ctx)

	cfg := a.Config
	deps := model.EditorDeps{
		Connect: a.ConnectUC,
		Files:   a.FilesUC,
		Edit:    a.EditUC,
		Push:    a.PushUC,
		History: a.HistoryUC,
	}
	if cfg.Editor.WatchFiles {
		deps.Watcher = a.Watcher
	}

	editorCfg := model.EditorConfig{
		PollInterval: cfg.Bridge.PollInterval(),
		LivePush:     cfg.Editor.LivePush,
		ConfirmQuit:  cfg.Editor.ConfirmQuit,
	}
	if len(args) == 1 {
		editorCfg.InitialFile = args[0]
	}

	m := model.NewEditorModel(ctx, a.Theme, deps, editorCfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if err := a.ConfigManager.Watch(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("config file not watched")
	} else {
		a.ConfigManager.OnConfigChange(func(c *config.Config) {
			p.Send(model.ConfigChangedMsg{
				LivePush:    c.Editor.LivePush,
				ConfirmQuit: c.Editor.ConfirmQuit,
			})
		})
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}
