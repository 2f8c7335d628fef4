package model

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/application/usecase"
	"github.com/bnema/bridgecfg/internal/domain/entity"
)

const journalLimit = 50

// pollTickMsg asks for a discovery attempt.
type pollTickMsg struct{}

// pollResultMsg carries the outcome of one discovery attempt.
type pollResultMsg struct {
	out *usecase.PollOutput
}

// docLoadedMsg is sent when a config file has been (re)loaded.
type docLoadedMsg struct {
	file   entity.ConfigFile
	reload bool
	err    error
}

// savedMsg is sent when the working document has been written.
type savedMsg struct {
	err error
}

// editResultMsg is sent when an edit has been applied and, with live
// push, sent to the bridge.
type editResultMsg struct {
	path entity.Path
	out  *usecase.EditValueOutput
	err  error
}

// pushResultMsg is sent when a bulk push completes.
type pushResultMsg struct {
	out *usecase.PushParametersOutput
	err error
}

// fileChangedMsg reports an on-disk change of the open file.
type fileChangedMsg struct {
	change port.FileChange
	ch     <-chan port.FileChange
}

// ConfigChangedMsg is sent when the app config file changes while the
// editor runs. Only editor settings take effect without a restart.
type ConfigChangedMsg struct {
	LivePush    bool
	ConfirmQuit bool
}

// journalLoadedMsg carries recent push journal records.
type journalLoadedMsg struct {
	records []*entity.PushRecord
	err     error
}

func pollAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return pollTickMsg{} })
}

func pollNow() tea.Msg { return pollTickMsg{} }

func (m EditorModel) pollCmd() tea.Cmd {
	ctx, uc := m.ctx, m.deps.Connect
	return func() tea.Msg {
		return pollResultMsg{out: uc.Poll(ctx)}
	}
}

func (m EditorModel) selectCmd(file entity.ConfigFile) tea.Cmd {
	ctx, uc := m.ctx, m.deps.Files
	return func() tea.Msg {
		_, err := uc.Select(ctx, file.Name)
		return docLoadedMsg{file: file, err: err}
	}
}

func (m EditorModel) openCmd(path string) tea.Cmd {
	ctx, uc := m.ctx, m.deps.Files
	return func() tea.Msg {
		_, err := uc.Open(ctx, path)
		file, _ := uc.Current()
		return docLoadedMsg{file: file, err: err}
	}
}

func (m EditorModel) reloadCmd() tea.Cmd {
	ctx, uc := m.ctx, m.deps.Files
	return func() tea.Msg {
		_, err := uc.Reload(ctx)
		file, _ := uc.Current()
		return docLoadedMsg{file: file, reload: true, err: err}
	}
}

func (m EditorModel) saveCmd() tea.Cmd {
	ctx, uc := m.ctx, m.deps.Files
	return func() tea.Msg {
		return savedMsg{err: uc.Save(ctx)}
	}
}

func (m EditorModel) editCmd(path entity.Path, raw string) tea.Cmd {
	ctx := m.ctx
	deps := m.deps
	live := m.livePush

	return func() tea.Msg {
		input := usecase.EditValueInput{
			Document: deps.Files.Document(),
			Path:     path,
			Raw:      raw,
			LivePush: live,
		}
		if file, ok := deps.Files.Current(); ok {
			input.File = file.Path
		}
		if live {
			input.Client, _ = deps.Connect.Client()
			if info := deps.Connect.Info(); info != nil {
				input.Plugin = *info
			}
		}

		out, err := deps.Edit.Execute(ctx, input)
		if out != nil {
			deps.Files.MarkDirty()
		}
		return editResultMsg{path: path, out: out, err: err}
	}
}

func (m EditorModel) pushCmd() tea.Cmd {
	ctx := m.ctx
	deps := m.deps

	return func() tea.Msg {
		client, err := deps.Connect.Client()
		if err != nil {
			return pushResultMsg{err: err}
		}
		input := usecase.PushParametersInput{
			Document: deps.Files.Document(),
			Client:   client,
		}
		if info := deps.Connect.Info(); info != nil {
			input.Plugin = *info
		}
		if file, ok := deps.Files.Current(); ok {
			input.File = file.Path
		}
		out, err := deps.Push.Execute(ctx, input)
		return pushResultMsg{out: out, err: err}
	}
}

func (m EditorModel) journalCmd() tea.Cmd {
	ctx, uc := m.ctx, m.deps.History
	return func() tea.Msg {
		records, err := uc.Execute(ctx, usecase.ListPushHistoryInput{Limit: journalLimit})
		return journalLoadedMsg{records: records, err: err}
	}
}

// waitForChange blocks on the watcher channel. A closed channel ends the
// chain without a message.
func waitForChange(ch <-chan port.FileChange) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return fileChangedMsg{change: change, ch: ch}
	}
}

// startWatch replaces the current file watch. It returns nil when watching
// is disabled or fails.
func (m *EditorModel) startWatch(path string) tea.Cmd {
	m.stopWatch()
	if m.deps.Watcher == nil || path == "" {
		return nil
	}

	ctx, cancel := context.WithCancel(m.ctx)
	ch, err := m.deps.Watcher.Watch(ctx, path)
	if err != nil {
		cancel()
		m.log().Warn().Err(err).Str("file", path).Msg("cannot watch config file")
		return nil
	}
	m.watch = &fileWatch{ch: ch, cancel: cancel}
	return waitForChange(ch)
}

func (m *EditorModel) stopWatch() {
	if m.watch != nil {
		m.watch.cancel()
		m.watch = nil
	}
}

type fileWatch struct {
	ch     <-chan port.FileChange
	cancel context.CancelFunc
}
