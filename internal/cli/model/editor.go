// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/application/usecase"
	"github.com/bnema/bridgecfg/internal/cli/styles"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/domain/tree"
	"github.com/bnema/bridgecfg/internal/logging"
)

const (
	defaultPollInterval = time.Second
	// Watcher events arriving this soon after our own save are echoes.
	saveGrace = 1500 * time.Millisecond
)

// EditorDeps are the use cases the editor drives. History and Watcher may
// be nil.
type EditorDeps struct {
	Connect *usecase.ConnectBridgeUseCase
	Files   *usecase.ManageConfigFileUseCase
	Edit    *usecase.EditValueUseCase
	Push    *usecase.PushParametersUseCase
	History *usecase.ListPushHistoryUseCase
	Watcher port.DocumentWatcher
}

// EditorConfig holds editor settings.
type EditorConfig struct {
	PollInterval time.Duration
	LivePush     bool
	ConfirmQuit  bool
	// InitialFile is opened before the bridge is discovered.
	InitialFile string
}

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusSuccess
	statusWarning
	statusError
)

type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingQuit
	pendingSwitch
	pendingReload
)

// EditorModel is the Bubble Tea model for the interactive config editor.
type EditorModel struct {
	// UI components
	help     help.Model
	keys     styles.EditorKeyMap
	editKeys styles.EditKeyMap
	input    textinput.Model
	spinner  spinner.Model
	confirm  *styles.ConfirmModel
	journal  *table.Model
	theme    *styles.Theme
	rows     *styles.TreeRenderer

	// Connection
	state   entity.ConnectionState
	info    *entity.PluginInfo
	polling bool

	// Tree
	root     *tree.DisplayNode
	visible  []*tree.DisplayNode
	selected int

	// Editing
	editing  bool
	editPath entity.Path
	livePush bool
	busy     bool

	// Pending confirmation
	pending     pendingAction
	pendingFile entity.ConfigFile

	watch       *fileWatch
	fileChanged bool
	lastSave    time.Time

	status      string
	statusLevel statusLevel
	showHelp    bool
	width       int
	height      int

	// Dependencies
	ctx  context.Context
	deps EditorDeps
	cfg  EditorConfig
	now  func() time.Time
}

// NewEditorModel creates the editor.
func NewEditorModel(ctx context.Context, theme *styles.Theme, deps EditorDeps, cfg EditorConfig) EditorModel {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	m := EditorModel{
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultEditorKeyMap(),
		editKeys: styles.DefaultEditKeyMap(),
		input:    styles.NewValueInput(theme),
		spinner:  styles.NewDefaultSpinner(theme),
		theme:    theme,
		rows:     styles.NewTreeRenderer(theme),
		state:    deps.Connect.State(),
		livePush: cfg.LivePush,
		ctx:      logging.WithComponent(ctx, "editor"),
		deps:     deps,
		cfg:      cfg,
		now:      time.Now,
		width:    80,
		height:   24,
	}
	m.rebuild(nil)
	return m
}

// Init starts discovery and opens the initial file, if any.
func (m EditorModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, pollNow}
	if m.cfg.InitialFile != "" {
		cmds = append(cmds, m.openCmd(m.cfg.InitialFile))
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.journal != nil {
			m.journal.SetWidth(msg.Width)
			m.journal.SetHeight(m.treeHeight())
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pollTickMsg:
		if m.polling || m.state == entity.Connected {
			return m, nil
		}
		m.polling = true
		m.state = entity.Connecting
		return m, m.pollCmd()

	case pollResultMsg:
		return m.handlePoll(msg)

	case docLoadedMsg:
		return m.handleLoaded(msg)

	case savedMsg:
		m.busy = false
		if msg.err != nil {
			m.setStatus(statusError, msg.err.Error())
			return m, nil
		}
		m.lastSave = m.now()
		m.fileChanged = false
		file, _ := m.deps.Files.Current()
		m.setStatus(statusSuccess, "saved "+file.Name)
		return m, nil

	case editResultMsg:
		return m.handleEdited(msg)

	case pushResultMsg:
		return m.handlePushed(msg)

	case fileChangedMsg:
		return m.handleFileChanged(msg)

	case ConfigChangedMsg:
		m.livePush = msg.LivePush
		m.cfg.ConfirmQuit = msg.ConfirmQuit
		m.setStatus(statusInfo, "config reloaded")
		return m, nil

	case journalLoadedMsg:
		if msg.err != nil {
			m.setStatus(statusError, "journal: "+msg.err.Error())
			return m, nil
		}
		now := m.now()
		rows := make([]table.Row, len(msg.records))
		for i, r := range msg.records {
			rows[i] = styles.JournalRow(r, now, usecase.RelativeTime)
		}
		t := styles.NewStyledTable(m.theme, styles.JournalTableColumns(), rows, m.width, m.treeHeight())
		m.journal = &t
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m EditorModel) handlePoll(msg pollResultMsg) (tea.Model, tea.Cmd) {
	m.polling = false
	out := msg.out
	m.state = out.State

	if out.State != entity.Connected {
		return m, pollAfter(m.cfg.PollInterval)
	}
	if !out.Changed {
		return m, nil
	}

	m.info = out.Info
	m.deps.Files.SetFiles(out.Files)
	m.setStatus(statusSuccess, fmt.Sprintf("connected to %s", out.Info.NodeName))

	// A file named on the command line, or a load in flight, wins over
	// the first discovered file.
	if _, ok := m.deps.Files.Current(); ok || len(out.Files) == 0 || m.busy || m.cfg.InitialFile != "" {
		return m, nil
	}
	m.busy = true
	return m, m.selectCmd(out.Files[0])
}

func (m EditorModel) handleLoaded(msg docLoadedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.fileChanged = false

	var keep map[string]bool
	var selectedPath entity.Path
	if msg.reload {
		keep = tree.ExpandedPaths(m.root)
		if n := m.current(); n != nil {
			selectedPath = tree.PathOf(n)
		}
	} else {
		m.selected = 0
	}
	m.rebuild(keep)
	m.selectPath(selectedPath)

	if msg.err != nil {
		m.setStatus(statusError, msg.err.Error())
	} else if msg.reload {
		m.setStatus(statusInfo, "reloaded "+msg.file.Name)
	} else {
		m.setStatus(statusInfo, "opened "+msg.file.Name)
	}

	if msg.reload {
		// The existing watch still covers the same path.
		if m.watch != nil {
			return m, nil
		}
	}
	cmd := m.startWatch(msg.file.Path)
	return m, cmd
}

func (m EditorModel) handleEdited(msg editResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.out != nil {
		m.rebuild(tree.ExpandedPaths(m.root))
		m.selectPath(msg.path)
	}

	switch {
	case msg.err == nil && msg.out.Pushed:
		m.setStatus(statusSuccess, fmt.Sprintf("%s = %s pushed", msg.path, msg.out.Value))
	case msg.err == nil:
		m.setStatus(statusInfo, fmt.Sprintf("%s = %s", msg.path, msg.out.Value))
	case msg.out != nil:
		m.setStatus(statusWarning, "edited locally, push failed: "+msg.err.Error())
	default:
		m.setStatus(statusError, msg.err.Error())
	}
	return m, nil
}

func (m EditorModel) handlePushed(msg pushResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	switch {
	case errors.Is(msg.err, usecase.ErrParameterRejected) && msg.out != nil:
		m.setStatus(statusWarning, fmt.Sprintf("%d of %d parameters rejected",
			msg.out.Rejected, len(msg.out.Results)))
	case msg.err != nil:
		m.setStatus(statusError, "push failed: "+msg.err.Error())
	default:
		m.setStatus(statusSuccess, fmt.Sprintf("pushed %d parameters", len(msg.out.Results)))
	}
	return m, nil
}

func (m EditorModel) handleFileChanged(msg fileChangedMsg) (tea.Model, tea.Cmd) {
	if m.watch == nil || m.watch.ch != msg.ch {
		return m, nil
	}
	next := waitForChange(msg.ch)

	if !msg.change.Removed && !m.lastSave.IsZero() && m.now().Sub(m.lastSave) < saveGrace {
		return m, next
	}

	m.fileChanged = true
	if msg.change.Removed {
		m.setStatus(statusWarning, "file removed on disk")
	} else {
		m.setStatus(statusWarning, "file changed on disk, press r to reload")
	}
	return m, next
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirm(msg)
	}
	if m.editing {
		return m.handleEditKey(msg)
	}
	if m.journal != nil {
		switch {
		case key.Matches(msg, m.keys.Journal), msg.String() == "esc", key.Matches(msg, m.keys.Quit):
			m.journal = nil
			return m, nil
		}
		t, cmd := m.journal.Update(msg)
		m.journal = &t
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cfg.ConfirmQuit && m.deps.Files.Dirty() {
			m.ask(pendingQuit, "Quit with unsaved changes?")
			return m, nil
		}
		m.stopWatch()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.visible)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Toggle):
		if n := m.current(); n != nil {
			if n.Leaf {
				return m.beginEdit()
			}
			n.Expanded = !n.Expanded
			m.refreshVisible()
		}

	case key.Matches(msg, m.keys.Expand):
		if n := m.current(); n != nil && !n.Leaf {
			n.Expanded = true
			m.refreshVisible()
		}

	case key.Matches(msg, m.keys.Collapse):
		m.collapse()

	case key.Matches(msg, m.keys.ExpandAll):
		tree.SetExpandedAll(m.root, true)
		m.refreshVisible()

	case key.Matches(msg, m.keys.CollapseAll):
		path := entity.Path(nil)
		if n := m.current(); n != nil {
			path = tree.PathOf(n)[:1]
		}
		tree.SetExpandedAll(m.root, false)
		m.refreshVisible()
		m.selectPath(path)

	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()

	case key.Matches(msg, m.keys.NextFile):
		return m.cycleFile(1)

	case key.Matches(msg, m.keys.PrevFile):
		return m.cycleFile(-1)

	case key.Matches(msg, m.keys.LivePush):
		m.livePush = !m.livePush
		if m.livePush {
			m.setStatus(statusInfo, "live push on")
		} else {
			m.setStatus(statusInfo, "live push off")
		}

	case key.Matches(msg, m.keys.Push):
		if m.busy {
			return m, nil
		}
		if m.state != entity.Connected {
			m.setStatus(statusWarning, usecase.ErrNotConnected.Error())
			return m, nil
		}
		m.busy = true
		m.setStatus(statusInfo, "pushing parameters...")
		return m, m.pushCmd()

	case key.Matches(msg, m.keys.Save):
		if m.busy {
			return m, nil
		}
		if _, ok := m.deps.Files.Current(); !ok {
			m.setStatus(statusWarning, usecase.ErrNoFileSelected.Error())
			return m, nil
		}
		if !m.deps.Files.Document().Loaded() {
			m.setStatus(statusWarning, usecase.ErrNotLoaded.Error())
			return m, nil
		}
		m.busy = true
		return m, m.saveCmd()

	case key.Matches(msg, m.keys.Reload):
		if m.busy {
			return m, nil
		}
		if _, ok := m.deps.Files.Current(); !ok {
			return m, nil
		}
		if m.deps.Files.Dirty() {
			m.ask(pendingReload, "Discard unsaved changes and reload?")
			return m, nil
		}
		m.busy = true
		return m, m.reloadCmd()

	case key.Matches(msg, m.keys.Journal):
		if m.deps.History == nil {
			m.setStatus(statusWarning, "push journal is disabled")
			return m, nil
		}
		return m, m.journalCmd()
	}

	return m, nil
}

func (m EditorModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editKeys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.editKeys.Commit):
		m.editing = false
		m.input.Blur()
		m.busy = true
		return m, m.editCmd(m.editPath, m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m EditorModel) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c, _ := m.confirm.Update(msg)
	if !c.Done() {
		m.confirm = &c
		return m, nil
	}

	m.confirm = nil
	action := m.pending
	m.pending = pendingNone
	if !c.Result() {
		return m, nil
	}

	switch action {
	case pendingQuit:
		m.stopWatch()
		return m, tea.Quit
	case pendingSwitch:
		m.busy = true
		return m, m.selectCmd(m.pendingFile)
	case pendingReload:
		m.busy = true
		return m, m.reloadCmd()
	}
	return m, nil
}

func (m EditorModel) beginEdit() (tea.Model, tea.Cmd) {
	n := m.current()
	if n == nil || m.busy {
		return m, nil
	}
	if !n.Leaf || n.Kind == entity.KindSequence {
		m.setStatus(statusWarning, usecase.ErrNotEditable.Error())
		return m, nil
	}

	m.editing = true
	m.editPath = tree.PathOf(n)
	m.input.SetValue(n.Value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m EditorModel) cycleFile(step int) (tea.Model, tea.Cmd) {
	files := m.deps.Files.Files()
	if len(files) == 0 || m.busy {
		return m, nil
	}

	idx := -1
	if cur, ok := m.deps.Files.Current(); ok {
		for i, f := range files {
			if f.Name == cur.Name {
				idx = i
				break
			}
		}
	}
	next := files[(idx+step+len(files))%len(files)]
	if idx < 0 && step < 0 {
		next = files[len(files)-1]
	}

	if m.deps.Files.Dirty() {
		m.pendingFile = next
		m.ask(pendingSwitch, fmt.Sprintf("Discard unsaved changes and open %s?", next.Name))
		return m, nil
	}
	m.busy = true
	return m, m.selectCmd(next)
}

func (m *EditorModel) collapse() {
	n := m.current()
	if n == nil {
		return
	}
	if !n.Leaf && n.Expanded {
		n.Expanded = false
		m.refreshVisible()
		return
	}
	if p := n.Parent(); p != nil && !p.IsRoot() {
		p.Expanded = false
		m.refreshVisible()
		m.selectPath(tree.PathOf(p))
	}
}

func (m *EditorModel) ask(action pendingAction, message string) {
	c := styles.NewConfirm(m.theme, message)
	m.confirm = &c
	m.pending = action
}

func (m *EditorModel) setStatus(level statusLevel, text string) {
	m.statusLevel = level
	m.status = text
	if level == statusError {
		m.log().Warn().Msg(text)
	}
}

// rebuild projects the working document again, restoring expansion state.
func (m *EditorModel) rebuild(expanded map[string]bool) {
	m.root = tree.Build(m.deps.Files.Document())
	tree.ApplyExpanded(m.root, expanded)
	m.refreshVisible()
}

func (m *EditorModel) refreshVisible() {
	m.visible = tree.Visible(m.root)
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// selectPath moves the cursor to path, revealing it if needed. Unknown
// paths leave the cursor where it is.
func (m *EditorModel) selectPath(path entity.Path) {
	if len(path) == 0 {
		return
	}
	n := tree.Find(m.root, path)
	if n == nil {
		return
	}
	tree.Reveal(n)
	m.refreshVisible()
	for i, v := range m.visible {
		if v == n {
			m.selected = i
			return
		}
	}
}

func (m EditorModel) current() *tree.DisplayNode {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return nil
	}
	return m.visible[m.selected]
}

func (m EditorModel) log() *zerolog.Logger {
	return logging.FromContext(m.ctx)
}
