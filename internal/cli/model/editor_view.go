package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bridgecfg/internal/cli/styles"
	"github.com/bnema/bridgecfg/internal/domain/entity"
)

// header, file bar, blank, edit box, status and help lines
const chromeHeight = 8

// View renders the editor.
func (m EditorModel) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	sections := []string{m.headerView(), m.filesView(), ""}

	if m.journal != nil {
		sections = append(sections,
			m.theme.BoxHeader.Render("Push journal"),
			m.journal.View(),
		)
	} else {
		sections = append(sections, m.rows.Rows(m.visible, m.selected, m.treeHeight()))
	}

	if m.editing {
		label := m.theme.Subtle.Render(m.editPath.String())
		sections = append(sections, "", label, m.theme.InputBox(m.input.View(), true))
	}

	sections = append(sections, "", m.statusView(), m.helpView())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m EditorModel) headerView() string {
	t := m.theme

	title := t.Title.Render(withIcon(t, styles.IconPlug, "bridgecfg"))
	if m.info != nil {
		title = t.Title.Render(withIcon(t, styles.IconPlug, m.info.Package()))
		title += " " + t.Subtitle.Render(fmt.Sprintf("%s on %s", m.info.PluginName, m.info.NodeName))
	}

	state := t.StateBadge(m.state)
	if m.state == entity.Connecting {
		state = m.spinner.View() + " " + state
	}

	parts := []string{title, state, t.Checkbox("live push", m.livePush)}
	if badge := t.DirtyBadge(m.deps.Files.Dirty()); badge != "" {
		parts = append(parts, badge)
	}
	if m.fileChanged {
		parts = append(parts, t.StatusBadge("changed on disk", t.Surface, t.Warning))
	}
	return strings.Join(parts, "  ")
}

func (m EditorModel) filesView() string {
	t := m.theme
	files := m.deps.Files.Files()
	cur, hasCurrent := m.deps.Files.Current()

	if len(files) == 0 {
		if hasCurrent {
			return t.Highlight.Render(withIcon(t, styles.IconFile, cur.Name))
		}
		return t.Subtle.Render("no config files")
	}

	names := make([]string, len(files))
	for i, f := range files {
		if hasCurrent && f.Name == cur.Name {
			names[i] = t.Highlight.Render("[" + f.Name + "]")
		} else {
			names[i] = t.Subtle.Render(f.Name)
		}
	}
	return withIcon(t, styles.IconFile, strings.Join(names, " "))
}

func (m EditorModel) statusView() string {
	t := m.theme
	if m.status == "" {
		return ""
	}
	switch m.statusLevel {
	case statusSuccess:
		return t.SuccessStyle.Render(t.Icon(styles.IconCheck, styles.PlainCheck) + " " + m.status)
	case statusWarning:
		return t.WarningStyle.Render(t.Icon(styles.IconWarning, styles.PlainWarning) + " " + m.status)
	case statusError:
		return t.ErrorStyle.Render(t.Icon(styles.IconX, styles.PlainX) + " " + m.status)
	default:
		return t.Subtle.Render(t.Icon(styles.IconInfo, styles.PlainInfo) + " " + m.status)
	}
}

func (m EditorModel) helpView() string {
	if m.editing {
		return m.help.View(m.editKeys)
	}
	return m.help.View(m.keys)
}

func (m EditorModel) treeHeight() int {
	h := m.height - chromeHeight
	if m.showHelp {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	return h
}

func withIcon(t *styles.Theme, glyph, text string) string {
	if icon := t.Icon(glyph, ""); icon != "" {
		return icon + " " + text
	}
	return text
}
