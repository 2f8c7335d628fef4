package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bridgecfg/internal/domain/entity"
)

// StateBadge renders the bridge connection state.
func (t *Theme) StateBadge(state entity.ConnectionState) string {
	switch state {
	case entity.Connected:
		return t.StatusBadge(state.String(), t.Surface, t.Success)
	case entity.Connecting:
		return t.StatusBadge(state.String(), t.Surface, t.Warning)
	default:
		return t.BadgeMuted.Render(state.String())
	}
}

// KindBadge renders a parameter kind.
func (t *Theme) KindBadge(kind entity.ParameterKind) string {
	return t.BadgeMuted.Render(string(kind))
}

// ResultBadge renders the outcome of one parameter push.
func (t *Theme) ResultBadge(successful bool) string {
	if successful {
		return t.StatusBadge(t.Icon(IconCheck, PlainCheck), t.Surface, t.Success)
	}
	return t.StatusBadge(t.Icon(IconX, PlainX), t.Surface, t.Error)
}

// DirtyBadge renders the unsaved-edits marker, or nothing when clean.
func (t *Theme) DirtyBadge(dirty bool) string {
	if !dirty {
		return ""
	}
	return t.StatusBadge("modified", t.Surface, t.Warning)
}

// StatusBadge renders a badge with custom colors.
func (*Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// Checkbox renders a labelled toggle.
func (t *Theme) Checkbox(label string, checked bool) string {
	box := t.Icon(IconCheckboxEmpty, "[ ]")
	style := t.Subtle
	if checked {
		box = t.Icon(IconCheckboxChecked, "[x]")
		style = t.Highlight
	}
	return style.Render(box + " " + label)
}
