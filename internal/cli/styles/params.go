package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bridgecfg/internal/domain/entity"
)

// ParamsRenderer renders parameters, push outcomes and plugin identity.
type ParamsRenderer struct {
	theme *Theme
}

// NewParamsRenderer creates a new parameter renderer with the given theme.
func NewParamsRenderer(theme *Theme) *ParamsRenderer {
	return &ParamsRenderer{theme: theme}
}

// RenderParameters renders one "name = value (kind)" line per parameter.
func (r *ParamsRenderer) RenderParameters(params []entity.Parameter, skipped []string) string {
	t := r.theme
	if len(params) == 0 {
		return t.Subtle.Render("no parameters")
	}

	width := 0
	for _, p := range params {
		width = max(width, lipgloss.Width(p.Name))
	}

	var sb strings.Builder
	for _, p := range params {
		fmt.Fprintf(&sb, "%s %s %s %s\n",
			t.Normal.Render(padRight(p.Name, width)),
			t.Subtle.Render("="),
			t.TreeValue.Render(p.Value.String()),
			t.Subtle.Render("("+string(p.Value.Kind)+")"),
		)
	}
	for _, s := range skipped {
		fmt.Fprintf(&sb, "%s %s\n",
			t.WarningStyle.Render(t.Icon(IconWarning, PlainWarning)),
			t.Subtle.Render(s+" skipped: sequences are not parameters"),
		)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderResults renders the bridge verdict for each pushed parameter.
func (r *ParamsRenderer) RenderResults(results []entity.ParameterResult) string {
	t := r.theme
	if len(results) == 0 {
		return t.Subtle.Render("nothing pushed")
	}

	var sb strings.Builder
	ok := 0
	for _, res := range results {
		line := t.ResultBadge(res.Successful) + " " + t.Normal.Render(res.Name)
		if res.Successful {
			ok++
		} else if res.Reason != "" {
			line += "  " + t.ErrorStyle.Render(res.Reason)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(t.Subtle.Render(fmt.Sprintf("%d/%d parameters accepted", ok, len(results))))
	return sb.String()
}

// RenderPluginInfo renders the identity reported by discovery.
func (r *ParamsRenderer) RenderPluginInfo(info *entity.PluginInfo) string {
	t := r.theme
	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(t.Icon(IconPlug, "*"))

	lines := []string{
		fmt.Sprintf("%s %s", icon, t.Title.Render(info.PluginName)),
		fmt.Sprintf("  %s %s", t.Subtle.Render("package:"), t.Normal.Render(info.Package())),
		fmt.Sprintf("  %s %s", t.Subtle.Render("node:   "), t.Normal.Render(info.NodeName)),
	}
	if len(info.ConfigFiles) == 0 {
		lines = append(lines, "  "+t.Subtle.Render("no config files"))
	}
	for _, f := range entity.ConfigFileList(info.ConfigFiles) {
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			t.Subtle.Render(t.Icon(IconFile, "-")),
			t.Highlight.Render(f.Name),
			t.Subtle.Render(f.Path),
		))
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
