package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bridgecfg/internal/application/port"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and pending changes.
func (r *ConfigRenderer) RenderConfigInfo(path string, missing, deprecated int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	countStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	var status string
	if missing > 0 {
		status += fmt.Sprintf("\n  %s %s new settings available",
			iconStyle.Render(r.theme.Icon(IconInfo, PlainInfo)),
			countStyle.Render(fmt.Sprintf("%d", missing)),
		)
	}
	if deprecated > 0 {
		status += fmt.Sprintf("\n  %s %s settings are no longer used",
			iconStyle.Render(r.theme.Icon(IconWarning, PlainWarning)),
			countStyle.Render(fmt.Sprintf("%d", deprecated)),
		)
	}

	return fmt.Sprintf("\n  %s Config %s%s\n",
		iconStyle.Render(r.theme.Icon(IconConfig, "*")),
		r.theme.Subtle.Render(path),
		status,
	)
}

// RenderMissingKeys renders the missing keys with their types and default values.
func (r *ConfigRenderer) RenderMissingKeys(keys []port.KeyInfo) string {
	if len(keys) == 0 {
		return ""
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	valueStyle := lipgloss.NewStyle().Foreground(r.theme.Text)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  Missing settings (%d):\n", len(keys))
	for _, key := range keys {
		fmt.Fprintf(&sb, "    %s %s\n      Type: %s | Default: %s\n",
			iconStyle.Render(r.theme.Icon(IconCursor, PlainCursor)),
			r.theme.Highlight.Render(key.Key),
			r.theme.Subtle.Render(key.Type),
			valueStyle.Render(key.DefaultValue),
		)
	}
	return sb.String()
}

// RenderDeprecatedKeys renders keys that migration will drop.
func (r *ConfigRenderer) RenderDeprecatedKeys(keys []string) string {
	if len(keys) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  Unused settings (%d):\n", len(keys))
	for _, key := range keys {
		fmt.Fprintf(&sb, "    %s %s\n",
			r.theme.WarningStyle.Render(r.theme.Icon(IconX, PlainX)),
			r.theme.Subtle.Render(key),
		)
	}
	return sb.String()
}

// RenderMigrationSuccess renders the success message after migration.
func (r *ConfigRenderer) RenderMigrationSuccess(count int, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf("\n  %s Applied %s changes to %s\n",
		iconStyle.Render(r.theme.Icon(IconCheck, PlainCheck)),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderUpToDate renders the "config is up to date" message.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf("\n  %s Config %s\n  %s Config is up to date\n",
		iconStyle.Render(r.theme.Icon(IconConfig, "*")),
		r.theme.Subtle.Render(path),
		iconStyle.Render(r.theme.Icon(IconCheck, PlainCheck)),
	)
}

// RenderWritten renders the path of a freshly written file.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("%s %s written to %s",
		iconStyle.Render(r.theme.Icon(IconSave, PlainCheck)),
		what,
		r.theme.Highlight.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s Config error: %v\n", iconStyle.Render(r.theme.Icon(IconX, PlainX)), err)
}

// RenderMigrateHint renders a hint to run the migrate command.
func (r *ConfigRenderer) RenderMigrateHint() string {
	return fmt.Sprintf("\n  %s\n", r.theme.Subtle.Render("Run 'bridgecfg config migrate' to update the file."))
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf("\n  %s Config %s\n  %s\n",
		iconStyle.Render(r.theme.Icon(IconConfig, "*")),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Run 'bridgecfg config init' to write the defaults."),
	)
}
