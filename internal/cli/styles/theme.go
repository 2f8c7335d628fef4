// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bridgecfg/internal/infrastructure/config"
)

// Surface colors are not configurable; the palette only carries foregrounds.
const (
	surfaceColor        = "#1a1b26"
	surfaceVariantColor = "#2f3549"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// ShowIcons selects Nerd Font glyphs over plain ASCII markers.
	ShowIcons bool

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	ActiveButton   lipgloss.Style
	InactiveButton lipgloss.Style

	Row         lipgloss.Style
	RowSelected lipgloss.Style
	TreeKey     lipgloss.Style
	TreeValue   lipgloss.Style
	TreeBranch  lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	StatusBar lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme creates a Theme from config. A nil config uses the defaults.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	t := NewThemeFromPalette(cfg.Appearance.Palette)
	t.ShowIcons = cfg.Appearance.ShowIcons
	return t
}

// NewThemeFromPalette creates a Theme from a Palette. Empty entries fall
// back to the default palette.
func NewThemeFromPalette(p config.Palette) *Theme {
	d := config.DefaultPalette()
	pick := func(v, fallback string) lipgloss.Color {
		if v == "" {
			return lipgloss.Color(fallback)
		}
		return lipgloss.Color(v)
	}

	t := &Theme{
		Text:           pick(p.Text, d.Text),
		Muted:          pick(p.Muted, d.Muted),
		Accent:         pick(p.Accent, d.Accent),
		Border:         pick(p.Border, d.Border),
		Surface:        lipgloss.Color(surfaceColor),
		SurfaceVariant: lipgloss.Color(surfaceVariantColor),
		Error:          pick(p.Error, d.Error),
		Warning:        pick(p.Warning, d.Warning),
		Success:        pick(p.Success, d.Success),
		ShowIcons:      true,
	}

	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.ActiveButton = lipgloss.NewStyle().
		Foreground(t.Surface).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)

	t.InactiveButton = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.SurfaceVariant).
		Padding(0, 2)

	t.Row = lipgloss.NewStyle().
		Foreground(t.Text)

	t.RowSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceVariant).
		Bold(true)

	t.TreeKey = lipgloss.NewStyle().
		Foreground(t.Text)

	t.TreeValue = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.TreeBranch = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Surface).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.InputFocused = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(t.Border)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}

// Icon returns glyph when icons are enabled, plain otherwise.
func (t *Theme) Icon(glyph, plain string) string {
	if t == nil || !t.ShowIcons {
		return plain
	}
	return glyph
}
