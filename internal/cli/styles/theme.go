package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bomtool/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.Palette)
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Selected lipgloss.Color
	Error    lipgloss.Color

	// Additional semantic colors
	Warning lipgloss.Color
	Success lipgloss.Color

	// Text styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	Code         lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	// Widget styles
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ActiveTab     lipgloss.Style
	InactiveTab   lipgloss.Style
	MenuBar       lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Container styles
	Box       lipgloss.Style
	BoxHeader lipgloss.Style
	Panel     lipgloss.Style
	Window    lipgloss.Style
	Modal     lipgloss.Style
}

// NewTheme creates a Theme from config. A nil config uses the default palette.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultPalette()
	if cfg != nil && cfg.Appearance.Palette.Text != "" {
		p = cfg.Appearance.Palette
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p config.Palette) *Theme {
	t := &Theme{
		Text:     lipgloss.Color(p.Text),
		Muted:    lipgloss.Color(p.Muted),
		Accent:   lipgloss.Color(p.Accent),
		Border:   lipgloss.Color(p.Border),
		Selected: lipgloss.Color(p.Selected),
		Error:    lipgloss.Color(p.Error),

		// Semantic colors (not in config)
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color(p.Accent),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
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

	t.Code = lipgloss.NewStyle().
		Foreground(t.Text).
		Faint(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	// A focused widget is drawn reversed so it stays visible without colors.
	t.Button = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.ButtonFocused = lipgloss.NewStyle().
		Foreground(t.Selected).
		Reverse(true).
		Bold(true)

	t.ActiveTab = lipgloss.NewStyle().
		Foreground(t.Accent).
		Underline(true).
		Bold(true)

	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.MenuBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

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

	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.Window = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.Modal = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(t.Selected).
		Padding(1, 2)
}
