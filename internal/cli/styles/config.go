package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderConfigInfo(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := r.theme.SuccessStyle.Render("present")
	if !exists {
		status = r.theme.Subtle.Render("not created yet, defaults apply")
	}
	return fmt.Sprintf("\n  %s Config %s\n    %s\n",
		iconStyle.Render(IconConfig), r.theme.Subtle.Render(path), status)
}

// RenderCreated renders the notice printed after a default config was written.
func (r *ConfigRenderer) RenderCreated(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Created default configuration %s\n",
		iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.ErrorStyle.Render(IconWarning), r.theme.ErrorStyle.Render(err.Error()))
}

// RenderDir renders one labelled directory line.
func (r *ConfigRenderer) RenderDir(label, path string) string {
	return fmt.Sprintf("    %-7s %s", label, r.theme.Subtle.Render(path))
}
