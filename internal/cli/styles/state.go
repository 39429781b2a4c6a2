package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bomtool/internal/domain/entity"
)

// StateRenderer renders the persisted workspace for the state commands.
type StateRenderer struct {
	theme *Theme
}

// NewStateRenderer creates a new state renderer with the given theme.
func NewStateRenderer(theme *Theme) *StateRenderer {
	return &StateRenderer{theme: theme}
}

// RenderSummary renders a saved snapshot: metadata, windows and tile outline.
func (r *StateRenderer) RenderSummary(snap *entity.AppStateSnapshot, dbPath string) string {
	t := r.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconDatabase), t.Subtle.Render(dbPath)))
	sb.WriteString(fmt.Sprintf("  %s saved %s %s\n",
		iconStyle.Render(IconCalendar),
		t.TimeBadge(snap.SavedAt),
		t.MutedBadge(fmt.Sprintf("v%d", snap.Version)),
	))

	side := "collapsed"
	if snap.SidePanelExpanded {
		side = "expanded"
	}
	sb.WriteString(fmt.Sprintf("  %s side panel %s, next ordinal %d\n",
		iconStyle.Render(IconInfo), t.Highlight.Render(side), snap.NextOrdinal))

	sb.WriteString(fmt.Sprintf("\n  %s Windows\n", iconStyle.Render(IconWindow)))
	for _, w := range snap.Windows {
		mark := t.Subtle.Render(IconX)
		if w.Open {
			mark = t.SuccessStyle.Render(IconCheck)
		}
		sb.WriteString(fmt.Sprintf("    %s %s\n", mark, w.Kind.Title()))
	}

	sb.WriteString(fmt.Sprintf("\n  %s Tiles\n", iconStyle.Render(IconTile)))
	tree, err := entity.TreeFromSnapshot(snap.Tree)
	if err != nil {
		sb.WriteString("    " + t.ErrorStyle.Render(err.Error()) + "\n")
		return sb.String()
	}
	for _, line := range strings.Split(strings.TrimRight(tree.DebugString(), "\n"), "\n") {
		sb.WriteString("    " + t.Code.Render(line) + "\n")
	}
	return sb.String()
}

// RenderEmpty renders the message shown when nothing was saved yet.
func (r *StateRenderer) RenderEmpty(dbPath string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Muted)
	return fmt.Sprintf("\n  %s No saved workspace in %s\n",
		iconStyle.Render(IconInfo), r.theme.Subtle.Render(dbPath))
}

// RenderReset renders the confirmation that the saved workspace is gone.
func (r *StateRenderer) RenderReset(dbPath string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Saved workspace removed from %s\n",
		iconStyle.Render(IconTrash), r.theme.Subtle.Render(dbPath))
}

// RenderCanceled renders the message shown when the user backs out.
func (r *StateRenderer) RenderCanceled() string {
	return "\n  " + r.theme.Subtle.Render("Canceled, nothing was changed") + "\n"
}

// RenderError renders an error message.
func (r *StateRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.ErrorStyle.Render(IconWarning), r.theme.ErrorStyle.Render(err.Error()))
}
