// Package tabs draws the content of each tab kind.
package tabs

import (
	"fmt"
	"strings"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/ui/appctx"
)

const sessionTimeFormat = "15:04:05"

// Render draws tab into s.
func Render(tab *entity.Tab, s port.Surface, cx *appctx.Context) {
	switch tab.Kind {
	case entity.TabKindImporter:
		renderImporter(tab, s, cx)
	case entity.TabKindPlaceholder:
		renderPlaceholder(tab, s)
	default:
		s.Error(fmt.Sprintf("unknown tab kind %q", tab.Kind))
	}
}

func renderImporter(tab *entity.Tab, s port.Surface, cx *appctx.Context) {
	s.Heading(tab.Title())
	if tab.Importer.Tag != nil {
		s.Weak("Pinned import slot")
	}

	session := cx.EnsureSession(tab)
	s.Horizontal(func(row port.Surface) {
		row.Label("Session")
		row.Monospace(session.ID)
		row.Weak("started " + session.StartedAt.Format(sessionTimeFormat))
	})
	s.Separator()

	s.Label("Required columns")
	for _, col := range session.Columns {
		s.Horizontal(func(row port.Surface) {
			row.Monospace(col.Name)
			row.Weak(string(col.Type))
			if len(col.Synonyms) > 0 {
				row.Weak("aka " + strings.Join(col.Synonyms, ", "))
			}
		})
	}
	s.Separator()

	if s.Button("New session") {
		tab.Importer.Session = cx.NewSession()
	}
}

func renderPlaceholder(tab *entity.Tab, s port.Surface) {
	s.Heading(tab.Title())
	s.Label(fmt.Sprintf("Clicked %d times", tab.Placeholder.Clicks))
	if s.Button("Click") {
		tab.Placeholder.Clicks++
	}
}
