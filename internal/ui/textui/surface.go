package textui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bomtool/internal/application/port"
)

// surface lays widgets out vertically, or on one row when horizontal.
type surface struct {
	f           *frame
	width       int
	interactive bool
	horizontal  bool
	blocks      []string
}

func (s *surface) add(block string) {
	s.blocks = append(s.blocks, block)
}

func (s *surface) render() string {
	if len(s.blocks) == 0 {
		return ""
	}
	if s.horizontal {
		return joinRow(s.blocks)
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.blocks...)
}

func (s *surface) child(width int) *surface {
	return &surface{f: s.f, width: max(width, 1), interactive: s.interactive}
}

func (s *surface) Heading(text string) {
	s.add(s.f.cx.theme.Title.Render(text))
}

func (s *surface) Label(text string) {
	s.add(s.f.cx.theme.Normal.Render(text))
}

func (s *surface) Monospace(text string) {
	s.add(s.f.cx.theme.Code.Render(text))
}

func (s *surface) Weak(text string) {
	s.add(s.f.cx.theme.Subtle.Render(text))
}

func (s *surface) Error(text string) {
	s.add(s.f.cx.theme.ErrorStyle.Render(text))
}

func (s *surface) Separator() {
	s.add(s.f.cx.theme.Subtle.Render(strings.Repeat("─", s.width)))
}

func (s *surface) Button(label string) bool {
	focused, activated := s.f.register(label, s.interactive)
	style := s.f.cx.theme.Button
	if focused {
		style = s.f.cx.theme.ButtonFocused
	}
	s.add(style.Render("[" + label + "]"))
	return activated
}

func (s *surface) SelectableLabel(selected bool, label string) bool {
	focused, activated := s.f.register(label, s.interactive)
	style := s.f.cx.theme.InactiveTab
	if selected {
		style = s.f.cx.theme.ActiveTab
	}
	if focused {
		style = s.f.cx.theme.ButtonFocused
	}
	s.add(style.Render(" " + label + " "))
	return activated
}

func (s *surface) Toggle(value *bool, label string) bool {
	focused, activated := s.f.register(label, s.interactive)
	if activated && value != nil {
		*value = !*value
	}
	mark := "[ ] "
	if value != nil && *value {
		mark = "[x] "
	}
	style := s.f.cx.theme.Normal
	if focused {
		style = s.f.cx.theme.ButtonFocused
	}
	s.add(style.Render(mark + label))
	return activated
}

func (s *surface) Horizontal(fn func(port.Surface)) {
	row := s.child(s.width)
	row.horizontal = true
	fn(row)
	s.add(row.render())
}

func (s *surface) Columns(n int, fn func(i int, col port.Surface)) {
	if n <= 0 {
		return
	}
	colWidth := max((s.width-(n-1))/n, 1)
	cols := make([]string, 0, n)
	for i := 0; i < n; i++ {
		col := s.child(colWidth)
		fn(i, col)
		cols = append(cols, lipgloss.NewStyle().Width(colWidth).Render(col.render()))
	}
	s.add(joinRow(cols))
}

func (s *surface) Collapsing(id, title string, defaultOpen bool, fn func(port.Surface)) {
	open, known := s.f.cx.open[id]
	if !known {
		open = defaultOpen
	}

	focused, activated := s.f.register(title, s.interactive)
	if activated {
		open = !open
	}
	s.f.cx.open[id] = open

	arrow := "▸ "
	if open {
		arrow = "▾ "
	}
	style := s.f.cx.theme.Subtitle
	if focused {
		style = s.f.cx.theme.ButtonFocused
	}
	s.add(style.Render(arrow + title))

	if !open {
		return
	}
	body := s.child(s.width - 2)
	fn(body)
	if rendered := body.render(); rendered != "" {
		s.add(lipgloss.NewStyle().PaddingLeft(2).Render(rendered))
	}
}

func (s *surface) Menu(title string, fn func(port.Surface)) {
	offset := lipgloss.Width(s.render())
	if offset > 0 {
		offset++
	}

	focused, activated := s.f.register(title, s.interactive)
	cx := s.f.cx
	if activated {
		if cx.openMenu == title {
			cx.openMenu = ""
		} else {
			cx.openMenu = title
		}
	}

	style := cx.theme.Button
	switch {
	case focused:
		style = cx.theme.ButtonFocused
	case cx.openMenu == title:
		style = cx.theme.ActiveTab
	}
	s.add(style.Render(" " + title + " "))

	if cx.openMenu != title {
		return
	}
	dropdown := s.child(max(cx.width/4, minCentralWidth))
	fn(dropdown)
	s.f.menu = cx.theme.Window.Render(dropdown.render())
	s.f.menuOffset = offset
}

func (s *surface) CloseMenu() {
	s.f.cx.openMenu = ""
}

var _ port.Surface = (*surface)(nil)
