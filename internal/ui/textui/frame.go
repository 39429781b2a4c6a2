package textui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bomtool/internal/application/port"
)

// frame collects the panels of one Run.
type frame struct {
	cx       *Context
	activate int
	widgets  []string

	top        string
	menu       string
	menuOffset int
	side       string
	central    string
	windows    []string
	modal      string
}

func newFrame(cx *Context) *frame {
	return &frame{cx: cx, activate: -1}
}

// register assigns the next focus index to an interactive widget.
func (f *frame) register(label string, interactive bool) (focused, activated bool) {
	if !interactive {
		return false, false
	}
	idx := len(f.widgets)
	f.widgets = append(f.widgets, label)
	return idx == f.cx.focus, idx == f.activate
}

// blocked reports whether widgets outside a modal ignore input this frame.
func (f *frame) blocked() bool {
	return f.cx.modalOpen
}

func (f *frame) newSurface(width int, interactive bool) *surface {
	return &surface{f: f, width: max(width, 1), interactive: interactive}
}

func (f *frame) centralWidth() int {
	w := f.cx.width
	if f.side != "" {
		w -= lipgloss.Width(f.side) + 1
	}
	return max(w, minCentralWidth)
}

func (f *frame) TopPanel(_ string, fn func(port.Surface)) {
	s := f.newSurface(f.cx.width, !f.blocked())
	s.horizontal = true
	fn(s)
	f.top = f.cx.theme.MenuBar.Width(f.cx.width).Render(s.render())
}

func (f *frame) SidePanel(_ string, expanded bool, fn func(port.Surface)) {
	if !expanded {
		return
	}
	style := f.cx.theme.Panel
	inner := f.cx.sideWidth - style.GetHorizontalFrameSize()
	s := f.newSurface(inner, !f.blocked())
	fn(s)
	f.side = style.Width(f.cx.sideWidth - style.GetHorizontalBorderSize()).Render(s.render())
}

func (f *frame) CentralPanel(fn func(port.Surface)) {
	style := f.cx.theme.Panel
	outer := f.centralWidth()
	s := f.newSurface(outer-style.GetHorizontalFrameSize(), !f.blocked())
	fn(s)
	f.central = style.Width(outer - style.GetHorizontalBorderSize()).Render(s.render())
}

func (f *frame) Window(title string, open *bool, fn func(port.Surface)) {
	if open == nil || !*open {
		return
	}
	t := f.cx.theme
	width := max(f.cx.width/3, minCentralWidth)

	header := f.newSurface(width, !f.blocked())
	header.horizontal = true
	header.add(t.Title.Render(title))
	if header.Button("x") {
		*open = false
	}

	body := f.newSurface(width, !f.blocked())
	fn(body)

	content := lipgloss.JoinVertical(lipgloss.Left, header.render(), body.render())
	f.windows = append(f.windows, t.Window.Render(content))
}

func (f *frame) Modal(_ string, title string, fn func(port.Surface)) {
	t := f.cx.theme
	s := f.newSurface(max(f.cx.width/2, minCentralWidth), true)
	fn(s)
	f.modal = t.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, t.Title.Render(title), "", s.render()))
}

func (f *frame) compose() string {
	body := f.central
	if f.side != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, f.side, " ", f.central)
	}

	if f.modal != "" {
		if f.cx.height > 0 {
			rest := max(f.cx.height-lipgloss.Height(f.top), lipgloss.Height(f.modal))
			return lipgloss.JoinVertical(lipgloss.Left, f.top,
				lipgloss.Place(f.cx.width, rest, lipgloss.Center, lipgloss.Center, f.modal))
		}
		return lipgloss.JoinVertical(lipgloss.Left, f.top, f.modal)
	}

	parts := []string{f.top}
	if f.menu != "" {
		parts = append(parts, lipgloss.NewStyle().MarginLeft(f.menuOffset).Render(f.menu))
	}
	if body != "" {
		parts = append(parts, body)
	}
	if len(f.windows) > 0 {
		parts = append(parts, joinRow(f.windows))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func joinRow(blocks []string) string {
	row := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			row = append(row, " ")
		}
		row = append(row, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}

var _ port.Frame = (*frame)(nil)
