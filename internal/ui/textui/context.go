// Package textui is an immediate-mode text surface. Every frame the caller
// redraws the whole UI through port.Frame; textui lays the widgets out with
// lipgloss and resolves keyboard focus and activation by widget order.
package textui

import (
	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/cli/styles"
)

const (
	defaultWidth     = 100
	defaultSideWidth = 36
	minCentralWidth  = 20
)

// Input is the keyboard intent applied to one frame.
type Input struct {
	Next     bool // Move focus to the next widget
	Prev     bool // Move focus to the previous widget
	Activate bool // Activate the focused widget
	Escape   bool // Close the open menu
}

// IsZero reports whether the input carries no intent.
func (in Input) IsZero() bool {
	return in == Input{}
}

// Context is the state textui keeps between frames.
type Context struct {
	theme     *styles.Theme
	width     int
	height    int
	sideWidth int

	focus     int
	widgets   []string
	open      map[string]bool
	openMenu  string
	modalOpen bool
}

// NewContext creates a context drawing with theme.
func NewContext(theme *styles.Theme) *Context {
	if theme == nil {
		theme = styles.NewTheme(nil)
	}
	return &Context{
		theme:     theme,
		width:     defaultWidth,
		sideWidth: defaultSideWidth,
		open:      make(map[string]bool),
	}
}

// SetSize records the terminal size. A zero height disables vertical
// placement of modals.
func (c *Context) SetSize(width, height int) {
	if width > 0 {
		c.width = width
	}
	c.height = height
}

// SetSideWidth sets the outer width of the side panel.
func (c *Context) SetSideWidth(width int) {
	if width > 0 {
		c.sideWidth = width
	}
}

// SetTheme swaps the theme, e.g. after a config reload.
func (c *Context) SetTheme(theme *styles.Theme) {
	if theme != nil {
		c.theme = theme
	}
}

// Widgets returns the labels of the interactive widgets of the last frame,
// in focus order.
func (c *Context) Widgets() []string {
	return append([]string(nil), c.widgets...)
}

// FocusIndex returns the focused widget index.
func (c *Context) FocusIndex() int {
	return c.focus
}

// Focus moves focus to the nth (0-based) widget labeled label in the last
// frame and reports whether one was found.
func (c *Context) Focus(label string, nth int) bool {
	seen := 0
	for i, w := range c.widgets {
		if w != label {
			continue
		}
		if seen == nth {
			c.focus = i
			return true
		}
		seen++
	}
	return false
}

// OpenMenu returns the title of the open menu, or "".
func (c *Context) OpenMenu() string {
	return c.openMenu
}

// ModalOpen reports whether the last frame showed a modal.
func (c *Context) ModalOpen() bool {
	return c.modalOpen
}

// Run draws one frame with fn and returns the composed view.
func (c *Context) Run(in Input, fn func(port.Frame)) string {
	if n := len(c.widgets); n > 0 {
		switch {
		case in.Next:
			c.focus = (c.focus + 1) % n
		case in.Prev:
			c.focus = (c.focus - 1 + n) % n
		}
	}
	if in.Escape {
		c.openMenu = ""
	}

	f := newFrame(c)
	if in.Activate {
		f.activate = c.focus
	}
	fn(f)

	modalOpen := f.modal != ""
	if modalOpen != c.modalOpen {
		c.focus = 0
	}
	c.modalOpen = modalOpen
	c.widgets = f.widgets
	if c.focus >= len(c.widgets) {
		c.focus = max(0, len(c.widgets)-1)
	}
	return f.compose()
}
