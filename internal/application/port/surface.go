package port

// Surface is an immediate-mode drawing target. Widgets are laid out in call
// order; interactive widgets return true in the frame the user activates them.
type Surface interface {
	Heading(text string)
	Label(text string)
	Monospace(text string)
	Weak(text string)
	Error(text string)
	Separator()

	// Button draws a push button.
	Button(label string) bool
	// SelectableLabel draws a label that renders highlighted when selected.
	SelectableLabel(selected bool, label string) bool
	// Toggle flips *value when activated and reports whether it did.
	Toggle(value *bool, label string) bool

	// Horizontal lays out the widgets drawn by fn on one row.
	Horizontal(fn func(Surface))
	// Columns splits the available width into n side-by-side surfaces.
	Columns(n int, fn func(i int, col Surface))
	// Collapsing draws a header that expands to the content drawn by fn.
	// The open state is remembered across frames under id.
	Collapsing(id, title string, defaultOpen bool, fn func(Surface))
	// Menu draws a menu button; fn runs while the menu is open.
	Menu(title string, fn func(Surface))
	// CloseMenu closes the currently open menu.
	CloseMenu()
}

// Frame is one render pass of the host. Panels must be requested in the
// order top, side, central; windows and modals may follow in any order.
type Frame interface {
	// TopPanel draws a full-width bar above everything else.
	TopPanel(id string, fn func(Surface))
	// SidePanel draws a left panel. fn is not called when collapsed.
	SidePanel(id string, expanded bool, fn func(Surface))
	// CentralPanel draws the main area.
	CentralPanel(fn func(Surface))
	// Window draws a floating window with a close button bound to *open.
	// Nothing is drawn when *open is false.
	Window(title string, open *bool, fn func(Surface))
	// Modal draws a blocking dialog. While a modal is shown, widgets outside
	// of it do not react to input.
	Modal(id, title string, fn func(Surface))
}
