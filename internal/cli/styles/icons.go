// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion  = "\uf02b" // tag
	IconCalendar = "\uf073" // calendar
	IconGo       = "\ue627" // go gopher
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconFolder   = "\uf07b" // folder
	IconLogs     = "\uf0f6" // file-text
	IconTrash    = "\uf1f8" // trash
	IconCursor   = "\uf054" // chevron right
	IconWindow   = "\uf2d0" // window
	IconTile     = "\uf009" // th-large
)
