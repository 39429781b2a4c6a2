package entity

// WindowKind identifies one singleton utility window.
type WindowKind string

const (
	WindowLogViewer WindowKind = "log_viewer"
	WindowSettings  WindowKind = "settings"
	WindowAbout     WindowKind = "about"
)

// MenuLocation is a place in the menu bar where window toggles appear.
type MenuLocation string

const (
	MenuFile   MenuLocation = "file"
	MenuWindow MenuLocation = "window"
	MenuHelp   MenuLocation = "help"
)

// WindowKinds lists every window kind in declaration order.
// The registry holds exactly one entry per kind, in this order.
func WindowKinds() []WindowKind {
	return []WindowKind{WindowLogViewer, WindowSettings, WindowAbout}
}

// Title returns the window caption and toggle label.
func (k WindowKind) Title() string {
	switch k {
	case WindowLogViewer:
		return "Log viewer"
	case WindowSettings:
		return "Settings"
	case WindowAbout:
		return "About"
	}
	return string(k)
}

// Locations returns the menus that show a toggle for this window.
func (k WindowKind) Locations() []MenuLocation {
	switch k {
	case WindowLogViewer:
		return []MenuLocation{MenuWindow}
	case WindowSettings:
		return []MenuLocation{MenuFile, MenuWindow}
	case WindowAbout:
		return []MenuLocation{MenuHelp}
	}
	return nil
}

// ShownIn reports whether the window has a toggle in location.
func (k WindowKind) ShownIn(location MenuLocation) bool {
	for _, l := range k.Locations() {
		if l == location {
			return true
		}
	}
	return false
}

func isKnownWindowKind(kind WindowKind) bool {
	for _, k := range WindowKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// WindowEntry is the persisted state of one window.
type WindowEntry struct {
	Kind WindowKind `json:"kind"`
	Open bool       `json:"open"`
}

// WindowRegistry is the ordered set of utility windows with their
// visibility. It only holds what is persisted.
type WindowRegistry struct {
	Windows []WindowEntry
}

// DefaultWindowRegistry returns one closed entry per declared kind.
func DefaultWindowRegistry() *WindowRegistry {
	kinds := WindowKinds()
	entries := make([]WindowEntry, 0, len(kinds))
	for _, kind := range kinds {
		entries = append(entries, WindowEntry{Kind: kind})
	}
	return &WindowRegistry{Windows: entries}
}

// RestoreWindowRegistry rebuilds a registry from persisted entries.
// When the entry count differs from the number of declared kinds, or an
// entry names an unknown or repeated kind, the default registry is
// returned and reset is true.
func RestoreWindowRegistry(entries []WindowEntry) (registry *WindowRegistry, reset bool) {
	if len(entries) != len(WindowKinds()) {
		return DefaultWindowRegistry(), true
	}
	seen := make(map[WindowKind]bool, len(entries))
	for _, e := range entries {
		if !isKnownWindowKind(e.Kind) || seen[e.Kind] {
			return DefaultWindowRegistry(), true
		}
		seen[e.Kind] = true
	}
	restored := make([]WindowEntry, len(entries))
	copy(restored, entries)
	return &WindowRegistry{Windows: restored}, false
}

// Len returns the number of entries.
func (r *WindowRegistry) Len() int {
	return len(r.Windows)
}

// Entry returns the entry for kind.
func (r *WindowRegistry) Entry(kind WindowKind) *WindowEntry {
	for i := range r.Windows {
		if r.Windows[i].Kind == kind {
			return &r.Windows[i]
		}
	}
	return nil
}

// IsOpen reports whether the window of kind is visible.
func (r *WindowRegistry) IsOpen(kind WindowKind) bool {
	e := r.Entry(kind)
	return e != nil && e.Open
}

// Toggle flips the visibility of kind and returns the new value.
func (r *WindowRegistry) Toggle(kind WindowKind) bool {
	e := r.Entry(kind)
	if e == nil {
		return false
	}
	e.Open = !e.Open
	return e.Open
}

// Snapshot returns a copy of the entries for persistence.
func (r *WindowRegistry) Snapshot() []WindowEntry {
	out := make([]WindowEntry, len(r.Windows))
	copy(out, r.Windows)
	return out
}
