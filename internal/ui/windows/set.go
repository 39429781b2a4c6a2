// Package windows shows the singleton utility windows and keeps their
// runtime handles next to the persisted registry.
package windows

import (
	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/ui/appctx"
)

// handle is the runtime, non-persisted part of a window.
type handle struct {
	feed     port.LogFeed
	minLevel levelFilter
}

// Set pairs a window registry with runtime handles. Open flags live in the
// registry so that a snapshot always matches what is shown.
type Set struct {
	registry *entity.WindowRegistry
	handles  map[entity.WindowKind]*handle
}

// NewSet wraps registry. A nil registry gets the default one.
func NewSet(registry *entity.WindowRegistry) *Set {
	if registry == nil {
		registry = entity.DefaultWindowRegistry()
	}
	s := &Set{
		registry: registry,
		handles:  make(map[entity.WindowKind]*handle, registry.Len()),
	}
	for _, e := range registry.Windows {
		s.handles[e.Kind] = &handle{}
	}
	return s
}

// Registry returns the wrapped registry.
func (s *Set) Registry() *entity.WindowRegistry {
	return s.registry
}

// Rebind swaps in a new registry, e.g. after a reset, and keeps the runtime
// handles of kinds present in both.
func (s *Set) Rebind(registry *entity.WindowRegistry) {
	if registry == nil {
		registry = entity.DefaultWindowRegistry()
	}
	handles := make(map[entity.WindowKind]*handle, registry.Len())
	for _, e := range registry.Windows {
		if h, ok := s.handles[e.Kind]; ok {
			handles[e.Kind] = h
			continue
		}
		handles[e.Kind] = &handle{}
	}
	s.registry = registry
	s.handles = handles
}

// AttachLogFeed gives feed to every log viewer and returns how many were
// updated.
func (s *Set) AttachLogFeed(feed port.LogFeed) int {
	n := 0
	for _, e := range s.registry.Windows {
		if e.Kind != entity.WindowLogViewer {
			continue
		}
		s.handles[e.Kind].feed = feed
		n++
	}
	return n
}

// IsOpen reports whether kind is shown.
func (s *Set) IsOpen(kind entity.WindowKind) bool {
	return s.registry.IsOpen(kind)
}

// ToggleButtons draws one toggle per window listed in location and
// reports whether any was clicked.
func (s *Set) ToggleButtons(location entity.MenuLocation, surface port.Surface) bool {
	clicked := false
	for i := range s.registry.Windows {
		e := &s.registry.Windows[i]
		if !e.Kind.ShownIn(location) {
			continue
		}
		if surface.Toggle(&e.Open, e.Kind.Title()) {
			clicked = true
		}
	}
	return clicked
}

// ShowOpenWindows draws every open window in registry order.
func (s *Set) ShowOpenWindows(cx *appctx.Context, frame port.Frame) {
	for i := range s.registry.Windows {
		e := &s.registry.Windows[i]
		if !e.Open {
			continue
		}
		h := s.handles[e.Kind]
		frame.Window(e.Kind.Title(), &e.Open, func(surface port.Surface) {
			switch e.Kind {
			case entity.WindowLogViewer:
				showLogViewer(surface, cx, h, &e.Open)
			case entity.WindowSettings:
				showSettings(surface, cx, &e.Open)
			case entity.WindowAbout:
				showAbout(surface, cx, &e.Open)
			}
		})
	}
}
