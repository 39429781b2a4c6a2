// Package shell is the workspace application: it owns the persisted state,
// the utility windows and the shutdown gate, and draws one frame per call
// to Update.
package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/logging"
	"github.com/bnema/bomtool/internal/ui/appctx"
	"github.com/bnema/bomtool/internal/ui/tiles"
	"github.com/bnema/bomtool/internal/ui/windows"
)

// ErrNoSaver is returned by Save when the app has nowhere to save to.
var ErrNoSaver = errors.New("no state store configured")

// Saver persists the workspace state.
type Saver interface {
	Execute(ctx context.Context, state *entity.AppState) error
}

// Options configures New.
type Options struct {
	// State to start from. Nil starts from the default workspace.
	State *entity.AppState
	// Context lent to tabs and windows. Nil gets appctx.New().
	Context *appctx.Context
	Saver   Saver
}

// App is the workspace shell. It is driven from a single goroutine.
type App struct {
	ctx      context.Context
	state    *entity.AppState
	windows  *windows.Set
	gate     entity.ShutdownGate
	behavior *tiles.Behavior
	cx       *appctx.Context
	saver    Saver

	saveErr   error
	lastSaved time.Time
}

// New builds the shell and attaches the log feed of the context to the
// log viewer.
func New(ctx context.Context, opts Options) *App {
	state := opts.State
	if state == nil {
		state = entity.DefaultAppState()
	}
	cx := opts.Context
	if cx == nil {
		cx = appctx.New()
	}

	a := &App{
		ctx:      logging.WithComponent(ctx, "shell"),
		state:    state,
		windows:  windows.NewSet(state.Windows),
		behavior: tiles.NewBehavior(cx.Config.Workspace.ShowCloseButtons, cx.Config.Workspace.ShowAddButtons),
		cx:       cx,
		saver:    opts.Saver,
	}
	a.behavior.FeedContext(cx)

	if cx.LogFeed != nil {
		n := a.windows.AttachLogFeed(cx.LogFeed)
		logging.FromContext(a.ctx).Debug().Int("windows", n).Msg("log feed attached")
	}
	return a
}

// State returns the live workspace state.
func (a *App) State() *entity.AppState {
	return a.state
}

// Gate returns the shutdown gate.
func (a *App) Gate() *entity.ShutdownGate {
	return &a.gate
}

// Windows returns the utility window set.
func (a *App) Windows() *windows.Set {
	return a.windows
}

// Behavior returns the tile behavior.
func (a *App) Behavior() *tiles.Behavior {
	return a.behavior
}

// Context returns the shared context.
func (a *App) Context() *appctx.Context {
	return a.cx
}

// LastSaved returns when the workspace was last saved by this app.
func (a *App) LastSaved() time.Time {
	return a.lastSaved
}

// Update draws one frame and applies the input it produced.
func (a *App) Update(frame port.Frame, host port.Host) {
	frame.TopPanel("menu_bar", func(s port.Surface) { a.menuBar(s, host) })
	frame.SidePanel("side_panel", a.state.SidePanelExpanded, a.sidePanel)
	a.drainAddChild()
	a.windows.ShowOpenWindows(a.cx, frame)
	frame.CentralPanel(a.centralPanel)
	a.checkShutdown(frame, host)
}

// Save persists the current workspace.
func (a *App) Save() error {
	if a.saver == nil {
		return ErrNoSaver
	}
	if err := a.saver.Execute(a.ctx, a.state); err != nil {
		return err
	}
	a.lastSaved = time.Now()
	logging.FromContext(a.ctx).Debug().Int("pane_count", a.state.Tree.PaneCount()).Msg("workspace saved")
	return nil
}

// Reset replaces the workspace with the default one. Nothing is deleted
// from the store until the next save.
func (a *App) Reset() {
	a.state = entity.DefaultAppState()
	a.windows.Rebind(a.state.Windows)
	a.behavior.TakeAddChild()
	a.behavior.FeedContext(a.cx)
	logging.FromContext(a.ctx).Info().Msg("workspace reset to default")
}

func (a *App) menuBar(s port.Surface, host port.Host) {
	if s.Button("*") {
		a.state.SidePanelExpanded = !a.state.SidePanelExpanded
	}
	s.Menu("File", func(m port.Surface) {
		if a.windows.ToggleButtons(entity.MenuFile, m) {
			m.CloseMenu()
		}
		m.Separator()
		if m.Button("Save") {
			if err := a.Save(); err != nil {
				logging.FromContext(a.ctx).Error().Err(err).Msg("save failed")
			}
			m.CloseMenu()
		}
		if m.Button("Quit") {
			host.Close()
			m.CloseMenu()
		}
	})
	s.Menu("Window", func(m port.Surface) {
		if a.windows.ToggleButtons(entity.MenuWindow, m) {
			m.CloseMenu()
		}
	})
	s.Menu("Help", func(m port.Surface) {
		if a.windows.ToggleButtons(entity.MenuHelp, m) {
			m.CloseMenu()
		}
		m.Separator()
		if m.Button("Reset mem") {
			a.Reset()
			m.CloseMenu()
		}
	})
}

func (a *App) sidePanel(s port.Surface) {
	tree := a.state.Tree
	s.Heading("Workspace")
	s.Weak(fmt.Sprintf("%d panes, %d tiles", tree.PaneCount(), tree.Len()))
	if !a.lastSaved.IsZero() {
		s.Weak("saved at " + a.lastSaved.Format("15:04:05"))
	}
	s.Separator()

	s.Collapsing("behavior", "Behavior", true, a.behavior.SettingsUI)
	s.Collapsing("tree_dump", "Tree", false, func(inner port.Surface) {
		for _, line := range strings.Split(strings.TrimRight(tree.DebugString(), "\n"), "\n") {
			inner.Monospace(line)
		}
	})
	s.Collapsing("active_tiles", "Active tiles", true, func(inner port.Surface) {
		for _, id := range tree.ActiveTiles() {
			inner.Label(tiles.TileLabel(tree, a.behavior, id))
		}
	})
	s.Collapsing("tree_editor", "Tree editor", false, func(inner port.Surface) {
		tiles.EditTree(inner, tree, a.behavior)
	})
}

// drainAddChild applies the add-child request recorded by the previous
// frame's tab bar.
func (a *App) drainAddChild() {
	parent, ok := a.behavior.TakeAddChild()
	if !ok {
		return
	}
	log := logging.FromContext(a.ctx)
	tree := a.state.Tree

	tile, found := tree.Get(parent)
	if !found {
		log.Warn().Uint64("tile_id", uint64(parent)).Msg("add tab: parent tile is gone")
		return
	}
	if !tile.IsContainer() {
		log.Warn().Uint64("tile_id", uint64(parent)).Msg("add tab: parent is not a container")
		return
	}

	tab := a.state.NewUntaggedImporter()
	child := tree.InsertPane(tab)
	if err := tree.AddChild(parent, child); err != nil {
		log.Error().Err(err).Msg("add tab failed")
		return
	}
	if err := tree.SetActive(parent, child); err != nil {
		log.Error().Err(err).Msg("select new tab failed")
	}
	log.Debug().
		Uint64("tile_id", uint64(child)).
		Uint64("parent_id", uint64(parent)).
		Int("ordinal", tab.Ordinal).
		Msg("tab added")
}

func (a *App) centralPanel(s port.Surface) {
	removed, err := tiles.Render(a.state.Tree, a.behavior, s)
	log := logging.FromContext(a.ctx)
	if err != nil {
		log.Error().Err(err).Msg("close tab failed")
	}
	for _, tab := range removed {
		log.Debug().Str("title", tab.Title()).Int("ordinal", tab.Ordinal).Msg("tab closed")
	}
}

func (a *App) checkShutdown(frame port.Frame, host port.Host) {
	if host.CloseRequested() && a.gate.OnCloseRequested() == entity.CloseCancel {
		host.CancelClose()
	}
	if !a.gate.PromptOpen() {
		return
	}
	frame.Modal("shutdown", "Quit bomtool?", func(s port.Surface) {
		s.Label("Save the workspace before quitting?")
		if a.saveErr != nil {
			s.Error(a.saveErr.Error())
		}
		s.Horizontal(func(row port.Surface) {
			if row.Button("Save and quit") {
				a.saveAndQuit(host)
			}
			if row.Button("Quit without saving") {
				if err := a.gate.ConfirmDiscard(); err == nil {
					host.Close()
				}
			}
			if row.Button("Cancel") {
				_ = a.gate.Cancel()
				a.saveErr = nil
			}
		})
	})
}

func (a *App) saveAndQuit(host port.Host) {
	log := logging.FromContext(a.ctx)
	if err := a.gate.ConfirmSave(a.Save); err != nil {
		a.saveErr = err
		log.Error().Err(err).Msg("quit aborted")
		return
	}
	a.saveErr = nil
	host.Close()
}
