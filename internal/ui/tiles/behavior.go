// Package tiles renders the workspace tile tree and implements the
// per-tile behavior the renderer asks for.
package tiles

import (
	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/ui/appctx"
	"github.com/bnema/bomtool/internal/ui/tabs"
)

// Behavior answers the tree renderer's questions about tiles. It borrows
// the shared context and owns the pending add-child request.
type Behavior struct {
	ShowCloseButtons bool
	ShowAddButtons   bool

	cx       *appctx.Context
	addChild Slot[entity.TileID]
}

// NewBehavior creates a behavior with the given tab bar buttons.
func NewBehavior(showClose, showAdd bool) *Behavior {
	return &Behavior{ShowCloseButtons: showClose, ShowAddButtons: showAdd}
}

// FeedContext sets the context lent to tab content. It must be called
// before the first frame and after every reset.
func (b *Behavior) FeedContext(cx *appctx.Context) {
	b.cx = cx
}

// Context returns the fed context, or nil.
func (b *Behavior) Context() *appctx.Context {
	return b.cx
}

// TabTitleForTile returns the tab bar label of id.
func (b *Behavior) TabTitleForTile(tree *entity.Tree, id entity.TileID) string {
	tile, ok := tree.Get(id)
	if !ok {
		return id.String()
	}
	if tile.IsPane() {
		return tile.Pane.Title()
	}
	return tile.Container.Kind.String()
}

// PaneUI draws the content of a pane.
func (b *Behavior) PaneUI(s port.Surface, _ entity.TileID, tab *entity.Tab) {
	if b.cx == nil {
		s.Error("workspace context missing")
		return
	}
	tabs.Render(tab, s, b.cx)
}

// IsTabCloseable reports whether the tab bar offers a close button for id.
func (b *Behavior) IsTabCloseable(tree *entity.Tree, id entity.TileID) bool {
	tile, ok := tree.Get(id)
	if !ok || !tile.IsPane() {
		return false
	}
	return tile.Pane.IsCloseable()
}

// TopBarRight draws the trailing tab bar buttons of a tab container.
func (b *Behavior) TopBarRight(s port.Surface, _ *entity.Tree, containerID entity.TileID) {
	if s.Button("+") {
		b.AddChildTo(containerID)
	}
}

// AddChildTo records a request to add a tab to container.
func (b *Behavior) AddChildTo(container entity.TileID) {
	b.addChild.Set(container)
}

// TakeAddChild returns and clears the pending add-child request.
func (b *Behavior) TakeAddChild() (entity.TileID, bool) {
	return b.addChild.Take()
}

// SettingsUI draws the tab bar toggles.
func (b *Behavior) SettingsUI(s port.Surface) {
	s.Toggle(&b.ShowCloseButtons, "Show close buttons")
	s.Toggle(&b.ShowAddButtons, "Show add buttons")
}
