package tiles_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/ui/appctx"
	"github.com/bnema/bomtool/internal/ui/textui"
	"github.com/bnema/bomtool/internal/ui/tiles"
)

func newBehavior() *tiles.Behavior {
	b := tiles.NewBehavior(true, true)
	n := 0
	b.FeedContext(appctx.New(appctx.WithSessionIDs(func() string {
		n++
		return fmt.Sprintf("s%d", n)
	})))
	return b
}

func TestSlot_LastWriteWinsAndTakeEmpties(t *testing.T) {
	var slot tiles.Slot[entity.TileID]

	_, ok := slot.Take()
	assert.False(t, ok)

	slot.Set(1)
	slot.Set(7)
	assert.True(t, slot.Pending())

	got, ok := slot.Take()
	require.True(t, ok)
	assert.Equal(t, entity.TileID(7), got)

	_, ok = slot.Take()
	assert.False(t, ok)
	assert.False(t, slot.Pending())
}

func TestBehavior_TitlesAndCloseable(t *testing.T) {
	state := entity.DefaultAppState()
	b := newBehavior()
	root, _ := state.Tree.Root()
	panes := state.Tree.Children(root)

	assert.Equal(t, "BOM 0", b.TabTitleForTile(state.Tree, panes[0]))
	assert.Equal(t, "BOM 1", b.TabTitleForTile(state.Tree, panes[1]))
	assert.Equal(t, "B 2", b.TabTitleForTile(state.Tree, panes[2]))
	assert.Equal(t, "Tabs", b.TabTitleForTile(state.Tree, root))

	assert.False(t, b.IsTabCloseable(state.Tree, panes[0]))
	assert.True(t, b.IsTabCloseable(state.Tree, panes[2]))
	assert.False(t, b.IsTabCloseable(state.Tree, root))
	assert.False(t, b.IsTabCloseable(state.Tree, 99))
}

func TestBehavior_PaneUIWithoutContext(t *testing.T) {
	ui := textui.NewContext(nil)
	b := tiles.NewBehavior(true, true)
	tab := entity.NewTabFromKind(entity.TabKindImporter, 0)

	view := ui.Run(textui.Input{}, func(f port.Frame) {
		f.CentralPanel(func(s port.Surface) { b.PaneUI(s, 1, &tab) })
	})
	assert.Contains(t, view, "workspace context missing")
}

func renderTree(tree *entity.Tree, b *tiles.Behavior, removed *[]entity.Tab) func(port.Frame) {
	return func(f port.Frame) {
		f.CentralPanel(func(s port.Surface) {
			tabs, err := tiles.Render(tree, b, s)
			if err != nil {
				s.Error(err.Error())
			}
			*removed = append(*removed, tabs...)
		})
	}
}

func TestRender_DefaultTabBar(t *testing.T) {
	state := entity.DefaultAppState()
	b := newBehavior()
	ui := textui.NewContext(nil)
	var removed []entity.Tab

	view := ui.Run(textui.Input{}, renderTree(state.Tree, b, &removed))

	assert.Equal(t, []string{"BOM 0", "BOM 1", "B 2", "x", "+", "New session"}, ui.Widgets())
	assert.Contains(t, view, "s1")
}

func TestRender_SelectTab(t *testing.T) {
	state := entity.DefaultAppState()
	b := newBehavior()
	ui := textui.NewContext(nil)
	var removed []entity.Tab
	draw := renderTree(state.Tree, b, &removed)

	ui.Run(textui.Input{}, draw)
	require.True(t, ui.Focus("B 2", 0))
	ui.Run(textui.Input{Activate: true}, draw)

	root, _ := state.Tree.Root()
	tile, _ := state.Tree.Get(root)
	assert.Equal(t, state.Tree.Children(root)[2], tile.Container.Active)

	view := ui.Run(textui.Input{}, draw)
	assert.Contains(t, view, "Clicked 0 times")
}

func TestRender_CloseIsAppliedAfterTraversal(t *testing.T) {
	state := entity.DefaultAppState()
	b := newBehavior()
	ui := textui.NewContext(nil)
	var removed []entity.Tab
	draw := renderTree(state.Tree, b, &removed)

	ui.Run(textui.Input{}, draw)
	require.True(t, ui.Focus("x", 0))
	ui.Run(textui.Input{Activate: true}, draw)

	require.Len(t, removed, 1)
	assert.Equal(t, entity.TabKindPlaceholder, removed[0].Kind)
	assert.Equal(t, 2, state.Tree.PaneCount())
	require.NoError(t, state.Tree.Validate())
}

func TestRender_AddButtonRecordsRequest(t *testing.T) {
	state := entity.DefaultAppState()
	b := newBehavior()
	ui := textui.NewContext(nil)
	var removed []entity.Tab
	draw := renderTree(state.Tree, b, &removed)

	ui.Run(textui.Input{}, draw)
	require.True(t, ui.Focus("+", 0))
	ui.Run(textui.Input{Activate: true}, draw)

	parent, ok := b.TakeAddChild()
	require.True(t, ok)
	root, _ := state.Tree.Root()
	assert.Equal(t, root, parent)
}

func TestRender_HiddenButtons(t *testing.T) {
	state := entity.DefaultAppState()
	b := newBehavior()
	b.ShowCloseButtons = false
	b.ShowAddButtons = false
	ui := textui.NewContext(nil)
	var removed []entity.Tab

	ui.Run(textui.Input{}, renderTree(state.Tree, b, &removed))
	assert.Equal(t, []string{"BOM 0", "BOM 1", "B 2", "New session"}, ui.Widgets())
}

func TestRender_EmptyTree(t *testing.T) {
	b := newBehavior()
	ui := textui.NewContext(nil)
	var removed []entity.Tab

	view := ui.Run(textui.Input{}, renderTree(entity.NewTree("empty"), b, &removed))
	assert.Contains(t, view, "empty")
	assert.Empty(t, removed)
}

func TestRender_LinearContainers(t *testing.T) {
	tree := entity.NewTree("linear")
	left := tree.InsertPane(entity.NewTabFromKind(entity.TabKindPlaceholder, 0))
	right := tree.InsertPane(entity.NewTabFromKind(entity.TabKindPlaceholder, 1))
	root := tree.InsertContainer(entity.ContainerHorizontal, []entity.TileID{left, right})
	require.NoError(t, tree.SetRoot(root))

	b := newBehavior()
	ui := textui.NewContext(nil)
	var removed []entity.Tab
	draw := renderTree(tree, b, &removed)

	view := ui.Run(textui.Input{}, draw)
	assert.Contains(t, view, "B 0")
	assert.Contains(t, view, "B 1")
	assert.Equal(t, []string{"Click", "Click"}, ui.Widgets())

	require.NoError(t, tree.SetContainerKind(root, entity.ContainerVertical))
	ui.Run(textui.Input{}, draw)
	assert.Equal(t, []string{"Click", "Click"}, ui.Widgets())
}

func TestEditTree_ChangesContainerKind(t *testing.T) {
	state := entity.DefaultAppState()
	b := newBehavior()
	ui := textui.NewContext(nil)
	draw := func(f port.Frame) {
		f.SidePanel("side", true, func(s port.Surface) {
			tiles.EditTree(s, state.Tree, b)
		})
	}

	ui.Run(textui.Input{}, draw)
	assert.Equal(t, []string{"Tabs - TileID(4)", "Tabs", "Horizontal", "Vertical"}, ui.Widgets())

	require.True(t, ui.Focus("Vertical", 0))
	ui.Run(textui.Input{Activate: true}, draw)

	root, _ := state.Tree.Root()
	tile, _ := state.Tree.Get(root)
	assert.Equal(t, entity.ContainerVertical, tile.Container.Kind)
}

func TestBehavior_SettingsUI(t *testing.T) {
	b := newBehavior()
	ui := textui.NewContext(nil)
	draw := func(f port.Frame) {
		f.CentralPanel(func(s port.Surface) { b.SettingsUI(s) })
	}

	ui.Run(textui.Input{}, draw)
	require.True(t, ui.Focus("Show add buttons", 0))
	ui.Run(textui.Input{Activate: true}, draw)

	assert.True(t, b.ShowCloseButtons)
	assert.False(t, b.ShowAddButtons)
}
