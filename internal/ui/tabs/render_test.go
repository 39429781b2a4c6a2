package tabs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/ui/appctx"
	"github.com/bnema/bomtool/internal/ui/tabs"
	"github.com/bnema/bomtool/internal/ui/textui"
)

func newContext() *appctx.Context {
	n := 0
	return appctx.New(appctx.WithSessionIDs(func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}))
}

func draw(tab *entity.Tab, cx *appctx.Context) func(port.Frame) {
	return func(f port.Frame) {
		f.CentralPanel(func(s port.Surface) {
			tabs.Render(tab, s, cx)
		})
	}
}

func TestRender_ImporterShowsSessionAndColumns(t *testing.T) {
	ui := textui.NewContext(nil)
	cx := newContext()
	tab := entity.NewTabFromKind(entity.TabKindImporter, 0)

	view := ui.Run(textui.Input{}, draw(&tab, cx))

	assert.Contains(t, view, "BOM 0")
	assert.Contains(t, view, "session-1")
	assert.Contains(t, view, "key")
	assert.Contains(t, view, "parameter_name")
	assert.Contains(t, view, "u32")
}

func TestRender_ImporterNewSession(t *testing.T) {
	ui := textui.NewContext(nil)
	cx := newContext()
	tab := entity.NewUntaggedImporter(5)

	ui.Run(textui.Input{}, draw(&tab, cx))
	require.Equal(t, "session-1", tab.Importer.Session.ID)

	require.True(t, ui.Focus("New session", 0))
	ui.Run(textui.Input{Activate: true}, draw(&tab, cx))
	assert.Equal(t, "session-2", tab.Importer.Session.ID)
}

func TestRender_PlaceholderCountsClicks(t *testing.T) {
	ui := textui.NewContext(nil)
	tab := entity.NewTabFromKind(entity.TabKindPlaceholder, 2)

	ui.Run(textui.Input{}, draw(&tab, newContext()))
	require.True(t, ui.Focus("Click", 0))
	ui.Run(textui.Input{Activate: true}, draw(&tab, newContext()))
	ui.Run(textui.Input{Activate: true}, draw(&tab, newContext()))

	assert.Equal(t, 2, tab.Placeholder.Clicks)
	view := ui.Run(textui.Input{}, draw(&tab, newContext()))
	assert.Contains(t, view, "Clicked 2 times")
	assert.Contains(t, view, "B 2")
}
