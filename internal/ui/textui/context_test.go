package textui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/ui/textui"
)

func activate() textui.Input { return textui.Input{Activate: true} }

func TestRun_RegistersWidgetsInOrder(t *testing.T) {
	cx := textui.NewContext(nil)
	view := cx.Run(textui.Input{}, func(f port.Frame) {
		f.TopPanel("top", func(s port.Surface) {
			s.Button("one")
		})
		f.CentralPanel(func(s port.Surface) {
			s.Heading("Heading")
			s.Label("plain")
			s.Button("two")
			s.SelectableLabel(true, "three")
		})
	})

	assert.Equal(t, []string{"one", "two", "three"}, cx.Widgets())
	assert.Contains(t, view, "Heading")
	assert.Contains(t, view, "[one]")
	assert.Contains(t, view, "plain")
}

func TestRun_ActivatesFocusedButton(t *testing.T) {
	cx := textui.NewContext(nil)
	var clicked []string
	draw := func(f port.Frame) {
		f.CentralPanel(func(s port.Surface) {
			for _, label := range []string{"a", "b", "c"} {
				if s.Button(label) {
					clicked = append(clicked, label)
				}
			}
		})
	}

	cx.Run(textui.Input{}, draw)
	require.True(t, cx.Focus("b", 0))
	cx.Run(activate(), draw)
	assert.Equal(t, []string{"b"}, clicked)

	cx.Run(textui.Input{Next: true, Activate: true}, draw)
	assert.Equal(t, []string{"b", "c"}, clicked)

	cx.Run(textui.Input{Next: true}, draw)
	assert.Equal(t, 0, cx.FocusIndex(), "focus wraps around")
	cx.Run(textui.Input{Prev: true}, draw)
	assert.Equal(t, 2, cx.FocusIndex())
}

func TestFocus_NthDuplicateLabel(t *testing.T) {
	cx := textui.NewContext(nil)
	cx.Run(textui.Input{}, func(f port.Frame) {
		f.CentralPanel(func(s port.Surface) {
			s.Button("x")
			s.Button("y")
			s.Button("x")
		})
	})

	require.True(t, cx.Focus("x", 1))
	assert.Equal(t, 2, cx.FocusIndex())
	assert.False(t, cx.Focus("x", 2))
	assert.False(t, cx.Focus("missing", 0))
}

func TestToggle_FlipsValue(t *testing.T) {
	cx := textui.NewContext(nil)
	value := false
	draw := func(f port.Frame) {
		f.CentralPanel(func(s port.Surface) {
			s.Toggle(&value, "flag")
		})
	}

	view := cx.Run(textui.Input{}, draw)
	assert.Contains(t, view, "[ ] flag")

	cx.Run(activate(), draw)
	assert.True(t, value)
	view = cx.Run(textui.Input{}, draw)
	assert.Contains(t, view, "[x] flag")
}

func TestCollapsing_RemembersState(t *testing.T) {
	cx := textui.NewContext(nil)
	calls := 0
	draw := func(f port.Frame) {
		f.CentralPanel(func(s port.Surface) {
			s.Collapsing("section", "Section", false, func(inner port.Surface) {
				calls++
				inner.Label("inside")
			})
		})
	}

	view := cx.Run(textui.Input{}, draw)
	assert.Equal(t, 0, calls)
	assert.NotContains(t, view, "inside")

	cx.Run(activate(), draw)
	assert.Equal(t, 1, calls)

	view = cx.Run(textui.Input{}, draw)
	assert.Equal(t, 2, calls)
	assert.Contains(t, view, "inside")
}

func TestMenu_OpenSelectClose(t *testing.T) {
	cx := textui.NewContext(nil)
	picked := 0
	draw := func(f port.Frame) {
		f.TopPanel("top", func(s port.Surface) {
			s.Menu("File", func(m port.Surface) {
				if m.Button("Quit") {
					picked++
					m.CloseMenu()
				}
			})
		})
	}

	cx.Run(textui.Input{}, draw)
	assert.Equal(t, []string{"File"}, cx.Widgets())

	cx.Run(activate(), draw)
	assert.Equal(t, "File", cx.OpenMenu())
	assert.Equal(t, []string{"File", "Quit"}, cx.Widgets())

	require.True(t, cx.Focus("Quit", 0))
	cx.Run(activate(), draw)
	assert.Equal(t, 1, picked)
	assert.Empty(t, cx.OpenMenu())

	require.True(t, cx.Focus("File", 0))
	cx.Run(activate(), draw)
	require.Equal(t, "File", cx.OpenMenu())
	cx.Run(textui.Input{Escape: true}, draw)
	assert.Empty(t, cx.OpenMenu())
}

func TestWindow_CloseButton(t *testing.T) {
	cx := textui.NewContext(nil)
	open := true
	draw := func(f port.Frame) {
		f.Window("About", &open, func(s port.Surface) {
			s.Label("body")
		})
	}

	view := cx.Run(textui.Input{}, draw)
	assert.Contains(t, view, "About")
	assert.Contains(t, view, "body")

	require.True(t, cx.Focus("x", 0))
	cx.Run(activate(), draw)
	assert.False(t, open)

	view = cx.Run(textui.Input{}, draw)
	assert.NotContains(t, view, "body")
	assert.Empty(t, cx.Widgets())
}

func TestModal_BlocksOutsideWidgets(t *testing.T) {
	cx := textui.NewContext(nil)
	cx.SetSize(80, 24)
	modal := false
	outside, inside := 0, 0
	draw := func(f port.Frame) {
		f.CentralPanel(func(s port.Surface) {
			if s.Button("outside") {
				outside++
			}
		})
		if modal {
			f.Modal("confirm", "Confirm", func(s port.Surface) {
				if s.Button("inside") {
					inside++
				}
			})
		}
	}

	cx.Run(textui.Input{}, draw)
	modal = true
	view := cx.Run(textui.Input{}, draw)
	assert.True(t, cx.ModalOpen())
	assert.Contains(t, view, "Confirm")
	assert.NotContains(t, view, "outside")

	cx.Run(textui.Input{}, draw)
	assert.Equal(t, []string{"inside"}, cx.Widgets())
	assert.Equal(t, 0, cx.FocusIndex())

	cx.Run(activate(), draw)
	assert.Equal(t, 1, inside)
	assert.Equal(t, 0, outside)
}

func TestSidePanel_CollapsedSkipsContent(t *testing.T) {
	cx := textui.NewContext(nil)
	called := false
	cx.Run(textui.Input{}, func(f port.Frame) {
		f.SidePanel("side", false, func(port.Surface) { called = true })
		f.CentralPanel(func(s port.Surface) { s.Label("center") })
	})
	assert.False(t, called)
}

func TestColumns_RendersEachColumn(t *testing.T) {
	cx := textui.NewContext(nil)
	var seen []int
	view := cx.Run(textui.Input{}, func(f port.Frame) {
		f.CentralPanel(func(s port.Surface) {
			s.Columns(3, func(i int, col port.Surface) {
				seen = append(seen, i)
				col.Label([]string{"left", "middle", "right"}[i])
			})
		})
	})

	assert.Equal(t, []int{0, 1, 2}, seen)
	for _, want := range []string{"left", "middle", "right"} {
		assert.Contains(t, view, want)
	}
}

func TestInput_IsZero(t *testing.T) {
	assert.True(t, textui.Input{}.IsZero())
	assert.False(t, textui.Input{Next: true}.IsZero())
}
