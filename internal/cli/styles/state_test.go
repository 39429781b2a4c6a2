package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/bomtool/internal/cli/styles"
	"github.com/bnema/bomtool/internal/domain/entity"
)

func TestStateRenderer_RenderSummary(t *testing.T) {
	state := entity.DefaultAppState()
	state.Windows.Toggle(entity.WindowLogViewer)
	snap := entity.SnapshotFromAppState(state)

	out := styles.NewStateRenderer(styles.NewTheme(nil)).RenderSummary(snap, "/tmp/bomtool.sqlite")

	assert.Contains(t, out, "/tmp/bomtool.sqlite")
	assert.Contains(t, out, "just now")
	assert.Contains(t, out, "expanded")
	assert.Contains(t, out, "Log viewer")
	assert.Contains(t, out, "BOM 0")
	assert.Contains(t, out, "B 2")
}

func TestStateRenderer_RenderSummary_BrokenTree(t *testing.T) {
	snap := entity.SnapshotFromAppState(entity.DefaultAppState())
	snap.Tree.Tiles = snap.Tree.Tiles[1:]

	out := styles.NewStateRenderer(styles.NewTheme(nil)).RenderSummary(snap, "db")
	assert.Contains(t, out, "invalid tile tree")
}

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{ago: 10 * time.Second, want: "just now"},
		{ago: 5 * time.Minute, want: "5m ago"},
		{ago: 3 * time.Hour, want: "3h ago"},
		{ago: 2 * 24 * time.Hour, want: "2d ago"},
		{ago: 14 * 24 * time.Hour, want: "2w ago"},
		{ago: 400 * 24 * time.Hour, want: "1y ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, styles.RelativeTime(time.Now().Add(-tt.ago)))
	}
	assert.Equal(t, "never", styles.RelativeTime(time.Time{}))
}

func TestConfirmModel(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(nil), "Delete?")
	assert.False(t, m.Result())
	assert.Contains(t, m.View(), "Delete?")
}
